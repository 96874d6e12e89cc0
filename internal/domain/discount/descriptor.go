package discount

import (
	"sort"
	"time"
)

type StackingMode string

const (
	StackingModeStacking              StackingMode = "Stacking"
	StackingModeStopAfterThisDiscount StackingMode = "StopAfterThisDiscount"
)

// ParseStackingMode maps unknown or empty values to Stacking, the platform default.
func ParseStackingMode(s string) StackingMode {
	if StackingMode(s) == StackingModeStopAfterThisDiscount {
		return StackingModeStopAfterThisDiscount
	}
	return StackingModeStacking
}

func (m StackingMode) String() string {
	return string(m)
}

// Descriptor is a cart discount rule as fetched from the platform. Read-only.
type Descriptor struct {
	ID                   string       `json:"id"`
	Version              int64        `json:"version"`
	Name                 string       `json:"name"`
	Description          string       `json:"description"`
	CartPredicate        string       `json:"cartPredicate"`
	IsActive             bool         `json:"isActive"`
	StackingMode         StackingMode `json:"stackingMode"`
	SortOrder            float64      `json:"sortOrder"`
	RequiresDiscountCode bool         `json:"requiresDiscountCode"`
	ValidFrom            *time.Time   `json:"validFrom,omitempty"`
	ValidUntil           *time.Time   `json:"validUntil,omitempty"`
}

// IsAutomatic reports whether the discount applies without an entry code.
func (d Descriptor) IsAutomatic() bool {
	return !d.RequiresDiscountCode
}

// SortByPriority returns a copy ordered by sortOrder, highest first.
// Ties keep their original relative order.
func SortByPriority(ds []Descriptor) []Descriptor {
	out := make([]Descriptor, len(ds))
	copy(out, ds)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SortOrder > out[j].SortOrder
	})
	return out
}
