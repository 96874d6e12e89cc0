package response

import (
	"time"

	"cart-discount-preview/internal/domain/discount"
	"cart-discount-preview/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type DiscountResponse struct {
	ID                   string     `json:"id"`
	Version              int64      `json:"version"`
	Name                 string     `json:"name"`
	Description          string     `json:"description,omitempty"`
	CartPredicate        string     `json:"cartPredicate"`
	IsActive             bool       `json:"isActive"`
	StackingMode         string     `json:"stackingMode"`
	SortOrder            float64    `json:"sortOrder"`
	RequiresDiscountCode bool       `json:"requiresDiscountCode"`
	ValidFrom            *time.Time `json:"validFrom,omitempty"`
	ValidUntil           *time.Time `json:"validUntil,omitempty"`
}

type DiscountListResponse struct {
	Discounts []DiscountResponse `json:"discounts"`
	Count     int                `json:"count"`
}

func FromDiscount(d discount.Descriptor) (DiscountResponse, error) {
	var out DiscountResponse
	if err := copier.Copy(&out, &d); err != nil {
		return DiscountResponse{}, errs.Wrap(err, "copy discount")
	}
	return out, nil
}

func FromDiscounts(ds []discount.Descriptor) (DiscountListResponse, error) {
	out := make([]DiscountResponse, 0, len(ds))
	for _, d := range ds {
		r, err := FromDiscount(d)
		if err != nil {
			return DiscountListResponse{}, err
		}
		out = append(out, r)
	}
	return DiscountListResponse{Discounts: out, Count: len(out)}, nil
}
