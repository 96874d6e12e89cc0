//go:build unit || e2e

package builder

import (
	"cart-discount-preview/internal/domain/discount"

	"github.com/google/uuid"
)

type DiscountBuilder struct {
	d discount.Descriptor
}

func NewDiscountBuilder() *DiscountBuilder {
	return &DiscountBuilder{d: discount.Descriptor{
		ID:            uuid.New().String(),
		Version:       1,
		Name:          "Spend 100 save 10",
		Description:   "Ten percent off orders over 100",
		CartPredicate: `totalPrice >= "100 AUD"`,
		IsActive:      true,
		StackingMode:  discount.StackingModeStacking,
		SortOrder:     0.5,
	}}
}

func (b *DiscountBuilder) WithID(id string) *DiscountBuilder {
	b.d.ID = id
	return b
}

func (b *DiscountBuilder) WithName(name string) *DiscountBuilder {
	b.d.Name = name
	return b
}

func (b *DiscountBuilder) WithPredicate(p string) *DiscountBuilder {
	b.d.CartPredicate = p
	return b
}

func (b *DiscountBuilder) WithSortOrder(o float64) *DiscountBuilder {
	b.d.SortOrder = o
	return b
}

func (b *DiscountBuilder) RequiringCode() *DiscountBuilder {
	b.d.RequiresDiscountCode = true
	return b
}

func (b *DiscountBuilder) AsInactive() *DiscountBuilder {
	b.d.IsActive = false
	return b
}

func (b *DiscountBuilder) Build() discount.Descriptor {
	return b.d
}
