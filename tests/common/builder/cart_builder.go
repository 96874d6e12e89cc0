//go:build unit || e2e

package builder

import (
	"cart-discount-preview/internal/domain/cart"
	reqdto "cart-discount-preview/internal/handler/dto/request"

	"github.com/google/uuid"
)

type CartBuilder struct {
	ID        string
	Currency  string
	Total     *int64
	LineItems []cart.LineItem
}

func NewCartBuilder() *CartBuilder {
	return &CartBuilder{
		ID:        uuid.New().String(),
		Currency:  "AUD",
		LineItems: []cart.LineItem{},
	}
}

func (b *CartBuilder) WithID(id string) *CartBuilder {
	b.ID = id
	return b
}

func (b *CartBuilder) WithCurrency(currency string) *CartBuilder {
	b.Currency = currency
	return b
}

// WithTotal overrides the total otherwise derived from the line items.
func (b *CartBuilder) WithTotal(minor int64) *CartBuilder {
	b.Total = &minor
	return b
}

func (b *CartBuilder) WithLineItem(li cart.LineItem) *CartBuilder {
	b.LineItems = append(b.LineItems, li)
	return b
}

func (b *CartBuilder) WithProduct(productID, sku string, quantity, totalMinor int64) *CartBuilder {
	return b.WithLineItem(cart.LineItem{
		ProductID:            productID,
		SKU:                  sku,
		Quantity:             quantity,
		DisplayName:          "Product " + productID,
		TotalPriceMinorUnits: totalMinor,
	})
}

func (b *CartBuilder) BuildSnapshot() cart.Snapshot {
	items := make([]cart.LineItem, len(b.LineItems))
	copy(items, b.LineItems)

	var total int64
	if b.Total != nil {
		total = *b.Total
	} else {
		for _, li := range items {
			total += li.TotalPriceMinorUnits
		}
	}

	return cart.Snapshot{
		ID:                   b.ID,
		TotalPriceMinorUnits: total,
		Currency:             b.Currency,
		LineItems:            items,
	}
}

func (b *CartBuilder) BuildRequestDTO() reqdto.CartSnapshotRequest {
	s := b.BuildSnapshot()
	items := make([]reqdto.LineItemRequest, 0, len(s.LineItems))
	for _, li := range s.LineItems {
		items = append(items, reqdto.LineItemRequest{
			ProductID:            li.ProductID,
			SKU:                  li.SKU,
			Quantity:             li.Quantity,
			DisplayName:          li.DisplayName,
			TotalPriceMinorUnits: li.TotalPriceMinorUnits,
		})
	}
	return reqdto.CartSnapshotRequest{
		ID:                   s.ID,
		TotalPriceMinorUnits: s.TotalPriceMinorUnits,
		Currency:             s.Currency,
		LineItems:            items,
	}
}
