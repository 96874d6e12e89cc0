package request

import (
	"cart-discount-preview/internal/domain/cart"
)

type LineItemRequest struct {
	ProductID            string `json:"productId" binding:"required"`
	SKU                  string `json:"sku"`
	Quantity             int64  `json:"quantity" binding:"required,min=1"`
	DisplayName          string `json:"displayName"`
	TotalPriceMinorUnits int64  `json:"totalPriceMinorUnits" binding:"min=0"`
}

// CartSnapshotRequest is a cart posted for analysis. lineItems must be
// present; an empty list is allowed.
type CartSnapshotRequest struct {
	ID                   string            `json:"id"`
	TotalPriceMinorUnits int64             `json:"totalPriceMinorUnits" binding:"min=0"`
	Currency             string            `json:"currency" binding:"required,len=3"`
	LineItems            []LineItemRequest `json:"lineItems" binding:"required,dive"`
}

func (r CartSnapshotRequest) ToSnapshot() cart.Snapshot {
	items := make([]cart.LineItem, 0, len(r.LineItems))
	for _, li := range r.LineItems {
		items = append(items, cart.LineItem{
			ProductID:            li.ProductID,
			SKU:                  li.SKU,
			Quantity:             li.Quantity,
			DisplayName:          li.DisplayName,
			TotalPriceMinorUnits: li.TotalPriceMinorUnits,
		})
	}
	return cart.Snapshot{
		ID:                   r.ID,
		TotalPriceMinorUnits: r.TotalPriceMinorUnits,
		Currency:             r.Currency,
		LineItems:            items,
	}
}
