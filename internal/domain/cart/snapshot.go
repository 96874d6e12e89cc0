package cart

import (
	"cart-discount-preview/internal/pkg/errs"
)

// LineItem is one cart line as seen at analysis time.
type LineItem struct {
	ProductID            string `json:"productId"`
	SKU                  string `json:"sku"`
	Quantity             int64  `json:"quantity"`
	DisplayName          string `json:"displayName"`
	TotalPriceMinorUnits int64  `json:"totalPriceMinorUnits"`
}

// Snapshot is an immutable view of a cart. Money is in minor units.
type Snapshot struct {
	ID                   string     `json:"id"`
	TotalPriceMinorUnits int64      `json:"totalPriceMinorUnits"`
	Currency             string     `json:"currency"`
	LineItems            []LineItem `json:"lineItems"`
}

// Validate rejects snapshots whose line items are missing or malformed.
// An empty, non-nil line item list is valid.
func (s Snapshot) Validate() error {
	if s.LineItems == nil {
		return errs.Mark(errs.New("line items missing"), errs.ErrInvalidCartData)
	}
	if s.TotalPriceMinorUnits < 0 {
		return errs.Mark(errs.Newf("negative cart total %d", s.TotalPriceMinorUnits), errs.ErrInvalidCartData)
	}
	for i, li := range s.LineItems {
		switch {
		case li.ProductID == "":
			return errs.Mark(errs.Newf("line item %d: product id missing", i), errs.ErrInvalidCartData)
		case li.Quantity < 1:
			return errs.Mark(errs.Newf("line item %d: quantity %d below 1", i, li.Quantity), errs.ErrInvalidCartData)
		case li.TotalPriceMinorUnits < 0:
			return errs.Mark(errs.Newf("line item %d: negative total", i), errs.ErrInvalidCartData)
		}
	}
	return nil
}

// TotalQuantity sums the quantities of all line items.
func (s Snapshot) TotalQuantity() int64 {
	var n int64
	for _, li := range s.LineItems {
		n += li.Quantity
	}
	return n
}

// LineItemsWithSKU returns line items whose variant SKU equals sku, in cart order.
func (s Snapshot) LineItemsWithSKU(sku string) []LineItem {
	var out []LineItem
	for _, li := range s.LineItems {
		if li.SKU == sku {
			out = append(out, li)
		}
	}
	return out
}
