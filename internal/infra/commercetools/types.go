package commercetools

import (
	"strconv"
	"time"

	"cart-discount-preview/internal/domain/cart"
	"cart-discount-preview/internal/domain/discount"
	"cart-discount-preview/internal/usecase"
)

const unknownCategoryName = "Unknown Category"

type LocalizedString map[string]string

// Pick returns the first non-empty value in locale preference order.
func (l LocalizedString) Pick(locales []string) (string, bool) {
	for _, loc := range locales {
		if v := l[loc]; v != "" {
			return v, true
		}
	}
	return "", false
}

type money struct {
	CentAmount   int64  `json:"centAmount"`
	CurrencyCode string `json:"currencyCode"`
}

type reference struct {
	ID  string       `json:"id"`
	Obj *categoryDTO `json:"obj,omitempty"`
}

type variantDTO struct {
	SKU string `json:"sku"`
}

type lineItemDTO struct {
	ProductID  string          `json:"productId"`
	Name       LocalizedString `json:"name"`
	Variant    variantDTO      `json:"variant"`
	Quantity   int64           `json:"quantity"`
	TotalPrice money           `json:"totalPrice"`
}

type cartDTO struct {
	ID         string        `json:"id"`
	TotalPrice money         `json:"totalPrice"`
	LineItems  []lineItemDTO `json:"lineItems"`
}

func (c cartDTO) toSnapshot(locales []string) cart.Snapshot {
	items := make([]cart.LineItem, 0, len(c.LineItems))
	for _, li := range c.LineItems {
		name, _ := li.Name.Pick(locales)
		items = append(items, cart.LineItem{
			ProductID:            li.ProductID,
			SKU:                  li.Variant.SKU,
			Quantity:             li.Quantity,
			DisplayName:          name,
			TotalPriceMinorUnits: li.TotalPrice.CentAmount,
		})
	}
	return cart.Snapshot{
		ID:                   c.ID,
		TotalPriceMinorUnits: c.TotalPrice.CentAmount,
		Currency:             c.TotalPrice.CurrencyCode,
		LineItems:            items,
	}
}

type categoryDTO struct {
	ID   string          `json:"id"`
	Key  string          `json:"key"`
	Name LocalizedString `json:"name"`
}

func (c categoryDTO) toRef(locales []string) usecase.CategoryRef {
	name, ok := c.Name.Pick(locales)
	if !ok {
		name = unknownCategoryName
	}
	return usecase.CategoryRef{ID: c.ID, Name: name, Key: c.Key}
}

type productProjectionDTO struct {
	ID         string      `json:"id"`
	Categories []reference `json:"categories"`
}

type pagedQuery[T any] struct {
	Limit   int `json:"limit"`
	Offset  int `json:"offset"`
	Count   int `json:"count"`
	Total   int `json:"total"`
	Results []T `json:"results"`
}

type cartDiscountDTO struct {
	ID                   string          `json:"id"`
	Version              int64           `json:"version"`
	Name                 LocalizedString `json:"name"`
	Description          LocalizedString `json:"description"`
	CartPredicate        string          `json:"cartPredicate"`
	IsActive             bool            `json:"isActive"`
	StackingMode         string          `json:"stackingMode"`
	SortOrder            string          `json:"sortOrder"`
	RequiresDiscountCode bool            `json:"requiresDiscountCode"`
	ValidFrom            *time.Time      `json:"validFrom,omitempty"`
	ValidUntil           *time.Time      `json:"validUntil,omitempty"`
}

// toDescriptor reports false when the discount has no name in a preferred locale.
func (d cartDiscountDTO) toDescriptor(locales []string) (discount.Descriptor, bool) {
	name, ok := d.Name.Pick(locales)
	description, _ := d.Description.Pick(locales)
	// sortOrder is a decimal string in (0, 1); a malformed one sorts last
	sortOrder, err := strconv.ParseFloat(d.SortOrder, 64)
	if err != nil {
		sortOrder = 0
	}
	return discount.Descriptor{
		ID:                   d.ID,
		Version:              d.Version,
		Name:                 name,
		Description:          description,
		CartPredicate:        d.CartPredicate,
		IsActive:             d.IsActive,
		StackingMode:         discount.ParseStackingMode(d.StackingMode),
		SortOrder:            sortOrder,
		RequiresDiscountCode: d.RequiresDiscountCode,
		ValidFrom:            d.ValidFrom,
		ValidUntil:           d.ValidUntil,
	}, ok
}
