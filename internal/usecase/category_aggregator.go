package usecase

import (
	"context"
	"log/slog"

	"cart-discount-preview/internal/domain/cart"
	"cart-discount-preview/internal/pkg/errs"
)

type CategoryBreakdown struct {
	Categories    cart.Categories
	TotalProducts int64
}

type CategoryAggregator struct {
	catalog CatalogReader
	logger  *slog.Logger
}

func NewCategoryAggregator(catalog CatalogReader, logger *slog.Logger) *CategoryAggregator {
	return &CategoryAggregator{catalog: catalog, logger: logger}
}

type productTotals struct {
	quantity int64
	price    int64
}

// Aggregate sums quantity and price per category. A product in several
// categories contributes its full totals to each of them.
func (a *CategoryAggregator) Aggregate(ctx context.Context, snapshot cart.Snapshot) (CategoryBreakdown, error) {
	if err := snapshot.Validate(); err != nil {
		return CategoryBreakdown{}, err
	}

	// Line items sharing a product (e.g. per distribution channel) are merged first.
	var productOrder []string
	totals := make(map[string]*productTotals)
	for _, li := range snapshot.LineItems {
		t, ok := totals[li.ProductID]
		if !ok {
			t = &productTotals{}
			totals[li.ProductID] = t
			productOrder = append(productOrder, li.ProductID)
		}
		t.quantity += li.Quantity
		t.price += li.TotalPriceMinorUnits
	}

	if len(productOrder) == 0 {
		return CategoryBreakdown{Categories: cart.Categories{}, TotalProducts: 0}, nil
	}

	byProduct, err := a.catalog.ResolveCategoriesForProducts(ctx, productOrder)
	if err != nil {
		return CategoryBreakdown{}, errs.Wrap(err, "resolve product categories")
	}

	var categories cart.Categories
	index := make(map[string]int)
	for _, productID := range productOrder {
		t := totals[productID]
		for _, ref := range byProduct[productID] {
			if ref.ID == "" {
				continue
			}
			i, ok := index[ref.ID]
			if !ok {
				i = len(categories)
				index[ref.ID] = i
				categories = append(categories, cart.CategorySummary{ID: ref.ID, Name: ref.Name, Key: ref.Key})
			}
			categories[i].Quantity += t.quantity
			categories[i].TotalPriceMinorUnits += t.price
		}
	}
	if categories == nil {
		categories = cart.Categories{}
	}

	a.logger.Debug("aggregated cart categories",
		slog.String("cart_id", snapshot.ID),
		slog.Int("products", len(productOrder)),
		slog.Int("categories", len(categories)),
	)

	return CategoryBreakdown{Categories: categories, TotalProducts: snapshot.TotalQuantity()}, nil
}
