package usecase

import (
	"context"

	"cart-discount-preview/internal/domain/cart"
	"cart-discount-preview/internal/domain/discount"
)

// CategoryRef is a category as resolved by the catalog.
type CategoryRef struct {
	ID   string
	Name string
	Key  string
}

type CatalogReader interface {
	// ResolveCategoriesForProducts returns the categories of each product, keyed by product id.
	ResolveCategoriesForProducts(ctx context.Context, productIDs []string) (map[string][]CategoryRef, error)
	// ResolveCategoryByID returns nil without error when the category does not exist.
	ResolveCategoryByID(ctx context.Context, categoryID string) (*CategoryRef, error)
}

type DiscountReader interface {
	// ListAutomaticDiscounts returns discounts that do not require a discount code.
	ListAutomaticDiscounts(ctx context.Context) ([]discount.Descriptor, error)
	ListDiscountsByPriority(ctx context.Context) ([]discount.Descriptor, error)
}

type CartReader interface {
	GetCart(ctx context.Context, cartID string) (cart.Snapshot, error)
}

// AutomaticDiscountSource serves the shared, time-bounded automatic discount list.
type AutomaticDiscountSource interface {
	Get(ctx context.Context) ([]discount.Descriptor, error)
	Invalidate()
}

type AnalysisObserver interface {
	ObserveCartAnalysis(seconds float64, err error)
}
