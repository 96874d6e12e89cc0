//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"cart-discount-preview/internal/domain/cart"
	"cart-discount-preview/internal/pkg/errs"
	"cart-discount-preview/internal/usecase"
	"cart-discount-preview/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCategoryAggregator_MultiCategoryContribution(t *testing.T) {
	catalog := new(MockCatalogReader)
	agg := usecase.NewCategoryAggregator(catalog, discardLogger())

	snapshot := builder.NewCartBuilder().
		WithProduct("boots", "B-1", 2, 10000).
		WithProduct("socks", "S-1", 3, 1500).
		WithProduct("boots", "B-1", 1, 5000).
		BuildSnapshot()

	catalog.On("ResolveCategoriesForProducts", mock.Anything, []string{"boots", "socks"}).
		Return(map[string][]usecase.CategoryRef{
			"boots": {{ID: "footwear", Name: "Footwear"}, {ID: "sale", Name: "Sale"}},
			"socks": {{ID: "sale", Name: "Sale"}, {ID: "apparel", Name: "Apparel"}},
		}, nil).Once()

	got, err := agg.Aggregate(context.Background(), snapshot)
	require.NoError(t, err)

	assert.Equal(t, int64(6), got.TotalProducts)
	assert.Equal(t, cart.Categories{
		{ID: "footwear", Name: "Footwear", Quantity: 3, TotalPriceMinorUnits: 15000},
		{ID: "sale", Name: "Sale", Quantity: 6, TotalPriceMinorUnits: 16500},
		{ID: "apparel", Name: "Apparel", Quantity: 3, TotalPriceMinorUnits: 1500},
	}, got.Categories)
	catalog.AssertExpectations(t)
}

func TestCategoryAggregator_EmptyCartMakesNoCall(t *testing.T) {
	catalog := new(MockCatalogReader)
	agg := usecase.NewCategoryAggregator(catalog, discardLogger())

	got, err := agg.Aggregate(context.Background(), builder.NewCartBuilder().BuildSnapshot())
	require.NoError(t, err)

	assert.Empty(t, got.Categories)
	assert.NotNil(t, got.Categories)
	assert.Zero(t, got.TotalProducts)
	catalog.AssertNotCalled(t, "ResolveCategoriesForProducts", mock.Anything, mock.Anything)
}

func TestCategoryAggregator_InvalidCart(t *testing.T) {
	catalog := new(MockCatalogReader)
	agg := usecase.NewCategoryAggregator(catalog, discardLogger())

	_, err := agg.Aggregate(context.Background(), cart.Snapshot{ID: "broken"})
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrInvalidCartData))
	catalog.AssertNotCalled(t, "ResolveCategoriesForProducts", mock.Anything, mock.Anything)
}

func TestCategoryAggregator_ProductWithoutCategories(t *testing.T) {
	catalog := new(MockCatalogReader)
	agg := usecase.NewCategoryAggregator(catalog, discardLogger())

	snapshot := builder.NewCartBuilder().WithProduct("gift-card", "G-1", 1, 5000).BuildSnapshot()
	catalog.On("ResolveCategoriesForProducts", mock.Anything, []string{"gift-card"}).
		Return(map[string][]usecase.CategoryRef{}, nil).Once()

	got, err := agg.Aggregate(context.Background(), snapshot)
	require.NoError(t, err)
	assert.Equal(t, cart.Categories{}, got.Categories)
	assert.Equal(t, int64(1), got.TotalProducts)
}

func TestCategoryAggregator_CatalogErrorPropagates(t *testing.T) {
	catalog := new(MockCatalogReader)
	agg := usecase.NewCategoryAggregator(catalog, discardLogger())

	boom := errs.Mark(errors.New("503"), errs.ErrCollaboratorFailure)
	catalog.On("ResolveCategoriesForProducts", mock.Anything, mock.Anything).Return(nil, boom).Once()

	_, err := agg.Aggregate(context.Background(),
		builder.NewCartBuilder().WithProduct("p", "s", 1, 100).BuildSnapshot())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCollaboratorFailure))
}
