//go:build unit

package usecase_test

import (
	"context"

	"cart-discount-preview/internal/domain/cart"
	"cart-discount-preview/internal/domain/discount"
	"cart-discount-preview/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) ResolveCategoriesForProducts(ctx context.Context, productIDs []string) (map[string][]usecase.CategoryRef, error) {
	args := m.Called(ctx, productIDs)
	refs, _ := args.Get(0).(map[string][]usecase.CategoryRef)
	return refs, args.Error(1)
}

func (m *MockCatalogReader) ResolveCategoryByID(ctx context.Context, categoryID string) (*usecase.CategoryRef, error) {
	args := m.Called(ctx, categoryID)
	ref, _ := args.Get(0).(*usecase.CategoryRef)
	return ref, args.Error(1)
}

type MockDiscountReader struct {
	mock.Mock
}

func (m *MockDiscountReader) ListAutomaticDiscounts(ctx context.Context) ([]discount.Descriptor, error) {
	args := m.Called(ctx)
	ds, _ := args.Get(0).([]discount.Descriptor)
	return ds, args.Error(1)
}

func (m *MockDiscountReader) ListDiscountsByPriority(ctx context.Context) ([]discount.Descriptor, error) {
	args := m.Called(ctx)
	ds, _ := args.Get(0).([]discount.Descriptor)
	return ds, args.Error(1)
}

type MockCartReader struct {
	mock.Mock
}

func (m *MockCartReader) GetCart(ctx context.Context, cartID string) (cart.Snapshot, error) {
	args := m.Called(ctx, cartID)
	s, _ := args.Get(0).(cart.Snapshot)
	return s, args.Error(1)
}

type MockDiscountSource struct {
	mock.Mock
}

func (m *MockDiscountSource) Get(ctx context.Context) ([]discount.Descriptor, error) {
	args := m.Called(ctx)
	ds, _ := args.Get(0).([]discount.Descriptor)
	return ds, args.Error(1)
}

func (m *MockDiscountSource) Invalidate() {
	m.Called()
}

type recordingObserver struct {
	calls []error
}

func (o *recordingObserver) ObserveCartAnalysis(_ float64, err error) {
	o.calls = append(o.calls, err)
}
