//go:build unit

package cart_test

import (
	"testing"

	"cart-discount-preview/internal/domain/cart"
	"cart-discount-preview/internal/pkg/errs"
	"cart-discount-preview/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*cart.Snapshot)
		wantErr bool
	}{
		{name: "empty cart is valid", mutate: func(*cart.Snapshot) {}},
		{name: "line items missing", mutate: func(s *cart.Snapshot) { s.LineItems = nil }, wantErr: true},
		{name: "negative total", mutate: func(s *cart.Snapshot) { s.TotalPriceMinorUnits = -1 }, wantErr: true},
		{
			name:    "product id missing",
			mutate:  func(s *cart.Snapshot) { s.LineItems = []cart.LineItem{{Quantity: 1}} },
			wantErr: true,
		},
		{
			name:    "zero quantity",
			mutate:  func(s *cart.Snapshot) { s.LineItems = []cart.LineItem{{ProductID: "p", Quantity: 0}} },
			wantErr: true,
		},
		{
			name:    "negative line total",
			mutate:  func(s *cart.Snapshot) { s.LineItems = []cart.LineItem{{ProductID: "p", Quantity: 1, TotalPriceMinorUnits: -5}} },
			wantErr: true,
		},
		{
			name:   "well formed line item",
			mutate: func(s *cart.Snapshot) { s.LineItems = []cart.LineItem{{ProductID: "p", Quantity: 2, TotalPriceMinorUnits: 500}} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := builder.NewCartBuilder().BuildSnapshot()
			tt.mutate(&s)

			err := s.Validate()
			if tt.wantErr {
				assert.True(t, errs.Is(err, errs.ErrInvalidCartData), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSnapshotHelpers(t *testing.T) {
	s := builder.NewCartBuilder().
		WithProduct("p1", "A", 2, 200).
		WithProduct("p2", "B", 1, 100).
		WithProduct("p1", "A", 3, 300).
		BuildSnapshot()

	assert.Equal(t, int64(6), s.TotalQuantity())
	assert.Len(t, s.LineItemsWithSKU("A"), 2)
	assert.Empty(t, s.LineItemsWithSKU("Z"))
	assert.Equal(t, int64(600), s.TotalPriceMinorUnits)
}

func TestCategories(t *testing.T) {
	cs := cart.Categories{{ID: "a", Name: "A"}, {ID: "b", Name: "B"}, {ID: "c", Name: "C"}}

	got, ok := cs.Find("b")
	assert.True(t, ok)
	assert.Equal(t, "B", got.Name)
	assert.False(t, cs.Has("z"))
	assert.Equal(t, cart.Categories{{ID: "a", Name: "A"}, {ID: "c", Name: "C"}}, cs.FindAny([]string{"c", "a", "z"}))
}
