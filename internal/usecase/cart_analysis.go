package usecase

import (
	"context"
	"log/slog"
	"time"

	"cart-discount-preview/internal/domain/cart"
	"cart-discount-preview/internal/domain/discount"
	"cart-discount-preview/internal/domain/qualification"
	"cart-discount-preview/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

const inactiveReason = "Discount is not active"

// DiscountAnalysis is a discount merged with its qualification verdict.
// Inactive discounts carry only Reason.
type DiscountAnalysis struct {
	Discount discount.Descriptor `json:"discount"`
	Reason   string              `json:"reason,omitempty"`
	qualification.Result
}

type CartAnalysis struct {
	Categories       cart.Categories    `json:"categories"`
	TotalProducts    int64              `json:"totalProducts"`
	DiscountAnalysis []DiscountAnalysis `json:"discountAnalysis"`
}

//go:generate mockgen -destination=../../tests/mock/usecase/cart_analyzer.go -package=usecasemock cart-discount-preview/internal/usecase CartAnalyzer
type CartAnalyzer interface {
	AnalyzeCart(ctx context.Context, snapshot cart.Snapshot) (*CartAnalysis, error)
	AnalyzeCartByID(ctx context.Context, cartID string) (*CartAnalysis, error)
	AutomaticDiscounts(ctx context.Context) ([]discount.Descriptor, error)
	PriorityView(ctx context.Context) ([]discount.Descriptor, error)
	InvalidateDiscounts()
}

type cartAnalysisService struct {
	aggregator *CategoryAggregator
	catalog    CatalogReader
	discounts  AutomaticDiscountSource
	reader     DiscountReader
	carts      CartReader
	analyzer   *qualification.Analyzer
	observer   AnalysisObserver
	logger     *slog.Logger
}

func NewCartAnalysisService(
	aggregator *CategoryAggregator,
	catalog CatalogReader,
	discounts AutomaticDiscountSource,
	reader DiscountReader,
	carts CartReader,
	analyzer *qualification.Analyzer,
	observer AnalysisObserver,
	logger *slog.Logger,
) CartAnalyzer {
	if observer == nil {
		observer = nopObserver{}
	}
	return &cartAnalysisService{
		aggregator: aggregator,
		catalog:    catalog,
		discounts:  discounts,
		reader:     reader,
		carts:      carts,
		analyzer:   analyzer,
		observer:   observer,
		logger:     logger,
	}
}

type nopObserver struct{}

func (nopObserver) ObserveCartAnalysis(float64, error) {}

func (s *cartAnalysisService) AnalyzeCart(ctx context.Context, snapshot cart.Snapshot) (result *CartAnalysis, err error) {
	started := time.Now()
	defer func() {
		s.observer.ObserveCartAnalysis(time.Since(started).Seconds(), err)
	}()

	if err = snapshot.Validate(); err != nil {
		return nil, err
	}

	var (
		breakdown CategoryBreakdown
		discounts []discount.Descriptor
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var aggErr error
		breakdown, aggErr = s.aggregator.Aggregate(gctx, snapshot)
		return aggErr
	})
	g.Go(func() error {
		var fetchErr error
		discounts, fetchErr = s.discounts.Get(gctx)
		return errs.Wrap(fetchErr, "load automatic discounts")
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	categories, err := s.withReferencedCategories(ctx, breakdown.Categories, discounts)
	if err != nil {
		return nil, err
	}

	analyses := make([]DiscountAnalysis, 0, len(discounts))
	for _, d := range discounts {
		if !d.IsActive {
			analyses = append(analyses, DiscountAnalysis{
				Discount: d,
				Reason:   inactiveReason,
				Result:   qualification.Result{IsApplicable: false},
			})
			continue
		}
		analyses = append(analyses, DiscountAnalysis{
			Discount: d,
			Result:   s.analyzer.Analyze(d.CartPredicate, categories, snapshot),
		})
	}

	s.logger.Info("cart analyzed",
		slog.String("cart_id", snapshot.ID),
		slog.Int("discounts", len(analyses)),
		slog.Int("categories", len(categories)),
	)

	return &CartAnalysis{
		Categories:       categories,
		TotalProducts:    breakdown.TotalProducts,
		DiscountAnalysis: analyses,
	}, nil
}

func (s *cartAnalysisService) AnalyzeCartByID(ctx context.Context, cartID string) (*CartAnalysis, error) {
	snapshot, err := s.carts.GetCart(ctx, cartID)
	if err != nil {
		return nil, errs.Wrapf(err, "load cart %s", cartID)
	}
	return s.AnalyzeCart(ctx, snapshot)
}

func (s *cartAnalysisService) AutomaticDiscounts(ctx context.Context) ([]discount.Descriptor, error) {
	return s.discounts.Get(ctx)
}

// PriorityView lists every cart discount, code-gated or not, highest sortOrder first.
func (s *cartAnalysisService) PriorityView(ctx context.Context) ([]discount.Descriptor, error) {
	ds, err := s.reader.ListDiscountsByPriority(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "load discounts by priority")
	}
	return discount.SortByPriority(ds), nil
}

func (s *cartAnalysisService) InvalidateDiscounts() {
	s.discounts.Invalidate()
	s.logger.Info("automatic discount cache invalidated")
}

// withReferencedCategories appends categories named by discount predicates but
// absent from the cart, with zero quantity and price, so messages can name them.
func (s *cartAnalysisService) withReferencedCategories(ctx context.Context, categories cart.Categories, discounts []discount.Descriptor) (cart.Categories, error) {
	var missing []string
	seen := make(map[string]struct{})
	for _, d := range discounts {
		for _, id := range qualification.ReferencedCategoryIDs(d.CartPredicate) {
			if _, ok := seen[id]; ok || categories.Has(id) {
				continue
			}
			seen[id] = struct{}{}
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return categories, nil
	}

	resolved := make([]*CategoryRef, len(missing))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range missing {
		g.Go(func() error {
			ref, err := s.catalog.ResolveCategoryByID(gctx, id)
			if err != nil {
				return errs.Wrapf(err, "resolve category %s", id)
			}
			resolved[i] = ref
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(cart.Categories, len(categories), len(categories)+len(missing))
	copy(out, categories)
	for i, ref := range resolved {
		if ref == nil {
			s.logger.Warn("referenced category not found", slog.String("category_id", missing[i]))
			continue
		}
		out = append(out, cart.CategorySummary{ID: ref.ID, Name: ref.Name, Key: ref.Key})
	}
	return out, nil
}
