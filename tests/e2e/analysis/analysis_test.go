//go:build e2e

package analysis_test

import (
	"net/http"
	"strings"
	"testing"

	"cart-discount-preview/internal/domain/qualification"
	"cart-discount-preview/internal/handler/dto/response"
	"cart-discount-preview/tests/common/authtest"
	"cart-discount-preview/tests/common/builder"
	"cart-discount-preview/tests/common/httptest"
	"cart-discount-preview/tests/common/platformtest"
	"cart-discount-preview/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	cartAnalysisURL      = "/api/cart-analysis"
	storedCartURL        = "/api/carts/%s/analysis"
	automaticDiscountURL = "/api/discounts/automatic"
	priorityDiscountURL  = "/api/discounts/priority"
	discountCacheURL     = "/api/discounts/cache"
)

type AnalysisSuite struct {
	e2e.SharedSuite
}

func (s *AnalysisSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAnalysisSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AnalysisSuite))
}

// seedCatalog installs two categories, three products and a mixed discount set.
func (s *AnalysisSuite) seedCatalog() {
	p := s.Platform
	p.AddCategory(platformtest.Category{ID: "cat-shoes", Key: "shoes", Name: "Shoes"})
	p.AddCategory(platformtest.Category{ID: "cat-outdoor", Key: "outdoor", Name: "Outdoor"})
	p.AddProduct("prod-boots", "cat-shoes", "cat-outdoor")
	p.AddProduct("prod-laces", "cat-shoes")
	p.AddProduct("prod-tent")

	p.AddDiscount(platformtest.Discount{
		ID: "spend-100", Name: "Spend 100", IsActive: true, SortOrder: "0.7",
		Predicate: `totalPrice >= "100.00 AUD"`,
	})
	p.AddDiscount(platformtest.Discount{
		ID: "three-shoes", Name: "Three pairs", IsActive: true, SortOrder: "0.9",
		Predicate: `lineItemCount(categories.id contains "cat-shoes") >= 3`,
	})
	p.AddDiscount(platformtest.Discount{
		ID: "paused", Name: "Paused deal", IsActive: false, SortOrder: "0.5",
		Predicate: `totalPrice >= "1.00 AUD"`,
	})
	p.AddDiscount(platformtest.Discount{
		ID: "coded", Name: "Code only", IsActive: true, SortOrder: "0.95", RequiresDiscountCode: true,
		Predicate: `totalPrice >= "1.00 AUD"`,
	})
	p.AddDiscount(platformtest.Discount{
		ID: "german", Name: "Nur Deutsch", Locale: "de", IsActive: true, SortOrder: "0.1",
		Predicate: `totalPrice >= "1.00 AUD"`,
	})
}

// =============================================================================
// TestAnalyzePostedCart - POST /api/cart-analysis
// =============================================================================

func (s *AnalysisSuite) TestAnalyzePostedCart() {
	s.Run("Normal case: categories and verdicts are computed from the platform", func() {
		t := s.T()
		s.seedCatalog()

		reqBody := builder.NewCartBuilder().
			WithProduct("prod-boots", "BOOT-42", 1, 9000).
			WithProduct("prod-laces", "LACE-1", 1, 1500).
			BuildRequestDTO()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartAnalysisURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.CartAnalysisResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))

		expectedCategories := []response.CategoryResponse{
			{ID: "cat-shoes", Name: "Shoes", Key: "shoes", Quantity: 2, TotalPrice: 10500},
			{ID: "cat-outdoor", Name: "Outdoor", Key: "outdoor", Quantity: 1, TotalPrice: 9000},
		}
		if diff := cmp.Diff(expectedCategories, res.Categories); diff != "" {
			t.Errorf("categories mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, int64(2), res.TotalProducts)

		require.Len(t, res.DiscountAnalysis, 3, "code-gated and non-English discounts are excluded")
		byID := map[string]response.DiscountAnalysisResponse{}
		for _, da := range res.DiscountAnalysis {
			byID[da.Discount.ID] = da
		}

		require.Equal(t, qualification.StatusQualified, byID["spend-100"].Status)
		require.True(t, byID["spend-100"].IsApplicable)

		expectedCount := &qualification.CategoryCountDetail{
			CategoryID: "cat-shoes", CategoryName: "Shoes", CurrentCount: 2, RequiredCount: 3, RemainingCount: 1,
		}
		if diff := cmp.Diff(expectedCount, byID["three-shoes"].CategoryCount); diff != "" {
			t.Errorf("category count mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, "Add 1 more item from Shoes to qualify", byID["three-shoes"].Message)

		require.Equal(t, "Discount is not active", byID["paused"].Reason)
		require.Empty(t, byID["paused"].Type)
	})

	s.Run("Normal case: categories referenced by discounts are resolved even when absent", func() {
		t := s.T()
		s.seedCatalog()
		s.Platform.AddDiscount(platformtest.Discount{
			ID: "outdoor-50", Name: "Outdoor 50", IsActive: true, SortOrder: "0.3",
			Predicate: `lineItemGrossTotal(categories.id contains any ("cat-outdoor")) >= "50.00 AUD"`,
		})

		reqBody := builder.NewCartBuilder().WithProduct("prod-laces", "LACE-1", 2, 3000).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartAnalysisURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.CartAnalysisResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))

		var outdoor *response.DiscountAnalysisResponse
		for i := range res.DiscountAnalysis {
			if res.DiscountAnalysis[i].Discount.ID == "outdoor-50" {
				outdoor = &res.DiscountAnalysis[i]
			}
		}
		require.NotNil(t, outdoor)
		require.Equal(t, qualification.StatusPending, outdoor.Status)
		require.Equal(t, "Spend AUD 50.00 more on Outdoor products to qualify", outdoor.Message)
		require.Equal(t, 1, s.Platform.Hits("/categories"))
	})

	s.Run("Normal case: empty cart makes no catalog lookup", func() {
		t := s.T()
		s.seedCatalog()

		reqBody := builder.NewCartBuilder().BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartAnalysisURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Equal(t, 0, s.Platform.Hits("/product-projections"))
	})

	s.Run("Error case: missing line items is rejected", func() {
		t := s.T()
		body := map[string]any{"id": "c", "currency": "AUD", "totalPriceMinorUnits": 0}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartAnalysisURL, body, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})

	s.Run("Error case: platform outage surfaces as 502", func() {
		t := s.T()
		s.seedCatalog()
		s.Platform.SetFailing(true)

		reqBody := builder.NewCartBuilder().WithProduct("prod-boots", "BOOT-42", 1, 9000).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartAnalysisURL, reqBody, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadGateway, "Commerce platform unavailable")
	})
}

// =============================================================================
// TestAnalyzeStoredCart - GET /api/carts/:id/analysis
// =============================================================================

func (s *AnalysisSuite) TestAnalyzeStoredCart() {
	s.Run("Normal case: stored cart is loaded and analyzed", func() {
		t := s.T()
		s.seedCatalog()
		cartID := uuid.New().String()
		s.Platform.AddCart(platformtest.Cart{
			ID:       cartID,
			Currency: "AUD",
			LineItems: []platformtest.LineItem{
				{ProductID: "prod-boots", SKU: "BOOT-42", Name: "Trail boots", Quantity: 3, CentAmount: 27000},
			},
		})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, strings.Replace(storedCartURL, "%s", cartID, 1), nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.CartAnalysisResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, int64(3), res.TotalProducts)
		for _, da := range res.DiscountAnalysis {
			if da.Discount.ID == "three-shoes" {
				require.Equal(t, qualification.StatusQualified, da.Status)
			}
		}
	})

	s.Run("Error case: unknown cart is 404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, strings.Replace(storedCartURL, "%s", uuid.New().String(), 1), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Cart not found")
	})

	s.Run("Error case: malformed id is 400", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, strings.Replace(storedCartURL, "%s", "abc", 1), nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cart id")
	})
}

// =============================================================================
// TestDiscountListings - GET /api/discounts/*
// =============================================================================

func (s *AnalysisSuite) TestDiscountListings() {
	s.Run("Normal case: automatic list excludes coded and unnamed discounts", func() {
		t := s.T()
		s.seedCatalog()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, automaticDiscountURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var res response.DiscountListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))

		ids := make([]string, 0, len(res.Discounts))
		for _, d := range res.Discounts {
			ids = append(ids, d.ID)
		}
		if diff := cmp.Diff([]string{"spend-100", "three-shoes", "paused"}, ids, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
			t.Errorf("automatic discounts mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: priority view lists every discount highest first", func() {
		t := s.T()
		s.seedCatalog()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, priorityDiscountURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var res response.DiscountListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, 5, res.Count)
		require.Equal(t, "coded", res.Discounts[0].ID)
		require.Equal(t, "german", res.Discounts[4].ID)
		require.Equal(t, "Unnamed Promotion", res.Discounts[4].Name)
	})
}

// =============================================================================
// TestDiscountCache - caching and admin invalidation
// =============================================================================

func (s *AnalysisSuite) TestDiscountCache() {
	jwtHelper := authtest.NewJWTHelper(s.Config.Admin)

	s.Run("Normal case: repeated analyses share one discount fetch until invalidated", func() {
		t := s.T()
		s.seedCatalog()
		reqBody := builder.NewCartBuilder().WithProduct("prod-laces", "LACE-1", 1, 1500).BuildRequestDTO()

		for i := 0; i < 3; i++ {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartAnalysisURL, reqBody, "")
			require.Equal(t, http.StatusOK, w.Code)
		}
		require.Equal(t, 1, s.Platform.Hits("/cart-discounts"))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, discountCacheURL, nil, jwtHelper.GenerateAdminToken(t))
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, cartAnalysisURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, 2, s.Platform.Hits("/cart-discounts"))
	})

	s.Run("Auth test: invalidation requires an admin token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, discountCacheURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, discountCacheURL, nil, jwtHelper.GenerateToken(t, "someone", "viewer"))
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")

		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, discountCacheURL, nil, jwtHelper.CreateExpiredToken(t, "e2e-admin", "admin"))
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestOperationalEndpoints - /health and /metrics
// =============================================================================

func (s *AnalysisSuite) TestOperationalEndpoints() {
	s.Run("Normal case: health check", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
	})

	s.Run("Normal case: metrics expose service counters", func() {
		t := s.T()
		s.seedCatalog()
		reqBody := builder.NewCartBuilder().WithProduct("prod-laces", "LACE-1", 1, 1500).BuildRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, cartAnalysisURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, "/metrics", nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		require.Contains(t, body, "cart_discount_preview_discount_cache_lookups_total")
		require.Contains(t, body, "cart_discount_preview_platform_requests_total")
		require.Contains(t, body, "cart_discount_preview_cart_analysis_duration_seconds")
	})
}
