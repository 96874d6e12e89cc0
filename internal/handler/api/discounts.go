package api

import (
	"net/http"

	"cart-discount-preview/internal/domain/discount"
	resdto "cart-discount-preview/internal/handler/dto/response"
	"cart-discount-preview/internal/handler/httperr"
	"cart-discount-preview/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	analyzer usecase.CartAnalyzer
}

func NewDiscountHandler(analyzer usecase.CartAnalyzer) *DiscountHandler {
	return &DiscountHandler{analyzer: analyzer}
}

// @Summary List automatic discounts
// @Description List cart discounts that apply without a discount code
// @Tags discounts
// @Produce json
// @Success 200 {object} resdto.DiscountListResponse
// @Failure 502 {object} httperr.Response
// @Router /api/discounts/automatic [get]
func (h *DiscountHandler) ListAutomatic(c *gin.Context) {
	ds, err := h.analyzer.AutomaticDiscounts(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, ds)
}

// @Summary List discounts by priority
// @Description List every cart discount ordered by sortOrder, highest first
// @Tags discounts
// @Produce json
// @Success 200 {object} resdto.DiscountListResponse
// @Failure 502 {object} httperr.Response
// @Router /api/discounts/priority [get]
func (h *DiscountHandler) ListByPriority(c *gin.Context) {
	ds, err := h.analyzer.PriorityView(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, ds)
}

// @Summary Invalidate discount cache
// @Description Drop the cached automatic discount list so the next analysis refetches it
// @Tags discounts
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/discounts/cache [delete]
func (h *DiscountHandler) InvalidateCache(c *gin.Context) {
	h.analyzer.InvalidateDiscounts()
	c.Status(http.StatusNoContent)
}

func (h *DiscountHandler) respond(c *gin.Context, ds []discount.Descriptor) {
	res, err := resdto.FromDiscounts(ds)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
