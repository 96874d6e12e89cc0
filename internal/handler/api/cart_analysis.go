package api

import (
	"net/http"

	reqdto "cart-discount-preview/internal/handler/dto/request"
	resdto "cart-discount-preview/internal/handler/dto/response"
	"cart-discount-preview/internal/handler/httperr"
	"cart-discount-preview/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CartAnalysisHandler struct {
	analyzer usecase.CartAnalyzer
}

func NewCartAnalysisHandler(analyzer usecase.CartAnalyzer) *CartAnalysisHandler {
	return &CartAnalysisHandler{analyzer: analyzer}
}

// @Summary Analyze cart
// @Description Evaluate every automatic cart discount against a posted cart snapshot
// @Tags cart-analysis
// @Accept json
// @Produce json
// @Param request body reqdto.CartSnapshotRequest true "Cart snapshot"
// @Success 200 {object} resdto.CartAnalysisResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/cart-analysis [post]
func (h *CartAnalysisHandler) AnalyzeCart(c *gin.Context) {
	var req reqdto.CartSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	analysis, err := h.analyzer.AnalyzeCart(c.Request.Context(), req.ToSnapshot())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, analysis)
}

// @Summary Analyze stored cart
// @Description Load a cart from the commerce platform and evaluate every automatic cart discount against it
// @Tags cart-analysis
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} resdto.CartAnalysisResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/carts/{id}/analysis [get]
func (h *CartAnalysisHandler) AnalyzeCartByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cart id", nil)
		return
	}

	analysis, err := h.analyzer.AnalyzeCartByID(c.Request.Context(), id.String())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, analysis)
}

func (h *CartAnalysisHandler) respond(c *gin.Context, analysis *usecase.CartAnalysis) {
	res, err := resdto.FromCartAnalysis(analysis)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
