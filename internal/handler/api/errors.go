package api

import (
	"net/http"

	"cart-discount-preview/internal/handler/httperr"
	"cart-discount-preview/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError maps analysis failures onto HTTP statuses.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrInvalidCartData):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cart data", nil)
	case errs.Is(err, errs.ErrCartNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart not found", nil)
	case errs.Is(err, errs.ErrCollaboratorFailure):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Commerce platform unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
