package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"cart-discount-preview/internal/handler/httperr"
	"cart-discount-preview/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const ctxAdminSubjectKey = "admin_subject"

type AdminTokenValidator interface {
	ValidateAdminToken(token string) (*jwt.Claims, error)
}

type AdminAuthMiddleware struct {
	validator AdminTokenValidator
}

func NewAdminAuthMiddleware(validator AdminTokenValidator) *AdminAuthMiddleware {
	return &AdminAuthMiddleware{validator: validator}
}

// RequireAdmin rejects requests without a valid admin bearer token.
func (m *AdminAuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing bearer token"), "Access token required", nil)
			return
		}

		claims, err := m.validator.ValidateAdminToken(token)
		if err != nil {
			slog.Warn("Admin token rejected", "error", err.Error())
			if errors.Is(err, jwt.ErrForbidden) {
				httperr.AbortWithError(c, http.StatusForbidden, err, "Insufficient permissions", nil)
				return
			}
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxAdminSubjectKey, claims.Subject)
		c.Next()
	}
}

func GetAdminSubject(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxAdminSubjectKey)
	if !exists {
		return "", false
	}
	subject, ok := v.(string)
	return subject, ok
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}
