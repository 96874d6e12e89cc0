//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"cart-discount-preview/internal/pkg/clock"
	"cart-discount-preview/internal/pkg/config"
	"cart-discount-preview/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.AdminConfig
}

func NewJWTHelper(cfg config.AdminConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, subject, role string) string {
	t.Helper()
	service := jwt.NewService(h.cfg.JWTSecret, h.cfg.TokenDuration, clock.NewRealClock())
	token, err := service.GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) GenerateAdminToken(t *testing.T) string {
	t.Helper()
	return h.GenerateToken(t, "e2e-admin", jwt.RoleAdmin)
}

// CreateExpiredToken signs a token that expired an hour ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, subject, role string) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-h.cfg.TokenDuration - time.Hour))
	service := jwt.NewService(h.cfg.JWTSecret, h.cfg.TokenDuration, past)
	token, err := service.GenerateToken(subject, role)
	require.NoError(t, err)
	return token
}
