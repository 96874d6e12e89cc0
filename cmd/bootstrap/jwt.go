package bootstrap

import (
	"cart-discount-preview/internal/handler/middleware"
	"cart-discount-preview/internal/pkg/clock"
	"cart-discount-preview/internal/pkg/config"
	"cart-discount-preview/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		fx.Annotate(
			NewJWTService,
			fx.As(new(middleware.AdminTokenValidator)),
		),
	),
)

func NewJWTService(cfg config.Config, clk clock.Clock) *jwt.Service {
	if cfg.Admin.TokenDuration <= 0 {
		panic("invalid ADMIN_TOKEN_DURATION: must be positive")
	}
	return jwt.NewService(cfg.Admin.JWTSecret, cfg.Admin.TokenDuration, clk)
}
