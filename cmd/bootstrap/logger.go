package bootstrap

import (
	"log/slog"

	"cart-discount-preview/internal/handler/middleware"
	"cart-discount-preview/internal/pkg/config"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewSlogLogger,
	),
)

func NewLogger(cfg config.Config) *middleware.Logger {
	return middleware.NewLogger(cfg.Log)
}

func NewSlogLogger(l *middleware.Logger) *slog.Logger {
	return l.GetSlogLogger()
}
