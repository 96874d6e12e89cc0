package components

import (
	"log/slog"

	"cart-discount-preview/internal/infra/cache"
	"cart-discount-preview/internal/infra/commercetools"
	"cart-discount-preview/internal/infra/metrics"
	"cart-discount-preview/internal/pkg/clock"
	"cart-discount-preview/internal/pkg/config"
	"cart-discount-preview/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			NewPlatformClient,
			fx.As(new(usecase.CatalogReader)),
			fx.As(new(usecase.DiscountReader)),
			fx.As(new(usecase.CartReader)),
		),
		fx.Annotate(
			NewDiscountCache,
			fx.As(new(usecase.AutomaticDiscountSource)),
		),
	),
)

func NewPlatformClient(cfg config.Config, m *metrics.Metrics, logger *slog.Logger) *commercetools.Client {
	return commercetools.NewClient(cfg.Platform, m, logger)
}

func NewDiscountCache(reader usecase.DiscountReader, clk clock.Clock, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) *cache.DiscountCache {
	return cache.NewDiscountCache(reader, clk, cfg.Cache.DiscountTTL, m, logger)
}
