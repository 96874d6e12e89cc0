package components

import (
	"cart-discount-preview/internal/domain/qualification"
	"cart-discount-preview/internal/infra/metrics"
	"cart-discount-preview/internal/pkg/clock"
	"cart-discount-preview/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseAnalysisModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	qualification.NewAnalyzer,
	func(m *metrics.Metrics) usecase.AnalysisObserver {
		return m
	},
)

var usecaseAnalysisModule = fx.Module("usecase/analysis",
	fx.Provide(
		usecase.NewCategoryAggregator,
		usecase.NewCartAnalysisService,
	),
)
