package components

import (
	"cart-discount-preview/internal/handler"
	"cart-discount-preview/internal/handler/api"
	"cart-discount-preview/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartAnalysisHandler,
		api.NewDiscountHandler,
		middleware.NewAdminAuthMiddleware,
		handler.NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)
