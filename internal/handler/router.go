package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"cart-discount-preview/internal/handler/api"
	"cart-discount-preview/internal/handler/middleware"
	"cart-discount-preview/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	CartAnalysis *api.CartAnalysisHandler
	Discounts    *api.DiscountHandler
	AdminAuth    *middleware.AdminAuthMiddleware
}

func NewHandlers(cartAnalysis *api.CartAnalysisHandler, discounts *api.DiscountHandler, adminAuth *middleware.AdminAuthMiddleware) Handlers {
	return Handlers{CartAnalysis: cartAnalysis, Discounts: discounts, AdminAuth: adminAuth}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, gatherer prometheus.Gatherer, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, gatherer, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, gatherer prometheus.Gatherer, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/cart-analysis", Handler: h.CartAnalysis.AnalyzeCart},
			{Method: http.MethodGet, Path: "/carts/:id/analysis", Handler: h.CartAnalysis.AnalyzeCartByID},
		})

		discounts := apiGroup.Group("/discounts")
		{
			addRoutes(discounts, []route{
				{Method: http.MethodGet, Path: "/automatic", Handler: h.Discounts.ListAutomatic},
				{Method: http.MethodGet, Path: "/priority", Handler: h.Discounts.ListByPriority},
				{
					Method:  http.MethodDelete,
					Path:    "/cache",
					Handler: h.Discounts.InvalidateCache,
					Mw:      []gin.HandlerFunc{h.AdminAuth.RequireAdmin()},
				},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
