//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"cart-discount-preview/cmd/bootstrap"
	"cart-discount-preview/cmd/bootstrap/components"
	"cart-discount-preview/internal/pkg/config"
	"cart-discount-preview/tests/common/authtest"
	"cart-discount-preview/tests/common/httptest"
	"cart-discount-preview/tests/common/platformtest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Per-suite environment: fake platform plus the real fx graph
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*platformtest.FakePlatform, *gin.Engine, config.Config) {
	gin.SetMode(gin.TestMode)

	platform := platformtest.NewFakePlatform(t)

	router, cfg, app := buildE2EApp(createTestConfig(platform))
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return platform, router, cfg
}

// ------------------------------------------------------------
// Returns router, config, and fx.App for proper lifecycle management
// ------------------------------------------------------------
func buildE2EApp(testConfig config.Config) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config {
			return testConfig
		}),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.MetricsModule,
		bootstrap.JWTModule,
		components.RepositoryModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}

	if router == nil {
		panic("fx app started without a router")
	}

	return router, cfg, app
}

func createTestConfig(platform *platformtest.FakePlatform) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Platform.ProjectKey = platformtest.ProjectKey
	testConfig.Platform.ClientID = platformtest.ClientID
	testConfig.Platform.ClientSecret = platformtest.ClientSecret
	testConfig.Platform.AuthURL = platform.URL()
	testConfig.Platform.APIURL = platform.URL()
	// keep the breaker closed across failure scenarios
	testConfig.Platform.BreakerMaxFailures = 1000
	return testConfig
}

// ------------------------------------------------------------
// Shared setup for E2E suites
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router   *gin.Engine
	Platform *platformtest.FakePlatform
	Config   config.Config
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	platform, router, cfg := setupE2EEnvironment(t)
	s.Platform = platform
	s.Router = router
	s.Config = cfg
	require.NotNil(t, platform, "fake platform setup failed")
	require.NotEmpty(t, s.Config, "config missing")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

// SetupSubTest clears the fake platform and drops the cached discount list
// through the admin endpoint.
func (s *SharedSuite) SetupSubTest() {
	s.Platform.Reset()

	token := authtest.NewJWTHelper(s.Config.Admin).GenerateAdminToken(s.T())
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/discounts/cache", nil, token)
	require.Equal(s.T(), http.StatusNoContent, rec.Code, "failed to invalidate discount cache")
}
