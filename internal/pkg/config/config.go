package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, platform credentials, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Platform PlatformConfig
	Cache    CacheConfig
	Admin    AdminConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// PlatformConfig holds the commercetools API client settings.
type PlatformConfig struct {
	ProjectKey   string   `envconfig:"CTP_PROJECT_KEY" required:"true"`
	ClientID     string   `envconfig:"CTP_CLIENT_ID" required:"true"`
	ClientSecret string   `envconfig:"CTP_CLIENT_SECRET" required:"true"`
	AuthURL      string   `envconfig:"CTP_AUTH_URL" default:"https://auth.australia-southeast1.gcp.commercetools.com"`
	APIURL       string   `envconfig:"CTP_API_URL" default:"https://api.australia-southeast1.gcp.commercetools.com"`
	Scopes       []string `envconfig:"CTP_SCOPES"`
	// Locale preference used when picking a localized name
	Locales             []string      `envconfig:"CTP_LOCALES" default:"en,en-US,en-AU"`
	Timeout             time.Duration `envconfig:"CTP_TIMEOUT" default:"10s"`
	QueryLimit          int           `envconfig:"CTP_QUERY_LIMIT" default:"500"`
	BreakerMaxFailures  uint32        `envconfig:"CTP_BREAKER_MAX_FAILURES" default:"5"`
	BreakerOpenTimeout  time.Duration `envconfig:"CTP_BREAKER_OPEN_TIMEOUT" default:"30s"`
	BreakerHalfOpenReqs uint32        `envconfig:"CTP_BREAKER_HALF_OPEN_REQUESTS" default:"1"`
}

type CacheConfig struct {
	DiscountTTL time.Duration `envconfig:"DISCOUNT_CACHE_TTL" default:"5m"`
}

type AdminConfig struct {
	JWTSecret     string        `envconfig:"ADMIN_JWT_SECRET" required:"true"`
	TokenDuration time.Duration `envconfig:"ADMIN_TOKEN_DURATION" default:"24h"`
}

func (c *PlatformConfig) ProjectURL() string {
	return strings.TrimRight(c.APIURL, "/") + "/" + c.ProjectKey
}

func (c *PlatformConfig) TokenURL() string {
	return strings.TrimRight(c.AuthURL, "/") + "/oauth/token"
}

// EffectiveScopes falls back to the project-wide manage scope.
func (c *PlatformConfig) EffectiveScopes() []string {
	if len(c.Scopes) > 0 {
		return c.Scopes
	}
	return []string{"manage_project:" + c.ProjectKey}
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Platform: PlatformConfig{
			ProjectKey:          "test-project",
			ClientID:            "test-client",
			ClientSecret:        "test-secret",
			AuthURL:             "http://localhost:18080",
			APIURL:              "http://localhost:18080",
			Locales:             []string{"en", "en-US", "en-AU"},
			Timeout:             2 * time.Second,
			QueryLimit:          500,
			BreakerMaxFailures:  5,
			BreakerOpenTimeout:  time.Second,
			BreakerHalfOpenReqs: 1,
		},
		Cache: CacheConfig{
			DiscountTTL: 5 * time.Minute,
		},
		Admin: AdminConfig{
			JWTSecret:     "test-admin-secret",
			TokenDuration: time.Hour,
		},
	}
}
