package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	pkgserver "github.com/DjordjeVuckovic/infix-calc/pkg/server"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticHealth bool

func (s staticHealth) Healthy(context.Context) bool { return bool(s) }

func testConfig() *Config {
	return &Config{Port: "8080", CorsOrigins: []string{"*"}, MaxExpressionLength: 16}
}

func TestServer_HealthChecks(t *testing.T) {
	tests := []struct {
		name    string
		healthy bool
		status  int
	}{
		{name: "healthy", healthy: true, status: http.StatusOK},
		{name: "unhealthy", healthy: false, status: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testConfig(), staticHealth(tt.healthy)).
				SetupMiddlewares().
				SetupErrorHandler().
				SetupHealthChecks("/health")

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestServer_BodyLimit(t *testing.T) {
	s := New(testConfig(), staticHealth(true)).SetupMiddlewares().SetupErrorHandler()
	s.Echo.POST("/echo", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })

	body := strings.NewReader(strings.Repeat("1", bodyLimitBytes(16)+1))
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/echo", body))
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("ENV_PATH", "/nonexistent/.env")

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("CORS_ORIGINS", "")
		t.Setenv("MAX_EXPRESSION_LENGTH", "")
		t.Setenv("USE_HTTP2", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
		assert.Equal(t, DefaultMaxExpressionLength, cfg.MaxExpressionLength)
		assert.False(t, cfg.UseHttp2)
	})

	t.Run("custom", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("CORS_ORIGINS", " http://a.test , ,http://b.test")
		t.Setenv("MAX_EXPRESSION_LENGTH", "128")
		t.Setenv("USE_HTTP2", "true")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CorsOrigins)
		assert.Equal(t, 128, cfg.MaxExpressionLength)
		assert.True(t, cfg.UseHttp2)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "port must be between 1 and 65535")
	})

	t.Run("invalid max length", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("MAX_EXPRESSION_LENGTH", "0")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestServer_DefaultHealthChecker(t *testing.T) {
	s := New(testConfig(), nil).SetupHealthChecks("/health")

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_CombinesHealthCheckers(t *testing.T) {
	tests := []struct {
		name   string
		extra  []pkgserver.HealthChecker
		status int
	}{
		{name: "base only", status: http.StatusOK},
		{name: "all healthy", extra: []pkgserver.HealthChecker{staticHealth(true)}, status: http.StatusOK},
		{name: "one unhealthy", extra: []pkgserver.HealthChecker{staticHealth(true), staticHealth(false)}, status: http.StatusServiceUnavailable},
		{name: "nil is ignored", extra: []pkgserver.HealthChecker{nil}, status: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(testConfig(), pkgserver.NewOkHealthChecker())
			for _, hc := range tt.extra {
				s = s.WithHealthChecker(hc)
			}
			s.SetupHealthChecks("/health")

			rec := httptest.NewRecorder()
			s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
