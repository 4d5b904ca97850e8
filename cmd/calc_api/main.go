// Package main serves the expression evaluator over HTTP.
//
//	POST /evaluate   {"expression": "5+3*2"}
//	GET  /evaluate?expr=5%2B3*2
//	GET  /history?limit=20
//	GET  /health
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/DjordjeVuckovic/infix-calc/internal/api/router"
	apiserver "github.com/DjordjeVuckovic/infix-calc/internal/api/server"
	"github.com/DjordjeVuckovic/infix-calc/internal/eval"
	"github.com/DjordjeVuckovic/infix-calc/internal/storage/factory"
	pkgserver "github.com/DjordjeVuckovic/infix-calc/pkg/server"
	"github.com/labstack/echo/v4"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelDebug)

	if err := run(); err != nil {
		slog.Error("Calc API stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	sCfg, err := apiserver.LoadConfig()
	if err != nil {
		return fmt.Errorf("load server config: %w", err)
	}

	cfg, err := NewAppConfig().Load()
	if err != nil {
		return fmt.Errorf("load app config: %w", err)
	}

	s := apiserver.New(sCfg, pkgserver.NewOkHealthChecker())

	history, err := factory.NewHistory(s.Context(), cfg.StorageConfig)
	if err != nil {
		return fmt.Errorf("create evaluation history: %w", err)
	}
	defer history.Cleanup()

	s = s.WithHealthChecker(history.Health).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Calc API is running")
	})

	router.NewEvaluateRouter(s.Echo, eval.NewDefault(),
		router.WithHistory(history.Store),
		router.WithMaxExpressionLength(sCfg.MaxExpressionLength),
	).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	return s.Start()
}
