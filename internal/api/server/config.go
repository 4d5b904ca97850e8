package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/infix-calc/pkg/config/env"
	"github.com/DjordjeVuckovic/infix-calc/pkg/utils"
)

const DefaultMaxExpressionLength = 4096

type Config struct {
	Port                string
	UseHttp2            bool
	CorsOrigins         []string
	MaxExpressionLength int
}

func LoadConfig() (*Config, error) {
	err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/calc_api/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	port := env.String("PORT", "8080")
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	maxLen, err := env.Int("MAX_EXPRESSION_LENGTH", DefaultMaxExpressionLength)
	if err != nil {
		return nil, err
	}
	if maxLen <= 0 {
		return nil, errors.New("MAX_EXPRESSION_LENGTH must be positive")
	}

	var origins []string
	corsOriginsEnv := os.Getenv("CORS_ORIGINS")
	if corsOriginsEnv != "" {
		origins = strings.Split(corsOriginsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		origins = utils.RemoveEmptyStrings(origins)
	}

	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return &Config{
		Port:                port,
		UseHttp2:            env.Bool("USE_HTTP2"),
		CorsOrigins:         origins,
		MaxExpressionLength: maxLen,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}
