package storage

import (
	"context"

	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

type Reader interface {
	// Recent returns at most limit evaluations, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Evaluation, error)
}

// History is a store that can both record and list evaluations.
type History interface {
	Recorder
	Reader
}

// ClampLimit maps a requested page size into [1, MaxRecentLimit].
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultRecentLimit
	}
	return min(limit, MaxRecentLimit)
}
