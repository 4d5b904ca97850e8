package storage

import (
	"context"

	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/google/uuid"
)

// Recorder appends evaluations to the history. Implementations assign ID and
// CreatedAt when they are zero.
type Recorder interface {
	Record(ctx context.Context, ev domain.Evaluation) (uuid.UUID, error)
}

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
