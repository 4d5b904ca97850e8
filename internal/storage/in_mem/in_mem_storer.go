package in_mem

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/internal/storage"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     []domain.Evaluation
	capacity    int
}

// NewInMemStorer keeps at most capacity evaluations, dropping the oldest.
// A capacity <= 0 keeps storage.MaxRecentLimit entries.
func NewInMemStorer(capacity int) *InMemStorer {
	if capacity <= 0 {
		capacity = storage.MaxRecentLimit
	}
	return &InMemStorer{
		storage:  make([]domain.Evaluation, 0, capacity),
		capacity: capacity,
	}
}

func (s *InMemStorer) Record(ctx context.Context, ev domain.Evaluation) (uuid.UUID, error) {
	if err := ctx.Err(); err != nil {
		return uuid.Nil, err
	}
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if len(s.storage) == s.capacity {
		copy(s.storage, s.storage[1:])
		s.storage = s.storage[:len(s.storage)-1]
	}
	s.storage = append(s.storage, ev)
	slog.Debug("Recorded evaluation in memory", "id", ev.ID, "expression", ev.Expression)

	return ev.ID, nil
}

func (s *InMemStorer) Recent(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	limit = storage.ClampLimit(limit)

	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	n := min(limit, len(s.storage))
	out := make([]domain.Evaluation, 0, n)
	for i := len(s.storage) - 1; i >= len(s.storage)-n; i-- {
		out = append(out, s.storage[i])
	}
	return out, nil
}
