package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/DjordjeVuckovic/infix-calc/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HistoryStorer keeps evaluations in the evaluations table.
type HistoryStorer struct {
	db *pgxpool.Pool
}

func NewHistoryStorer(pool *ConnectionPool) *HistoryStorer {
	return &HistoryStorer{db: pool.conn}
}

func (s *HistoryStorer) Record(ctx context.Context, ev domain.Evaluation) (uuid.UUID, error) {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	cmd := `
        INSERT INTO evaluations (id, expression, result, error, kind, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		ev.ID,
		ev.Expression,
		ev.Result,
		ev.Error,
		ev.Kind,
		ev.CreatedAt,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert evaluation: %w", err)
	}

	return id, nil
}

func (s *HistoryStorer) Recent(ctx context.Context, limit int) ([]domain.Evaluation, error) {
	query := `
        SELECT id, expression, result, error, kind, created_at
        FROM evaluations
        ORDER BY created_at DESC, id DESC
        LIMIT $1;
    `
	rows, err := s.db.Query(ctx, query, storage.ClampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to query evaluations: %w", err)
	}

	evals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Evaluation, error) {
		var ev domain.Evaluation
		err := row.Scan(&ev.ID, &ev.Expression, &ev.Result, &ev.Error, &ev.Kind, &ev.CreatedAt)
		return ev, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan evaluations: %w", err)
	}

	return evals, nil
}
