package pg

import (
	"context"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	pkgtesting "github.com/DjordjeVuckovic/infix-calc/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorer(t *testing.T) (*HistoryStorer, *ConnectionPool) {
	t.Helper()
	ctx := context.Background()

	container := pkgtesting.NewPGContainerWithCleanup(ctx, t)
	pool, err := NewConnectionPool(ctx, PoolConfig{ConnStr: container.ConnString})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return NewHistoryStorer(pool), pool
}

func TestHistoryStorer_RecordAndRecent(t *testing.T) {
	s, pool := newTestStorer(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	okID, err := s.Record(ctx, domain.Evaluation{Expression: "5+3*2", Result: 11, CreatedAt: base})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, okID)

	failedID, err := s.Record(ctx, domain.Evaluation{
		Expression: "5+*3",
		Error:      "malformed expression at position 2: consecutive operators",
		Kind:       "malformed",
		CreatedAt:  base.Add(time.Second),
	})
	require.NoError(t, err)

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 2)

	assert.Equal(t, failedID, recent[0].ID)
	assert.True(t, recent[0].Failed())
	assert.Equal(t, "malformed", recent[0].Kind)

	assert.Equal(t, okID, recent[1].ID)
	assert.Equal(t, int64(11), recent[1].Result)
	assert.False(t, recent[1].Failed())
	assert.True(t, base.Equal(recent[1].CreatedAt))

	assert.True(t, NewHealthChecker(pool).Healthy(ctx))
}

func TestHistoryStorer_RecentLimit(t *testing.T) {
	s, _ := newTestStorer(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := s.Record(ctx, domain.Evaluation{Expression: "1", Result: int64(i)})
		require.NoError(t, err)
	}

	recent, err := s.Recent(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestHistoryStorer_ExtremeResults(t *testing.T) {
	s, _ := newTestStorer(t)
	ctx := context.Background()

	_, err := s.Record(ctx, domain.Evaluation{Expression: "9223372036854775807+1", Result: -9223372036854775808})
	require.NoError(t, err)

	recent, err := s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, int64(-9223372036854775808), recent[0].Result)
}
