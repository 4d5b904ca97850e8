package in_mem

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/infix-calc/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemStorer_RecordAssignsIdentity(t *testing.T) {
	s := NewInMemStorer(10)

	id, err := s.Record(context.Background(), domain.Evaluation{Expression: "1+1", Result: 2})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	recent, err := s.Recent(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, id, recent[0].ID)
	assert.False(t, recent[0].CreatedAt.IsZero())
}

func TestInMemStorer_KeepsGivenID(t *testing.T) {
	s := NewInMemStorer(10)
	want := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	id, err := s.Record(context.Background(), domain.Evaluation{ID: want, Expression: "2"})
	require.NoError(t, err)
	assert.Equal(t, want, id)
}

func TestInMemStorer_RecentNewestFirst(t *testing.T) {
	s := NewInMemStorer(3)
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		_, err := s.Record(ctx, domain.Evaluation{Expression: fmt.Sprintf("%d", i), Result: int64(i)})
		require.NoError(t, err)
	}

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 3)
	assert.Equal(t, []int64{4, 3, 2}, []int64{recent[0].Result, recent[1].Result, recent[2].Result})

	recent, err = s.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, int64(4), recent[0].Result)
}

func TestInMemStorer_CancelledContext(t *testing.T) {
	s := NewInMemStorer(1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Record(ctx, domain.Evaluation{Expression: "1"})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.Recent(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInMemStorer_ConcurrentRecord(t *testing.T) {
	s := NewInMemStorer(1000)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Record(ctx, domain.Evaluation{Expression: "1"})
		}()
	}
	wg.Wait()

	recent, err := s.Recent(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, recent, 50)
}
