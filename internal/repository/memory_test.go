package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/maxviazov/pagination/internal/model"
	"github.com/maxviazov/pagination/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seed(t *testing.T, n int) *repository.MemoryStore {
	t.Helper()
	s := repository.NewMemoryStore()
	for i := 0; i < n; i++ {
		_, err := s.Add(context.Background(), model.Item{Name: fmt.Sprintf("item-%02d", i)})
		require.NoError(t, err)
	}
	return s
}

func TestMemoryStore_List(t *testing.T) {
	s := seed(t, 25)
	ctx := context.Background()

	cases := []struct {
		name      string
		page      repository.Page
		wantLen   int
		wantFirst string
	}{
		{"first window", repository.Page{Limit: 10, Offset: 0}, 10, "item-00"},
		{"partial tail", repository.Page{Limit: 10, Offset: 20}, 5, "item-20"},
		{"offset at end", repository.Page{Limit: 10, Offset: 25}, 0, ""},
		{"offset far past end", repository.Page{Limit: 10, Offset: 1 << 63}, 0, ""},
		{"offset near max", repository.Page{Limit: 100, Offset: ^uint64(0) - 10}, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := s.List(ctx, tc.page)
			require.NoError(t, err)
			assert.Equal(t, uint64(25), res.Total)
			assert.Len(t, res.Items, tc.wantLen)
			assert.NotNil(t, res.Items)
			if tc.wantFirst != "" {
				assert.Equal(t, tc.wantFirst, res.Items[0].Name)
			}
		})
	}
}

func TestMemoryStore_AddAndGet(t *testing.T) {
	s := repository.NewMemoryStore()
	ctx := context.Background()

	it, err := s.Add(ctx, model.Item{Name: "widget"})
	require.NoError(t, err)
	assert.NotEmpty(t, it.ID)
	assert.False(t, it.CreatedAt.IsZero())

	got, err := s.GetByID(ctx, it.ID.String())
	require.NoError(t, err)
	assert.Equal(t, it, got)

	_, err = s.Add(ctx, it)
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)

	_, err = s.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMemoryStore_Close(t *testing.T) {
	s := seed(t, 1)
	require.NoError(t, s.Ping(context.Background()))
	res, err := s.List(context.Background(), repository.Page{Limit: 1})
	require.NoError(t, err)
	id := res.Items[0].ID.String()

	s.Close()
	assert.ErrorIs(t, s.Ping(context.Background()), repository.ErrClosed)
	_, err = s.Count(context.Background())
	assert.ErrorIs(t, err, repository.ErrClosed)
	_, err = s.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrClosed)
}

func TestMemoryStore_CanceledContext(t *testing.T) {
	s := seed(t, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.List(ctx, repository.Page{Limit: 10})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	s := repository.NewMemoryStore()
	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				_, _ = s.Add(ctx, model.Item{Name: "x"})
				_, _ = s.List(ctx, repository.Page{Limit: 5})
			}
		}()
	}
	wg.Wait()
	n, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(400), n)
}
