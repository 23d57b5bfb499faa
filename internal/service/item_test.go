package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/maxviazov/pagination/internal/model"
	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/internal/service"
	"github.com/maxviazov/pagination/pkg/apperror"
	"github.com/maxviazov/pagination/pkg/pagination"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func i64(v int64) *int64 { return &v }

func newSeeded(t *testing.T, n int, opts service.Options) service.ItemService {
	t.Helper()
	store := repository.NewMemoryStore()
	for i := 0; i < n; i++ {
		_, err := store.Add(context.Background(), model.Item{Name: fmt.Sprintf("item-%02d", i)})
		require.NoError(t, err)
	}
	return service.NewItemService(store, opts, zerolog.Nop())
}

func TestListItems_Lenient(t *testing.T) {
	svc := newSeeded(t, 25, service.Options{})
	ctx := context.Background()

	cases := []struct {
		name      string
		q         service.ListQuery
		wantPage  uint64
		wantLimit uint32
		wantLen   int
		wantFirst string
	}{
		{"defaults", service.ListQuery{}, 1, 10, 10, "item-00"},
		{"second page", service.ListQuery{Page: i64(2), Limit: i64(10)}, 2, 10, 10, "item-10"},
		{"tail", service.ListQuery{Page: i64(3), Limit: i64(10)}, 3, 10, 5, "item-20"},
		{"negative page clamps", service.ListQuery{Page: i64(-5)}, 1, 10, 10, "item-00"},
		{"negative limit clamps", service.ListQuery{Limit: i64(-1)}, 1, 1, 1, "item-00"},
		{"oversized limit caps", service.ListQuery{Limit: i64(1 << 40)}, 1, 100, 25, "item-00"},
		{"page past end is empty", service.ListQuery{Page: i64(99)}, 99, 10, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.ListItems(ctx, tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPage, resp.Pagination.Page)
			assert.Equal(t, tc.wantLimit, resp.Pagination.Limit)
			assert.Equal(t, uint64(25), resp.Pagination.Total)
			require.Len(t, resp.Data, tc.wantLen)
			if tc.wantFirst != "" {
				assert.Equal(t, tc.wantFirst, resp.Data[0].Name)
			}
		})
	}
}

func TestListItems_Strict(t *testing.T) {
	svc := newSeeded(t, 25, service.Options{Strict: true})
	ctx := context.Background()

	_, err := svc.ListItems(ctx, service.ListQuery{Page: i64(0)})
	assert.ErrorIs(t, err, pagination.ErrInvalidPage)

	_, err = svc.ListItems(ctx, service.ListQuery{Limit: i64(500)})
	assert.ErrorIs(t, err, pagination.ErrInvalidLimit)

	_, err = svc.ListItems(ctx, service.ListQuery{Page: i64(4)})
	assert.ErrorIs(t, err, pagination.ErrInvalidParams)

	resp, err := svc.ListItems(ctx, service.ListQuery{Page: i64(3), Limit: i64(10)})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 5)
	assert.False(t, resp.Pagination.HasNext)
}

func TestListItems_EmptyStore(t *testing.T) {
	svc := newSeeded(t, 0, service.Options{Strict: true})
	resp, err := svc.ListItems(context.Background(), service.ListQuery{})
	require.NoError(t, err)
	assert.Empty(t, resp.Data)
	assert.NotNil(t, resp.Data)
	assert.Equal(t, uint64(0), resp.Pagination.TotalPages)
	assert.False(t, resp.Pagination.HasFirst)
}

func TestListItems_StoreFailure(t *testing.T) {
	store := repository.NewMemoryStore()
	store.Close()
	svc := service.NewItemService(store, service.Options{}, zerolog.Nop())

	_, err := svc.ListItems(context.Background(), service.ListQuery{})
	assert.ErrorIs(t, err, repository.ErrClosed)
}

func TestCreateAndGetItem(t *testing.T) {
	svc := newSeeded(t, 0, service.Options{})
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, "   ")
	ae, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "name", ae.Field)

	it, err := svc.CreateItem(ctx, " widget ")
	require.NoError(t, err)
	assert.Equal(t, "widget", it.Name)

	got, err := svc.GetItem(ctx, it.ID.String())
	require.NoError(t, err)
	assert.Equal(t, it.ID, got.ID)

	_, err = svc.GetItem(ctx, "00000000-0000-0000-0000-000000000001")
	ae, ok = apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, apperror.KindNotFound, ae.Kind)
	assert.False(t, errors.Is(err, repository.ErrNotFound))
}
