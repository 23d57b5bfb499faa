// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
package service

import (
	"context"
	"errors"
	"math"

	"github.com/maxviazov/pagination/internal/model"
	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/pkg/apperror"
	"github.com/maxviazov/pagination/pkg/pagination"
)

// ListQuery holds raw page/limit values as parsed from the query string; nil means absent.
type ListQuery struct {
	Page  *int64
	Limit *int64
}

// Options tunes how list queries are validated.
type Options struct {
	// Strict rejects out-of-range page/limit with a 400 instead of clamping.
	Strict bool
}

// ItemService defines item-oriented use cases.
type ItemService interface {
	CreateItem(ctx context.Context, name string) (model.Item, error)
	GetItem(ctx context.Context, id string) (model.Item, error)
	ListItems(ctx context.Context, q ListQuery) (pagination.PaginatedResponse[model.Item], error)
}

// mapRepoError turns storage sentinels into application errors the HTTP layer understands.
func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return apperror.NotFound("item not found")
	default:
		return err
	}
}

// lenientValue narrows a raw query value for pagination.FromQuery.
// Negative values become 0 so the calculator raises them; oversized ones saturate.
func lenientValue(v *int64) *uint32 {
	if v == nil {
		return nil
	}
	var out uint32
	switch {
	case *v < 0:
	case *v > math.MaxUint32:
		out = math.MaxUint32
	default:
		out = uint32(*v)
	}
	return &out
}

func computeParams(q ListQuery, total uint64, opts Options) (pagination.Params, error) {
	if opts.Strict {
		return pagination.Strict(q.Page, q.Limit, total)
	}
	return pagination.FromQuery(lenientValue(q.Page), lenientValue(q.Limit), total), nil
}
