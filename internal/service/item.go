package service

import (
	"context"
	"strings"
	"time"

	"github.com/maxviazov/pagination/internal/model"
	"github.com/maxviazov/pagination/internal/repository"
	"github.com/maxviazov/pagination/pkg/apperror"
	"github.com/maxviazov/pagination/pkg/pagination"
	"github.com/rs/zerolog"
)

// itemService holds item use-case logic: validation + orchestration, no transport details.
type itemService struct {
	repo repository.ItemRepository
	opts Options
	log  zerolog.Logger
}

func NewItemService(repo repository.ItemRepository, opts Options, logger zerolog.Logger) ItemService {
	l := logger.With().Str("module", "service").Str("component", "items").Logger()
	return &itemService{repo: repo, opts: opts, log: l}
}

func (s *itemService) CreateItem(ctx context.Context, name string) (model.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Item{}, apperror.ValidationField("name", "must not be empty")
	}
	if ln := len([]rune(name)); ln > 100 {
		return model.Item{}, apperror.ValidationField("name", "length must be at most 100")
	}

	out, err := s.repo.Add(ctx, model.Item{Name: name})
	if err != nil {
		s.log.Error().Err(err).Str("name", name).Msg("create item failed")
		return model.Item{}, mapRepoError(err)
	}
	s.log.Info().Str("item_id", out.ID.String()).Msg("item created")
	return out, nil
}

func (s *itemService) GetItem(ctx context.Context, id string) (model.Item, error) {
	it, err := s.repo.GetByID(ctx, id)
	return it, mapRepoError(err)
}

// ListItems counts first so the window can be derived from the descriptor.
func (s *itemService) ListItems(ctx context.Context, q ListQuery) (pagination.PaginatedResponse[model.Item], error) {
	start := time.Now()

	total, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("count items failed")
		return pagination.PaginatedResponse[model.Item]{}, mapRepoError(err)
	}

	params, err := computeParams(q, total, s.opts)
	if err != nil {
		s.log.Debug().Err(err).Interface("page", q.Page).Interface("limit", q.Limit).Msg("pagination rejected")
		return pagination.PaginatedResponse[model.Item]{}, err
	}

	res, err := s.repo.List(ctx, repository.Page{Limit: params.Limit, Offset: params.Offset})
	if err != nil {
		s.log.Error().Err(err).Uint32("limit", params.Limit).Uint64("offset", params.Offset).Msg("list items failed")
		return pagination.PaginatedResponse[model.Item]{}, mapRepoError(err)
	}

	s.log.Debug().
		Uint64("page", params.Page).
		Uint64("total_pages", params.TotalPages).
		Int("returned", len(res.Items)).
		Dur("took", time.Since(start)).
		Msg("items listed")
	return pagination.NewResponse(res.Items, params), nil
}
