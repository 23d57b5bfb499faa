package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/maxviazov/pagination/internal/model"
)

// MemoryStore keeps items in insertion order. It stands in for a real database
// in the reference service and in tests.
type MemoryStore struct {
	mu     sync.RWMutex
	items  []model.Item
	byID   map[uuid.UUID]int
	closed bool
	now    func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{byID: make(map[uuid.UUID]int), now: time.Now}
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return nil
}

// Add stores it, assigning an ID and creation time when they are zero.
func (s *MemoryStore) Add(ctx context.Context, it model.Item) (model.Item, error) {
	if err := ctx.Err(); err != nil {
		return model.Item{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return model.Item{}, ErrClosed
	}
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	if _, ok := s.byID[it.ID]; ok {
		return model.Item{}, ErrAlreadyExists
	}
	if it.CreatedAt.IsZero() {
		it.CreatedAt = s.now().UTC()
	}
	s.byID[it.ID] = len(s.items)
	s.items = append(s.items, it)
	return it, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (model.Item, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return model.Item{}, ErrNotFound
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return model.Item{}, ErrClosed
	}
	idx, ok := s.byID[uid]
	if !ok {
		return model.Item{}, ErrNotFound
	}
	return s.items[idx], ctx.Err()
}

func (s *MemoryStore) Count(ctx context.Context) (uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return 0, ErrClosed
	}
	return uint64(len(s.items)), ctx.Err()
}

// List returns the window [Offset, Offset+Limit). An offset past the end yields no items.
func (s *MemoryStore) List(ctx context.Context, p Page) (PageResult[model.Item], error) {
	if err := ctx.Err(); err != nil {
		return PageResult[model.Item]{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := uint64(len(s.items))
	res := PageResult[model.Item]{Items: []model.Item{}, Total: n}
	if p.Offset >= n {
		return res, nil
	}
	end := min(n, p.Offset+uint64(p.Limit))
	if end < p.Offset { // wrapped
		end = n
	}
	res.Items = append(res.Items, s.items[p.Offset:end]...)
	return res, nil
}

// Close makes every further call fail with ErrClosed; readiness reports unavailable.
func (s *MemoryStore) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
}
