package application

import (
	"context"
	"slices"
	"sync"

	"github.com/bnema/giftbox-cli/internal/domain"
	"github.com/bnema/giftbox-cli/internal/ports"
)

type identifiable interface {
	Identifier() string
}

// Collection mirrors server responses for one resource: the current page or
// every item, plus the metadata of the last page fetched.
type Collection[T identifiable, C, U any] struct {
	backend ports.CollectionBackend[T, C, U]
	// changed runs after a successful create, update or delete.
	changed func(ctx context.Context)

	mu    sync.RWMutex
	items []T
	meta  *domain.PageMeta
}

func newCollection[T identifiable, C, U any](backend ports.CollectionBackend[T, C, U], changed func(context.Context)) *Collection[T, C, U] {
	if changed == nil {
		changed = func(context.Context) {}
	}
	return &Collection[T, C, U]{backend: backend, changed: changed}
}

func (c *Collection[T, C, U]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return slices.Clone(c.items)
}

// Meta returns the metadata of the last page fetched. It is absent after
// FetchAll, whose result spans every page.
func (c *Collection[T, C, U]) Meta() (domain.PageMeta, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.meta == nil {
		return domain.PageMeta{}, false
	}
	return *c.meta, true
}

func (c *Collection[T, C, U]) FetchPage(ctx context.Context, params domain.ListParams) (domain.Page[T], error) {
	page, err := c.backend.List(ctx, params)
	if err != nil {
		return domain.Page[T]{}, err
	}

	c.mu.Lock()
	c.items = slices.Clone(page.Items)
	meta := page.Meta
	c.meta = &meta
	c.mu.Unlock()

	return page, nil
}

func (c *Collection[T, C, U]) FetchAll(ctx context.Context, sort domain.SortOrder) ([]T, error) {
	items, err := c.backend.ListAll(ctx, sort)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.items = slices.Clone(items)
	c.meta = nil
	c.mu.Unlock()

	return items, nil
}

func (c *Collection[T, C, U]) FetchByID(ctx context.Context, id string) (T, error) {
	record, err := c.backend.Get(ctx, id)
	if err != nil {
		return record, err
	}

	c.mu.Lock()
	if index := c.indexOf(record.Identifier()); index >= 0 {
		c.items[index] = record
	} else {
		c.items = append(c.items, record)
	}
	c.mu.Unlock()

	return record, nil
}

func (c *Collection[T, C, U]) Create(ctx context.Context, payload C) (T, error) {
	record, err := c.backend.Create(ctx, payload)
	if err != nil {
		return record, err
	}

	c.mu.Lock()
	c.items = append(c.items, record)
	c.mu.Unlock()

	c.changed(ctx)
	return record, nil
}

func (c *Collection[T, C, U]) Update(ctx context.Context, id string, patch U) (T, error) {
	record, err := c.backend.Update(ctx, id, patch)
	if err != nil {
		return record, err
	}

	c.mu.Lock()
	if index := c.indexOf(record.Identifier()); index >= 0 {
		c.items[index] = record
	}
	c.mu.Unlock()

	c.changed(ctx)
	return record, nil
}

func (c *Collection[T, C, U]) Remove(ctx context.Context, id string) error {
	if err := c.backend.Delete(ctx, id); err != nil {
		return err
	}

	normalized, err := domain.NormalizeID(id)
	if err != nil {
		normalized = id
	}

	c.mu.Lock()
	c.items = slices.DeleteFunc(c.items, func(item T) bool {
		return sameID(item.Identifier(), normalized)
	})
	c.mu.Unlock()

	c.changed(ctx)
	return nil
}

func (c *Collection[T, C, U]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.meta = nil
}

func (c *Collection[T, C, U]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return sameID(item.Identifier(), id)
	})
}

func sameID(a, b string) bool {
	if a == b {
		return true
	}
	na, errA := domain.NormalizeID(a)
	nb, errB := domain.NormalizeID(b)
	return errA == nil && errB == nil && na == nb
}
