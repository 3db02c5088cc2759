package hr

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"zenith-hr/internal/store"
)

// Entity is a record that can live in a Collection. WithID returns a copy of
// the record with its identifier set; the collection assigns identifiers on
// append and treats them as immutable afterwards.
type Entity[T any] interface {
	EntityID() string
	WithID(id string) T
	SearchText() []string
}

// Collection is an in-memory list of one entity kind synchronized to a single
// store key. Every mutation rewrites the whole list; the collections here are
// small enough that delta persistence would buy nothing.
type Collection[T Entity[T]] struct {
	mu    sync.Mutex
	kv    store.KV
	key   string
	items []T
}

// LoadCollection returns the persisted list under key, or persists and
// returns seed when the key is absent. An empty store is not an error.
func LoadCollection[T Entity[T]](kv store.KV, key string, seed []T) (*Collection[T], error) {
	raw, ok, err := kv.Get(key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	c := &Collection[T]{kv: kv, key: key}

	if !ok {
		c.items = append([]T(nil), seed...)
		if err := c.persist(); err != nil {
			return nil, err
		}
		return c, nil
	}

	if err := json.Unmarshal(raw, &c.items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return c, nil
}

// Items returns a point-in-time copy of the collection.
func (c *Collection[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Append assigns a fresh unique id to the record, persists the updated list
// and returns the new snapshot.
func (c *Collection[T]) Append(item T) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record := item.WithID(uuid.New().String())
	c.items = append(c.items, record)
	if err := c.persist(); err != nil {
		return nil, err
	}
	return c.snapshot(), nil
}

// Search returns the records whose search fields contain term,
// case-insensitively. A blank term matches everything. Non-mutating.
func (c *Collection[T]) Search(term string) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return c.snapshot()
	}

	var matched []T
	for _, item := range c.items {
		for _, field := range item.SearchText() {
			if strings.Contains(strings.ToLower(field), term) {
				matched = append(matched, item)
				break
			}
		}
	}
	return matched
}

// UpdateWhere replaces each record matching the predicate with apply(record).
// Non-matching records pass through unchanged; insertion order is preserved.
func (c *Collection[T]) UpdateWhere(match func(T) bool, apply func(T) T) ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := false
	for i, item := range c.items {
		if match(item) {
			c.items[i] = apply(item)
			changed = true
		}
	}

	if changed {
		if err := c.persist(); err != nil {
			return nil, err
		}
	}
	return c.snapshot(), nil
}

// Find returns the first record matching the predicate.
func (c *Collection[T]) Find(match func(T) bool) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) snapshot() []T {
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) persist() error {
	raw, err := json.Marshal(c.items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	if err := c.kv.Set(c.key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", c.key, err)
	}
	return nil
}
