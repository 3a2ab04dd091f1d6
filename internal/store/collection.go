package store

import (
	"slices"

	"go.uber.org/zap"
)

// Confirm asks a yes/no question and blocks until it is answered
type Confirm func(prompt string) bool

// Yes confirms every prompt
func Yes(string) bool { return true }

// collection is the state every store shares: the in-memory records, the
// persister they mirror, and the change feed. Mutations build the next slice,
// save it, and only then replace the in-memory copy, so a failed save leaves
// the previous state intact.
type collection[T any] struct {
	persister Persister[T]
	items     []T
	loaded    bool
	log       *zap.Logger
	changes   *Changes
}

func newCollection[T any](p Persister[T], o options) collection[T] {
	return collection[T]{
		persister: p,
		log:       o.log.With(zap.String("collection", p.Key())),
		changes:   o.changes,
	}
}

func (c *collection[T]) load() error {
	items, err := c.persister.Load()
	if err != nil {
		return err
	}
	c.items = items
	c.loaded = true
	return nil
}

// all returns a copy of the records in insertion order
func (c *collection[T]) all() []T {
	return slices.Clone(c.items)
}

func (c *collection[T]) commit(next []T, op Op, ref string) error {
	if !c.loaded {
		return ErrNotLoaded
	}
	if err := c.persister.Save(next); err != nil {
		c.log.Error("failed to persist collection", zap.String("op", string(op)), zap.Error(err))
		return err
	}
	c.items = next
	c.log.Info("collection changed", zap.String("op", string(op)), zap.String("ref", ref))
	c.changes.Publish(Change{Key: c.persister.Key(), Op: op, Ref: ref})
	return nil
}

// nextID returns max(existing ids, 0) + 1
func nextID[T any](items []T, idOf func(T) int) int {
	maxID := 0
	for _, item := range items {
		if id := idOf(item); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}

func indexByID[T any](items []T, id int, idOf func(T) int) int {
	return slices.IndexFunc(items, func(item T) bool {
		return idOf(item) == id
	})
}
