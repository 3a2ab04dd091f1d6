package store

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Storage is a durable string key/value area, one value per collection
type Storage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
}

// Persister loads and saves one collection
type Persister[T any] interface {
	Key() string
	Load() ([]T, error)
	Save(items []T) error
}

// Binding persists a collection as a JSON array under a single storage key.
//
// Load falls back to the seed when nothing is stored or the stored value does
// not parse, and writes the seed back so later loads are stable. A stored
// empty array is a real collection and is returned as is. Save refuses to run
// until Load has completed.
type Binding[T any] struct {
	storage Storage
	key     string
	seed    func() []T
	loaded  bool
	log     *zap.Logger
}

// NewBinding creates a binding for key. seed may be nil for an empty default.
func NewBinding[T any](storage Storage, key string, seed func() []T, opts ...Option) *Binding[T] {
	o := buildOptions(opts)
	return &Binding[T]{
		storage: storage,
		key:     key,
		seed:    seed,
		log:     o.log.With(zap.String("key", key)),
	}
}

// Key returns the storage key of the collection
func (b *Binding[T]) Key() string {
	return b.key
}

// Load reads the collection, seeding it when absent or malformed
func (b *Binding[T]) Load() ([]T, error) {
	raw, ok, err := b.storage.GetItem(b.key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", b.key, err)
	}

	if ok {
		items, err := decodeCollection[T](raw)
		if err == nil {
			b.loaded = true
			b.log.Debug("collection loaded", zap.Int("count", len(items)))
			return items, nil
		}
		b.log.Warn("stored collection unreadable, reseeding", zap.Error(err))
	} else {
		b.log.Info("no stored collection, seeding")
	}

	items := []T{}
	if b.seed != nil {
		items = b.seed()
	}

	b.loaded = true
	if err := b.Save(items); err != nil {
		b.loaded = false
		return nil, err
	}
	return items, nil
}

// Save overwrites the stored collection
func (b *Binding[T]) Save(items []T) error {
	if !b.loaded {
		return ErrNotLoaded
	}

	data, err := encodeCollection(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", b.key, err)
	}

	if err := b.storage.SetItem(b.key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", b.key, err)
	}
	return nil
}

func decodeCollection[T any](raw string) ([]T, error) {
	trimmed := strings.TrimSpace(raw)
	if !strings.HasPrefix(trimmed, "[") {
		return nil, ErrMalformed
	}

	var items []T
	if err := json.Unmarshal([]byte(trimmed), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func encodeCollection[T any](items []T) (string, error) {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
