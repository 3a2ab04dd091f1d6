package store

import (
	"slices"

	"github.com/google/uuid"
)

// Op names the kind of mutation a Change describes
type Op string

const (
	OpRegistered Op = "registered"
	OpCreated    Op = "created"
	OpUpdated    Op = "updated"
	OpCompleted  Op = "completed"
	OpDeleted    Op = "deleted"
)

// Change is published after a collection was mutated and persisted
type Change struct {
	Key string // storage key of the collection
	Op  Op
	Ref string // record id, or username for accounts
}

// Changes fans collection-changed notifications out to subscribers.
// It is not safe for concurrent use.
type Changes struct {
	subs []subscription
}

type subscription struct {
	id uuid.UUID
	fn func(Change)
}

// NewChanges creates an empty feed
func NewChanges() *Changes {
	return &Changes{}
}

// Subscribe registers fn and returns a function that removes it
func (c *Changes) Subscribe(fn func(Change)) (cancel func()) {
	id := uuid.New()
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	return func() {
		c.subs = slices.DeleteFunc(c.subs, func(s subscription) bool {
			return s.id == id
		})
	}
}

// Len returns the number of active subscribers
func (c *Changes) Len() int {
	if c == nil {
		return 0
	}
	return len(c.subs)
}

// Publish delivers ch to every subscriber in subscription order
func (c *Changes) Publish(ch Change) {
	if c == nil {
		return
	}
	for _, s := range slices.Clone(c.subs) {
		s.fn(ch)
	}
}
