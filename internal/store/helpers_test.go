package store

import (
	"errors"
	"testing"

	"github.com/dori/gestor/internal/model"
	"github.com/stretchr/testify/require"
)

// memStorage is an in-memory Storage that records every write
type memStorage struct {
	items   map[string]string
	writes  int
	failSet error
}

func newMemStorage() *memStorage {
	return &memStorage{items: map[string]string{}}
}

func (m *memStorage) GetItem(key string) (string, bool, error) {
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memStorage) SetItem(key, value string) error {
	if m.failSet != nil {
		return m.failSet
	}
	m.writes++
	m.items[key] = value
	return nil
}

var errDiskFull = errors.New("disk full")

func newTaskStore(t *testing.T, stored string, opts ...Option) (*TaskStore, *memStorage) {
	t.Helper()
	storage := newMemStorage()
	if stored != "" {
		storage.items[TasksKey] = stored
	}
	s := NewTaskStore(NewTaskBinding(storage), opts...)
	require.NoError(t, s.Load())
	return s, storage
}

func newProjectStore(t *testing.T, stored string, opts ...Option) (*ProjectStore, *memStorage) {
	t.Helper()
	storage := newMemStorage()
	if stored != "" {
		storage.items[ProjectsKey] = stored
	}
	s := NewProjectStore(NewProjectBinding(storage), opts...)
	require.NoError(t, s.Load())
	return s, storage
}

func newAccountStore(t *testing.T, opts ...Option) (*AccountStore, *memStorage) {
	t.Helper()
	storage := newMemStorage()
	s := NewAccountStore(NewAccountBinding(storage), opts...)
	require.NoError(t, s.Load())
	return s, storage
}

func no(string) bool { return false }

func designUI() model.TaskDraft {
	return model.TaskDraft{Name: "Design UI", Project: "CRM App", DueDate: "2025-06-01", Status: model.StatusPending}
}

func validProjectDraft() model.ProjectDraft {
	return model.ProjectDraft{
		Name:        "Mobile App",
		Members:     "Lucía, Diego",
		Phone:       "0977777777",
		StartDate:   "2025-08-01",
		EndDate:     "2025-10-01",
		Description: "Companion app for field staff.",
	}
}
