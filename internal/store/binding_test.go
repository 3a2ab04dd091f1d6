package store

import (
	"testing"

	"github.com/dori/gestor/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindingSeedsWhenAbsent(t *testing.T) {
	storage := newMemStorage()
	b := NewTaskBinding(storage)

	tasks, err := b.Load()
	require.NoError(t, err)
	assert.Equal(t, SeedTasks(), tasks)

	// The seed is written back immediately
	stored, ok := storage.items[TasksKey]
	require.True(t, ok)

	again, err := NewTaskBinding(storage).Load()
	require.NoError(t, err)
	assert.Equal(t, tasks, again)
	assert.Equal(t, stored, storage.items[TasksKey])
}

func TestBindingSeedsWhenMalformed(t *testing.T) {
	for name, raw := range map[string]string{
		"garbage":    "{not json",
		"object":     `{"id":1}`,
		"null":       "null",
		"wrong type": `[{"id":"one"}]`,
		"truncated":  `[{"id":1,"name":"x"`,
	} {
		t.Run(name, func(t *testing.T) {
			storage := newMemStorage()
			storage.items[ProjectsKey] = raw

			projects, err := NewProjectBinding(storage).Load()
			require.NoError(t, err)
			assert.Equal(t, SeedProjects(), projects)
			assert.NotEqual(t, raw, storage.items[ProjectsKey])
		})
	}
}

func TestBindingKeepsEmptyCollection(t *testing.T) {
	storage := newMemStorage()
	storage.items[TasksKey] = "[]"

	tasks, err := NewTaskBinding(storage).Load()
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
	assert.Zero(t, storage.writes)
}

func TestBindingSaveBeforeLoad(t *testing.T) {
	storage := newMemStorage()
	storage.items[TasksKey] = `[{"id":7,"name":"keep me","project":"p","dueDate":"2025-01-01","status":"Pending"}]`

	b := NewTaskBinding(storage)
	err := b.Save(nil)
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.Contains(t, storage.items[TasksKey], "keep me")
}

func TestBindingRoundTripIsFixedPoint(t *testing.T) {
	storage := newMemStorage()
	b := NewProjectBinding(storage)

	projects, err := b.Load()
	require.NoError(t, err)
	before := storage.items[ProjectsKey]

	require.NoError(t, b.Save(projects))
	assert.Equal(t, before, storage.items[ProjectsKey])

	reloaded, err := NewProjectBinding(storage).Load()
	require.NoError(t, err)
	require.NoError(t, b.Save(reloaded))
	assert.Equal(t, before, storage.items[ProjectsKey])
}

func TestBindingSavesNilAsEmptyArray(t *testing.T) {
	storage := newMemStorage()
	storage.items[AccountsKey] = "[]"
	b := NewAccountBinding(storage)

	_, err := b.Load()
	require.NoError(t, err)
	require.NoError(t, b.Save(nil))
	assert.Equal(t, "[]", storage.items[AccountsKey])
}

func TestBindingAccountsSeedEmpty(t *testing.T) {
	storage := newMemStorage()

	accounts, err := NewAccountBinding(storage).Load()
	require.NoError(t, err)
	assert.Equal(t, []model.Account{}, accounts)
	assert.Equal(t, "[]", storage.items[AccountsKey])
}

func TestBindingLoadFailsWhenSeedCannotBeWritten(t *testing.T) {
	storage := newMemStorage()
	storage.failSet = errDiskFull
	b := NewTaskBinding(storage)

	_, err := b.Load()
	assert.ErrorIs(t, err, errDiskFull)
	assert.ErrorIs(t, b.Save(nil), ErrNotLoaded)
}

func TestDecodeCollectionRejectsNonArray(t *testing.T) {
	_, err := decodeCollection[model.Task](" \n null")
	assert.ErrorIs(t, err, ErrMalformed)

	tasks, err := decodeCollection[model.Task](" [] ")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
