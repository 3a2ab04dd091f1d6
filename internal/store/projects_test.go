package store

import (
	"testing"

	"github.com/dori/gestor/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCreate(t *testing.T) {
	s, storage := newProjectStore(t, "")

	project, err := s.Create(validProjectDraft())
	require.NoError(t, err)
	assert.Equal(t, 3, project.ID)
	assert.Equal(t, validProjectDraft(), project.Draft())

	reloaded := NewProjectStore(NewProjectBinding(storage))
	require.NoError(t, reloaded.Load())
	projects := reloaded.Projects()
	require.Len(t, projects, 3)
	assert.Equal(t, project, projects[2])
}

func TestProjectCreateOnEmpty(t *testing.T) {
	s, _ := newProjectStore(t, "[]")

	project, err := s.Create(validProjectDraft())
	require.NoError(t, err)
	assert.Equal(t, 1, project.ID)
}

func TestProjectAllFieldsRequired(t *testing.T) {
	fields := map[string]func(*model.ProjectDraft){
		"name":        func(d *model.ProjectDraft) { d.Name = "" },
		"members":     func(d *model.ProjectDraft) { d.Members = "" },
		"phone":       func(d *model.ProjectDraft) { d.Phone = "" },
		"startDate":   func(d *model.ProjectDraft) { d.StartDate = "" },
		"endDate":     func(d *model.ProjectDraft) { d.EndDate = "" },
		"description": func(d *model.ProjectDraft) { d.Description = "" },
	}

	for field, clear := range fields {
		t.Run(field, func(t *testing.T) {
			s, _ := newProjectStore(t, "")
			before := s.Projects()

			draft := validProjectDraft()
			clear(&draft)

			_, err := s.Create(draft)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, []string{field}, verr.Missing)

			_, err = s.Update(1, draft)
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, []string{field}, verr.Missing)

			assert.Equal(t, before, s.Projects())
		})
	}
}

func TestProjectUpdateMergesAndKeepsID(t *testing.T) {
	s, _ := newProjectStore(t, "")

	draft := validProjectDraft()
	project, err := s.Update(2, draft)
	require.NoError(t, err)
	assert.Equal(t, 2, project.ID)
	assert.Equal(t, draft, project.Draft())

	projects := s.Projects()
	assert.Equal(t, project, projects[1])
	assert.Equal(t, SeedProjects()[0], projects[0])
}

func TestProjectUpdateNotFound(t *testing.T) {
	s, _ := newProjectStore(t, "")

	_, err := s.Update(5, validProjectDraft())
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "Project 5: record not found", Message(err))
}

func TestProjectDelete(t *testing.T) {
	s, storage := newProjectStore(t, "")
	stored := storage.items[ProjectsKey]

	deleted, err := s.Delete(1, no)
	require.NoError(t, err)
	assert.False(t, deleted)
	assert.Equal(t, stored, storage.items[ProjectsKey])

	var asked string
	deleted, err = s.Delete(1, func(prompt string) bool {
		asked = prompt
		return true
	})
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, DeleteProjectPrompt, asked)

	projects := s.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, 2, projects[0].ID)

	_, err = s.Delete(1, Yes)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectStagingFlow(t *testing.T) {
	s, _ := newProjectStore(t, "")
	form := s.Form()

	require.NoError(t, s.StageEdit(1))
	assert.Equal(t, SeedProjects()[0].Draft(), form.Draft())

	d := form.Draft()
	d.Phone = "0911111111"
	form.Set(d)
	project, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, 1, project.ID)
	assert.Equal(t, "0911111111", project.Phone)
	assert.False(t, form.IsOpen())

	s.StageNew()
	assert.Equal(t, model.ProjectDraft{}, form.Draft())
	form.Set(validProjectDraft())
	project, err = s.Commit()
	require.NoError(t, err)
	assert.Equal(t, 3, project.ID)

	s.StageNew()
	form.Set(validProjectDraft())
	s.Discard()
	assert.Len(t, s.Projects(), 3)
	assert.Equal(t, model.ProjectDraft{}, form.Draft())
}
