package store

import (
	"slices"
	"strconv"

	"github.com/dori/gestor/internal/model"
	"go.uber.org/zap"
)

// ProjectsKey is the storage key of the project collection
const ProjectsKey = "proyectos"

// DeleteProjectPrompt is the question asked before a project is removed
const DeleteProjectPrompt = "Are you sure you want to delete this project?"

func projectID(p model.Project) int { return p.ID }

// NewProjectBinding binds the project collection to storage with the sample projects as seed
func NewProjectBinding(storage Storage, opts ...Option) *Binding[model.Project] {
	return NewBinding(storage, ProjectsKey, SeedProjects, opts...)
}

// ProjectStore owns the project collection and the project add/edit form
type ProjectStore struct {
	collection[model.Project]
	form Form[model.ProjectDraft]
}

// NewProjectStore creates a store over p. Call Load before any mutation.
func NewProjectStore(p Persister[model.Project], opts ...Option) *ProjectStore {
	return &ProjectStore{
		collection: newCollection(p, buildOptions(opts)),
		form:       newForm(func() model.ProjectDraft { return model.ProjectDraft{} }),
	}
}

// Load reads the persisted projects
func (s *ProjectStore) Load() error {
	return s.load()
}

// Projects returns a copy of all projects in insertion order
func (s *ProjectStore) Projects() []model.Project {
	return s.all()
}

// Get returns the project with id
func (s *ProjectStore) Get(id int) (model.Project, bool) {
	i := indexByID(s.items, id, projectID)
	if i < 0 {
		return model.Project{}, false
	}
	return s.items[i], true
}

// Create validates the draft and appends a project with the next free id
func (s *ProjectStore) Create(draft model.ProjectDraft) (model.Project, error) {
	if !s.loaded {
		return model.Project{}, ErrNotLoaded
	}
	if err := checkDraft(draft); err != nil {
		return model.Project{}, err
	}

	project := applyProjectDraft(model.Project{ID: nextID(s.items, projectID)}, draft)

	next := append(s.all(), project)
	if err := s.commit(next, OpCreated, strconv.Itoa(project.ID)); err != nil {
		return model.Project{}, err
	}
	s.form.reset()
	return project, nil
}

// Update merges the draft over project id. The id never changes.
func (s *ProjectStore) Update(id int, draft model.ProjectDraft) (model.Project, error) {
	if !s.loaded {
		return model.Project{}, ErrNotLoaded
	}
	i := indexByID(s.items, id, projectID)
	if i < 0 {
		return model.Project{}, notFound("project", id)
	}
	if err := checkDraft(draft); err != nil {
		return model.Project{}, err
	}

	next := s.all()
	next[i] = applyProjectDraft(next[i], draft)

	if err := s.commit(next, OpUpdated, strconv.Itoa(id)); err != nil {
		return model.Project{}, err
	}
	s.form.reset()
	return next[i], nil
}

// Delete removes project id once confirm agrees. It returns false when the
// user declined, in which case nothing changes.
func (s *ProjectStore) Delete(id int, confirm Confirm) (bool, error) {
	if !s.loaded {
		return false, ErrNotLoaded
	}
	i := indexByID(s.items, id, projectID)
	if i < 0 {
		return false, notFound("project", id)
	}
	if confirm == nil || !confirm(DeleteProjectPrompt) {
		s.log.Debug("delete declined", zap.Int("id", id))
		return false, nil
	}

	next := slices.Delete(s.all(), i, i+1)
	if err := s.commit(next, OpDeleted, strconv.Itoa(id)); err != nil {
		return false, err
	}
	if s.form.Mode() == FormEdit && s.form.EditingID() == id {
		s.form.reset()
	}
	return true, nil
}

// Form exposes the staged draft of the add/edit modal
func (s *ProjectStore) Form() *Form[model.ProjectDraft] {
	return &s.form
}

// StageNew opens the modal with a blank draft
func (s *ProjectStore) StageNew() {
	s.form.openNew()
}

// StageEdit opens the modal pre-filled from project id
func (s *ProjectStore) StageEdit(id int) error {
	project, ok := s.Get(id)
	if !ok {
		return notFound("project", id)
	}
	s.form.openEdit(id, project.Draft())
	return nil
}

// Discard closes the modal and drops the draft
func (s *ProjectStore) Discard() {
	s.form.reset()
}

// Commit saves the staged draft as a new project or as an edit
func (s *ProjectStore) Commit() (model.Project, error) {
	if s.form.Mode() == FormEdit {
		return s.Update(s.form.EditingID(), s.form.Draft())
	}
	return s.Create(s.form.Draft())
}

func applyProjectDraft(p model.Project, d model.ProjectDraft) model.Project {
	p.Name = d.Name
	p.Members = d.Members
	p.Phone = d.Phone
	p.StartDate = d.StartDate
	p.EndDate = d.EndDate
	p.Description = d.Description
	return p
}
