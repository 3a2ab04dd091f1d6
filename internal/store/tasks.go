package store

import (
	"slices"
	"strconv"

	"github.com/dori/gestor/internal/model"
	"go.uber.org/zap"
)

// TasksKey is the storage key of the task collection
const TasksKey = "tareas"

// DeleteTaskPrompt is the question asked before a task is removed
const DeleteTaskPrompt = "Are you sure you want to delete this task?"

func taskID(t model.Task) int { return t.ID }

// NewTaskBinding binds the task collection to storage with the sample tasks as seed
func NewTaskBinding(storage Storage, opts ...Option) *Binding[model.Task] {
	return NewBinding(storage, TasksKey, SeedTasks, opts...)
}

// TaskStore owns the task collection and the task add/edit form
type TaskStore struct {
	collection[model.Task]
	form Form[model.TaskDraft]
}

// NewTaskStore creates a store over p. Call Load before any mutation.
func NewTaskStore(p Persister[model.Task], opts ...Option) *TaskStore {
	return &TaskStore{
		collection: newCollection(p, buildOptions(opts)),
		form:       newForm(model.EmptyTaskDraft),
	}
}

// Load reads the persisted tasks
func (s *TaskStore) Load() error {
	return s.load()
}

// Tasks returns a copy of all tasks in insertion order
func (s *TaskStore) Tasks() []model.Task {
	return s.all()
}

// Get returns the task with id
func (s *TaskStore) Get(id int) (model.Task, bool) {
	i := indexByID(s.items, id, taskID)
	if i < 0 {
		return model.Task{}, false
	}
	return s.items[i], true
}

// Create validates the draft and appends a task with the next free id
func (s *TaskStore) Create(draft model.TaskDraft) (model.Task, error) {
	if !s.loaded {
		return model.Task{}, ErrNotLoaded
	}
	if err := checkDraft(draft); err != nil {
		return model.Task{}, err
	}

	status := draft.Status
	if status == "" {
		status = model.StatusPending
	}

	task := model.Task{
		ID:      nextID(s.items, taskID),
		Name:    draft.Name,
		Project: draft.Project,
		DueDate: draft.DueDate,
		Status:  status,
	}

	next := append(s.all(), task)
	if err := s.commit(next, OpCreated, strconv.Itoa(task.ID)); err != nil {
		return model.Task{}, err
	}
	s.form.reset()
	return task, nil
}

// Update replaces the editable fields of task id. An empty status keeps the
// current one.
func (s *TaskStore) Update(id int, draft model.TaskDraft) (model.Task, error) {
	if !s.loaded {
		return model.Task{}, ErrNotLoaded
	}
	i := indexByID(s.items, id, taskID)
	if i < 0 {
		return model.Task{}, notFound("task", id)
	}
	if err := checkDraft(draft); err != nil {
		return model.Task{}, err
	}

	next := s.all()
	task := next[i]
	task.Name = draft.Name
	task.Project = draft.Project
	task.DueDate = draft.DueDate
	if draft.Status != "" {
		task.Status = draft.Status
	}
	next[i] = task

	if err := s.commit(next, OpUpdated, strconv.Itoa(id)); err != nil {
		return model.Task{}, err
	}
	s.form.reset()
	return task, nil
}

// Complete forces task id to Completed from any status. Unknown ids and
// already completed tasks are left alone.
func (s *TaskStore) Complete(id int) error {
	if !s.loaded {
		return ErrNotLoaded
	}
	i := indexByID(s.items, id, taskID)
	if i < 0 {
		s.log.Debug("complete ignored, no such task", zap.Int("id", id))
		return nil
	}
	if s.items[i].IsCompleted() {
		return nil
	}

	next := s.all()
	next[i].Status = model.StatusCompleted
	return s.commit(next, OpCompleted, strconv.Itoa(id))
}

// Delete removes task id once confirm agrees. It returns false when the user
// declined, in which case nothing changes.
func (s *TaskStore) Delete(id int, confirm Confirm) (bool, error) {
	if !s.loaded {
		return false, ErrNotLoaded
	}
	i := indexByID(s.items, id, taskID)
	if i < 0 {
		return false, notFound("task", id)
	}
	if confirm == nil || !confirm(DeleteTaskPrompt) {
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
func (s *TaskStore) Form() *Form[model.TaskDraft] {
	return &s.form
}

// StageNew opens the modal with a blank draft
func (s *TaskStore) StageNew() {
	s.form.openNew()
}

// StageEdit opens the modal pre-filled from task id
func (s *TaskStore) StageEdit(id int) error {
	task, ok := s.Get(id)
	if !ok {
		return notFound("task", id)
	}
	s.form.openEdit(id, task.Draft())
	return nil
}

// Discard closes the modal and drops the draft
func (s *TaskStore) Discard() {
	s.form.reset()
}

// Commit saves the staged draft as a new task or as an edit, depending on how
// the modal was opened. The draft is kept when it is rejected.
func (s *TaskStore) Commit() (model.Task, error) {
	if s.form.Mode() == FormEdit {
		return s.Update(s.form.EditingID(), s.form.Draft())
	}
	return s.Create(s.form.Draft())
}
