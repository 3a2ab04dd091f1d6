package model

// Status represents where a task is in its workflow
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
)

// Statuses lists every status in workflow order
func Statuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusCompleted}
}

// Label returns the display name for a status
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusInProgress:
		return "In progress"
	case StatusCompleted:
		return "Completed"
	default:
		return string(s)
	}
}

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Next returns the following status, wrapping back to Pending after Completed
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusPending
	}
}

// Prev is the inverse of Next
func (s Status) Prev() Status {
	switch s {
	case StatusCompleted:
		return StatusInProgress
	case StatusInProgress:
		return StatusPending
	default:
		return StatusCompleted
	}
}

// Task is a unit of work tracked against a free-text project label
type Task struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Project string `json:"project"`
	DueDate string `json:"dueDate"` // YYYY-MM-DD
	Status  Status `json:"status"`
}

// IsCompleted returns true once the task has been marked done
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// Draft returns the editable fields of the task
func (t Task) Draft() TaskDraft {
	return TaskDraft{
		Name:    t.Name,
		Project: t.Project,
		DueDate: t.DueDate,
		Status:  t.Status,
	}
}

// TaskDraft holds the unsaved values of the add/edit task form
type TaskDraft struct {
	Name    string `json:"name" validate:"required"`
	Project string `json:"project" validate:"required"`
	DueDate string `json:"dueDate" validate:"required,datetime=2006-01-02"`
	Status  Status `json:"status" validate:"omitempty,oneof=Pending InProgress Completed"`
}

// EmptyTaskDraft is the blank form shown when adding a task
func EmptyTaskDraft() TaskDraft {
	return TaskDraft{Status: StatusPending}
}
