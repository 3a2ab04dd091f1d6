package model

// Project is a collaborative project with its team and schedule
type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Members     string `json:"members"` // comma-separated names
	Phone       string `json:"phone"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Draft returns the editable fields of the project
func (p Project) Draft() ProjectDraft {
	return ProjectDraft{
		Name:        p.Name,
		Members:     p.Members,
		Phone:       p.Phone,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Description: p.Description,
	}
}

// ProjectDraft holds the unsaved values of the add/edit project form.
// Every field is mandatory.
type ProjectDraft struct {
	Name        string `json:"name" validate:"required"`
	Members     string `json:"members" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	StartDate   string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate     string `json:"endDate" validate:"required,datetime=2006-01-02"`
	Description string `json:"description" validate:"required"`
}
