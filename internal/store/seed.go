package store

import "github.com/dori/gestor/internal/model"

// SeedTasks returns the sample tasks written on first run
func SeedTasks() []model.Task {
	return []model.Task{
		{ID: 1, Name: "Design interface", Project: "CRM Web App", DueDate: "2025-06-01", Status: model.StatusPending},
		{ID: 2, Name: "Code review", Project: "Accounting System", DueDate: "2025-06-05", Status: model.StatusInProgress},
		{ID: 3, Name: "Present report", Project: "Internal Audit", DueDate: "2025-06-10", Status: model.StatusPending},
	}
}

// SeedProjects returns the sample projects written on first run
func SeedProjects() []model.Project {
	return []model.Project{
		{
			ID:          1,
			Name:        "Website Redesign",
			Members:     "Juan, María",
			Phone:       "0999999999",
			StartDate:   "2025-05-01",
			EndDate:     "2025-06-01",
			Description: "Refresh of the web interface.",
		},
		{
			ID:          2,
			Name:        "CRM Rollout",
			Members:     "Pedro, Ana",
			Phone:       "0988888888",
			StartDate:   "2025-05-10",
			EndDate:     "2025-07-15",
			Description: "Integrate a CRM for the sales team.",
		},
	}
}
