// File: internal/model/project.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Project status values. A project leaves the listing through the active
// flag, never through a status.
const (
	StatusDraft     = "Draft"
	StatusActive    = "Active"
	StatusPaused    = "Paused"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

type Project struct {
	ID          string     `db:"id" json:"id"`
	Name        string     `db:"name" json:"name"`
	Description *string    `db:"description" json:"description,omitempty"`
	Status      string     `db:"status" json:"status"`
	StartDate   *time.Time `db:"start_date" json:"start_date,omitempty"`
	EndDate     *time.Time `db:"end_date" json:"end_date,omitempty"`
	UserID      string     `db:"user_id" json:"user_id"`
	Active      bool       `db:"active" json:"active"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}

// NewProject builds a project with a generated id and both timestamps
// stamped. An empty status falls back to Draft.
func NewProject(name string, description *string, status string, startDate, endDate *time.Time, userID string) *Project {
	if status == "" {
		status = StatusDraft
	}
	now := time.Now().UTC()
	return &Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Status:      status,
		StartDate:   startDate,
		EndDate:     endDate,
		UserID:      userID,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ValidStatus reports whether s belongs to the fixed status set.
func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusActive, StatusPaused, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Update replaces the mutable fields and restamps updated_at.
func (p *Project) Update(name string, description *string, startDate, endDate *time.Time) {
	p.Name = name
	p.Description = description
	p.StartDate = startDate
	p.EndDate = endDate
	p.UpdatedAt = time.Now().UTC()
}

// ChangeStatus moves the project to a new status and restamps updated_at.
func (p *Project) ChangeStatus(status string) {
	p.Status = status
	p.UpdatedAt = time.Now().UTC()
}

// Deactivate flips the soft-delete flag.
func (p *Project) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now().UTC()
}
