// File: internal/api/project_response.go
package api

import (
	"time"

	"project-board/internal/model"
)

// swagger:model api.ProjectResponse
type ProjectResponse struct {
	ID          string     `json:"id" example:"a4f9a7b4-55b1-4d2e-9f3a-0d6a1f3b9c21"`
	Name        string     `json:"name" example:"Website redesign"`
	Description *string    `json:"description,omitempty" example:"Refresh the landing pages"`
	Status      string     `json:"status" example:"Draft"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	UserID      string     `json:"user_id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Active      bool       `json:"active" example:"true"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewProjectResponse maps a project entity to its transfer shape.
func NewProjectResponse(p *model.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		UserID:      p.UserID,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
