// File: internal/api/create_project_request.go
package api

// swagger:model api.CreateProjectRequest
type CreateProjectRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,max=100" example:"Website redesign"`
	Description *string `json:"description,omitempty" form:"description" validate:"omitempty,max=2000" example:"Refresh the landing pages"`
	Status      string  `json:"status,omitempty" form:"status" validate:"omitempty,oneof=Draft Active Paused Completed Cancelled" example:"Draft"`
	StartDate   *string `json:"start_date,omitempty" form:"start_date" validate:"omitempty,datetime=2006-01-02" example:"2025-06-01"`
	EndDate     *string `json:"end_date,omitempty" form:"end_date" validate:"omitempty,datetime=2006-01-02" example:"2025-09-30"`
	UserID      string  `json:"user_id" form:"user_id" validate:"required,uuid4" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
}
