// File: internal/api/update_project_request.go
package api

// swagger:model api.UpdateProjectRequest
type UpdateProjectRequest struct {
	Name        string  `json:"name" form:"name" validate:"required,max=100" example:"Website redesign"`
	Description *string `json:"description,omitempty" form:"description" validate:"omitempty,max=2000" example:"Refresh the landing pages"`
	StartDate   *string `json:"start_date,omitempty" form:"start_date" validate:"omitempty,datetime=2006-01-02" example:"2025-06-01"`
	EndDate     *string `json:"end_date,omitempty" form:"end_date" validate:"omitempty,datetime=2006-01-02" example:"2025-09-30"`
}
