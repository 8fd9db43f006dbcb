// File: internal/api/update_project_status_request.go
package api

// swagger:model api.UpdateProjectStatusRequest
type UpdateProjectStatusRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=Draft Active Paused Completed Cancelled" example:"Active"`
}
