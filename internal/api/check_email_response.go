// File: internal/api/check_email_response.go
package api

// swagger:model api.CheckEmailResponse
type CheckEmailResponse struct {
	Exists bool `json:"exists" example:"false"`
}
