// File: internal/api/change_password_request.go
package api

// ChangePasswordRequest carries the first-access password rotation. The new
// password must differ from the current one and from the default secret.
// swagger:model api.ChangePasswordRequest
type ChangePasswordRequest struct {
	CPF             string `json:"cpf" form:"cpf" validate:"required" example:"52998224725"`
	CurrentPassword string `json:"current_password" form:"current_password" validate:"required" example:"25111998"`
	NewPassword     string `json:"new_password" form:"new_password" validate:"required,min=8" example:"NewSecret456!"`
}
