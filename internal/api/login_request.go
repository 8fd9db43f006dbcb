// File: internal/api/login_request.go
package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	CPF      string `json:"cpf" form:"cpf" validate:"required" example:"52998224725"`
	Password string `json:"password" form:"password" validate:"required" example:"25111998"`
}
