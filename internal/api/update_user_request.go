// File: internal/api/update_user_request.go
package api

// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name  string  `json:"name" form:"name" validate:"required,max=100" example:"Alice Souza"`
	Email string  `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Phone *string `json:"phone,omitempty" form:"phone" validate:"omitempty,min=10,max=15" example:"11987654321"`
}
