// File: internal/api/create_user_request.go
package api

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name      string  `json:"name" form:"name" validate:"required,max=100" example:"Alice Souza"`
	Email     string  `json:"email" form:"email" validate:"required,email" example:"alice@example.com"`
	Phone     *string `json:"phone,omitempty" form:"phone" validate:"omitempty,min=10,max=15" example:"11987654321"`
	CPF       string  `json:"cpf" form:"cpf" validate:"required,cpf" example:"52998224725"`
	BirthDate string  `json:"birth_date" form:"birth_date" validate:"required,datetime=2006-01-02" example:"1998-11-25"`
}
