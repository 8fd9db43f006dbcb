// File: internal/api/user_response.go
package api

import (
	"time"

	"project-board/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID          string    `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Name        string    `json:"name" example:"Alice Souza"`
	Email       string    `json:"email" example:"alice@example.com"`
	Phone       *string   `json:"phone,omitempty" example:"11987654321"`
	CPF         string    `json:"cpf" example:"52998224725"`
	BirthDate   string    `json:"birth_date" example:"1998-11-25"`
	FirstAccess bool      `json:"first_access" example:"true"`
	Active      bool      `json:"active" example:"true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewUserResponse maps a user entity to its transfer shape.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Phone:       u.Phone,
		CPF:         u.CPF,
		BirthDate:   u.BirthDate.Format("2006-01-02"),
		FirstAccess: u.FirstAccess,
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
