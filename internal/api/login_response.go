// File: internal/api/login_response.go
package api

// LoginResponse is the successful login payload. Token issuance is deferred:
// the field is always empty.
// swagger:model api.LoginResponse
type LoginResponse struct {
	ID          string `json:"id" example:"7c9e6679-7425-40de-944b-e07fc1f90ae7"`
	Name        string `json:"name" example:"Alice Souza"`
	Email       string `json:"email" example:"alice@example.com"`
	FirstAccess bool   `json:"first_access" example:"true"`
	Token       string `json:"token" example:""`
}
