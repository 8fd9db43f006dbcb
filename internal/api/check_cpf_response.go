// File: internal/api/check_cpf_response.go
package api

// swagger:model api.CheckCPFResponse
type CheckCPFResponse struct {
	Valid  bool `json:"valid" example:"true"`
	Exists bool `json:"exists" example:"false"`
}
