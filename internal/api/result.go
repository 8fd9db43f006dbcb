// File: internal/api/result.go
package api

// Result is the outcome envelope every service operation returns: success
// with a payload, success with no payload, or failure with one or more
// user-facing messages. Services never hand raw errors to the HTTP layer.
// swagger:model api.Result
type Result struct {
	Success  bool     `json:"success" example:"true"`
	Data     any      `json:"data,omitempty"`
	Messages []string `json:"messages,omitempty"`
}

// Ok wraps a payload in a successful result.
func Ok(data any) *Result {
	return &Result{Success: true, Data: data}
}

// NoContent is a successful result without a payload.
func NoContent() *Result {
	return &Result{Success: true}
}

// Fail builds a failure result carrying the given messages.
func Fail(messages ...string) *Result {
	return &Result{Success: false, Messages: messages}
}
