package dto

// ErrorResponse is the uniform error body produced at the HTTP boundary.
// Details is only populated in non-release mode.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}
