package model

// ErrorResponse is the body of a request rejected before any lookup ran
type ErrorResponse struct {
	Message string `json:"message"`
}
