package apierror

import (
	"fmt"
	"net/http"
)

// APIError carries the client-facing message and the HTTP status a handler
// should map it to. Message is the only field that reaches the client.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, status int) *APIError {
	return &APIError{Code: code, Message: message, HTTPStatus: status}
}

func BadRequest(message string) *APIError {
	return New("BAD_REQUEST", message, http.StatusBadRequest)
}

func Unauthorized(message string) *APIError {
	return New("UNAUTHORIZED", message, http.StatusUnauthorized)
}

func Conflict(message string) *APIError {
	return New("CONFLICT", message, http.StatusConflict)
}

func NotFound(message string) *APIError {
	return New("NOT_FOUND", message, http.StatusNotFound)
}
