// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency.
// Services return *Error values; handlers translate them into the JSON envelope
// {message, errors?} with the matching HTTP status.
package apierror

import "net/http"

// Envelope is the canonical error body for all 4xx/5xx HTTP responses.
type Envelope struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func New(msg string) *Envelope {
	return &Envelope{Message: msg}
}

// Error is a typed service-layer error carrying the HTTP status it maps to.
type Error struct {
	Status  int
	Message string
	Fields  map[string]string
}

func (e *Error) Error() string { return e.Message }

// Envelope converts the typed error into its wire representation.
func (e *Error) Envelope() *Envelope {
	return &Envelope{Message: e.Message, Errors: e.Fields}
}

// NotFound → 404.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Validation → 422 with a per-field error map.
func Validation(fields map[string]string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: "Error de validacion", Fields: fields}
}

// ValidationField → 422 with a single field error.
func ValidationField(field, msg string) *Error {
	return Validation(map[string]string{field: msg})
}

// Conflict → 422 with a message only (dependency-blocked delete).
func Conflict(msg string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: msg}
}

// Forbidden → 403 (role or ownership checks).
func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

// Unauthorized → 401.
func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}
