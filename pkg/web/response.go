// Package web defines common components for a web application.
package web

import (
	"github.com/go-playground/validator/v10"
)

// JSONError provides type for explicit json encoded error response.
type JSONError struct {
	Error string `json:"error"`
}

// Error wraps a given err into json friendly struct.
func Error(err error) JSONError {
	return JSONError{Error: err.Error()}
}

// Response holds the common response type for all APIs. Fields carries
// per-field validation messages when a form submission is rejected.
type Response struct {
	Data   any                 `json:"data,omitempty"`
	Error  string              `json:"error,omitempty"`
	Fields map[string][]string `json:"fields,omitempty"`
}

// GetErrorMsg translates a binding validation error into a short
// human-readable suffix for the offending field name.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " field is required"
	case "min":
		return " field value is below minimum"
	case "max":
		return " field value is above maximum"
	case "oneof":
		return " field must be one of " + fe.Param()
	default:
		return " field is invalid"
	}
}
