// Package web defines common components for a web application.
package web

import "github.com/go-playground/validator/v10"

// Response holds the common error response type for all APIs.
//
// Successful card API responses return the entity (or entity array) directly,
// so the envelope only ever carries errors.
type Response struct {
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// Error wraps a given err into a json friendly struct.
func Error(err error) Response {
	return Response{Error: err.Error()}
}

// GetErrorMsg returns a human readable message for a failed
// validation of a bound request field.
func GetErrorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return " is required"
	case "min":
		return " must be greater or equal to " + fe.Param()
	case "max":
		return " must be less or equal to " + fe.Param()
	default:
		return " is invalid"
	}
}
