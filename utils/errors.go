package utils

import (
	"errors"
	"net/http"
)

// CustomError carries the HTTP status a failure should be reported with.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError builds a CustomError with the given status.
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

func BadRequest(message string) *CustomError {
	return NewCustomError(http.StatusBadRequest, message)
}

func NotFound(message string) *CustomError {
	return NewCustomError(http.StatusNotFound, message)
}

// StatusOf returns the HTTP status carried by err, 500 when it carries none.
func StatusOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return http.StatusInternalServerError
}
