package apperrors

import (
	"fmt"
	"net/http"
)

// AppError carries the HTTP status an error should surface as.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError reports a uniqueness or shape violation on create.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusConflict, Message: message}
}

func NewNotFoundError(resource string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: resource + " not found"}
}

// NewMissingParamError produces the fixed 400 body shape used by every
// by_* endpoint: {"error": "<param> parameter required"}.
func NewMissingParamError(param string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: param + " parameter required"}
}

// NewDanglingReferenceError names the user whose team reference could not
// be resolved during leaderboard recomputation.
func NewDanglingReferenceError(userID, teamID string) *AppError {
	return &AppError{
		Code:    http.StatusUnprocessableEntity,
		Message: fmt.Sprintf("user %s references unknown team %s", userID, teamID),
	}
}
