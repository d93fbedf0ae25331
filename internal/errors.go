package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidDate      ErrorCode = "INVALID_DATE"

	ErrCodeDuplicateEmail     ErrorCode = "DUPLICATE_EMAIL"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeUserNotFound       ErrorCode = "USER_NOT_FOUND"

	// Not-found and forbidden are deliberately one code per resource: the
	// response must not reveal whether the row exists for someone else.
	ErrCodeNewsNotFound          ErrorCode = "NEWS_NOT_FOUND_OR_FORBIDDEN"
	ErrCodeTaskNotFound          ErrorCode = "TASK_NOT_FOUND_OR_FORBIDDEN"
	ErrCodeMessagesNotFound      ErrorCode = "MESSAGES_NOT_FOUND"
	ErrCodeConversationsNotFound ErrorCode = "CONVERSATIONS_NOT_FOUND"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	// ErrDuplicateEmail is reported as a plain bad request, matching the
	// register endpoint's contract.
	ErrDuplicateEmail = NewValidationError("email already registered", ErrCodeDuplicateEmail)

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// the caller cannot tell which one occurred.
	ErrInvalidCredentials = NewValidationError("invalid email or password", ErrCodeInvalidCredentials)

	ErrUserNotFound = NewUnauthorizedError("user not found", ErrCodeUserNotFound)

	ErrNewsNotFoundOrForbidden = NewNotFoundError("news not found or access denied", ErrCodeNewsNotFound)
	ErrTaskNotFoundOrForbidden = NewNotFoundError("task not found or access denied", ErrCodeTaskNotFound)
	ErrMessagesNotFound        = NewNotFoundError("messages not found", ErrCodeMessagesNotFound)
	ErrConversationsNotFound   = NewNotFoundError("conversations not found", ErrCodeConversationsNotFound)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
