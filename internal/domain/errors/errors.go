package errors

import (
	"net/http"

	"peeko/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserCodeExhausted = NewBaseError(
		http.StatusInternalServerError,
		"USER_CODE_EXHAUSTED",
		"Could not allocate a unique user code",
		"",
	)

	// Social graph errors
	ErrSelfFriendRequest = NewBaseError(
		http.StatusBadRequest,
		"SELF_FRIEND_REQUEST",
		"You cannot send a friend request to yourself",
		"",
	)

	ErrAlreadyFriends = NewBaseError(
		http.StatusConflict,
		"ALREADY_FRIENDS",
		"You are already friends",
		"",
	)

	ErrFriendRequestNotFound = NewBaseError(
		http.StatusNotFound,
		"FRIEND_REQUEST_NOT_FOUND",
		"Friend request not found",
		"",
	)

	// Messaging errors
	ErrEmptyMessage = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_MESSAGE",
		"Message content cannot be empty",
		"",
	)

	ErrInvalidSourceType = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SOURCE_TYPE",
		"Unsupported message source type",
		"",
	)

	// Device errors
	ErrInvalidCode = NewBaseError(
		http.StatusNotFound,
		"INVALID_CODE",
		"No user owns this code",
		"",
	)

	ErrAlreadyPaired = NewBaseError(
		http.StatusConflict,
		"ALREADY_PAIRED",
		"A device is already paired with this user",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found",
		"",
	)

	ErrInvalidMood = NewBaseError(
		http.StatusBadRequest,
		"INVALID_MOOD",
		"Unsupported mood",
		"",
	)

	// Firmware errors
	ErrFirmwareNotFound = NewBaseError(
		http.StatusNotFound,
		"FIRMWARE_NOT_FOUND",
		"No firmware version published",
		"",
	)

	ErrFirmwareVersionExists = NewBaseError(
		http.StatusConflict,
		"FIRMWARE_VERSION_EXISTS",
		"A firmware version with this number already exists",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Access errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrInvalidAPIKey = NewBaseError(
		http.StatusForbidden,
		"INVALID_API_KEY",
		"Invalid device API key",
		"",
	)

	ErrCrossOrigin = NewBaseError(
		http.StatusForbidden,
		"CROSS_ORIGIN_FORBIDDEN",
		"Cross-origin requests are not allowed",
		"",
	)

	ErrInvalidSignature = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SIGNATURE",
		"Invalid webhook signature",
		"",
	)

	ErrRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests",
		"",
	)

	// Transaction-related errors
	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
