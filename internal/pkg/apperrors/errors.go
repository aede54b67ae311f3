package apperrors

import "errors"

// Common errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("conflict")
	ErrValidationFailed   = errors.New("validation failed")
	ErrBadRequest         = errors.New("bad request")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("invalid user id or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

// User errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrUserIDAlreadyExists = errors.New("user id already exists")
	ErrEmailAlreadyExists  = errors.New("email already exists")
	ErrInvalidStudentID    = errors.New("student user id must be a 12-digit number")
)

// Faculty / department errors
var (
	ErrFacultyNotFound         = errors.New("faculty not found")
	ErrFacultyAlreadyExists    = errors.New("faculty with this name already exists")
	ErrDepartmentNotFound      = errors.New("department not found")
	ErrDepartmentAlreadyExists = errors.New("department with this name already exists in the faculty")
)

// Course / classroom errors
var (
	ErrCourseNotFound         = errors.New("course not found")
	ErrCourseAlreadyExists    = errors.New("course id already exists")
	ErrInstructorNotFound     = errors.New("instructor not found or user is not an instructor")
	ErrClassroomNotFound      = errors.New("classroom not found")
	ErrClassroomAlreadyExists = errors.New("classroom already exists for this course, year, semester and section")
	ErrRoleNotFound           = errors.New("role not found")
)

// CustomError carries a human-readable message on top of a sentinel error
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a 400-class error with a specific message
func NewValidationError(message string) error {
	return &CustomError{Err: ErrValidationFailed, Message: message}
}

// NewConflictError creates a 409-class error with a specific message
func NewConflictError(message string) error {
	return &CustomError{Err: ErrConflict, Message: message}
}

// NewForbiddenError creates a 403-class error with a specific message
func NewForbiddenError(message string) error {
	return &CustomError{Err: ErrPermissionDenied, Message: message}
}

// NewNotFoundError creates a 404-class error with a specific message
func NewNotFoundError(message string) error {
	return &CustomError{Err: ErrNotFound, Message: message}
}
