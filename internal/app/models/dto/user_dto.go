package dto

import "github.com/tawan/eduadmin/internal/pkg/bulk"

// CreateUserRequest carries a single admin-created user. BirthDate is an
// ISO "YYYY-MM-DD" date; the initial password is derived from it.
type CreateUserRequest struct {
	UserID       string `json:"user_id" binding:"required"`
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	BirthDate    string `json:"birth_date" binding:"required"`
	RoleID       int64  `json:"role_id" binding:"required"`
	FacultyID    *int64 `json:"faculty_id"`
	DepartmentID *int64 `json:"department_id"`
}

// UpdateUserRequest carries an admin edit of an existing user. The user id
// itself never changes; a non-empty Password replaces the credential.
type UpdateUserRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	RoleID       int64  `json:"role_id" binding:"required"`
	FacultyID    *int64 `json:"faculty_id"`
	DepartmentID *int64 `json:"department_id"`
	Password     string `json:"password"`
}

// BulkUserRow is one candidate row of a CSV user import. BirthDate comes
// in as "D/M/YYYY" or "DD/MM/YYYY".
type BulkUserRow struct {
	UserID       string `json:"user_id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email"`
	BirthDate    string `json:"birth_date"`
	RoleID       int64  `json:"role_id"`
	FacultyID    *int64 `json:"faculty_id"`
	DepartmentID *int64 `json:"department_id"`
}

// SkippedUser is a rejected import row with its reason
type SkippedUser struct {
	UserID string      `json:"user_id"`
	Reason bulk.Reason `json:"reason"`
}

// BulkUserImportResponse reports the outcome of a user import batch
type BulkUserImportResponse struct {
	Message       string        `json:"message"`
	InsertedCount int           `json:"insertedCount"`
	SkippedCount  int           `json:"skippedCount"`
	Inserted      []string      `json:"inserted"`
	Skipped       []SkippedUser `json:"skipped"`
	List          interface{}   `json:"list"`
}

// UpdateProfileRequest carries a self-service profile edit. FacultyID and
// DepartmentID are applied only when present in the request body.
type UpdateProfileRequest struct {
	FullName     string        `json:"full_name" binding:"required"`
	Email        string        `json:"email" binding:"required"`
	FacultyID    OptionalInt64 `json:"faculty_id"`
	DepartmentID OptionalInt64 `json:"department_id"`
	Password     string        `json:"password"`
}
