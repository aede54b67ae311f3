package dto

import (
	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/pkg/bulk"
)

// CreateCourseRequest carries a single admin-created course
type CreateCourseRequest struct {
	CourseID     string `json:"course_id" binding:"required"`
	CourseName   string `json:"course_name" binding:"required"`
	InstructorID string `json:"instructor_id" binding:"required"`
}

// UpdateCourseRequest carries a course edit
type UpdateCourseRequest struct {
	CourseName   string  `json:"course_name" binding:"required"`
	InstructorID *string `json:"instructor_id"`
}

// BulkCourseRow is one candidate row of a CSV course import
type BulkCourseRow struct {
	CourseID   string `json:"course_id"`
	CourseName string `json:"course_name"`
}

// BulkCourseImportRequest wraps the course rows, matching the frontend
// payload shape {courses: [...]}
type BulkCourseImportRequest struct {
	Courses []BulkCourseRow `json:"courses"`
}

// SkippedCourse is a rejected course row with its reason
type SkippedCourse struct {
	CourseID   string      `json:"course_id"`
	CourseName string      `json:"course_name"`
	Reason     bulk.Reason `json:"reason"`
}

// BulkCourseImportResponse reports the outcome of a course import batch
type BulkCourseImportResponse struct {
	Message  string          `json:"message"`
	Inserted []models.Course `json:"inserted"`
	Skipped  []SkippedCourse `json:"skipped"`
}

// CourseWithStudents is the course detail view including the students
// enrolled in any of its classrooms
type CourseWithStudents struct {
	Course   *models.Course         `json:"course"`
	Students []models.CourseStudent `json:"students"`
}
