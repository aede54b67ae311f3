package dto

import "github.com/tawan/eduadmin/internal/app/models"

// CreateClassroomRequest carries a new classroom offering. The instructor
// is taken from the authenticated identity.
type CreateClassroomRequest struct {
	CourseID string `json:"course_id" binding:"required"`
	Year     int    `json:"year" binding:"required"`
	Semester int    `json:"semester" binding:"required"`
	Section  int    `json:"section" binding:"required"`
}

// UpdateScheduleRequest carries classroom times as HH:MM strings
type UpdateScheduleRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	LateAfter string `json:"late_after" binding:"required"`
}

// ScheduleResponse reports the updated schedule
type ScheduleResponse struct {
	ClassroomID int64           `json:"classroom_id"`
	Schedule    models.Schedule `json:"schedule"`
}

// AddMembersRequest carries the student ids to enroll in a classroom
type AddMembersRequest struct {
	Students []string `json:"students" binding:"required"`
}

// AddMembersResponse reports per-student enrollment outcomes plus the
// refreshed member list
type AddMembersResponse struct {
	Message  string                   `json:"message"`
	Inserted []string                 `json:"inserted"`
	Skipped  []string                 `json:"skipped"`
	Data     []models.ClassroomMember `json:"data"`
}
