// Package models defines the domain entities backing the administration
// tables. All entities are owned by the relational store; nothing here
// holds state across requests.
package models

import "time"

// Faculty represents a faculty
type Faculty struct {
	FacultyID   int64  `json:"faculty_id"`
	FacultyName string `json:"faculty_name"`
}

// Department represents a department within a faculty
type Department struct {
	DepartmentID   int64   `json:"department_id"`
	DepartmentName string  `json:"department_name"`
	FacultyID      int64   `json:"faculty_id"`
	FacultyName    *string `json:"faculty_name,omitempty"`
}

// User defines the user model based on the 'users' table. UserID is a
// 12-digit numeric string for students.
type User struct {
	UserID       string    `json:"user_id"`
	Password     string    `json:"-"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	BirthDate    time.Time `json:"-"`
	RoleID       int64     `json:"role_id"`
	FacultyID    *int64    `json:"faculty_id,omitempty"`
	DepartmentID *int64    `json:"department_id,omitempty"`
}

// UserDetail is the joined view returned by list and profile endpoints
type UserDetail struct {
	UserID         string  `json:"user_id"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	BirthDate      *string `json:"birth_date,omitempty"`
	RoleID         int64   `json:"role_id"`
	RoleName       string  `json:"role_name"`
	FacultyID      *int64  `json:"faculty_id"`
	FacultyName    *string `json:"faculty_name"`
	DepartmentID   *int64  `json:"department_id"`
	DepartmentName *string `json:"department_name"`
	ProfilePhoto   *string `json:"profile_photo,omitempty"`
}

// UserPhoto is a stored profile photo; the file itself lives under the
// static-serving root and only the relative path is kept here.
type UserPhoto struct {
	ID       int64  `json:"id"`
	UserID   string `json:"user_id"`
	FileName string `json:"file_name"`
	FilePath string `json:"file_path"`
}

// Course represents a course, optionally assigned to an instructor
type Course struct {
	CourseID        string  `json:"course_id"`
	CourseName      string  `json:"course_name"`
	InstructorID    *string `json:"instructor_id"`
	InstructorName  *string `json:"instructor_name,omitempty"`
	InstructorEmail *string `json:"instructor_email,omitempty"`
}

// CourseStudent is a student enrolled in any classroom of a course
type CourseStudent struct {
	StudentID string `json:"student_id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
}

// Classroom is a scheduled offering of a course for a year/semester/section
type Classroom struct {
	ClassroomID  int64   `json:"classroom_id"`
	CourseID     string  `json:"course_id"`
	InstructorID string  `json:"instructor_id"`
	Year         int     `json:"year"`
	Semester     int     `json:"semester"`
	Section      int     `json:"section"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	LateAfter    *string `json:"late_after,omitempty"`
}

// ClassroomSummary is a classroom joined with its course, as listed for
// an instructor
type ClassroomSummary struct {
	ClassroomID int64  `json:"classroom_id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Year        int    `json:"year"`
	Semester    int    `json:"semester"`
	Section     int    `json:"section"`
}

// ClassroomDetail is the full classroom view with schedule and headcount
type ClassroomDetail struct {
	ClassroomID  int64    `json:"classroom_id"`
	SubjectCode  string   `json:"subject_code"`
	SubjectName  string   `json:"subject_name"`
	Section      int      `json:"section"`
	Year         int      `json:"year"`
	Semester     int      `json:"semester"`
	TeacherName  *string  `json:"teacher_name"`
	StudentCount int      `json:"student_count"`
	Schedule     Schedule `json:"schedule"`
}

// Schedule holds classroom times as HH:MM strings
type Schedule struct {
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
	LateAfter *string `json:"late_after"`
}

// Enrollment associates one student with one classroom offering
type Enrollment struct {
	ID          int64  `json:"id"`
	ClassroomID int64  `json:"classroom_id"`
	StudentID   string `json:"student_id"`
}

// ClassroomMember is an enrolled student as listed for a classroom
type ClassroomMember struct {
	StudentID string `json:"student_id"`
	FullName  string `json:"full_name"`
}

// Attendance statuses
const (
	AttendancePresent = "present"
	AttendanceLate    = "late"
	AttendanceAbsent  = "absent"
)

// AttendanceEntry is one per-enrollment status for a classroom date
type AttendanceEntry struct {
	EnrollmentID int64   `json:"enrollment_id"`
	Status       string  `json:"status"`
	Time         *string `json:"time,omitempty"`
}

// AttendanceRecord is the roster row returned for a classroom date: a
// student joined with their recorded status, if any
type AttendanceRecord struct {
	EnrollmentID int64   `json:"enrollment_id"`
	StudentID    string  `json:"student_id"`
	StudentName  string  `json:"student_name"`
	Status       *string `json:"status"`
	Time         *string `json:"time"`
}

// InstructorRef is an entry in the instructor directory shown when
// assigning courses
type InstructorRef struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// StudentRef is a minimal student reference used by search
type StudentRef struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
}
