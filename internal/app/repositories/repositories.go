// Package repositories contains the data access layer. Each repository
// owns the SQL for one aggregate and maps driver errors to the
// application's sentinel errors.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories aggregates every repository over one connection pool
type Repositories struct {
	Roles       *RoleRepository
	Faculties   *FacultyRepository
	Departments *DepartmentRepository
	Users       *UserRepository
	Photos      *PhotoRepository
	Courses     *CourseRepository
	Classrooms  *ClassroomRepository
	Enrollments *EnrollmentRepository
	Attendance  *AttendanceRepository
}

// NewRepositories creates all repositories backed by the given pool
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Roles:       NewRoleRepository(pool),
		Faculties:   NewFacultyRepository(pool),
		Departments: NewDepartmentRepository(pool),
		Users:       NewUserRepository(pool),
		Photos:      NewPhotoRepository(pool),
		Courses:     NewCourseRepository(pool),
		Classrooms:  NewClassroomRepository(pool),
		Enrollments: NewEnrollmentRepository(pool),
		Attendance:  NewAttendanceRepository(pool),
	}
}
