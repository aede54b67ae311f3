package services

import (
	"github.com/tawan/eduadmin/internal/app/repositories"
	"github.com/tawan/eduadmin/internal/pkg/auth"
	"github.com/tawan/eduadmin/internal/pkg/filestorage"
)

// Services aggregates every service
type Services struct {
	Auth        *AuthService
	Roles       *RoleService
	Faculties   *FacultyService
	Departments *DepartmentService
	Users       *UserService
	Profiles    *ProfileService
	Courses     *CourseService
	Classrooms  *ClassroomService
	Attendance  *AttendanceService
}

// NewServices wires all services over the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService, files *filestorage.LocalStorage) *Services {
	return &Services{
		Auth:        NewAuthService(repos.Users, jwtService),
		Roles:       NewRoleService(repos.Roles),
		Faculties:   NewFacultyService(repos.Faculties),
		Departments: NewDepartmentService(repos.Departments),
		Users:       NewUserService(repos.Users, repos.Faculties, repos.Departments),
		Profiles:    NewProfileService(repos.Users, repos.Photos, files, repos.Faculties, repos.Departments),
		Courses:     NewCourseService(repos.Courses, repos.Users),
		Classrooms:  NewClassroomService(repos.Classrooms, repos.Enrollments, repos.Courses),
		Attendance:  NewAttendanceService(repos.Attendance, repos.Classrooms),
	}
}
