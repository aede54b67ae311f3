package routes

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tawan/eduadmin/internal/app/controllers"
	"github.com/tawan/eduadmin/internal/middleware"
)

func registeredRoutes(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	SetupRouter(router, &Controllers{
		Auth:        controllers.NewAuthController(nil),
		Roles:       controllers.NewRoleController(nil),
		Faculties:   controllers.NewFacultyController(nil),
		Departments: controllers.NewDepartmentController(nil),
		Users:       controllers.NewUserController(nil),
		Profiles:    controllers.NewProfileController(nil),
		Courses:     controllers.NewCourseController(nil),
		Classrooms:  controllers.NewClassroomController(nil),
		Attendance:  controllers.NewAttendanceController(nil),
	}, middleware.NewAuthMiddleware(nil))

	routes := map[string]bool{}
	for _, r := range router.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	return routes
}

func TestSetupRouterMountsExpectedPaths(t *testing.T) {
	routes := registeredRoutes(t)

	expected := []string{
		"POST /login",
		"GET /roles",
		"GET /users",
		"POST /users/bulk",
		"POST /admin/courses/bulk",
		"GET /instructor/classrooms",
		"PUT /instructor/classrooms/:classroom_id/schedule",
		"POST /instructor/classrooms/:classroom_id/members/add",
		"GET /instructor/classrooms/:classroom_id/attendance/dates",
		"GET /classrooms/:id",
	}
	for _, route := range expected {
		assert.True(t, routes[route], "missing route %s", route)
	}
}

func TestAttendanceDatesSingularAlias(t *testing.T) {
	routes := registeredRoutes(t)

	assert.True(t, routes["GET /classroom/:classroom_id/attendance/dates"])
	assert.True(t, routes["GET /instructor/classrooms/:classroom_id/attendance/dates"])
}
