// Package routes mounts the HTTP surface onto the gin engine.
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tawan/eduadmin/internal/app/controllers"
	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/middleware"
)

// Controllers carries every controller the router mounts
type Controllers struct {
	Auth        *controllers.AuthController
	Roles       *controllers.RoleController
	Faculties   *controllers.FacultyController
	Departments *controllers.DepartmentController
	Users       *controllers.UserController
	Profiles    *controllers.ProfileController
	Courses     *controllers.CourseController
	Classrooms  *controllers.ClassroomController
	Attendance  *controllers.AttendanceController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public routes ---
	router.POST("/login", c.Auth.Login)
	router.GET("/roles", c.Roles.GetRoles)
	router.GET("/faculties", c.Faculties.GetFaculties)
	router.GET("/departments", c.Departments.GetDepartments)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		// Profile routes, open to every role but guarded admin-or-owner
		// inside the service
		authenticated.GET("/getUserProfile/:id", c.Profiles.GetProfile)
		authenticated.PUT("/profile_update", c.Profiles.UpdateProfile)
		authenticated.POST("/profile/upload_profile_photo", c.Profiles.UploadProfilePhoto)

		// Admin-only administration routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(models.RoleAdmin))
		{
			admin.POST("/faculties_store", c.Faculties.CreateFaculty)
			admin.PUT("/faculties/:id", c.Faculties.UpdateFaculty)
			admin.DELETE("/faculties/:id", c.Faculties.DeleteFaculty)

			admin.POST("/departments", c.Departments.CreateDepartment)
			admin.PUT("/departments/:id", c.Departments.UpdateDepartment)
			admin.DELETE("/departments/:id", c.Departments.DeleteDepartment)

			users := admin.Group("/users")
			{
				users.GET("", c.Users.GetUsers)
				users.POST("", c.Users.CreateUser)
				users.POST("/bulk", c.Users.BulkImportUsers)
				users.GET("/:id", c.Users.GetUser)
				users.PUT("/:id", c.Users.UpdateUser)
				users.DELETE("/:id", c.Users.DeleteUser)
			}

			courses := admin.Group("/admin")
			{
				courses.GET("/courses", c.Courses.GetCourses)
				courses.POST("/courses", c.Courses.CreateCourse)
				courses.POST("/courses/bulk", c.Courses.BulkImportCourses)
				courses.GET("/courses/:course_id", c.Courses.GetCourse)
				courses.PUT("/courses/:course_id", c.Courses.UpdateCourse)
				courses.DELETE("/courses/:course_id", c.Courses.DeleteCourse)
				courses.GET("/getInstructor", c.Courses.GetInstructors)
			}
		}

		// Instructor-only teaching routes
		instructor := authenticated.Group("/instructor")
		instructor.Use(authMiddleware.RoleRequired(models.RoleInstructor))
		{
			instructor.GET("/courses", c.Courses.GetMyCourses)
			instructor.GET("/students/search", c.Users.SearchStudents)

			instructor.POST("/classroom/create", c.Classrooms.CreateClassroom)
			instructor.GET("/classrooms", c.Classrooms.GetClassrooms)

			classroom := instructor.Group("/classrooms/:classroom_id")
			{
				classroom.PUT("/schedule", c.Classrooms.UpdateSchedule)
				classroom.GET("/members", c.Classrooms.GetMembers)
				classroom.POST("/members/add", c.Classrooms.AddMembers)
				classroom.DELETE("/members/:student_id", c.Classrooms.RemoveMember)
				classroom.GET("/attendance", c.Attendance.GetAttendance)
				classroom.PUT("/attendance", c.Attendance.SaveAttendance)
				classroom.GET("/attendance/dates", c.Attendance.GetDates)
			}
		}

		// Classroom detail, instructor role, mounted at the short path the
		// frontend uses
		classroomDetail := authenticated.Group("/classrooms")
		classroomDetail.Use(authMiddleware.RoleRequired(models.RoleInstructor))
		{
			classroomDetail.GET("/:id", c.Classrooms.GetClassroom)
		}

		// Singular alias kept for the attendance date picker
		classroomAlias := authenticated.Group("/classroom")
		classroomAlias.Use(authMiddleware.RoleRequired(models.RoleInstructor))
		{
			classroomAlias.GET("/:classroom_id/attendance/dates", c.Attendance.GetDates)
		}
	}
}
