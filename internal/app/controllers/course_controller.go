package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/app/services"
	"github.com/tawan/eduadmin/internal/middleware"
)

// CourseController handles course administration endpoints
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// GetCourses lists all courses with their instructors
// @Summary List courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{list=[]models.Course}
// @Router /admin/courses [get]
func (c *CourseController) GetCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Courses retrieved",
		List:    courses,
	})
}

// GetCourse retrieves one course with its enrolled students
// @Summary Get course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param course_id path string true "Course ID"
// @Success 200 {object} dto.Response{data=dto.CourseWithStudents}
// @Router /admin/courses/{course_id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	course, err := c.courseService.GetWithStudents(ctx, ctx.Param("course_id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Course retrieved",
		Data:    course,
	})
}

// CreateCourse stores a new course
// @Summary Create course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCourseRequest true "Course"
// @Success 201 {object} dto.Response{data=models.Course}
// @Failure 409 {object} dto.Response "Duplicate course"
// @Router /admin/courses [post]
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("course_id, course_name and instructor_id are required"))
		return
	}

	course, err := c.courseService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.Response{
		Message: "Course created",
		Data:    course,
	})
}

// UpdateCourse edits a course
// @Summary Update course
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Param request body dto.UpdateCourseRequest true "Course"
// @Success 200 {object} dto.Response{data=models.Course}
// @Router /admin/courses/{id} [put]
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("course_name is required"))
		return
	}

	course, err := c.courseService.Update(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Course updated",
		Data:    course,
	})
}

// DeleteCourse removes a course
// @Summary Delete course
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} dto.Response
// @Router /admin/courses/{id} [delete]
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	if err := c.courseService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{Message: "Course deleted"})
}

// BulkImportCourses loads a batch of unassigned courses
// @Summary Bulk import courses
// @Tags courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BulkCourseImportRequest true "Rows"
// @Success 200 {object} dto.BulkCourseImportResponse
// @Router /admin/courses/bulk [post]
func (c *CourseController) BulkImportCourses(ctx *gin.Context) {
	var req dto.BulkCourseImportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("body must carry a courses array"))
		return
	}

	resp, err := c.courseService.BulkImport(ctx, req.Courses)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetInstructors lists the accounts a course can be assigned to
// @Summary List instructors
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{list=[]models.InstructorRef}
// @Router /admin/getInstructor [get]
func (c *CourseController) GetInstructors(ctx *gin.Context) {
	instructors, err := c.courseService.ListInstructors(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Instructors retrieved",
		List:    instructors,
	})
}

// GetMyCourses lists the courses assigned to the calling instructor
// @Summary List own courses
// @Tags courses
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{list=[]models.Course}
// @Router /instructor/courses [get]
func (c *CourseController) GetMyCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetByInstructor(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Courses retrieved",
		List:    courses,
	})
}
