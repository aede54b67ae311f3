package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/app/services"
	"github.com/tawan/eduadmin/internal/middleware"
)

// ClassroomController handles an instructor's classroom endpoints
type ClassroomController struct {
	classroomService *services.ClassroomService
}

// NewClassroomController creates a new ClassroomController
func NewClassroomController(classroomService *services.ClassroomService) *ClassroomController {
	return &ClassroomController{classroomService: classroomService}
}

// CreateClassroom opens an offering for a course the caller teaches.
// A duplicate offering answers 409 carrying the existing classroom.
// @Summary Create classroom
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateClassroomRequest true "Classroom"
// @Success 201 {object} dto.Response{data=models.ClassroomDetail}
// @Failure 403 {object} dto.Response "Course not assigned to the caller"
// @Failure 409 {object} dto.Response{data=models.ClassroomDetail} "Offering already exists"
// @Router /instructor/classroom/create [post]
func (c *ClassroomController) CreateClassroom(ctx *gin.Context) {
	var req dto.CreateClassroomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("course_id, year, semester and section are required"))
		return
	}

	detail, created, err := c.classroomService.Create(ctx, middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !created {
		ctx.JSON(http.StatusConflict, dto.Response{
			Message: "Classroom already exists",
			Data:    detail,
		})
		return
	}

	ctx.JSON(http.StatusCreated, dto.Response{
		Message: "Classroom created",
		Data:    detail,
	})
}

// GetClassrooms lists the caller's classrooms
// @Summary List classrooms
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{list=[]models.ClassroomSummary}
// @Router /instructor/classrooms [get]
func (c *ClassroomController) GetClassrooms(ctx *gin.Context) {
	classrooms, err := c.classroomService.List(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Classrooms retrieved",
		List:    classrooms,
	})
}

// GetClassroom retrieves one of the caller's classrooms
// @Summary Get classroom
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param id path int true "Classroom ID"
// @Success 200 {object} dto.Response{data=models.ClassroomDetail}
// @Router /classrooms/{id} [get]
func (c *ClassroomController) GetClassroom(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.classroomService.GetDetail(ctx, id, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Classroom retrieved",
		Data:    detail,
	})
}

// UpdateSchedule stores the classroom times
// @Summary Update schedule
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param classroom_id path int true "Classroom ID"
// @Param request body dto.UpdateScheduleRequest true "Times as HH:MM"
// @Success 200 {object} dto.Response{data=dto.ScheduleResponse}
// @Router /instructor/classrooms/{classroom_id}/schedule [put]
func (c *ClassroomController) UpdateSchedule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "classroom_id")
	if !ok {
		return
	}

	var req dto.UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("start_time, end_time and late_after are required"))
		return
	}

	schedule, err := c.classroomService.UpdateSchedule(ctx, id, middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Schedule updated",
		Data:    schedule,
	})
}

// AddMembers enrolls a batch of students
// @Summary Add members
// @Tags classrooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param classroom_id path int true "Classroom ID"
// @Param request body dto.AddMembersRequest true "Student IDs"
// @Success 200 {object} dto.AddMembersResponse
// @Router /instructor/classrooms/{classroom_id}/members/add [post]
func (c *ClassroomController) AddMembers(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "classroom_id")
	if !ok {
		return
	}

	var req dto.AddMembersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("students array is required"))
		return
	}

	resp, err := c.classroomService.AddMembers(ctx, id, middleware.UserID(ctx), req.Students)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetMembers retrieves the classroom roster
// @Summary List members
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param classroom_id path int true "Classroom ID"
// @Success 200 {object} dto.Response{list=[]models.ClassroomMember}
// @Router /instructor/classrooms/{classroom_id}/members [get]
func (c *ClassroomController) GetMembers(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "classroom_id")
	if !ok {
		return
	}

	members, err := c.classroomService.ListMembers(ctx, id, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Members retrieved",
		List:    members,
	})
}

// RemoveMember drops one student from the roster
// @Summary Remove member
// @Tags classrooms
// @Produce json
// @Security BearerAuth
// @Param classroom_id path int true "Classroom ID"
// @Param student_id path string true "Student ID"
// @Success 200 {object} dto.Response
// @Router /instructor/classrooms/{classroom_id}/members/{student_id} [delete]
func (c *ClassroomController) RemoveMember(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "classroom_id")
	if !ok {
		return
	}

	if err := c.classroomService.RemoveMember(ctx, id, middleware.UserID(ctx), ctx.Param("student_id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{Message: "Member removed"})
}
