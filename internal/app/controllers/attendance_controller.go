package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/app/services"
	"github.com/tawan/eduadmin/internal/middleware"
)

// AttendanceController handles per-date attendance endpoints
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// GetDates lists the dates with recorded attendance
// @Summary List attendance dates
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param classroom_id path int true "Classroom ID"
// @Success 200 {object} dto.Response{list=[]string}
// @Router /instructor/classrooms/{classroom_id}/attendance/dates [get]
func (c *AttendanceController) GetDates(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "classroom_id")
	if !ok {
		return
	}

	dates, err := c.attendanceService.GetDates(ctx, id, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Attendance dates retrieved",
		List:    dates,
	})
}

// GetAttendance retrieves the roster with statuses for one date,
// defaulting to today.
// @Summary Get attendance for a date
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param classroom_id path int true "Classroom ID"
// @Param date query string false "Date as YYYY-MM-DD, defaults to today"
// @Success 200 {object} dto.AttendanceDayResponse
// @Router /instructor/classrooms/{classroom_id}/attendance [get]
func (c *AttendanceController) GetAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "classroom_id")
	if !ok {
		return
	}

	date := ctx.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	resp, err := c.attendanceService.GetForDate(ctx, id, middleware.UserID(ctx), date)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SaveAttendance replaces the full attendance set for one date
// @Summary Save attendance
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param classroom_id path int true "Classroom ID"
// @Param request body dto.SaveAttendanceRequest true "Date and items"
// @Success 200 {object} dto.SaveAttendanceResponse
// @Router /instructor/classrooms/{classroom_id}/attendance [put]
func (c *AttendanceController) SaveAttendance(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "classroom_id")
	if !ok {
		return
	}

	var req dto.SaveAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("date and items are required"))
		return
	}

	resp, err := c.attendanceService.Save(ctx, id, middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
