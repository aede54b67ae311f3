package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/app/services"
	"github.com/tawan/eduadmin/internal/middleware"
)

// FacultyController handles faculty endpoints
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{facultyService: facultyService}
}

func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		ctx.JSON(http.StatusBadRequest, dto.Error("id must be a positive number"))
		return 0, false
	}
	return id, true
}

// GetFaculties lists all faculties
// @Summary List faculties
// @Tags faculties
// @Produce json
// @Success 200 {object} dto.Response{list=[]models.Faculty}
// @Router /faculties [get]
func (c *FacultyController) GetFaculties(ctx *gin.Context) {
	faculties, err := c.facultyService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Faculties retrieved",
		List:    faculties,
	})
}

// CreateFaculty stores a new faculty
// @Summary Create faculty
// @Tags faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty"
// @Success 201 {object} dto.Response{data=models.Faculty}
// @Failure 409 {object} dto.Response "Name already exists"
// @Router /faculties_store [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("faculty_name is required"))
		return
	}

	faculty, err := c.facultyService.Create(ctx, req.FacultyName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.Response{
		Message: "Faculty created",
		Data:    faculty,
	})
}

// UpdateFaculty renames a faculty
// @Summary Update faculty
// @Tags faculties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Param request body dto.UpdateFacultyRequest true "Faculty"
// @Success 200 {object} dto.Response{data=models.Faculty}
// @Router /faculties/{id} [put]
func (c *FacultyController) UpdateFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateFacultyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("faculty_name is required"))
		return
	}

	faculty, err := c.facultyService.Update(ctx, id, req.FacultyName)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Faculty updated",
		Data:    faculty,
	})
}

// DeleteFaculty removes a faculty
// @Summary Delete faculty
// @Tags faculties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Faculty ID"
// @Success 200 {object} dto.Response
// @Router /faculties/{id} [delete]
func (c *FacultyController) DeleteFaculty(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.facultyService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{Message: "Faculty deleted"})
}
