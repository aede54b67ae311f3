package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/app/services"
	"github.com/tawan/eduadmin/internal/middleware"
)

// DepartmentController handles department endpoints. Mutations return the
// affected row plus the refreshed full list so admin tables can re-render
// without a second request.
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{departmentService: departmentService}
}

// GetDepartments lists all departments
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.Response{list=[]models.Department}
// @Router /departments [get]
func (c *DepartmentController) GetDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Departments retrieved",
		List:    departments,
	})
}

// CreateDepartment stores a new department
// @Summary Create department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDepartmentRequest true "Department"
// @Success 201 {object} dto.Response{data=models.Department,list=[]models.Department}
// @Router /departments [post]
func (c *DepartmentController) CreateDepartment(ctx *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("department_name and faculty_id are required"))
		return
	}

	department, err := c.departmentService.Create(ctx, req.DepartmentName, req.FacultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list, err := c.departmentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.Response{
		Message: "Department created",
		Data:    department,
		List:    list,
	})
}

// UpdateDepartment edits a department
// @Summary Update department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Param request body dto.UpdateDepartmentRequest true "Department"
// @Success 200 {object} dto.Response{data=models.Department,list=[]models.Department}
// @Router /departments/{id} [put]
func (c *DepartmentController) UpdateDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateDepartmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("department_name and faculty_id are required"))
		return
	}

	department, err := c.departmentService.Update(ctx, id, req.DepartmentName, req.FacultyID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list, err := c.departmentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Department updated",
		Data:    department,
		List:    list,
	})
}

// DeleteDepartment removes a department
// @Summary Delete department
// @Tags departments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Department ID"
// @Success 200 {object} dto.Response{list=[]models.Department}
// @Router /departments/{id} [delete]
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.departmentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list, err := c.departmentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Department deleted",
		List:    list,
	})
}
