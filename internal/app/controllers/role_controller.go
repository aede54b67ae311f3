package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/app/services"
	"github.com/tawan/eduadmin/internal/middleware"
)

// RoleController serves the seeded role reference data
type RoleController struct {
	roleService *services.RoleService
}

// NewRoleController creates a new RoleController
func NewRoleController(roleService *services.RoleService) *RoleController {
	return &RoleController{roleService: roleService}
}

// GetRoles lists the selectable roles
// @Summary List roles
// @Tags roles
// @Produce json
// @Success 200 {object} dto.Response{list=[]models.Role}
// @Router /roles [get]
func (c *RoleController) GetRoles(ctx *gin.Context) {
	roles, err := c.roleService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Roles retrieved",
		List:    roles,
	})
}
