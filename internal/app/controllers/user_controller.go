package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/app/services"
	"github.com/tawan/eduadmin/internal/middleware"
)

// UserController handles user administration endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// GetUsers lists all users
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.Response{list=[]models.UserDetail}
// @Router /users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.userService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Users retrieved",
		List:    users,
	})
}

// GetUser retrieves one user
// @Summary Get user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response{data=models.UserDetail}
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.userService.GetByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "User retrieved",
		Data:    user,
	})
}

// CreateUser stores a single user with a derived initial password
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "User"
// @Success 201 {object} dto.Response{data=models.UserDetail,list=[]models.UserDetail}
// @Failure 409 {object} dto.Response "Duplicate user id or email"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("user_id, full_name, email, birth_date and role_id are required"))
		return
	}

	user, err := c.userService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list, err := c.userService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.Response{
		Message: "User created",
		Data:    user,
		List:    list,
	})
}

// UpdateUser applies an admin edit
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body dto.UpdateUserRequest true "User"
// @Success 200 {object} dto.Response{data=models.UserDetail,list=[]models.UserDetail}
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("full_name, email and role_id are required"))
		return
	}

	user, err := c.userService.Update(ctx, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list, err := c.userService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "User updated",
		Data:    user,
		List:    list,
	})
}

// DeleteUser removes a user
// @Summary Delete user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.userService.Delete(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{Message: "User deleted"})
}

// BulkImportUsers loads a batch of users parsed from a CSV upload. The
// batch never aborts; each row is reported as inserted or skipped.
// @Summary Bulk import users
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body []dto.BulkUserRow true "Rows"
// @Success 201 {object} dto.BulkUserImportResponse
// @Router /users/bulk [post]
func (c *UserController) BulkImportUsers(ctx *gin.Context) {
	var rows []dto.BulkUserRow
	if err := ctx.ShouldBindJSON(&rows); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("body must be an array of user rows"))
		return
	}

	resp, err := c.userService.BulkImport(ctx, rows)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	list, err := c.userService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	resp.List = list

	ctx.JSON(http.StatusCreated, resp)
}

// SearchStudents finds students by id or name fragment
// @Summary Search students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param q query string false "Fragment of a student id or name"
// @Success 200 {object} dto.Response{list=[]models.StudentRef}
// @Router /instructor/students/search [get]
func (c *UserController) SearchStudents(ctx *gin.Context) {
	students, err := c.userService.SearchStudents(ctx, ctx.Query("q"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Students retrieved",
		List:    students,
	})
}
