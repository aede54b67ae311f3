// Package controllers contains the HTTP handlers. Controllers bind and
// validate request bodies, call services, and render the response
// envelope; error mapping is centralized in the middleware package.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/app/services"
	"github.com/tawan/eduadmin/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login authenticates a user and issues an access token
// @Summary Log in
// @Description Verifies the credentials and returns a JWT plus the role-dependent landing path
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.Response "Missing fields"
// @Failure 401 {object} dto.Response "Invalid credentials"
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("user_id and password are required"))
		return
	}

	resp, err := c.authService.Login(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
