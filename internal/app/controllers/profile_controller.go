package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/app/services"
	"github.com/tawan/eduadmin/internal/middleware"
)

// ProfileController handles self-service profile endpoints
type ProfileController struct {
	profileService *services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile retrieves a profile; admins may read any, others only their own
// @Summary Get profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response{data=models.UserDetail}
// @Failure 403 {object} dto.Response "Not the owner"
// @Router /getUserProfile/{id} [get]
func (c *ProfileController) GetProfile(ctx *gin.Context) {
	profile, err := c.profileService.Get(ctx, middleware.UserID(ctx), middleware.Role(ctx), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Profile retrieved",
		Data:    profile,
	})
}

// UpdateProfile edits the caller's own profile
// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Profile"
// @Success 200 {object} dto.Response{data=models.UserDetail}
// @Router /profile_update [put]
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("full_name and email are required"))
		return
	}

	userID := middleware.UserID(ctx)
	profile, err := c.profileService.Update(ctx, userID, middleware.Role(ctx), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Profile updated",
		Data:    profile,
	})
}

// UploadProfilePhoto stores a new primary profile photo
// @Summary Upload profile photo
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param photo formData file true "JPG or PNG image"
// @Success 200 {object} dto.Response{data=models.UserPhoto}
// @Failure 400 {object} dto.Response "Unsupported file type"
// @Router /profile/upload_profile_photo [post]
func (c *ProfileController) UploadProfilePhoto(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Error("photo file is required"))
		return
	}

	userID := middleware.UserID(ctx)
	photo, err := c.profileService.UploadPhoto(ctx, userID, middleware.Role(ctx), userID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Response{
		Message: "Profile photo updated",
		Data:    photo,
	})
}
