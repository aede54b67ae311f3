package dto

import "github.com/tawan/eduadmin/internal/app/models"

// LoginRequest carries the login credentials
type LoginRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token, the authenticated user and the
// role-dependent landing path
type LoginResponse struct {
	Message      string             `json:"message"`
	Token        string             `json:"token"`
	User         *models.UserDetail `json:"user"`
	RedirectPath string             `json:"redirect_path"`
}
