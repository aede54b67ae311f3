// Package services contains the business logic layer. Services validate
// input, enforce access rules and delegate persistence to repositories
// through consumer-side interfaces.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
	"github.com/tawan/eduadmin/internal/pkg/auth"
	"github.com/tawan/eduadmin/internal/pkg/logger"
)

// CredentialsReader loads a user's joined view plus stored password hash
type CredentialsReader interface {
	GetCredentials(ctx context.Context, userID string) (*models.UserDetail, string, error)
}

// TokenIssuer signs access tokens for an authenticated identity
type TokenIssuer interface {
	GenerateToken(userID string, roleID int64, roleName string) (string, int, error)
}

// AuthService handles authentication
type AuthService struct {
	users  CredentialsReader
	tokens TokenIssuer
}

// NewAuthService creates a new AuthService
func NewAuthService(users CredentialsReader, tokens TokenIssuer) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
	}
}

// Login verifies the credentials and issues an access token. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	userID := strings.TrimSpace(req.UserID)

	user, passwordHash, err := s.users.GetCredentials(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(passwordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, _, err := s.tokens.GenerateToken(user.UserID, user.RoleID, user.RoleName)
	if err != nil {
		logger.Error().Err(err).Str("userID", user.UserID).Msg("Failed to sign access token")
		return nil, err
	}

	role, _ := models.RoleFromID(user.RoleID)

	return &dto.LoginResponse{
		Message:      "Login successful",
		Token:        token,
		User:         user,
		RedirectPath: role.DashboardPath(),
	}, nil
}
