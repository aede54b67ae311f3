package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
	"github.com/tawan/eduadmin/internal/pkg/auth"
)

func TestAuthService_Login(t *testing.T) {
	hash, err := auth.HashPassword("220547")
	assert.NoError(t, err)

	student := &models.UserDetail{
		UserID:   "650112345678",
		FullName: "Somsak Jaidee",
		RoleID:   models.RoleStudentID,
		RoleName: "student",
	}

	tests := []struct {
		name          string
		request       *dto.LoginRequest
		setupMocks    func(*MockCredentialsReader, *MockTokenIssuer)
		expectedError error
		expectedPath  string
	}{
		{
			name:    "successful login",
			request: &dto.LoginRequest{UserID: "650112345678", Password: "220547"},
			setupMocks: func(users *MockCredentialsReader, tokens *MockTokenIssuer) {
				users.On("GetCredentials", mock.Anything, "650112345678").Return(student, hash, nil)
				tokens.On("GenerateToken", "650112345678", models.RoleStudentID, "student").Return("signed-token", 86400, nil)
			},
			expectedPath: "/student/dashboard",
		},
		{
			name:    "trims surrounding whitespace from the user id",
			request: &dto.LoginRequest{UserID: "  650112345678  ", Password: "220547"},
			setupMocks: func(users *MockCredentialsReader, tokens *MockTokenIssuer) {
				users.On("GetCredentials", mock.Anything, "650112345678").Return(student, hash, nil)
				tokens.On("GenerateToken", "650112345678", models.RoleStudentID, "student").Return("signed-token", 86400, nil)
			},
			expectedPath: "/student/dashboard",
		},
		{
			name:    "unknown user maps to invalid credentials",
			request: &dto.LoginRequest{UserID: "999999999999", Password: "220547"},
			setupMocks: func(users *MockCredentialsReader, tokens *MockTokenIssuer) {
				users.On("GetCredentials", mock.Anything, "999999999999").Return(nil, "", apperrors.ErrUserNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:    "wrong password",
			request: &dto.LoginRequest{UserID: "650112345678", Password: "wrong"},
			setupMocks: func(users *MockCredentialsReader, tokens *MockTokenIssuer) {
				users.On("GetCredentials", mock.Anything, "650112345678").Return(student, hash, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockCredentialsReader)
			tokens := new(MockTokenIssuer)
			tt.setupMocks(users, tokens)

			service := NewAuthService(users, tokens)
			resp, err := service.Login(context.Background(), tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, resp)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Login successful", resp.Message)
				assert.Equal(t, "signed-token", resp.Token)
				assert.Equal(t, tt.expectedPath, resp.RedirectPath)
				assert.Equal(t, student, resp.User)
			}

			users.AssertExpectations(t)
			tokens.AssertExpectations(t)
		})
	}
}
