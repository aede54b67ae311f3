package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tawan/eduadmin/internal/pkg/apperrors"
)

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"validation failure", apperrors.NewValidationError("birth_date must be an ISO date"), http.StatusBadRequest},
		{"invalid student id", apperrors.ErrInvalidStudentID, http.StatusBadRequest},
		{"role referenced in a body", apperrors.ErrRoleNotFound, http.StatusBadRequest},
		{"instructor referenced in a body", apperrors.ErrInstructorNotFound, http.StatusBadRequest},
		{"bad credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"user addressed by path", apperrors.ErrUserNotFound, http.StatusNotFound},
		{"faculty addressed by path", apperrors.ErrFacultyNotFound, http.StatusNotFound},
		{"department addressed by path", apperrors.ErrDepartmentNotFound, http.StatusNotFound},
		{"course addressed by path", apperrors.ErrCourseNotFound, http.StatusNotFound},
		{"classroom addressed by path", apperrors.ErrClassroomNotFound, http.StatusNotFound},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, http.StatusConflict},
		{"duplicate classroom offering", apperrors.ErrClassroomAlreadyExists, http.StatusConflict},
		{"unexpected error", errors.New("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(recorder)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
		})
	}
}
