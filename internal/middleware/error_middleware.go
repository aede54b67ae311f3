package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
	"github.com/tawan/eduadmin/internal/pkg/filestorage"
	"github.com/tawan/eduadmin/internal/pkg/logger"
)

// 404 is reserved for the entity the request path targets. Sentinels for
// references carried in a request body live in badRequestErrors instead.
var notFoundErrors = []error{
	apperrors.ErrNotFound,
	apperrors.ErrUserNotFound,
	apperrors.ErrFacultyNotFound,
	apperrors.ErrDepartmentNotFound,
	apperrors.ErrCourseNotFound,
	apperrors.ErrClassroomNotFound,
}

var conflictErrors = []error{
	apperrors.ErrConflict,
	apperrors.ErrUserIDAlreadyExists,
	apperrors.ErrEmailAlreadyExists,
	apperrors.ErrFacultyAlreadyExists,
	apperrors.ErrDepartmentAlreadyExists,
	apperrors.ErrCourseAlreadyExists,
	apperrors.ErrClassroomAlreadyExists,
}

// ErrRoleNotFound and ErrInstructorNotFound only ever come from body
// fields; no route looks a role or instructor up by path.
var badRequestErrors = []error{
	apperrors.ErrValidationFailed,
	apperrors.ErrBadRequest,
	apperrors.ErrInvalidStudentID,
	apperrors.ErrRoleNotFound,
	apperrors.ErrInstructorNotFound,
	filestorage.ErrUnsupportedFileType,
}

func matchesAny(err error, sentinels []error) bool {
	for _, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// HandleAPIError maps service errors to HTTP responses with the
// {"message": ...} envelope. Unknown errors log and render as 500
// without leaking internals.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case matchesAny(err, badRequestErrors):
		c.JSON(http.StatusBadRequest, dto.Error(err.Error()))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Error("Invalid user id or password"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.Error("Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.Error("Invalid token"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.Error(err.Error()))
	case matchesAny(err, notFoundErrors):
		c.JSON(http.StatusNotFound, dto.Error(err.Error()))
	case matchesAny(err, conflictErrors):
		c.JSON(http.StatusConflict, dto.Error(err.Error()))
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		c.JSON(http.StatusInternalServerError, dto.Error("Internal server error"))
	}
}
