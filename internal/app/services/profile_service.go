package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
	"github.com/tawan/eduadmin/internal/pkg/auth"
	"github.com/tawan/eduadmin/internal/pkg/logger"
)

// ProfileStore is the user persistence surface used by ProfileService
type ProfileStore interface {
	GetDetail(ctx context.Context, userID string) (*models.UserDetail, error)
	EmailExists(ctx context.Context, email, excludeUserID string) (bool, error)
	UpdateColumns(ctx context.Context, userID string, columns map[string]interface{}) error
}

// PhotoStore tracks profile photo rows
type PhotoStore interface {
	GetPrimary(ctx context.Context, userID string) (*models.UserPhoto, error)
	SetPrimary(ctx context.Context, photo *models.UserPhoto) error
}

// PhotoFileStore persists uploaded image files
type PhotoFileStore interface {
	SavePhoto(fileHeader *multipart.FileHeader, subPath string) (string, string, error)
	Delete(relPath string) error
}

// ProfileService handles self-service profile reads and edits. Admins may
// operate on any profile; everyone else only on their own.
type ProfileService struct {
	users       ProfileStore
	photos      PhotoStore
	files       PhotoFileStore
	faculties   FacultyReader
	departments DepartmentReader
}

// NewProfileService creates a new ProfileService
func NewProfileService(users ProfileStore, photos PhotoStore, files PhotoFileStore, faculties FacultyReader, departments DepartmentReader) *ProfileService {
	return &ProfileService{
		users:       users,
		photos:      photos,
		files:       files,
		faculties:   faculties,
		departments: departments,
	}
}

func canAccess(requesterID string, requesterRole models.RoleType, targetID string) bool {
	return requesterRole == models.RoleAdmin || requesterID == targetID
}

// Get retrieves a profile, enforcing the admin-or-owner rule
func (s *ProfileService) Get(ctx context.Context, requesterID string, requesterRole models.RoleType, targetID string) (*models.UserDetail, error) {
	if !canAccess(requesterID, requesterRole, targetID) {
		return nil, apperrors.ErrPermissionDenied
	}

	return s.users.GetDetail(ctx, targetID)
}

// Update applies a profile edit. Only the fields present in the request
// reach the store; an absent faculty or department reference is left
// untouched rather than cleared.
func (s *ProfileService) Update(ctx context.Context, requesterID string, requesterRole models.RoleType, targetID string, req *dto.UpdateProfileRequest) (*models.UserDetail, error) {
	if !canAccess(requesterID, requesterRole, targetID) {
		return nil, apperrors.ErrPermissionDenied
	}

	if _, err := s.users.GetDetail(ctx, targetID); err != nil {
		return nil, err
	}

	emailTaken, err := s.users.EmailExists(ctx, req.Email, targetID)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	columns := map[string]interface{}{
		"full_name": strings.TrimSpace(req.FullName),
		"email":     strings.TrimSpace(req.Email),
	}

	if req.FacultyID.Set {
		if req.FacultyID.Value != nil {
			if _, err := s.faculties.GetByID(ctx, *req.FacultyID.Value); err != nil {
				if errors.Is(err, apperrors.ErrFacultyNotFound) {
					return nil, apperrors.NewValidationError("faculty_id does not reference a known faculty")
				}
				return nil, err
			}
		}
		columns["faculty_id"] = req.FacultyID.Value
	}

	if req.DepartmentID.Set {
		if req.DepartmentID.Value != nil {
			if _, err := s.departments.GetByID(ctx, *req.DepartmentID.Value); err != nil {
				if errors.Is(err, apperrors.ErrDepartmentNotFound) {
					return nil, apperrors.NewValidationError("department_id does not reference a known department")
				}
				return nil, err
			}
		}
		columns["department_id"] = req.DepartmentID.Value
	}

	if req.Password != "" {
		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to hash profile password")
			return nil, err
		}
		columns["password"] = hash
	}

	if err := s.users.UpdateColumns(ctx, targetID, columns); err != nil {
		return nil, err
	}

	return s.users.GetDetail(ctx, targetID)
}

// UploadPhoto stores a new primary profile photo and removes the previous
// image file. A failed cleanup only logs; the new photo is already live.
func (s *ProfileService) UploadPhoto(ctx context.Context, requesterID string, requesterRole models.RoleType, targetID string, fileHeader *multipart.FileHeader) (*models.UserPhoto, error) {
	if !canAccess(requesterID, requesterRole, targetID) {
		return nil, apperrors.ErrPermissionDenied
	}

	if _, err := s.users.GetDetail(ctx, targetID); err != nil {
		return nil, err
	}

	previous, err := s.photos.GetPrimary(ctx, targetID)
	if err != nil {
		return nil, err
	}

	fileName, relPath, err := s.files.SavePhoto(fileHeader, "Profile")
	if err != nil {
		return nil, err
	}

	photo := &models.UserPhoto{
		UserID:   targetID,
		FileName: fileName,
		FilePath: relPath,
	}

	if err := s.photos.SetPrimary(ctx, photo); err != nil {
		if cleanupErr := s.files.Delete(relPath); cleanupErr != nil {
			logger.Warn().Err(cleanupErr).Str("path", relPath).Msg("Failed to remove orphaned upload")
		}
		return nil, err
	}

	if previous != nil {
		if err := s.files.Delete(previous.FilePath); err != nil {
			logger.Warn().Err(err).Str("path", previous.FilePath).Msg("Failed to remove previous photo file")
		}
	}

	return photo, nil
}
