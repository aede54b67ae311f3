package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
	"github.com/tawan/eduadmin/internal/pkg/auth"
	"github.com/tawan/eduadmin/internal/pkg/bulk"
	"github.com/tawan/eduadmin/internal/pkg/logger"
)

var studentIDRe = regexp.MustCompile(`^\d{12}$`)

// UserStore is the persistence surface used by UserService
type UserStore interface {
	ListDetails(ctx context.Context) ([]models.UserDetail, error)
	GetDetail(ctx context.Context, userID string) (*models.UserDetail, error)
	Exists(ctx context.Context, userID string) (bool, error)
	EmailExists(ctx context.Context, email, excludeUserID string) (bool, error)
	Create(ctx context.Context, user *models.User) error
	CreateIfAbsent(ctx context.Context, user *models.User) (bool, error)
	Update(ctx context.Context, userID, fullName, email string, roleID int64, facultyID, departmentID *int64, passwordHash string) error
	Delete(ctx context.Context, userID string) error
	SearchStudents(ctx context.Context, q string, limit uint64) ([]models.StudentRef, error)
}

// FacultyReader resolves faculty references
type FacultyReader interface {
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
}

// DepartmentReader resolves department references
type DepartmentReader interface {
	GetByID(ctx context.Context, id int64) (*models.Department, error)
}

// UserService handles user administration
type UserService struct {
	users       UserStore
	faculties   FacultyReader
	departments DepartmentReader
}

// NewUserService creates a new UserService
func NewUserService(users UserStore, faculties FacultyReader, departments DepartmentReader) *UserService {
	return &UserService{
		users:       users,
		faculties:   faculties,
		departments: departments,
	}
}

// GetAll lists all users in the joined view
func (s *UserService) GetAll(ctx context.Context) ([]models.UserDetail, error) {
	return s.users.ListDetails(ctx)
}

// GetByID retrieves one user's joined view
func (s *UserService) GetByID(ctx context.Context, userID string) (*models.UserDetail, error) {
	return s.users.GetDetail(ctx, userID)
}

// SearchStudents finds students by id or name fragment for enrollment
// pickers.
func (s *UserService) SearchStudents(ctx context.Context, q string) ([]models.StudentRef, error) {
	return s.users.SearchStudents(ctx, q, 20)
}

// validateIdentity applies the shared user rules: a known role, the
// 12-digit id format for students, and resolvable faculty/department
// references with the department inside the chosen faculty.
func (s *UserService) validateIdentity(ctx context.Context, userID string, roleID int64, facultyID, departmentID *int64) error {
	role, ok := models.RoleFromID(roleID)
	if !ok {
		return apperrors.ErrRoleNotFound
	}

	if role == models.RoleStudent && !studentIDRe.MatchString(userID) {
		return apperrors.ErrInvalidStudentID
	}

	if facultyID != nil {
		if _, err := s.faculties.GetByID(ctx, *facultyID); err != nil {
			if errors.Is(err, apperrors.ErrFacultyNotFound) {
				return apperrors.NewValidationError("faculty_id does not reference a known faculty")
			}
			return err
		}
	}

	if departmentID != nil {
		department, err := s.departments.GetByID(ctx, *departmentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrDepartmentNotFound) {
				return apperrors.NewValidationError("department_id does not reference a known department")
			}
			return err
		}
		if facultyID != nil && department.FacultyID != *facultyID {
			return apperrors.NewValidationError("department does not belong to the given faculty")
		}
	}

	return nil
}

// Create adds a single user. The initial password is derived from the
// birth date and stored hashed.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.UserDetail, error) {
	userID := strings.TrimSpace(req.UserID)

	if err := s.validateIdentity(ctx, userID, req.RoleID, req.FacultyID, req.DepartmentID); err != nil {
		return nil, err
	}

	birthDate, err := auth.ParseBirthDate(strings.TrimSpace(req.BirthDate))
	if err != nil {
		return nil, apperrors.NewValidationError("birth_date must be an ISO date")
	}

	exists, err := s.users.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrUserIDAlreadyExists
	}

	emailTaken, err := s.users.EmailExists(ctx, req.Email, "")
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(auth.InitialPassword(birthDate))
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash initial password")
		return nil, err
	}

	user := &models.User{
		UserID:       userID,
		Password:     hash,
		FullName:     strings.TrimSpace(req.FullName),
		Email:        strings.TrimSpace(req.Email),
		BirthDate:    birthDate,
		RoleID:       req.RoleID,
		FacultyID:    req.FacultyID,
		DepartmentID: req.DepartmentID,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.users.GetDetail(ctx, userID)
}

// Update applies an admin edit. The password changes only when the
// request carries a replacement.
func (s *UserService) Update(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*models.UserDetail, error) {
	if err := s.validateIdentity(ctx, userID, req.RoleID, req.FacultyID, req.DepartmentID); err != nil {
		return nil, err
	}

	emailTaken, err := s.users.EmailExists(ctx, req.Email, userID)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash := ""
	if req.Password != "" {
		hash, err = auth.HashPassword(req.Password)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to hash replacement password")
			return nil, err
		}
	}

	if err := s.users.Update(ctx, userID, req.FullName, req.Email, req.RoleID, req.FacultyID, req.DepartmentID, hash); err != nil {
		return nil, err
	}

	return s.users.GetDetail(ctx, userID)
}

// Delete removes a user
func (s *UserService) Delete(ctx context.Context, userID string) error {
	return s.users.Delete(ctx, userID)
}

// BulkImport loads a batch of users, typically parsed from a CSV upload.
// Bad rows are skipped with a reason; the batch itself never aborts, and
// every input row is accounted for as inserted or skipped.
func (s *UserService) BulkImport(ctx context.Context, rows []dto.BulkUserRow) (*dto.BulkUserImportResponse, error) {
	result := bulk.NewResult()

	for _, row := range rows {
		userID := strings.TrimSpace(row.UserID)
		key := userID
		if key == "" {
			key = strings.TrimSpace(row.Email)
		}

		if userID == "" || strings.TrimSpace(row.FullName) == "" || strings.TrimSpace(row.Email) == "" {
			result.Reject(key, bulk.ReasonInvalidData)
			continue
		}
		if err := s.validateIdentity(ctx, userID, row.RoleID, row.FacultyID, row.DepartmentID); err != nil {
			result.Reject(key, bulk.ReasonInvalidData)
			continue
		}

		birthDate, err := auth.ParseBirthDate(strings.TrimSpace(row.BirthDate))
		if err != nil {
			result.Reject(key, bulk.ReasonInvalidData)
			continue
		}

		hash, err := auth.HashPassword(auth.InitialPassword(birthDate))
		if err != nil {
			logger.Error().Err(err).Str("userID", userID).Msg("Failed to hash initial password for import row")
			result.Reject(key, bulk.ReasonError)
			continue
		}

		user := &models.User{
			UserID:       userID,
			Password:     hash,
			FullName:     strings.TrimSpace(row.FullName),
			Email:        strings.TrimSpace(row.Email),
			BirthDate:    birthDate,
			RoleID:       row.RoleID,
			FacultyID:    row.FacultyID,
			DepartmentID: row.DepartmentID,
		}

		inserted, err := s.users.CreateIfAbsent(ctx, user)
		switch {
		case err == nil && inserted:
			result.Accept(userID)
		case err == nil:
			result.Reject(key, bulk.ReasonDuplicate)
		case errors.Is(err, apperrors.ErrEmailAlreadyExists):
			result.Reject(key, bulk.ReasonDuplicate)
		default:
			logger.Error().Err(err).Str("userID", userID).Msg("Import row failed")
			result.Reject(key, bulk.ReasonError)
		}
	}

	skipped := make([]dto.SkippedUser, 0, len(result.Rejected))
	for _, rej := range result.Rejected {
		skipped = append(skipped, dto.SkippedUser{UserID: rej.Key, Reason: rej.Reason})
	}

	return &dto.BulkUserImportResponse{
		Message:       "Import completed",
		InsertedCount: len(result.Accepted),
		SkippedCount:  len(skipped),
		Inserted:      result.Accepted,
		Skipped:       skipped,
	}, nil
}
