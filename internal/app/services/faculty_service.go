package services

import (
	"context"
	"strings"

	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
)

// FacultyStore is the persistence surface used by FacultyService
type FacultyStore interface {
	GetAll(ctx context.Context) ([]models.Faculty, error)
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error)
	Create(ctx context.Context, name string) (*models.Faculty, error)
	Update(ctx context.Context, id int64, name string) (*models.Faculty, error)
	Delete(ctx context.Context, id int64) error
}

// FacultyService handles faculty business logic
type FacultyService struct {
	faculties FacultyStore
}

// NewFacultyService creates a new FacultyService
func NewFacultyService(faculties FacultyStore) *FacultyService {
	return &FacultyService{faculties: faculties}
}

// GetAll lists all faculties
func (s *FacultyService) GetAll(ctx context.Context) ([]models.Faculty, error) {
	return s.faculties.GetAll(ctx)
}

// GetByID retrieves one faculty
func (s *FacultyService) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.faculties.GetByID(ctx, id)
}

// Create adds a faculty with a unique, case-insensitive name
func (s *FacultyService) Create(ctx context.Context, name string) (*models.Faculty, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("faculty_name is required")
	}

	exists, err := s.faculties.ExistsByName(ctx, name, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrFacultyAlreadyExists
	}

	return s.faculties.Create(ctx, name)
}

// Update renames a faculty, keeping names unique
func (s *FacultyService) Update(ctx context.Context, id int64, name string) (*models.Faculty, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("faculty_name is required")
	}

	exists, err := s.faculties.ExistsByName(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrFacultyAlreadyExists
	}

	return s.faculties.Update(ctx, id, name)
}

// Delete removes a faculty; its departments cascade at the store
func (s *FacultyService) Delete(ctx context.Context, id int64) error {
	return s.faculties.Delete(ctx, id)
}
