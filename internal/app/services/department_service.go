package services

import (
	"context"
	"strings"

	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
)

// DepartmentStore is the persistence surface used by DepartmentService
type DepartmentStore interface {
	GetAll(ctx context.Context) ([]models.Department, error)
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	ExistsByNameInFaculty(ctx context.Context, name string, facultyID, excludeID int64) (bool, error)
	Create(ctx context.Context, name string, facultyID int64) (*models.Department, error)
	Update(ctx context.Context, id int64, name string, facultyID int64) (*models.Department, error)
	Delete(ctx context.Context, id int64) error
}

// DepartmentService handles department business logic
type DepartmentService struct {
	departments DepartmentStore
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(departments DepartmentStore) *DepartmentService {
	return &DepartmentService{departments: departments}
}

// GetAll lists all departments with their faculty names
func (s *DepartmentService) GetAll(ctx context.Context) ([]models.Department, error) {
	return s.departments.GetAll(ctx)
}

// GetByID retrieves one department
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departments.GetByID(ctx, id)
}

// Create adds a department; names are unique within a faculty
func (s *DepartmentService) Create(ctx context.Context, name string, facultyID int64) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("department_name is required")
	}

	exists, err := s.departments.ExistsByNameInFaculty(ctx, name, facultyID, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	return s.departments.Create(ctx, name, facultyID)
}

// Update edits a department, keeping names unique within the target faculty
func (s *DepartmentService) Update(ctx context.Context, id int64, name string, facultyID int64) (*models.Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("department_name is required")
	}

	exists, err := s.departments.ExistsByNameInFaculty(ctx, name, facultyID, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrDepartmentAlreadyExists
	}

	return s.departments.Update(ctx, id, name, facultyID)
}

// Delete removes a department
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	return s.departments.Delete(ctx, id)
}
