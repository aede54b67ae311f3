package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
)

// MockDepartmentStore is a mock implementation of DepartmentStore.
type MockDepartmentStore struct {
	mock.Mock
}

func (m *MockDepartmentStore) GetAll(ctx context.Context) ([]models.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Department), args.Error(1)
}

func (m *MockDepartmentStore) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *MockDepartmentStore) ExistsByNameInFaculty(ctx context.Context, name string, facultyID, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, facultyID, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockDepartmentStore) Create(ctx context.Context, name string, facultyID int64) (*models.Department, error) {
	args := m.Called(ctx, name, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *MockDepartmentStore) Update(ctx context.Context, id int64, name string, facultyID int64) (*models.Department, error) {
	args := m.Called(ctx, id, name, facultyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

func (m *MockDepartmentStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestDepartmentService_Create(t *testing.T) {
	tests := []struct {
		name           string
		departmentName string
		facultyID      int64
		setupMock      func(*MockDepartmentStore)
		expectedError  error
	}{
		{
			name:           "successful create",
			departmentName: "Computer Engineering",
			facultyID:      1,
			setupMock: func(m *MockDepartmentStore) {
				m.On("ExistsByNameInFaculty", mock.Anything, "Computer Engineering", int64(1), int64(0)).Return(false, nil)
				m.On("Create", mock.Anything, "Computer Engineering", int64(1)).
					Return(&models.Department{DepartmentID: 10, DepartmentName: "Computer Engineering", FacultyID: 1}, nil)
			},
		},
		{
			name:           "blank name",
			departmentName: "",
			facultyID:      1,
			setupMock:      func(*MockDepartmentStore) {},
			expectedError:  apperrors.ErrValidationFailed,
		},
		{
			name:           "duplicate within the faculty",
			departmentName: "Computer Engineering",
			facultyID:      1,
			setupMock: func(m *MockDepartmentStore) {
				m.On("ExistsByNameInFaculty", mock.Anything, "Computer Engineering", int64(1), int64(0)).Return(true, nil)
			},
			expectedError: apperrors.ErrDepartmentAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockDepartmentStore)
			tt.setupMock(store)

			service := NewDepartmentService(store)
			department, err := service.Create(context.Background(), tt.departmentName, tt.facultyID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, department)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, int64(10), department.DepartmentID)
			}

			store.AssertExpectations(t)
		})
	}
}

func TestDepartmentService_Update_SameNameInAnotherFacultyAllowed(t *testing.T) {
	store := new(MockDepartmentStore)
	store.On("ExistsByNameInFaculty", mock.Anything, "Computer Engineering", int64(2), int64(10)).Return(false, nil)
	store.On("Update", mock.Anything, int64(10), "Computer Engineering", int64(2)).
		Return(&models.Department{DepartmentID: 10, DepartmentName: "Computer Engineering", FacultyID: 2}, nil)

	service := NewDepartmentService(store)
	department, err := service.Update(context.Background(), 10, "Computer Engineering", 2)

	assert.NoError(t, err)
	assert.Equal(t, int64(2), department.FacultyID)
	store.AssertExpectations(t)
}
