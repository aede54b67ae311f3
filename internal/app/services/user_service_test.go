package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
	"github.com/tawan/eduadmin/internal/pkg/bulk"
)

func int64Ptr(v int64) *int64 { return &v }

func TestUserService_Create(t *testing.T) {
	tests := []struct {
		name          string
		request       *dto.CreateUserRequest
		setupMocks    func(*MockUserStore, *MockFacultyReader, *MockDepartmentReader)
		expectedError error
	}{
		{
			name: "successful create derives and hashes the initial password",
			request: &dto.CreateUserRequest{
				UserID:    "650112345678",
				FullName:  "Somsak Jaidee",
				Email:     "somsak@example.com",
				BirthDate: "2004-05-22",
				RoleID:    models.RoleStudentID,
			},
			setupMocks: func(users *MockUserStore, faculties *MockFacultyReader, departments *MockDepartmentReader) {
				users.On("Exists", mock.Anything, "650112345678").Return(false, nil)
				users.On("EmailExists", mock.Anything, "somsak@example.com", "").Return(false, nil)
				users.On("Create", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
					return u.UserID == "650112345678" && u.Password != "" && u.Password != "220547"
				})).Return(nil)
				users.On("GetDetail", mock.Anything, "650112345678").Return(&models.UserDetail{UserID: "650112345678"}, nil)
			},
		},
		{
			name: "unknown role",
			request: &dto.CreateUserRequest{
				UserID:    "650112345678",
				FullName:  "Somsak Jaidee",
				Email:     "somsak@example.com",
				BirthDate: "2004-05-22",
				RoleID:    9,
			},
			setupMocks:    func(*MockUserStore, *MockFacultyReader, *MockDepartmentReader) {},
			expectedError: apperrors.ErrRoleNotFound,
		},
		{
			name: "student id must be 12 digits",
			request: &dto.CreateUserRequest{
				UserID:    "65011234",
				FullName:  "Somsak Jaidee",
				Email:     "somsak@example.com",
				BirthDate: "2004-05-22",
				RoleID:    models.RoleStudentID,
			},
			setupMocks:    func(*MockUserStore, *MockFacultyReader, *MockDepartmentReader) {},
			expectedError: apperrors.ErrInvalidStudentID,
		},
		{
			name: "instructor id is free form",
			request: &dto.CreateUserRequest{
				UserID:    "T1000",
				FullName:  "Ajarn Somchai",
				Email:     "somchai@example.com",
				BirthDate: "1980-01-15",
				RoleID:    models.RoleInstructorID,
			},
			setupMocks: func(users *MockUserStore, faculties *MockFacultyReader, departments *MockDepartmentReader) {
				users.On("Exists", mock.Anything, "T1000").Return(false, nil)
				users.On("EmailExists", mock.Anything, "somchai@example.com", "").Return(false, nil)
				users.On("Create", mock.Anything, mock.AnythingOfType("*models.User")).Return(nil)
				users.On("GetDetail", mock.Anything, "T1000").Return(&models.UserDetail{UserID: "T1000"}, nil)
			},
		},
		{
			name: "department outside the chosen faculty",
			request: &dto.CreateUserRequest{
				UserID:       "650112345678",
				FullName:     "Somsak Jaidee",
				Email:        "somsak@example.com",
				BirthDate:    "2004-05-22",
				RoleID:       models.RoleStudentID,
				FacultyID:    int64Ptr(1),
				DepartmentID: int64Ptr(7),
			},
			setupMocks: func(users *MockUserStore, faculties *MockFacultyReader, departments *MockDepartmentReader) {
				faculties.On("GetByID", mock.Anything, int64(1)).Return(&models.Faculty{FacultyID: 1}, nil)
				departments.On("GetByID", mock.Anything, int64(7)).Return(&models.Department{DepartmentID: 7, FacultyID: 2}, nil)
			},
			expectedError: apperrors.ErrValidationFailed,
		},
		{
			name: "faculty reference must exist",
			request: &dto.CreateUserRequest{
				UserID:    "650112345678",
				FullName:  "Somsak Jaidee",
				Email:     "somsak@example.com",
				BirthDate: "2004-05-22",
				RoleID:    models.RoleStudentID,
				FacultyID: int64Ptr(99),
			},
			setupMocks: func(users *MockUserStore, faculties *MockFacultyReader, departments *MockDepartmentReader) {
				faculties.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrFacultyNotFound)
			},
			expectedError: apperrors.ErrValidationFailed,
		},
		{
			name: "department reference must exist",
			request: &dto.CreateUserRequest{
				UserID:       "650112345678",
				FullName:     "Somsak Jaidee",
				Email:        "somsak@example.com",
				BirthDate:    "2004-05-22",
				RoleID:       models.RoleStudentID,
				DepartmentID: int64Ptr(99),
			},
			setupMocks: func(users *MockUserStore, faculties *MockFacultyReader, departments *MockDepartmentReader) {
				departments.On("GetByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrDepartmentNotFound)
			},
			expectedError: apperrors.ErrValidationFailed,
		},
		{
			name: "malformed birth date",
			request: &dto.CreateUserRequest{
				UserID:    "650112345678",
				FullName:  "Somsak Jaidee",
				Email:     "somsak@example.com",
				BirthDate: "22nd of May",
				RoleID:    models.RoleStudentID,
			},
			setupMocks:    func(*MockUserStore, *MockFacultyReader, *MockDepartmentReader) {},
			expectedError: apperrors.ErrValidationFailed,
		},
		{
			name: "duplicate user id",
			request: &dto.CreateUserRequest{
				UserID:    "650112345678",
				FullName:  "Somsak Jaidee",
				Email:     "somsak@example.com",
				BirthDate: "2004-05-22",
				RoleID:    models.RoleStudentID,
			},
			setupMocks: func(users *MockUserStore, faculties *MockFacultyReader, departments *MockDepartmentReader) {
				users.On("Exists", mock.Anything, "650112345678").Return(true, nil)
			},
			expectedError: apperrors.ErrUserIDAlreadyExists,
		},
		{
			name: "duplicate email",
			request: &dto.CreateUserRequest{
				UserID:    "650112345678",
				FullName:  "Somsak Jaidee",
				Email:     "somsak@example.com",
				BirthDate: "2004-05-22",
				RoleID:    models.RoleStudentID,
			},
			setupMocks: func(users *MockUserStore, faculties *MockFacultyReader, departments *MockDepartmentReader) {
				users.On("Exists", mock.Anything, "650112345678").Return(false, nil)
				users.On("EmailExists", mock.Anything, "somsak@example.com", "").Return(true, nil)
			},
			expectedError: apperrors.ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserStore)
			faculties := new(MockFacultyReader)
			departments := new(MockDepartmentReader)
			tt.setupMocks(users, faculties, departments)

			service := NewUserService(users, faculties, departments)
			detail, err := service.Create(context.Background(), tt.request)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, detail)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, detail)
			}

			users.AssertExpectations(t)
			faculties.AssertExpectations(t)
			departments.AssertExpectations(t)
		})
	}
}

func TestUserService_Update_KeepsPasswordWhenEmpty(t *testing.T) {
	users := new(MockUserStore)
	faculties := new(MockFacultyReader)
	departments := new(MockDepartmentReader)

	users.On("EmailExists", mock.Anything, "somsak@example.com", "650112345678").Return(false, nil)
	users.On("Update", mock.Anything, "650112345678", "Somsak Jaidee", "somsak@example.com",
		models.RoleStudentID, (*int64)(nil), (*int64)(nil), "").Return(nil)
	users.On("GetDetail", mock.Anything, "650112345678").Return(&models.UserDetail{UserID: "650112345678"}, nil)

	service := NewUserService(users, faculties, departments)
	detail, err := service.Update(context.Background(), "650112345678", &dto.UpdateUserRequest{
		FullName: "Somsak Jaidee",
		Email:    "somsak@example.com",
		RoleID:   models.RoleStudentID,
	})

	assert.NoError(t, err)
	assert.NotNil(t, detail)
	users.AssertExpectations(t)
}

func TestUserService_BulkImport(t *testing.T) {
	users := new(MockUserStore)
	faculties := new(MockFacultyReader)
	departments := new(MockDepartmentReader)

	rows := []dto.BulkUserRow{
		{UserID: "650112345678", FullName: "Somsak Jaidee", Email: "somsak@example.com", BirthDate: "22/5/2004", RoleID: models.RoleStudentID},
		{UserID: "650112345678", FullName: "Somsak Jaidee", Email: "somsak2@example.com", BirthDate: "22/5/2004", RoleID: models.RoleStudentID},
		{UserID: "", FullName: "No ID", Email: "noid@example.com", BirthDate: "1/1/2000", RoleID: models.RoleStudentID},
		{UserID: "650187654321", FullName: "Malee Dee", Email: "malee@example.com", BirthDate: "not-a-date", RoleID: models.RoleStudentID},
		{UserID: "650199999999", FullName: "Broken Row", Email: "broken@example.com", BirthDate: "1/1/2000", RoleID: models.RoleStudentID},
		{UserID: "650100000001", FullName: "Fine Row", Email: "fine@example.com", BirthDate: "3/12/1999", RoleID: models.RoleStudentID},
	}

	users.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.UserID == "650112345678" && u.Email == "somsak@example.com"
	})).Return(true, nil).Once()
	users.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.UserID == "650112345678" && u.Email == "somsak2@example.com"
	})).Return(false, nil).Once()
	users.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.UserID == "650199999999"
	})).Return(false, errors.New("connection reset")).Once()
	users.On("CreateIfAbsent", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
		return u.UserID == "650100000001"
	})).Return(true, nil).Once()

	service := NewUserService(users, faculties, departments)
	resp, err := service.BulkImport(context.Background(), rows)
	require.NoError(t, err)

	assert.Equal(t, "Import completed", resp.Message)
	assert.Equal(t, 2, resp.InsertedCount)
	assert.Equal(t, 4, resp.SkippedCount)
	assert.Equal(t, len(rows), resp.InsertedCount+resp.SkippedCount)
	assert.Equal(t, []string{"650112345678", "650100000001"}, resp.Inserted)

	reasons := map[string]bulk.Reason{}
	for _, s := range resp.Skipped {
		reasons[s.UserID] = s.Reason
	}
	assert.Equal(t, bulk.ReasonDuplicate, reasons["650112345678"])
	assert.Equal(t, bulk.ReasonInvalidData, reasons["noid@example.com"])
	assert.Equal(t, bulk.ReasonInvalidData, reasons["650187654321"])
	assert.Equal(t, bulk.ReasonError, reasons["650199999999"])

	users.AssertExpectations(t)
}

func TestUserService_SearchStudents_CapsLimit(t *testing.T) {
	users := new(MockUserStore)

	users.On("SearchStudents", mock.Anything, "somsak", uint64(20)).
		Return([]models.StudentRef{{UserID: "650112345678", FullName: "Somsak Jaidee"}}, nil)

	service := NewUserService(users, new(MockFacultyReader), new(MockDepartmentReader))
	refs, err := service.SearchStudents(context.Background(), "somsak")

	assert.NoError(t, err)
	assert.Len(t, refs, 1)
	users.AssertExpectations(t)
}
