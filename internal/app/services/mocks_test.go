package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tawan/eduadmin/internal/app/models"
)

// MockUserStore is a mock implementation of UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) ListDetails(ctx context.Context) ([]models.UserDetail, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.UserDetail), args.Error(1)
}

func (m *MockUserStore) GetDetail(ctx context.Context, userID string) (*models.UserDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserDetail), args.Error(1)
}

func (m *MockUserStore) Exists(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) EmailExists(ctx context.Context, email, excludeUserID string) (bool, error) {
	args := m.Called(ctx, email, excludeUserID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) CreateIfAbsent(ctx context.Context, user *models.User) (bool, error) {
	args := m.Called(ctx, user)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserStore) Update(ctx context.Context, userID, fullName, email string, roleID int64, facultyID, departmentID *int64, passwordHash string) error {
	args := m.Called(ctx, userID, fullName, email, roleID, facultyID, departmentID, passwordHash)
	return args.Error(0)
}

func (m *MockUserStore) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserStore) SearchStudents(ctx context.Context, q string, limit uint64) ([]models.StudentRef, error) {
	args := m.Called(ctx, q, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudentRef), args.Error(1)
}

// MockFacultyReader is a mock implementation of FacultyReader.
type MockFacultyReader struct {
	mock.Mock
}

func (m *MockFacultyReader) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Faculty), args.Error(1)
}

// MockDepartmentReader is a mock implementation of DepartmentReader.
type MockDepartmentReader struct {
	mock.Mock
}

func (m *MockDepartmentReader) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Department), args.Error(1)
}

// MockCourseStore is a mock implementation of CourseStore.
type MockCourseStore struct {
	mock.Mock
}

func (m *MockCourseStore) GetAll(ctx context.Context) ([]models.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockCourseStore) ListByInstructor(ctx context.Context, instructorID string) ([]models.Course, error) {
	args := m.Called(ctx, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Course), args.Error(1)
}

func (m *MockCourseStore) GetByID(ctx context.Context, courseID string) (*models.Course, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

func (m *MockCourseStore) Exists(ctx context.Context, courseID string) (bool, error) {
	args := m.Called(ctx, courseID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCourseStore) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockCourseStore) Create(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseStore) CreateIfAbsent(ctx context.Context, course *models.Course) (bool, error) {
	args := m.Called(ctx, course)
	return args.Bool(0), args.Error(1)
}

func (m *MockCourseStore) Update(ctx context.Context, course *models.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseStore) Delete(ctx context.Context, courseID string) error {
	args := m.Called(ctx, courseID)
	return args.Error(0)
}

func (m *MockCourseStore) GetStudents(ctx context.Context, courseID string) ([]models.CourseStudent, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CourseStudent), args.Error(1)
}

// MockInstructorDirectory is a mock implementation of InstructorDirectory.
type MockInstructorDirectory struct {
	mock.Mock
}

func (m *MockInstructorDirectory) ListInstructors(ctx context.Context) ([]models.InstructorRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.InstructorRef), args.Error(1)
}

func (m *MockInstructorDirectory) IsInstructor(ctx context.Context, userID string) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// MockClassroomStore is a mock implementation of ClassroomStore.
type MockClassroomStore struct {
	mock.Mock
}

func (m *MockClassroomStore) FindID(ctx context.Context, courseID string, year, semester, section int) (int64, error) {
	args := m.Called(ctx, courseID, year, semester, section)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockClassroomStore) Create(ctx context.Context, classroom *models.Classroom) error {
	args := m.Called(ctx, classroom)
	return args.Error(0)
}

func (m *MockClassroomStore) ListByInstructor(ctx context.Context, instructorID string) ([]models.ClassroomSummary, error) {
	args := m.Called(ctx, instructorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ClassroomSummary), args.Error(1)
}

func (m *MockClassroomStore) GetDetail(ctx context.Context, classroomID int64) (*models.ClassroomDetail, error) {
	args := m.Called(ctx, classroomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ClassroomDetail), args.Error(1)
}

func (m *MockClassroomStore) IsOwnedBy(ctx context.Context, classroomID int64, instructorID string) (bool, error) {
	args := m.Called(ctx, classroomID, instructorID)
	return args.Bool(0), args.Error(1)
}

func (m *MockClassroomStore) UpdateSchedule(ctx context.Context, classroomID int64, startTime, endTime string, lateAfter *string) error {
	args := m.Called(ctx, classroomID, startTime, endTime, lateAfter)
	return args.Error(0)
}

// MockEnrollmentStore is a mock implementation of EnrollmentStore.
type MockEnrollmentStore struct {
	mock.Mock
}

func (m *MockEnrollmentStore) AddIfAbsent(ctx context.Context, classroomID int64, studentID string) (bool, error) {
	args := m.Called(ctx, classroomID, studentID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEnrollmentStore) ListMembers(ctx context.Context, classroomID int64) ([]models.ClassroomMember, error) {
	args := m.Called(ctx, classroomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ClassroomMember), args.Error(1)
}

func (m *MockEnrollmentStore) Remove(ctx context.Context, classroomID int64, studentID string) error {
	args := m.Called(ctx, classroomID, studentID)
	return args.Error(0)
}

// MockCourseReader is a mock implementation of CourseReader.
type MockCourseReader struct {
	mock.Mock
}

func (m *MockCourseReader) GetByID(ctx context.Context, courseID string) (*models.Course, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Course), args.Error(1)
}

// MockAttendanceStore is a mock implementation of AttendanceStore.
type MockAttendanceStore struct {
	mock.Mock
}

func (m *MockAttendanceStore) GetDates(ctx context.Context, classroomID int64) ([]string, error) {
	args := m.Called(ctx, classroomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAttendanceStore) GetForDate(ctx context.Context, classroomID int64, date string) ([]models.AttendanceRecord, error) {
	args := m.Called(ctx, classroomID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceStore) ReplaceForDate(ctx context.Context, classroomID int64, date string, entries []models.AttendanceEntry) error {
	args := m.Called(ctx, classroomID, date, entries)
	return args.Error(0)
}

// MockClassroomGuard is a mock implementation of ClassroomGuard.
type MockClassroomGuard struct {
	mock.Mock
}

func (m *MockClassroomGuard) IsOwnedBy(ctx context.Context, classroomID int64, instructorID string) (bool, error) {
	args := m.Called(ctx, classroomID, instructorID)
	return args.Bool(0), args.Error(1)
}

// MockCredentialsReader is a mock implementation of CredentialsReader.
type MockCredentialsReader struct {
	mock.Mock
}

func (m *MockCredentialsReader) GetCredentials(ctx context.Context, userID string) (*models.UserDetail, string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.UserDetail), args.String(1), args.Error(2)
}

// MockTokenIssuer is a mock implementation of TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) GenerateToken(userID string, roleID int64, roleName string) (string, int, error) {
	args := m.Called(userID, roleID, roleName)
	return args.String(0), args.Int(1), args.Error(2)
}
