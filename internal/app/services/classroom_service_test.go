package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
)

func strPtr(v string) *string { return &v }

func TestClassroomService_Create(t *testing.T) {
	owner := "T1000"

	t.Run("creates a new offering", func(t *testing.T) {
		classrooms := new(MockClassroomStore)
		enrollments := new(MockEnrollmentStore)
		courses := new(MockCourseReader)

		courses.On("GetByID", mock.Anything, "CS101").Return(&models.Course{CourseID: "CS101", InstructorID: &owner}, nil)
		classrooms.On("FindID", mock.Anything, "CS101", 2025, 1, 1).Return(int64(0), nil)
		classrooms.On("Create", mock.Anything, mock.MatchedBy(func(c *models.Classroom) bool {
			return c.CourseID == "CS101" && c.InstructorID == "T1000"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Classroom).ClassroomID = 42
		}).Return(nil)
		classrooms.On("GetDetail", mock.Anything, int64(42)).Return(&models.ClassroomDetail{ClassroomID: 42}, nil)

		service := NewClassroomService(classrooms, enrollments, courses)
		detail, created, err := service.Create(context.Background(), "T1000", &dto.CreateClassroomRequest{
			CourseID: "CS101", Year: 2025, Semester: 1, Section: 1,
		})

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(42), detail.ClassroomID)
		classrooms.AssertExpectations(t)
	})

	t.Run("returns the existing offering instead of failing", func(t *testing.T) {
		classrooms := new(MockClassroomStore)
		enrollments := new(MockEnrollmentStore)
		courses := new(MockCourseReader)

		courses.On("GetByID", mock.Anything, "CS101").Return(&models.Course{CourseID: "CS101", InstructorID: &owner}, nil)
		classrooms.On("FindID", mock.Anything, "CS101", 2025, 1, 1).Return(int64(7), nil)
		classrooms.On("GetDetail", mock.Anything, int64(7)).Return(&models.ClassroomDetail{ClassroomID: 7}, nil)

		service := NewClassroomService(classrooms, enrollments, courses)
		detail, created, err := service.Create(context.Background(), "T1000", &dto.CreateClassroomRequest{
			CourseID: "CS101", Year: 2025, Semester: 1, Section: 1,
		})

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(7), detail.ClassroomID)
	})

	t.Run("rejects a course assigned to someone else", func(t *testing.T) {
		classrooms := new(MockClassroomStore)
		enrollments := new(MockEnrollmentStore)
		courses := new(MockCourseReader)

		other := "T2000"
		courses.On("GetByID", mock.Anything, "CS101").Return(&models.Course{CourseID: "CS101", InstructorID: &other}, nil)

		service := NewClassroomService(classrooms, enrollments, courses)
		_, _, err := service.Create(context.Background(), "T1000", &dto.CreateClassroomRequest{
			CourseID: "CS101", Year: 2025, Semester: 1, Section: 1,
		})

		assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	})
}

func TestClassroomService_UpdateSchedule(t *testing.T) {
	schedule := models.Schedule{StartTime: strPtr("09:00"), EndTime: strPtr("11:00"), LateAfter: strPtr("09:15")}

	tests := []struct {
		name       string
		request    *dto.UpdateScheduleRequest
		setupStore func(*MockClassroomStore)
		wantErr    string
	}{
		{
			name:    "valid schedule with late threshold",
			request: &dto.UpdateScheduleRequest{StartTime: "09:00", EndTime: "11:00", LateAfter: "09:15"},
			setupStore: func(m *MockClassroomStore) {
				m.On("UpdateSchedule", mock.Anything, int64(42), "09:00", "11:00", strPtr("09:15")).Return(nil)
				m.On("GetDetail", mock.Anything, int64(42)).Return(&models.ClassroomDetail{ClassroomID: 42, Schedule: schedule}, nil)
			},
		},
		{
			name:    "end equal to start",
			request: &dto.UpdateScheduleRequest{StartTime: "09:00", EndTime: "09:00", LateAfter: ""},
			wantErr: "end_time must be after start_time",
		},
		{
			name:    "end before start",
			request: &dto.UpdateScheduleRequest{StartTime: "11:00", EndTime: "09:00", LateAfter: ""},
			wantErr: "end_time must be after start_time",
		},
		{
			name:    "malformed start",
			request: &dto.UpdateScheduleRequest{StartTime: "9 o'clock", EndTime: "11:00", LateAfter: ""},
			wantErr: "start_time must be HH:MM",
		},
		{
			name:    "late threshold outside the session",
			request: &dto.UpdateScheduleRequest{StartTime: "09:00", EndTime: "11:00", LateAfter: "11:30"},
			wantErr: "late_after must fall between start_time and end_time",
		},
		{
			name:    "late threshold at the boundary is allowed",
			request: &dto.UpdateScheduleRequest{StartTime: "09:00", EndTime: "11:00", LateAfter: "11:00"},
			setupStore: func(m *MockClassroomStore) {
				m.On("UpdateSchedule", mock.Anything, int64(42), "09:00", "11:00", strPtr("11:00")).Return(nil)
				m.On("GetDetail", mock.Anything, int64(42)).Return(&models.ClassroomDetail{ClassroomID: 42, Schedule: schedule}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classrooms := new(MockClassroomStore)
			classrooms.On("IsOwnedBy", mock.Anything, int64(42), "T1000").Return(true, nil)
			if tt.setupStore != nil {
				tt.setupStore(classrooms)
			}

			service := NewClassroomService(classrooms, new(MockEnrollmentStore), new(MockCourseReader))
			resp, err := service.UpdateSchedule(context.Background(), 42, "T1000", tt.request)

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
				assert.Equal(t, tt.wantErr, err.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, int64(42), resp.ClassroomID)
			}

			classrooms.AssertExpectations(t)
		})
	}
}

func TestClassroomService_UpdateSchedule_HidesForeignClassrooms(t *testing.T) {
	classrooms := new(MockClassroomStore)
	classrooms.On("IsOwnedBy", mock.Anything, int64(42), "T2000").Return(false, nil)

	service := NewClassroomService(classrooms, new(MockEnrollmentStore), new(MockCourseReader))
	_, err := service.UpdateSchedule(context.Background(), 42, "T2000", &dto.UpdateScheduleRequest{
		StartTime: "09:00", EndTime: "11:00",
	})

	assert.ErrorIs(t, err, apperrors.ErrClassroomNotFound)
}

func TestClassroomService_AddMembers(t *testing.T) {
	classrooms := new(MockClassroomStore)
	enrollments := new(MockEnrollmentStore)

	classrooms.On("IsOwnedBy", mock.Anything, int64(42), "T1000").Return(true, nil)
	enrollments.On("AddIfAbsent", mock.Anything, int64(42), "650112345678").Return(true, nil)
	enrollments.On("AddIfAbsent", mock.Anything, int64(42), "650187654321").Return(false, nil)
	enrollments.On("AddIfAbsent", mock.Anything, int64(42), "999999999999").Return(false, apperrors.ErrUserNotFound)
	enrollments.On("ListMembers", mock.Anything, int64(42)).Return([]models.ClassroomMember{
		{StudentID: "650112345678", FullName: "Somsak Jaidee"},
		{StudentID: "650187654321", FullName: "Malee Dee"},
	}, nil)

	service := NewClassroomService(classrooms, enrollments, new(MockCourseReader))
	resp, err := service.AddMembers(context.Background(), 42, "T1000",
		[]string{"650112345678", " 650187654321 ", "999999999999", "  "})

	require.NoError(t, err)
	assert.Equal(t, []string{"650112345678"}, resp.Inserted)
	assert.Equal(t, []string{"650187654321", "999999999999", ""}, resp.Skipped)
	assert.Equal(t, 4, len(resp.Inserted)+len(resp.Skipped))
	assert.Len(t, resp.Data, 2)
	enrollments.AssertExpectations(t)
}

func TestClassroomService_RemoveMember(t *testing.T) {
	classrooms := new(MockClassroomStore)
	enrollments := new(MockEnrollmentStore)

	classrooms.On("IsOwnedBy", mock.Anything, int64(42), "T1000").Return(true, nil)
	enrollments.On("Remove", mock.Anything, int64(42), "650112345678").Return(nil)

	service := NewClassroomService(classrooms, enrollments, new(MockCourseReader))
	err := service.RemoveMember(context.Background(), 42, "T1000", "650112345678")

	assert.NoError(t, err)
	enrollments.AssertExpectations(t)
}
