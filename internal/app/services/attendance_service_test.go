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

func TestAttendanceService_GetDates(t *testing.T) {
	attendance := new(MockAttendanceStore)
	classrooms := new(MockClassroomGuard)

	classrooms.On("IsOwnedBy", mock.Anything, int64(42), "T1000").Return(true, nil)
	attendance.On("GetDates", mock.Anything, int64(42)).Return([]string{"2025-08-20", "2025-08-13"}, nil)

	service := NewAttendanceService(attendance, classrooms)
	dates, err := service.GetDates(context.Background(), 42, "T1000")

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-08-20", "2025-08-13"}, dates)
	attendance.AssertExpectations(t)
}

func TestAttendanceService_GetForDate(t *testing.T) {
	attendance := new(MockAttendanceStore)
	classrooms := new(MockClassroomGuard)

	status := models.AttendancePresent
	classrooms.On("IsOwnedBy", mock.Anything, int64(42), "T1000").Return(true, nil)
	attendance.On("GetForDate", mock.Anything, int64(42), "2025-08-20").Return([]models.AttendanceRecord{
		{EnrollmentID: 1, StudentID: "650112345678", StudentName: "Somsak Jaidee", Status: &status},
		{EnrollmentID: 2, StudentID: "650187654321", StudentName: "Malee Dee"},
	}, nil)

	service := NewAttendanceService(attendance, classrooms)
	resp, err := service.GetForDate(context.Background(), 42, "T1000", "2025-08-20")

	require.NoError(t, err)
	assert.Equal(t, "2025-08-20", resp.Date)
	assert.Len(t, resp.Data, 2)
	assert.Nil(t, resp.Data[1].Status)
	attendance.AssertExpectations(t)
}

func TestAttendanceService_GetForDate_RejectsBadDate(t *testing.T) {
	attendance := new(MockAttendanceStore)
	classrooms := new(MockClassroomGuard)
	classrooms.On("IsOwnedBy", mock.Anything, int64(42), "T1000").Return(true, nil)

	service := NewAttendanceService(attendance, classrooms)
	_, err := service.GetForDate(context.Background(), 42, "T1000", "20/08/2025")

	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestAttendanceService_Save(t *testing.T) {
	nineFifteen := "09:15"

	tests := []struct {
		name       string
		request    *dto.SaveAttendanceRequest
		setupStore func(*MockAttendanceStore)
		wantErr    bool
	}{
		{
			name: "replaces the full set for the date",
			request: &dto.SaveAttendanceRequest{
				Date: "2025-08-20",
				Items: []models.AttendanceEntry{
					{EnrollmentID: 1, Status: models.AttendancePresent},
					{EnrollmentID: 2, Status: models.AttendanceLate, Time: &nineFifteen},
					{EnrollmentID: 3, Status: models.AttendanceAbsent},
				},
			},
			setupStore: func(m *MockAttendanceStore) {
				m.On("ReplaceForDate", mock.Anything, int64(42), "2025-08-20", mock.AnythingOfType("[]models.AttendanceEntry")).Return(nil)
			},
		},
		{
			name:    "empty items clears the date",
			request: &dto.SaveAttendanceRequest{Date: "2025-08-20", Items: []models.AttendanceEntry{}},
			setupStore: func(m *MockAttendanceStore) {
				m.On("ReplaceForDate", mock.Anything, int64(42), "2025-08-20", []models.AttendanceEntry{}).Return(nil)
			},
		},
		{
			name: "unknown status",
			request: &dto.SaveAttendanceRequest{
				Date:  "2025-08-20",
				Items: []models.AttendanceEntry{{EnrollmentID: 1, Status: "excused"}},
			},
			wantErr: true,
		},
		{
			name: "malformed time",
			request: &dto.SaveAttendanceRequest{
				Date:  "2025-08-20",
				Items: []models.AttendanceEntry{{EnrollmentID: 1, Status: models.AttendanceLate, Time: strPtr("quarter past")}},
			},
			wantErr: true,
		},
		{
			name:    "malformed date",
			request: &dto.SaveAttendanceRequest{Date: "August 20", Items: []models.AttendanceEntry{}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attendance := new(MockAttendanceStore)
			classrooms := new(MockClassroomGuard)
			classrooms.On("IsOwnedBy", mock.Anything, int64(42), "T1000").Return(true, nil)
			if tt.setupStore != nil {
				tt.setupStore(attendance)
			}

			service := NewAttendanceService(attendance, classrooms)
			resp, err := service.Save(context.Background(), 42, "T1000", tt.request)

			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Attendance saved", resp.Message)
				assert.Equal(t, len(tt.request.Items), resp.UpdatedCount)
			}

			attendance.AssertExpectations(t)
		})
	}
}

func TestAttendanceService_Save_HidesForeignClassrooms(t *testing.T) {
	attendance := new(MockAttendanceStore)
	classrooms := new(MockClassroomGuard)
	classrooms.On("IsOwnedBy", mock.Anything, int64(42), "T2000").Return(false, nil)

	service := NewAttendanceService(attendance, classrooms)
	_, err := service.Save(context.Background(), 42, "T2000", &dto.SaveAttendanceRequest{
		Date: "2025-08-20", Items: []models.AttendanceEntry{},
	})

	assert.ErrorIs(t, err, apperrors.ErrClassroomNotFound)
}
