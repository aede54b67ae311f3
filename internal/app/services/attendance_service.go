package services

import (
	"context"
	"strings"
	"time"

	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
)

// AttendanceStore is the persistence surface used by AttendanceService
type AttendanceStore interface {
	GetDates(ctx context.Context, classroomID int64) ([]string, error)
	GetForDate(ctx context.Context, classroomID int64, date string) ([]models.AttendanceRecord, error)
	ReplaceForDate(ctx context.Context, classroomID int64, date string, entries []models.AttendanceEntry) error
}

// ClassroomGuard checks classroom ownership for attendance operations
type ClassroomGuard interface {
	IsOwnedBy(ctx context.Context, classroomID int64, instructorID string) (bool, error)
}

// AttendanceService records and reads per-date attendance for an
// instructor's classrooms.
type AttendanceService struct {
	attendance AttendanceStore
	classrooms ClassroomGuard
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendance AttendanceStore, classrooms ClassroomGuard) *AttendanceService {
	return &AttendanceService{
		attendance: attendance,
		classrooms: classrooms,
	}
}

func (s *AttendanceService) requireOwnership(ctx context.Context, classroomID int64, instructorID string) error {
	owned, err := s.classrooms.IsOwnedBy(ctx, classroomID, instructorID)
	if err != nil {
		return err
	}
	if !owned {
		return apperrors.ErrClassroomNotFound
	}
	return nil
}

func parseAttendanceDate(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if _, err := time.Parse("2006-01-02", trimmed); err != nil {
		return "", apperrors.NewValidationError("date must be YYYY-MM-DD")
	}
	return trimmed, nil
}

var validStatuses = map[string]bool{
	models.AttendancePresent: true,
	models.AttendanceLate:    true,
	models.AttendanceAbsent:  true,
}

// GetDates lists the dates with recorded attendance, newest first
func (s *AttendanceService) GetDates(ctx context.Context, classroomID int64, instructorID string) ([]string, error) {
	if err := s.requireOwnership(ctx, classroomID, instructorID); err != nil {
		return nil, err
	}

	return s.attendance.GetDates(ctx, classroomID)
}

// GetForDate retrieves the roster with each student's status for a date
func (s *AttendanceService) GetForDate(ctx context.Context, classroomID int64, instructorID, date string) (*dto.AttendanceDayResponse, error) {
	if err := s.requireOwnership(ctx, classroomID, instructorID); err != nil {
		return nil, err
	}

	day, err := parseAttendanceDate(date)
	if err != nil {
		return nil, err
	}

	records, err := s.attendance.GetForDate(ctx, classroomID, day)
	if err != nil {
		return nil, err
	}

	return &dto.AttendanceDayResponse{
		Message: "Attendance retrieved",
		Date:    day,
		Data:    records,
	}, nil
}

// Save replaces the full attendance set for one date. The swap is atomic
// at the store; a save that fails midway leaves the previous records in
// place. An empty item list clears the date.
func (s *AttendanceService) Save(ctx context.Context, classroomID int64, instructorID string, req *dto.SaveAttendanceRequest) (*dto.SaveAttendanceResponse, error) {
	if err := s.requireOwnership(ctx, classroomID, instructorID); err != nil {
		return nil, err
	}

	day, err := parseAttendanceDate(req.Date)
	if err != nil {
		return nil, err
	}

	for _, item := range req.Items {
		if !validStatuses[item.Status] {
			return nil, apperrors.NewValidationError("status must be present, late or absent")
		}
		if item.Time != nil {
			if _, err := time.Parse("15:04", *item.Time); err != nil {
				return nil, apperrors.NewValidationError("time must be HH:MM")
			}
		}
	}

	if err := s.attendance.ReplaceForDate(ctx, classroomID, day, req.Items); err != nil {
		return nil, err
	}

	return &dto.SaveAttendanceResponse{
		Message:      "Attendance saved",
		Date:         day,
		UpdatedCount: len(req.Items),
	}, nil
}
