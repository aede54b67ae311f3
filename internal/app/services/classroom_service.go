package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
)

// ClassroomStore is the persistence surface used by ClassroomService
type ClassroomStore interface {
	FindID(ctx context.Context, courseID string, year, semester, section int) (int64, error)
	Create(ctx context.Context, classroom *models.Classroom) error
	ListByInstructor(ctx context.Context, instructorID string) ([]models.ClassroomSummary, error)
	GetDetail(ctx context.Context, classroomID int64) (*models.ClassroomDetail, error)
	IsOwnedBy(ctx context.Context, classroomID int64, instructorID string) (bool, error)
	UpdateSchedule(ctx context.Context, classroomID int64, startTime, endTime string, lateAfter *string) error
}

// EnrollmentStore is the membership surface used by ClassroomService
type EnrollmentStore interface {
	AddIfAbsent(ctx context.Context, classroomID int64, studentID string) (bool, error)
	ListMembers(ctx context.Context, classroomID int64) ([]models.ClassroomMember, error)
	Remove(ctx context.Context, classroomID int64, studentID string) error
}

// CourseReader resolves course references
type CourseReader interface {
	GetByID(ctx context.Context, courseID string) (*models.Course, error)
}

// ClassroomService handles an instructor's classroom offerings and their
// rosters. Every operation on an existing classroom first checks that
// the caller teaches it.
type ClassroomService struct {
	classrooms  ClassroomStore
	enrollments EnrollmentStore
	courses     CourseReader
}

// NewClassroomService creates a new ClassroomService
func NewClassroomService(classrooms ClassroomStore, enrollments EnrollmentStore, courses CourseReader) *ClassroomService {
	return &ClassroomService{
		classrooms:  classrooms,
		enrollments: enrollments,
		courses:     courses,
	}
}

// requireOwnership verifies the classroom exists and belongs to the caller
func (s *ClassroomService) requireOwnership(ctx context.Context, classroomID int64, instructorID string) error {
	owned, err := s.classrooms.IsOwnedBy(ctx, classroomID, instructorID)
	if err != nil {
		return err
	}
	if !owned {
		// Hide whether the classroom exists from non-owners
		return apperrors.ErrClassroomNotFound
	}
	return nil
}

// Create opens a classroom offering for a course the caller is assigned
// to. Creating an offering that already exists returns the existing one
// instead of failing.
func (s *ClassroomService) Create(ctx context.Context, instructorID string, req *dto.CreateClassroomRequest) (*models.ClassroomDetail, bool, error) {
	courseID := strings.TrimSpace(req.CourseID)

	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, false, err
	}
	if course.InstructorID == nil || *course.InstructorID != instructorID {
		return nil, false, apperrors.NewForbiddenError("course is not assigned to you")
	}

	existingID, err := s.classrooms.FindID(ctx, courseID, req.Year, req.Semester, req.Section)
	if err != nil {
		return nil, false, err
	}
	if existingID != 0 {
		detail, err := s.classrooms.GetDetail(ctx, existingID)
		return detail, false, err
	}

	classroom := &models.Classroom{
		CourseID:     courseID,
		InstructorID: instructorID,
		Year:         req.Year,
		Semester:     req.Semester,
		Section:      req.Section,
	}
	if err := s.classrooms.Create(ctx, classroom); err != nil {
		return nil, false, err
	}

	detail, err := s.classrooms.GetDetail(ctx, classroom.ClassroomID)
	return detail, true, err
}

// List retrieves the caller's classrooms
func (s *ClassroomService) List(ctx context.Context, instructorID string) ([]models.ClassroomSummary, error) {
	return s.classrooms.ListByInstructor(ctx, instructorID)
}

// GetDetail retrieves one of the caller's classrooms with schedule and
// headcount.
func (s *ClassroomService) GetDetail(ctx context.Context, classroomID int64, instructorID string) (*models.ClassroomDetail, error) {
	if err := s.requireOwnership(ctx, classroomID, instructorID); err != nil {
		return nil, err
	}

	return s.classrooms.GetDetail(ctx, classroomID)
}

func parseClock(value string) (time.Time, error) {
	return time.Parse("15:04", strings.TrimSpace(value))
}

// UpdateSchedule stores the classroom times after checking their order:
// the end must follow the start, and the late threshold, when given,
// must fall inside the session.
func (s *ClassroomService) UpdateSchedule(ctx context.Context, classroomID int64, instructorID string, req *dto.UpdateScheduleRequest) (*dto.ScheduleResponse, error) {
	if err := s.requireOwnership(ctx, classroomID, instructorID); err != nil {
		return nil, err
	}

	start, err := parseClock(req.StartTime)
	if err != nil {
		return nil, apperrors.NewValidationError("start_time must be HH:MM")
	}
	end, err := parseClock(req.EndTime)
	if err != nil {
		return nil, apperrors.NewValidationError("end_time must be HH:MM")
	}
	if !end.After(start) {
		return nil, apperrors.NewValidationError("end_time must be after start_time")
	}

	var lateAfter *string
	if trimmed := strings.TrimSpace(req.LateAfter); trimmed != "" {
		late, err := parseClock(trimmed)
		if err != nil {
			return nil, apperrors.NewValidationError("late_after must be HH:MM")
		}
		if late.Before(start) || late.After(end) {
			return nil, apperrors.NewValidationError("late_after must fall between start_time and end_time")
		}
		lateAfter = &trimmed
	}

	if err := s.classrooms.UpdateSchedule(ctx, classroomID, strings.TrimSpace(req.StartTime), strings.TrimSpace(req.EndTime), lateAfter); err != nil {
		return nil, err
	}

	detail, err := s.classrooms.GetDetail(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	return &dto.ScheduleResponse{
		ClassroomID: classroomID,
		Schedule:    detail.Schedule,
	}, nil
}

// AddMembers enrolls a batch of students. Already-enrolled and unknown
// ids are skipped; the refreshed roster is returned alongside the
// per-student outcomes.
func (s *ClassroomService) AddMembers(ctx context.Context, classroomID int64, instructorID string, studentIDs []string) (*dto.AddMembersResponse, error) {
	if err := s.requireOwnership(ctx, classroomID, instructorID); err != nil {
		return nil, err
	}

	inserted := []string{}
	skipped := []string{}

	for _, raw := range studentIDs {
		studentID := strings.TrimSpace(raw)
		if studentID == "" {
			// Blank entries still count toward the response tally
			skipped = append(skipped, studentID)
			continue
		}

		ok, err := s.enrollments.AddIfAbsent(ctx, classroomID, studentID)
		switch {
		case err == nil && ok:
			inserted = append(inserted, studentID)
		case err == nil:
			skipped = append(skipped, studentID)
		case errors.Is(err, apperrors.ErrUserNotFound):
			skipped = append(skipped, studentID)
		default:
			return nil, err
		}
	}

	members, err := s.enrollments.ListMembers(ctx, classroomID)
	if err != nil {
		return nil, err
	}

	return &dto.AddMembersResponse{
		Message:  "Members updated",
		Inserted: inserted,
		Skipped:  skipped,
		Data:     members,
	}, nil
}

// ListMembers retrieves the classroom roster
func (s *ClassroomService) ListMembers(ctx context.Context, classroomID int64, instructorID string) ([]models.ClassroomMember, error) {
	if err := s.requireOwnership(ctx, classroomID, instructorID); err != nil {
		return nil, err
	}

	return s.enrollments.ListMembers(ctx, classroomID)
}

// RemoveMember drops one student from the roster
func (s *ClassroomService) RemoveMember(ctx context.Context, classroomID int64, instructorID, studentID string) error {
	if err := s.requireOwnership(ctx, classroomID, instructorID); err != nil {
		return err
	}

	return s.enrollments.Remove(ctx, classroomID, studentID)
}
