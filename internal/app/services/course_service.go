package services

import (
	"context"
	"strings"

	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/app/models/dto"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
	"github.com/tawan/eduadmin/internal/pkg/bulk"
	"github.com/tawan/eduadmin/internal/pkg/logger"
)

// CourseStore is the persistence surface used by CourseService
type CourseStore interface {
	GetAll(ctx context.Context) ([]models.Course, error)
	ListByInstructor(ctx context.Context, instructorID string) ([]models.Course, error)
	GetByID(ctx context.Context, courseID string) (*models.Course, error)
	Exists(ctx context.Context, courseID string) (bool, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	Create(ctx context.Context, course *models.Course) error
	CreateIfAbsent(ctx context.Context, course *models.Course) (bool, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, courseID string) error
	GetStudents(ctx context.Context, courseID string) ([]models.CourseStudent, error)
}

// InstructorDirectory resolves and lists instructor accounts
type InstructorDirectory interface {
	ListInstructors(ctx context.Context) ([]models.InstructorRef, error)
	IsInstructor(ctx context.Context, userID string) (bool, error)
}

// CourseService handles course administration
type CourseService struct {
	courses     CourseStore
	instructors InstructorDirectory
}

// NewCourseService creates a new CourseService
func NewCourseService(courses CourseStore, instructors InstructorDirectory) *CourseService {
	return &CourseService{
		courses:     courses,
		instructors: instructors,
	}
}

// GetAll lists all courses with their instructors
func (s *CourseService) GetAll(ctx context.Context) ([]models.Course, error) {
	return s.courses.GetAll(ctx)
}

// GetByInstructor lists the courses assigned to one instructor
func (s *CourseService) GetByInstructor(ctx context.Context, instructorID string) ([]models.Course, error) {
	return s.courses.ListByInstructor(ctx, instructorID)
}

// GetWithStudents retrieves one course plus every student enrolled in any
// of its classrooms.
func (s *CourseService) GetWithStudents(ctx context.Context, courseID string) (*dto.CourseWithStudents, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	students, err := s.courses.GetStudents(ctx, courseID)
	if err != nil {
		return nil, err
	}

	return &dto.CourseWithStudents{
		Course:   course,
		Students: students,
	}, nil
}

// ListInstructors lists the accounts a course can be assigned to
func (s *CourseService) ListInstructors(ctx context.Context) ([]models.InstructorRef, error) {
	return s.instructors.ListInstructors(ctx)
}

// requireInstructor verifies the referenced user exists and holds the
// instructor role.
func (s *CourseService) requireInstructor(ctx context.Context, instructorID string) error {
	ok, err := s.instructors.IsInstructor(ctx, instructorID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrInstructorNotFound
	}
	return nil
}

// Create adds a course assigned to an instructor
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	courseID := strings.TrimSpace(req.CourseID)
	courseName := strings.TrimSpace(req.CourseName)
	instructorID := strings.TrimSpace(req.InstructorID)

	if err := s.requireInstructor(ctx, instructorID); err != nil {
		return nil, err
	}

	exists, err := s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrCourseAlreadyExists
	}

	nameTaken, err := s.courses.ExistsByName(ctx, courseName, "")
	if err != nil {
		return nil, err
	}
	if nameTaken {
		return nil, apperrors.ErrCourseAlreadyExists
	}

	course := &models.Course{
		CourseID:     courseID,
		CourseName:   courseName,
		InstructorID: &instructorID,
	}
	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	return s.courses.GetByID(ctx, courseID)
}

// Update edits a course. A nil InstructorID clears the assignment.
func (s *CourseService) Update(ctx context.Context, courseID string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	courseName := strings.TrimSpace(req.CourseName)

	nameTaken, err := s.courses.ExistsByName(ctx, courseName, courseID)
	if err != nil {
		return nil, err
	}
	if nameTaken {
		return nil, apperrors.ErrCourseAlreadyExists
	}

	instructorID := req.InstructorID
	if instructorID != nil {
		trimmed := strings.TrimSpace(*instructorID)
		if trimmed == "" {
			instructorID = nil
		} else {
			if err := s.requireInstructor(ctx, trimmed); err != nil {
				return nil, err
			}
			instructorID = &trimmed
		}
	}

	course := &models.Course{
		CourseID:     courseID,
		CourseName:   courseName,
		InstructorID: instructorID,
	}
	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return s.courses.GetByID(ctx, courseID)
}

// Delete removes a course; its classrooms cascade at the store
func (s *CourseService) Delete(ctx context.Context, courseID string) error {
	return s.courses.Delete(ctx, courseID)
}

// BulkImport loads a batch of unassigned courses, typically parsed from
// a CSV upload. Every input row ends up either inserted or skipped with
// a reason.
func (s *CourseService) BulkImport(ctx context.Context, rows []dto.BulkCourseRow) (*dto.BulkCourseImportResponse, error) {
	inserted := []models.Course{}
	skipped := []dto.SkippedCourse{}

	reject := func(row dto.BulkCourseRow, reason bulk.Reason) {
		skipped = append(skipped, dto.SkippedCourse{
			CourseID:   strings.TrimSpace(row.CourseID),
			CourseName: strings.TrimSpace(row.CourseName),
			Reason:     reason,
		})
	}

	for _, row := range rows {
		courseID := strings.TrimSpace(row.CourseID)
		courseName := strings.TrimSpace(row.CourseName)

		if courseID == "" || courseName == "" {
			reject(row, bulk.ReasonInvalidData)
			continue
		}

		course := &models.Course{
			CourseID:   courseID,
			CourseName: courseName,
		}

		ok, err := s.courses.CreateIfAbsent(ctx, course)
		switch {
		case err == nil && ok:
			inserted = append(inserted, *course)
		case err == nil:
			reject(row, bulk.ReasonDuplicate)
		default:
			logger.Error().Err(err).Str("courseID", courseID).Msg("Course import row failed")
			reject(row, bulk.ReasonError)
		}
	}

	return &dto.BulkCourseImportResponse{
		Message:  "Import completed",
		Inserted: inserted,
		Skipped:  skipped,
	}, nil
}
