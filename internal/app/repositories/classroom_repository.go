package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
	"github.com/tawan/eduadmin/internal/pkg/dberrors"
	"github.com/tawan/eduadmin/internal/pkg/logger"
)

// ClassroomRepository handles classroom database operations
type ClassroomRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewClassroomRepository creates a new ClassroomRepository
func NewClassroomRepository(db *pgxpool.Pool) *ClassroomRepository {
	return &ClassroomRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// FindID returns the id of an existing offering for the given
// course/year/semester/section, or 0 when none exists.
func (r *ClassroomRepository) FindID(ctx context.Context, courseID string, year, semester, section int) (int64, error) {
	sql, args, err := r.sb.Select("classroom_id").
		From("classrooms").
		Where(squirrel.Eq{
			"course_id": courseID,
			"year":      year,
			"semester":  semester,
			"section":   section,
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build classroom lookup query: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("error looking up classroom: %w", err)
	}

	return id, nil
}

// Create inserts a new offering and fills in the generated id
func (r *ClassroomRepository) Create(ctx context.Context, classroom *models.Classroom) error {
	sql, args, err := r.sb.Insert("classrooms").
		Columns("course_id", "instructor_id", "year", "semester", "section").
		Values(classroom.CourseID, classroom.InstructorID, classroom.Year, classroom.Semester, classroom.Section).
		Suffix("RETURNING classroom_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create classroom query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&classroom.ClassroomID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrClassroomAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", classroom.CourseID).Msg("Error executing create classroom query")
		return fmt.Errorf("error creating classroom: %w", err)
	}

	return nil
}

// ListByInstructor retrieves the classrooms taught by one instructor,
// newest offerings first.
func (r *ClassroomRepository) ListByInstructor(ctx context.Context, instructorID string) ([]models.ClassroomSummary, error) {
	sql, args, err := r.sb.Select("cl.classroom_id", "c.course_id", "c.course_name", "cl.year", "cl.semester", "cl.section").
		From("classrooms cl").
		Join("courses c ON c.course_id = cl.course_id").
		Where(squirrel.Eq{"cl.instructor_id": instructorID}).
		OrderBy("cl.year DESC", "cl.semester DESC", "c.course_id ASC", "cl.section ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build classrooms query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("instructorID", instructorID).Msg("Error querying classrooms")
		return nil, fmt.Errorf("error querying classrooms: %w", err)
	}
	defer rows.Close()

	classrooms := []models.ClassroomSummary{}
	for rows.Next() {
		var c models.ClassroomSummary
		if err := rows.Scan(&c.ClassroomID, &c.Code, &c.Name, &c.Year, &c.Semester, &c.Section); err != nil {
			return nil, fmt.Errorf("error scanning classroom row: %w", err)
		}
		classrooms = append(classrooms, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating classroom rows: %w", err)
	}

	return classrooms, nil
}

// GetDetail retrieves the full classroom view with schedule times as
// HH24:MI strings and the current enrollment headcount.
func (r *ClassroomRepository) GetDetail(ctx context.Context, classroomID int64) (*models.ClassroomDetail, error) {
	sql, args, err := r.sb.Select(
		"cl.classroom_id", "c.course_id", "c.course_name", "cl.section", "cl.year", "cl.semester",
		"u.full_name",
		"to_char(cl.start_time, 'HH24:MI')",
		"to_char(cl.end_time, 'HH24:MI')",
		"to_char(cl.late_after, 'HH24:MI')",
		"(SELECT COUNT(*) FROM enrollments e WHERE e.classroom_id = cl.classroom_id)").
		From("classrooms cl").
		Join("courses c ON c.course_id = cl.course_id").
		LeftJoin("users u ON u.user_id = cl.instructor_id").
		Where(squirrel.Eq{"cl.classroom_id": classroomID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build classroom detail query: %w", err)
	}

	d := &models.ClassroomDetail{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&d.ClassroomID, &d.SubjectCode, &d.SubjectName, &d.Section, &d.Year, &d.Semester,
		&d.TeacherName,
		&d.Schedule.StartTime, &d.Schedule.EndTime, &d.Schedule.LateAfter,
		&d.StudentCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrClassroomNotFound
		}
		logger.Error().Err(err).Int64("classroomID", classroomID).Msg("Error scanning classroom detail row")
		return nil, fmt.Errorf("error getting classroom detail: %w", err)
	}

	return d, nil
}

// IsOwnedBy checks that the classroom exists and is taught by the given
// instructor.
func (r *ClassroomRepository) IsOwnedBy(ctx context.Context, classroomID int64, instructorID string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("classrooms").
		Where(squirrel.Eq{"classroom_id": classroomID, "instructor_id": instructorID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build classroom ownership query: %w", err)
	}

	var owned bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&owned)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking classroom ownership: %w", err)
	}

	return owned, nil
}

// Exists checks whether a classroom id refers to a stored offering
func (r *ClassroomRepository) Exists(ctx context.Context, classroomID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("classrooms").
		Where(squirrel.Eq{"classroom_id": classroomID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build classroom existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking classroom existence: %w", err)
	}

	return exists, nil
}

// UpdateSchedule stores the classroom times. Times arrive validated as
// HH:MM strings and are cast at the store.
func (r *ClassroomRepository) UpdateSchedule(ctx context.Context, classroomID int64, startTime, endTime string, lateAfter *string) error {
	sql, args, err := r.sb.Update("classrooms").
		Set("start_time", squirrel.Expr("?::time", startTime)).
		Set("end_time", squirrel.Expr("?::time", endTime)).
		Set("late_after", squirrel.Expr("?::time", lateAfter)).
		Where(squirrel.Eq{"classroom_id": classroomID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build schedule update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classroomID", classroomID).Msg("Error executing schedule update query")
		return fmt.Errorf("error updating schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrClassroomNotFound
	}

	return nil
}
