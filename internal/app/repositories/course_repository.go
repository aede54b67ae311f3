package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
	"github.com/tawan/eduadmin/internal/pkg/dberrors"
	"github.com/tawan/eduadmin/internal/pkg/logger"
)

// CourseRepository handles course database operations
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (r *CourseRepository) joinedQuery() squirrel.SelectBuilder {
	return r.sb.Select("c.course_id", "c.course_name", "c.instructor_id", "u.full_name", "u.email").
		From("courses c").
		LeftJoin("users u ON u.user_id = c.instructor_id")
}

func scanCourse(row pgx.Row) (*models.Course, error) {
	c := &models.Course{}
	err := row.Scan(&c.CourseID, &c.CourseName, &c.InstructorID, &c.InstructorName, &c.InstructorEmail)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetAll retrieves all courses joined with their instructor
func (r *CourseRepository) GetAll(ctx context.Context) ([]models.Course, error) {
	sql, args, err := r.joinedQuery().OrderBy("c.course_id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying courses")
		return nil, fmt.Errorf("error querying courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// ListByInstructor retrieves the courses assigned to one instructor
func (r *CourseRepository) ListByInstructor(ctx context.Context, instructorID string) ([]models.Course, error) {
	sql, args, err := r.joinedQuery().
		Where(squirrel.Eq{"c.instructor_id": instructorID}).
		OrderBy("c.course_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build instructor courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("instructorID", instructorID).Msg("Error querying instructor courses")
		return nil, fmt.Errorf("error querying instructor courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}

	return courses, nil
}

// GetByID retrieves a single course joined with its instructor
func (r *CourseRepository) GetByID(ctx context.Context, courseID string) (*models.Course, error) {
	sql, args, err := r.joinedQuery().
		Where(squirrel.Eq{"c.course_id": courseID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course query: %w", err)
	}

	course, err := scanCourse(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Str("courseID", courseID).Msg("Error scanning course row")
		return nil, fmt.Errorf("error getting course: %w", err)
	}

	return course, nil
}

// courseIDMatch compares course ids case-insensitively, the same way the
// unique index on courses does.
func courseIDMatch(courseID string) squirrel.Sqlizer {
	return squirrel.Expr("LOWER(course_id) = LOWER(?)", courseID)
}

// Exists checks whether a course id is taken, ignoring case
func (r *CourseRepository) Exists(ctx context.Context, courseID string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("courses").
		Where(courseIDMatch(courseID)).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build course existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}

	return exists, nil
}

// ExistsByName checks for a case-insensitive name match, optionally
// excluding one course id.
func (r *CourseRepository) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	builder := r.sb.Select("1").
		From("courses").
		Where(squirrel.Expr("LOWER(course_name) = LOWER(?)", strings.TrimSpace(name)))
	if excludeID != "" {
		builder = builder.Where(squirrel.NotEq{"course_id": excludeID})
	}

	sql, args, err := builder.Prefix("SELECT EXISTS (").Suffix(")").Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build course name query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking course name: %w", err)
	}

	return exists, nil
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("course_id", "course_name", "instructor_id").
		Values(course.CourseID, course.CourseName, course.InstructorID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInstructorNotFound
		}
		logger.Error().Err(err).Str("courseID", course.CourseID).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// CreateIfAbsent is the conflict-tolerant write used by bulk import: it
// no-ops on an existing course id and reports whether the row went in.
func (r *CourseRepository) CreateIfAbsent(ctx context.Context, course *models.Course) (bool, error) {
	sql, args, err := r.sb.Insert("courses").
		Columns("course_id", "course_name", "instructor_id").
		Values(course.CourseID, course.CourseName, course.InstructorID).
		Suffix("ON CONFLICT DO NOTHING RETURNING course_id").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build bulk course insert: %w", err)
	}

	var insertedID string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&insertedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		if dberrors.IsForeignKeyViolation(err) {
			return false, apperrors.ErrInstructorNotFound
		}
		logger.Error().Err(err).Str("courseID", course.CourseID).Msg("Error executing bulk course insert")
		return false, fmt.Errorf("error inserting course: %w", err)
	}

	return true, nil
}

// Update modifies a course name and instructor assignment
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Update("courses").
		Set("course_name", strings.TrimSpace(course.CourseName)).
		Set("instructor_id", course.InstructorID).
		Where(squirrel.Eq{"course_id": course.CourseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrInstructorNotFound
		}
		logger.Error().Err(err).Str("courseID", course.CourseID).Msg("Error executing update course query")
		return fmt.Errorf("error updating course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete removes a course; classrooms and enrollments cascade at the store
func (r *CourseRepository) Delete(ctx context.Context, courseID string) error {
	sql, args, err := r.sb.Delete("courses").
		Where(squirrel.Eq{"course_id": courseID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete course query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", courseID).Msg("Error executing delete course query")
		return fmt.Errorf("error deleting course: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// GetStudents lists every student enrolled in any classroom of the
// course, deduplicated across sections.
func (r *CourseRepository) GetStudents(ctx context.Context, courseID string) ([]models.CourseStudent, error) {
	sql, args, err := r.sb.Select("DISTINCT u.user_id", "u.full_name", "u.email").
		From("enrollments e").
		Join("classrooms cl ON cl.classroom_id = e.classroom_id").
		Join("users u ON u.user_id = e.student_id").
		Where(squirrel.Eq{"cl.course_id": courseID}).
		OrderBy("u.user_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("courseID", courseID).Msg("Error querying course students")
		return nil, fmt.Errorf("error querying course students: %w", err)
	}
	defer rows.Close()

	students := []models.CourseStudent{}
	for rows.Next() {
		var s models.CourseStudent
		if err := rows.Scan(&s.StudentID, &s.FullName, &s.Email); err != nil {
			return nil, fmt.Errorf("error scanning course student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course student rows: %w", err)
	}

	return students, nil
}
