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

// EnrollmentRepository handles classroom membership rows
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// AddIfAbsent enrolls one student, no-oping when the student is already
// a member. Reports whether a row was inserted.
func (r *EnrollmentRepository) AddIfAbsent(ctx context.Context, classroomID int64, studentID string) (bool, error) {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("classroom_id", "student_id").
		Values(classroomID, studentID).
		Suffix("ON CONFLICT (classroom_id, student_id) DO NOTHING RETURNING id").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build enrollment insert: %w", err)
	}

	var id int64
	err = r.db.QueryRow(ctx, sql, args...).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		if dberrors.IsForeignKeyViolation(err) {
			return false, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Int64("classroomID", classroomID).Str("studentID", studentID).Msg("Error executing enrollment insert")
		return false, fmt.Errorf("error enrolling student: %w", err)
	}

	return true, nil
}

// ListMembers retrieves the classroom roster ordered by student id
func (r *EnrollmentRepository) ListMembers(ctx context.Context, classroomID int64) ([]models.ClassroomMember, error) {
	sql, args, err := r.sb.Select("u.user_id", "u.full_name").
		From("enrollments e").
		Join("users u ON u.user_id = e.student_id").
		Where(squirrel.Eq{"e.classroom_id": classroomID}).
		OrderBy("u.user_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classroomID", classroomID).Msg("Error querying members")
		return nil, fmt.Errorf("error querying members: %w", err)
	}
	defer rows.Close()

	members := []models.ClassroomMember{}
	for rows.Next() {
		var m models.ClassroomMember
		if err := rows.Scan(&m.StudentID, &m.FullName); err != nil {
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}

// Remove drops one student from the classroom; their attendance rows
// cascade at the store.
func (r *EnrollmentRepository) Remove(ctx context.Context, classroomID int64, studentID string) error {
	sql, args, err := r.sb.Delete("enrollments").
		Where(squirrel.Eq{"classroom_id": classroomID, "student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build enrollment delete: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classroomID", classroomID).Str("studentID", studentID).Msg("Error executing enrollment delete")
		return fmt.Errorf("error removing member: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
