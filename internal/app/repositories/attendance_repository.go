package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/db"
	"github.com/tawan/eduadmin/internal/pkg/apperrors"
	"github.com/tawan/eduadmin/internal/pkg/logger"
)

// AttendanceRepository handles attendance database operations
type AttendanceRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetDates lists the distinct dates with recorded attendance for a
// classroom, most recent first.
func (r *AttendanceRepository) GetDates(ctx context.Context, classroomID int64) ([]string, error) {
	sql, args, err := r.sb.Select("DISTINCT to_char(a.date, 'YYYY-MM-DD') AS day").
		From("attendance a").
		Join("enrollments e ON e.id = a.enrollment_id").
		Where(squirrel.Eq{"e.classroom_id": classroomID}).
		OrderBy("day DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance dates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classroomID", classroomID).Msg("Error querying attendance dates")
		return nil, fmt.Errorf("error querying attendance dates: %w", err)
	}
	defer rows.Close()

	dates := []string{}
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("error scanning attendance date: %w", err)
		}
		dates = append(dates, day)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance dates: %w", err)
	}

	return dates, nil
}

// GetForDate retrieves the full roster for a classroom with each
// student's recorded status for the date, if any.
func (r *AttendanceRepository) GetForDate(ctx context.Context, classroomID int64, date string) ([]models.AttendanceRecord, error) {
	sql, args, err := r.sb.Select(
		"e.id", "u.user_id", "u.full_name",
		"a.status",
		"to_char(a.time, 'HH24:MI')").
		From("enrollments e").
		Join("users u ON u.user_id = e.student_id").
		LeftJoin("attendance a ON a.enrollment_id = e.id AND a.date = ?::date", date).
		Where(squirrel.Eq{"e.classroom_id": classroomID}).
		OrderBy("u.user_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classroomID", classroomID).Str("date", date).Msg("Error querying attendance")
		return nil, fmt.Errorf("error querying attendance: %w", err)
	}
	defer rows.Close()

	records := []models.AttendanceRecord{}
	for rows.Next() {
		var rec models.AttendanceRecord
		if err := rows.Scan(&rec.EnrollmentID, &rec.StudentID, &rec.StudentName, &rec.Status, &rec.Time); err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return records, nil
}

// ReplaceForDate atomically swaps the classroom's records for one date:
// existing rows are deleted and the submitted entries inserted in a
// single transaction, so a failed save never leaves a half-written day.
// Entries whose enrollment does not belong to the classroom are
// rejected as a whole.
func (r *AttendanceRepository) ReplaceForDate(ctx context.Context, classroomID int64, date string, entries []models.AttendanceEntry) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		deleteSQL := `DELETE FROM attendance a
			USING enrollments e
			WHERE e.id = a.enrollment_id AND e.classroom_id = $1 AND a.date = $2::date`
		if _, err := tx.Exec(ctx, deleteSQL, classroomID, date); err != nil {
			logger.Error().Err(err).Int64("classroomID", classroomID).Str("date", date).Msg("Error clearing attendance")
			return fmt.Errorf("error clearing attendance: %w", err)
		}

		insertSQL := `INSERT INTO attendance (enrollment_id, date, status, time)
			SELECT e.id, $2::date, $3, $4::time
			FROM enrollments e
			WHERE e.id = $1 AND e.classroom_id = $5`
		for _, entry := range entries {
			cmdTag, err := tx.Exec(ctx, insertSQL, entry.EnrollmentID, date, entry.Status, entry.Time, classroomID)
			if err != nil {
				logger.Error().Err(err).Int64("enrollmentID", entry.EnrollmentID).Msg("Error inserting attendance row")
				return fmt.Errorf("error inserting attendance: %w", err)
			}
			if cmdTag.RowsAffected() == 0 {
				return apperrors.NewValidationError(fmt.Sprintf("enrollment %d does not belong to classroom %d", entry.EnrollmentID, classroomID))
			}
		}

		return nil
	})
}
