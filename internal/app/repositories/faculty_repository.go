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

// FacultyRepository handles faculty database operations
type FacultyRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFacultyRepository creates a new FacultyRepository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all faculties ordered by id
func (r *FacultyRepository) GetAll(ctx context.Context) ([]models.Faculty, error) {
	sql, args, err := r.sb.Select("faculty_id", "faculty_name").
		From("faculties").
		OrderBy("faculty_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build faculties query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying faculties")
		return nil, fmt.Errorf("error querying faculties: %w", err)
	}
	defer rows.Close()

	faculties := []models.Faculty{}
	for rows.Next() {
		var f models.Faculty
		if err := rows.Scan(&f.FacultyID, &f.FacultyName); err != nil {
			return nil, fmt.Errorf("error scanning faculty row: %w", err)
		}
		faculties = append(faculties, f)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating faculty rows: %w", err)
	}

	return faculties, nil
}

// GetByID retrieves a faculty by id
func (r *FacultyRepository) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	sql, args, err := r.sb.Select("faculty_id", "faculty_name").
		From("faculties").
		Where(squirrel.Eq{"faculty_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build faculty query: %w", err)
	}

	f := &models.Faculty{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&f.FacultyID, &f.FacultyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error scanning faculty row")
		return nil, fmt.Errorf("error getting faculty by id: %w", err)
	}

	return f, nil
}

// ExistsByName checks for a case-insensitive name match, optionally
// excluding one faculty id (for updates).
func (r *FacultyRepository) ExistsByName(ctx context.Context, name string, excludeID int64) (bool, error) {
	builder := r.sb.Select("1").
		From("faculties").
		Where(squirrel.Expr("LOWER(faculty_name) = LOWER(?)", strings.TrimSpace(name)))
	if excludeID > 0 {
		builder = builder.Where(squirrel.NotEq{"faculty_id": excludeID})
	}

	sql, args, err := builder.Prefix("SELECT EXISTS (").Suffix(")").Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build faculty existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("name", name).Msg("Error checking faculty existence")
		return false, fmt.Errorf("error checking faculty existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new faculty and returns it. The unique constraint is
// the backstop for concurrent creates with the same name.
func (r *FacultyRepository) Create(ctx context.Context, name string) (*models.Faculty, error) {
	sql, args, err := r.sb.Insert("faculties").
		Columns("faculty_name").
		Values(strings.TrimSpace(name)).
		Suffix("RETURNING faculty_id, faculty_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create faculty query: %w", err)
	}

	f := &models.Faculty{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&f.FacultyID, &f.FacultyName)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrFacultyAlreadyExists
		}
		logger.Error().Err(err).Msg("Error executing create faculty query")
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}

	return f, nil
}

// Update renames a faculty
func (r *FacultyRepository) Update(ctx context.Context, id int64, name string) (*models.Faculty, error) {
	sql, args, err := r.sb.Update("faculties").
		Set("faculty_name", strings.TrimSpace(name)).
		Where(squirrel.Eq{"faculty_id": id}).
		Suffix("RETURNING faculty_id, faculty_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update faculty query: %w", err)
	}

	f := &models.Faculty{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&f.FacultyID, &f.FacultyName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrFacultyNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrFacultyAlreadyExists
		}
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing update faculty query")
		return nil, fmt.Errorf("error updating faculty: %w", err)
	}

	return f, nil
}

// Delete removes a faculty by id
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("faculties").
		Where(squirrel.Eq{"faculty_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete faculty query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("facultyID", id).Msg("Error executing delete faculty query")
		return fmt.Errorf("error deleting faculty: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrFacultyNotFound
	}

	return nil
}
