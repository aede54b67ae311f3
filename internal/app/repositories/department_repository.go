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

// DepartmentRepository handles department database operations
type DepartmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDepartmentRepository creates a new DepartmentRepository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

const departmentColumns = "d.department_id, d.department_name, d.faculty_id, f.faculty_name"

func scanDepartment(row pgx.Row) (*models.Department, error) {
	d := &models.Department{}
	if err := row.Scan(&d.DepartmentID, &d.DepartmentName, &d.FacultyID, &d.FacultyName); err != nil {
		return nil, err
	}
	return d, nil
}

// GetAll retrieves all departments joined with their faculty
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]models.Department, error) {
	sql, args, err := r.sb.Select(departmentColumns).
		From("departments d").
		LeftJoin("faculties f ON f.faculty_id = d.faculty_id").
		OrderBy("d.department_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build departments query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying departments")
		return nil, fmt.Errorf("error querying departments: %w", err)
	}
	defer rows.Close()

	departments := []models.Department{}
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning department row: %w", err)
		}
		departments = append(departments, *d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating department rows: %w", err)
	}

	return departments, nil
}

// GetByID retrieves a department by id
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	sql, args, err := r.sb.Select(departmentColumns).
		From("departments d").
		LeftJoin("faculties f ON f.faculty_id = d.faculty_id").
		Where(squirrel.Eq{"d.department_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build department query: %w", err)
	}

	d, err := scanDepartment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error scanning department row")
		return nil, fmt.Errorf("error getting department by id: %w", err)
	}

	return d, nil
}

// ExistsByNameInFaculty checks for a case-insensitive name match within a
// faculty, optionally excluding one department id (for updates).
func (r *DepartmentRepository) ExistsByNameInFaculty(ctx context.Context, name string, facultyID, excludeID int64) (bool, error) {
	builder := r.sb.Select("1").
		From("departments").
		Where(squirrel.Eq{"faculty_id": facultyID}).
		Where(squirrel.Expr("LOWER(department_name) = LOWER(?)", strings.TrimSpace(name)))
	if excludeID > 0 {
		builder = builder.Where(squirrel.NotEq{"department_id": excludeID})
	}

	sql, args, err := builder.Prefix("SELECT EXISTS (").Suffix(")").Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build department existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Error().Err(err).Str("name", name).Msg("Error checking department existence")
		return false, fmt.Errorf("error checking department existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new department
func (r *DepartmentRepository) Create(ctx context.Context, name string, facultyID int64) (*models.Department, error) {
	sql, args, err := r.sb.Insert("departments").
		Columns("department_name", "faculty_id").
		Values(strings.TrimSpace(name), facultyID).
		Suffix("RETURNING department_id, department_name, faculty_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create department query: %w", err)
	}

	d := &models.Department{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&d.DepartmentID, &d.DepartmentName, &d.FacultyID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return nil, apperrors.ErrFacultyNotFound
		}
		logger.Error().Err(err).Msg("Error executing create department query")
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	return d, nil
}

// Update modifies a department's name and faculty
func (r *DepartmentRepository) Update(ctx context.Context, id int64, name string, facultyID int64) (*models.Department, error) {
	sql, args, err := r.sb.Update("departments").
		SetMap(map[string]interface{}{
			"department_name": strings.TrimSpace(name),
			"faculty_id":      facultyID,
		}).
		Where(squirrel.Eq{"department_id": id}).
		Suffix("RETURNING department_id, department_name, faculty_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update department query: %w", err)
	}

	d := &models.Department{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&d.DepartmentID, &d.DepartmentName, &d.FacultyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrDepartmentNotFound
		}
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrDepartmentAlreadyExists
		}
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error executing update department query")
		return nil, fmt.Errorf("error updating department: %w", err)
	}

	return d, nil
}

// Delete removes a department by id
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("departments").
		Where(squirrel.Eq{"department_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete department query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("departmentID", id).Msg("Error executing delete department query")
		return fmt.Errorf("error deleting department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrDepartmentNotFound
	}

	return nil
}
