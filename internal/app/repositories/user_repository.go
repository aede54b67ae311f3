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

// UserRepository handles user database operations
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// userDetailColumns is the joined projection shared by list and profile
// queries. birth_date is rendered as an ISO string at the store.
const userDetailColumns = `u.user_id, u.full_name, u.email,
	to_char(u.birth_date, 'YYYY-MM-DD') AS birth_date,
	u.role_id, r.role_name,
	u.faculty_id, f.faculty_name,
	u.department_id, d.department_name`

func (r *UserRepository) detailQuery() squirrel.SelectBuilder {
	return r.sb.Select(userDetailColumns).
		From("users u").
		LeftJoin("roles r ON r.role_id = u.role_id").
		LeftJoin("faculties f ON f.faculty_id = u.faculty_id").
		LeftJoin("departments d ON d.department_id = u.department_id")
}

func scanUserDetail(row pgx.Row) (*models.UserDetail, error) {
	u := &models.UserDetail{}
	err := row.Scan(&u.UserID, &u.FullName, &u.Email, &u.BirthDate,
		&u.RoleID, &u.RoleName,
		&u.FacultyID, &u.FacultyName,
		&u.DepartmentID, &u.DepartmentName)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListDetails retrieves all users joined with role, faculty and department
func (r *UserRepository) ListDetails(ctx context.Context) ([]models.UserDetail, error) {
	sql, args, err := r.detailQuery().OrderBy("u.user_id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build users query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying users")
		return nil, fmt.Errorf("error querying users: %w", err)
	}
	defer rows.Close()

	users := []models.UserDetail{}
	for rows.Next() {
		u, err := scanUserDetail(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, *u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// GetDetail retrieves one user's joined view including the primary photo path
func (r *UserRepository) GetDetail(ctx context.Context, userID string) (*models.UserDetail, error) {
	sql, args, err := r.sb.Select(userDetailColumns+", up.file_path AS profile_photo").
		From("users u").
		LeftJoin("roles r ON r.role_id = u.role_id").
		LeftJoin("faculties f ON f.faculty_id = u.faculty_id").
		LeftJoin("departments d ON d.department_id = u.department_id").
		LeftJoin("user_photos up ON up.user_id = u.user_id AND up.is_primary = TRUE").
		Where(squirrel.Eq{"u.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build user detail query: %w", err)
	}

	u := &models.UserDetail{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&u.UserID, &u.FullName, &u.Email, &u.BirthDate,
		&u.RoleID, &u.RoleName,
		&u.FacultyID, &u.FacultyName,
		&u.DepartmentID, &u.DepartmentName,
		&u.ProfilePhoto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", userID).Msg("Error scanning user detail row")
		return nil, fmt.Errorf("error getting user detail: %w", err)
	}

	return u, nil
}

// GetCredentials retrieves the joined view plus the stored password hash,
// used by login.
func (r *UserRepository) GetCredentials(ctx context.Context, userID string) (*models.UserDetail, string, error) {
	sql, args, err := r.sb.Select(userDetailColumns+", u.password, up.file_path AS profile_photo").
		From("users u").
		LeftJoin("roles r ON r.role_id = u.role_id").
		LeftJoin("faculties f ON f.faculty_id = u.faculty_id").
		LeftJoin("departments d ON d.department_id = u.department_id").
		LeftJoin("user_photos up ON up.user_id = u.user_id AND up.is_primary = TRUE").
		Where(squirrel.Eq{"u.user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, "", fmt.Errorf("failed to build credentials query: %w", err)
	}

	u := &models.UserDetail{}
	var passwordHash string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&u.UserID, &u.FullName, &u.Email, &u.BirthDate,
		&u.RoleID, &u.RoleName,
		&u.FacultyID, &u.FacultyName,
		&u.DepartmentID, &u.DepartmentName,
		&passwordHash, &u.ProfilePhoto)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", apperrors.ErrUserNotFound
		}
		logger.Error().Err(err).Str("userID", userID).Msg("Error scanning credentials row")
		return nil, "", fmt.Errorf("error getting user credentials: %w", err)
	}

	return u, passwordHash, nil
}

// Exists checks whether a user id is taken
func (r *UserRepository) Exists(ctx context.Context, userID string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(squirrel.Eq{"user_id": userID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build user existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking user existence: %w", err)
	}

	return exists, nil
}

// EmailExists checks for a case-insensitive email match, optionally
// excluding one user id (for updates).
func (r *UserRepository) EmailExists(ctx context.Context, email, excludeUserID string) (bool, error) {
	builder := r.sb.Select("1").
		From("users").
		Where(squirrel.Expr("LOWER(email) = LOWER(?)", strings.TrimSpace(email)))
	if excludeUserID != "" {
		builder = builder.Where(squirrel.NotEq{"user_id": excludeUserID})
	}

	sql, args, err := builder.Prefix("SELECT EXISTS (").Suffix(")").Limit(1).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build email existence query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking email existence: %w", err)
	}

	return exists, nil
}

// Create inserts a new user. Unique violations surface as conflict
// sentinels regardless of which pre-check ran first.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	sql, args, err := r.sb.Insert("users").
		Columns("user_id", "password", "full_name", "email", "birth_date", "role_id", "faculty_id", "department_id").
		Values(user.UserID, user.Password, user.FullName, user.Email, user.BirthDate, user.RoleID, user.FacultyID, user.DepartmentID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create user query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrUserIDAlreadyExists
		}
		logger.Error().Err(err).Str("userID", user.UserID).Msg("Error executing create user query")
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// CreateIfAbsent is the conflict-tolerant write used by bulk import:
// it no-ops when the user id already exists and reports whether the row
// was inserted. Intra-batch duplicate keys lose here and land in skipped.
func (r *UserRepository) CreateIfAbsent(ctx context.Context, user *models.User) (bool, error) {
	sql, args, err := r.sb.Insert("users").
		Columns("user_id", "password", "full_name", "email", "birth_date", "role_id", "faculty_id", "department_id").
		Values(user.UserID, user.Password, user.FullName, user.Email, user.BirthDate, user.RoleID, user.FacultyID, user.DepartmentID).
		Suffix("ON CONFLICT (user_id) DO NOTHING RETURNING user_id").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build bulk user insert: %w", err)
	}

	var insertedID string
	err = r.db.QueryRow(ctx, sql, args...).Scan(&insertedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		if dberrors.IsUniqueViolationOn(err, "users_email_key") {
			return false, apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("userID", user.UserID).Msg("Error executing bulk user insert")
		return false, fmt.Errorf("error inserting user: %w", err)
	}

	return true, nil
}

// Update applies an admin edit. An empty passwordHash leaves the stored
// credential untouched.
func (r *UserRepository) Update(ctx context.Context, userID, fullName, email string, roleID int64, facultyID, departmentID *int64, passwordHash string) error {
	builder := r.sb.Update("users").
		SetMap(map[string]interface{}{
			"full_name":     strings.TrimSpace(fullName),
			"email":         strings.TrimSpace(email),
			"role_id":       roleID,
			"faculty_id":    facultyID,
			"department_id": departmentID,
		}).
		Where(squirrel.Eq{"user_id": userID})
	if passwordHash != "" {
		builder = builder.Set("password", passwordHash)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing update user query")
		return fmt.Errorf("error updating user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// UpdateColumns renders one parameterized UPDATE from the (column, value)
// pairs the caller assembled; used by the profile update, which only
// touches fields present in the request.
func (r *UserRepository) UpdateColumns(ctx context.Context, userID string, columns map[string]interface{}) error {
	if len(columns) == 0 {
		return nil
	}

	sql, args, err := r.sb.Update("users").
		SetMap(columns).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build profile update query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsUniqueViolationOn(err, "users_email_key") {
			return apperrors.ErrEmailAlreadyExists
		}
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing profile update query")
		return fmt.Errorf("error updating profile: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// Delete removes a user; dependent rows cascade at the store
func (r *UserRepository) Delete(ctx context.Context, userID string) error {
	sql, args, err := r.sb.Delete("users").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete user query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("userID", userID).Msg("Error executing delete user query")
		return fmt.Errorf("error deleting user: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}

	return nil
}

// SearchStudents finds up to limit students matching q against the user id
// or full name, case-insensitively. An empty q lists the first page.
func (r *UserRepository) SearchStudents(ctx context.Context, q string, limit uint64) ([]models.StudentRef, error) {
	like := "%"
	if trimmed := strings.ToLower(strings.TrimSpace(q)); trimmed != "" {
		like = "%" + trimmed + "%"
	}

	sql, args, err := r.sb.Select("u.user_id", "u.full_name").
		From("users u").
		Where(squirrel.Eq{"u.role_id": models.RoleStudentID}).
		Where(squirrel.Expr("(LOWER(u.user_id) LIKE ? OR LOWER(u.full_name) LIKE ?)", like, like)).
		OrderBy("u.user_id ASC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build student search query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error searching students")
		return nil, fmt.Errorf("error searching students: %w", err)
	}
	defer rows.Close()

	students := []models.StudentRef{}
	for rows.Next() {
		var s models.StudentRef
		if err := rows.Scan(&s.UserID, &s.FullName); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// ListInstructors retrieves the instructor directory ordered by name
func (r *UserRepository) ListInstructors(ctx context.Context) ([]models.InstructorRef, error) {
	sql, args, err := r.sb.Select("user_id", "full_name", "email").
		From("users").
		Where(squirrel.Eq{"role_id": models.RoleInstructorID}).
		OrderBy("full_name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build instructors query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying instructors")
		return nil, fmt.Errorf("error querying instructors: %w", err)
	}
	defer rows.Close()

	instructors := []models.InstructorRef{}
	for rows.Next() {
		var i models.InstructorRef
		if err := rows.Scan(&i.UserID, &i.FullName, &i.Email); err != nil {
			return nil, fmt.Errorf("error scanning instructor row: %w", err)
		}
		instructors = append(instructors, i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating instructor rows: %w", err)
	}

	return instructors, nil
}

// IsInstructor checks that a user exists and holds the instructor role
func (r *UserRepository) IsInstructor(ctx context.Context, userID string) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("users").
		Where(squirrel.Eq{"user_id": userID, "role_id": models.RoleInstructorID}).
		Prefix("SELECT EXISTS (").Suffix(")").
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build instructor check query: %w", err)
	}

	var exists bool
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error checking instructor: %w", err)
	}

	return exists, nil
}
