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
	"github.com/tawan/eduadmin/internal/pkg/logger"
)

// RoleRepository reads the fixed roles reference table
type RoleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewRoleRepository creates a new RoleRepository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetAll retrieves all roles ordered by id
func (r *RoleRepository) GetAll(ctx context.Context) ([]models.Role, error) {
	sql, args, err := r.sb.Select("role_id", "role_name").
		From("roles").
		OrderBy("role_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build roles query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying roles")
		return nil, fmt.Errorf("error querying roles: %w", err)
	}
	defer rows.Close()

	roles := []models.Role{}
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.RoleID, &role.RoleName); err != nil {
			return nil, fmt.Errorf("error scanning role row: %w", err)
		}
		roles = append(roles, role)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating role rows: %w", err)
	}

	return roles, nil
}

// GetByID retrieves a role by id
func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	sql, args, err := r.sb.Select("role_id", "role_name").
		From("roles").
		Where(squirrel.Eq{"role_id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build role query: %w", err)
	}

	role := &models.Role{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&role.RoleID, &role.RoleName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("error getting role by id: %w", err)
	}

	return role, nil
}
