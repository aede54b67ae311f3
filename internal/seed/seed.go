// Package seed creates the reference rows the application assumes at
// startup: the fixed role set and a bootstrap admin account.
package seed

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/app/repositories"
	"github.com/tawan/eduadmin/internal/pkg/auth"
)

// CreateDefaultData seeds the roles table and the bootstrap admin if they
// don't exist. Failures are collected so one bad row doesn't block the
// rest.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	var finalErr error

	lgr.Info().Msg("Checking/Creating default data (roles, admin account)...")

	roles := []models.Role{
		{RoleID: models.RoleStudentID, RoleName: string(models.RoleStudent)},
		{RoleID: models.RoleInstructorID, RoleName: string(models.RoleInstructor)},
		{RoleID: models.RoleAdminID, RoleName: string(models.RoleAdmin)},
	}
	for _, role := range roles {
		_, err := dbPool.Exec(ctx,
			`INSERT INTO roles (role_id, role_name) VALUES ($1, $2) ON CONFLICT (role_id) DO NOTHING`,
			role.RoleID, role.RoleName)
		if err != nil {
			lgr.Error().Err(err).Str("role", role.RoleName).Msg("Error seeding role")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if err := seedAdmin(ctx, dbPool, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	adminID := os.Getenv("ADMIN_USER_ID")
	if adminID == "" {
		adminID = "admin"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin1234"
		lgr.Warn().Msg("ADMIN_PASSWORD not set, using the default bootstrap password")
	}

	hash, err := auth.HashPassword(adminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing bootstrap admin password")
		return err
	}

	userRepo := repositories.NewUserRepository(dbPool)
	admin := &models.User{
		UserID:    adminID,
		Password:  hash,
		FullName:  "System Administrator",
		Email:     "admin@eduadmin.local",
		BirthDate: time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
		RoleID:    models.RoleAdminID,
	}

	inserted, err := userRepo.CreateIfAbsent(ctx, admin)
	if err != nil {
		lgr.Error().Err(err).Msg("Error seeding bootstrap admin")
		return err
	}
	if inserted {
		lgr.Info().Str("userID", adminID).Msg("Bootstrap admin account created")
	}

	return nil
}
