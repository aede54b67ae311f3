package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tawan/eduadmin/internal/app/models"
	"github.com/tawan/eduadmin/internal/db"
	"github.com/tawan/eduadmin/internal/pkg/logger"
)

// PhotoRepository handles profile photo rows. The files themselves are
// managed by the storage layer; this only tracks paths.
type PhotoRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPhotoRepository creates a new PhotoRepository
func NewPhotoRepository(db *pgxpool.Pool) *PhotoRepository {
	return &PhotoRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetPrimary returns the user's current primary photo, or nil when none
// is set.
func (r *PhotoRepository) GetPrimary(ctx context.Context, userID string) (*models.UserPhoto, error) {
	sql, args, err := r.sb.Select("id", "user_id", "file_name", "file_path").
		From("user_photos").
		Where(squirrel.Eq{"user_id": userID, "is_primary": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build primary photo query: %w", err)
	}

	photo := &models.UserPhoto{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&photo.ID, &photo.UserID, &photo.FileName, &photo.FilePath)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Str("userID", userID).Msg("Error scanning primary photo row")
		return nil, fmt.Errorf("error getting primary photo: %w", err)
	}

	return photo, nil
}

// SetPrimary demotes any existing primary photo and inserts the new one
// as primary, in one transaction.
func (r *PhotoRepository) SetPrimary(ctx context.Context, photo *models.UserPhoto) error {
	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		return r.replacePrimary(ctx, tx, photo)
	})
}

func (r *PhotoRepository) replacePrimary(ctx context.Context, tx pgx.Tx, photo *models.UserPhoto) error {
	demoteSQL, demoteArgs, err := r.sb.Update("user_photos").
		Set("is_primary", false).
		Where(squirrel.Eq{"user_id": photo.UserID, "is_primary": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build photo demote query: %w", err)
	}

	if _, err := tx.Exec(ctx, demoteSQL, demoteArgs...); err != nil {
		logger.Error().Err(err).Str("userID", photo.UserID).Msg("Error demoting previous photo")
		return fmt.Errorf("error demoting previous photo: %w", err)
	}

	insertSQL, insertArgs, err := r.sb.Insert("user_photos").
		Columns("user_id", "file_name", "file_path", "is_primary").
		Values(photo.UserID, photo.FileName, photo.FilePath, true).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build photo insert query: %w", err)
	}

	if err := tx.QueryRow(ctx, insertSQL, insertArgs...).Scan(&photo.ID); err != nil {
		logger.Error().Err(err).Str("userID", photo.UserID).Msg("Error inserting photo row")
		return fmt.Errorf("error inserting photo: %w", err)
	}

	return nil
}
