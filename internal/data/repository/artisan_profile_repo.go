package repository

import (
	"context"
	"fmt"

	"artisan-market/internal/data/entity"
	"artisan-market/pkg/apperr"
	"artisan-market/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ArtisanProfileRepository interface {
	Create(ctx context.Context, profile *entity.ArtisanProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ArtisanProfile, error)
	Update(ctx context.Context, profile *entity.ArtisanProfile) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type artisanProfileRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewArtisanProfileRepository(db database.PgxIface, log *zap.Logger) ArtisanProfileRepository {
	return &artisanProfileRepository{
		db:  db,
		log: log,
	}
}

func (ar *artisanProfileRepository) Create(ctx context.Context, profile *entity.ArtisanProfile) error {
	query := `
		INSERT INTO artisan_profiles (id, user_id, bio, craft_type_id,
		                             experience_years, location, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := ar.db.Exec(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Bio,
		profile.CraftTypeID,
		profile.ExperienceYears,
		profile.Location,
		profile.CreatedAt,
		profile.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return apperr.Conflict("Artisan profile already exists")
	}
	if err != nil {
		ar.log.Error("Failed to create artisan profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("create artisan profile for %s: %w", profile.UserID.String(), err)
	}

	return nil
}

func (ar *artisanProfileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.ArtisanProfile, error) {
	query := `
		SELECT id, user_id, bio, craft_type_id, experience_years, location,
		       created_at, updated_at
		FROM artisan_profiles
		WHERE user_id = $1
	`

	var profile entity.ArtisanProfile
	err := ar.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Bio,
		&profile.CraftTypeID,
		&profile.ExperienceYears,
		&profile.Location,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find artisan profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find artisan profile for %s: %w", userID.String(), err)
	}

	return &profile, nil
}

func (ar *artisanProfileRepository) Update(ctx context.Context, profile *entity.ArtisanProfile) error {
	query := `
		UPDATE artisan_profiles
		SET bio = $2, craft_type_id = $3, experience_years = $4,
		    location = $5, updated_at = $6
		WHERE user_id = $1
	`

	result, err := ar.db.Exec(ctx, query,
		profile.UserID,
		profile.Bio,
		profile.CraftTypeID,
		profile.ExperienceYears,
		profile.Location,
		profile.UpdatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to update artisan profile",
			zap.Error(err),
			zap.String("user_id", profile.UserID.String()),
		)
		return fmt.Errorf("update artisan profile for %s: %w", profile.UserID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Artisan profile not found")
	}

	return nil
}

func (ar *artisanProfileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM artisan_profiles WHERE user_id = $1`

	result, err := ar.db.Exec(ctx, query, userID)
	if err != nil {
		ar.log.Error("Failed to delete artisan profile",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete artisan profile for %s: %w", userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Artisan profile not found")
	}

	return nil
}
