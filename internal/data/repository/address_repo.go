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

type AddressRepository interface {
	Create(ctx context.Context, address *entity.Address) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
	Update(ctx context.Context, address *entity.Address) error
	Delete(ctx context.Context, id uuid.UUID) error
	ClearDefault(ctx context.Context, userID uuid.UUID) error
}

type addressRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAddressRepository(db database.PgxIface, log *zap.Logger) AddressRepository {
	return &addressRepository{
		db:  db,
		log: log,
	}
}

func (ar *addressRepository) Create(ctx context.Context, address *entity.Address) error {
	query := `
		INSERT INTO addresses (id, user_id, street, city, state, zip, country,
		                      is_default, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := ar.db.Exec(ctx, query,
		address.ID,
		address.UserID,
		address.Street,
		address.City,
		address.State,
		address.Zip,
		address.Country,
		address.IsDefault,
		address.CreatedAt,
		address.UpdatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to create address",
			zap.Error(err),
			zap.String("user_id", address.UserID.String()),
		)
		return fmt.Errorf("create address for %s: %w", address.UserID.String(), err)
	}

	return nil
}

func (ar *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	query := `
		SELECT id, user_id, street, city, state, zip, country, is_default,
		       created_at, updated_at
		FROM addresses
		WHERE id = $1
	`

	var address entity.Address
	err := ar.db.QueryRow(ctx, query, id).Scan(
		&address.ID,
		&address.UserID,
		&address.Street,
		&address.City,
		&address.State,
		&address.Zip,
		&address.Country,
		&address.IsDefault,
		&address.CreatedAt,
		&address.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		ar.log.Error("Failed to find address by ID",
			zap.Error(err),
			zap.String("address_id", id.String()),
		)
		return nil, fmt.Errorf("find address by ID %s: %w", id.String(), err)
	}

	return &address, nil
}

func (ar *addressRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	query := `
		SELECT id, user_id, street, city, state, zip, country, is_default,
		       created_at, updated_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC
	`

	rows, err := ar.db.Query(ctx, query, userID)
	if err != nil {
		ar.log.Error("Failed to list addresses",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find addresses for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var addresses []*entity.Address
	for rows.Next() {
		var address entity.Address
		err := rows.Scan(
			&address.ID,
			&address.UserID,
			&address.Street,
			&address.City,
			&address.State,
			&address.Zip,
			&address.Country,
			&address.IsDefault,
			&address.CreatedAt,
			&address.UpdatedAt,
		)
		if err != nil {
			ar.log.Error("Failed to scan address row", zap.Error(err))
			return nil, fmt.Errorf("scan address row: %w", err)
		}
		addresses = append(addresses, &address)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate addresses rows: %w", err)
	}

	return addresses, nil
}

func (ar *addressRepository) Update(ctx context.Context, address *entity.Address) error {
	query := `
		UPDATE addresses
		SET street = $2, city = $3, state = $4, zip = $5, country = $6,
		    is_default = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := ar.db.Exec(ctx, query,
		address.ID,
		address.Street,
		address.City,
		address.State,
		address.Zip,
		address.Country,
		address.IsDefault,
		address.UpdatedAt,
	)

	if err != nil {
		ar.log.Error("Failed to update address",
			zap.Error(err),
			zap.String("address_id", address.ID.String()),
		)
		return fmt.Errorf("update address %s: %w", address.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Address not found")
	}

	return nil
}

func (ar *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM addresses WHERE id = $1`

	result, err := ar.db.Exec(ctx, query, id)
	if err != nil {
		ar.log.Error("Failed to delete address",
			zap.Error(err),
			zap.String("address_id", id.String()),
		)
		return fmt.Errorf("delete address %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Address not found")
	}

	return nil
}

// ClearDefault unsets the default flag on all of the user's addresses.
// Called before marking a new one default so at most one row carries it.
func (ar *addressRepository) ClearDefault(ctx context.Context, userID uuid.UUID) error {
	query := `UPDATE addresses SET is_default = FALSE, updated_at = NOW() WHERE user_id = $1 AND is_default`

	_, err := ar.db.Exec(ctx, query, userID)
	if err != nil {
		ar.log.Error("Failed to clear default address",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("clear default address for %s: %w", userID.String(), err)
	}

	return nil
}
