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

type CraftTypeRepository interface {
	Create(ctx context.Context, craftType *entity.CraftType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CraftType, error)
	FindAll(ctx context.Context) ([]*entity.CraftType, error)
	Update(ctx context.Context, craftType *entity.CraftType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type craftTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCraftTypeRepository(db database.PgxIface, log *zap.Logger) CraftTypeRepository {
	return &craftTypeRepository{
		db:  db,
		log: log,
	}
}

func (cr *craftTypeRepository) Create(ctx context.Context, craftType *entity.CraftType) error {
	query := `
		INSERT INTO craft_types (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := cr.db.Exec(ctx, query,
		craftType.ID,
		craftType.Name,
		craftType.Description,
		craftType.CreatedAt,
		craftType.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return apperr.Conflict("Craft type already exists")
	}
	if err != nil {
		cr.log.Error("Failed to create craft type",
			zap.Error(err),
			zap.String("name", craftType.Name),
		)
		return fmt.Errorf("create craft type %s: %w", craftType.Name, err)
	}

	return nil
}

func (cr *craftTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CraftType, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM craft_types
		WHERE id = $1
	`

	var craftType entity.CraftType
	err := cr.db.QueryRow(ctx, query, id).Scan(
		&craftType.ID,
		&craftType.Name,
		&craftType.Description,
		&craftType.CreatedAt,
		&craftType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find craft type",
			zap.Error(err),
			zap.String("craft_type_id", id.String()),
		)
		return nil, fmt.Errorf("find craft type %s: %w", id.String(), err)
	}

	return &craftType, nil
}

func (cr *craftTypeRepository) FindAll(ctx context.Context) ([]*entity.CraftType, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM craft_types
		ORDER BY name
	`

	rows, err := cr.db.Query(ctx, query)
	if err != nil {
		cr.log.Error("Failed to list craft types", zap.Error(err))
		return nil, fmt.Errorf("find all craft types: %w", err)
	}
	defer rows.Close()

	var craftTypes []*entity.CraftType
	for rows.Next() {
		var craftType entity.CraftType
		err := rows.Scan(
			&craftType.ID,
			&craftType.Name,
			&craftType.Description,
			&craftType.CreatedAt,
			&craftType.UpdatedAt,
		)
		if err != nil {
			cr.log.Error("Failed to scan craft type row", zap.Error(err))
			return nil, fmt.Errorf("scan craft type row: %w", err)
		}
		craftTypes = append(craftTypes, &craftType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate craft types rows: %w", err)
	}

	return craftTypes, nil
}

func (cr *craftTypeRepository) Update(ctx context.Context, craftType *entity.CraftType) error {
	query := `
		UPDATE craft_types
		SET name = $2, description = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := cr.db.Exec(ctx, query,
		craftType.ID,
		craftType.Name,
		craftType.Description,
		craftType.UpdatedAt,
	)

	if isUniqueViolation(err) {
		return apperr.Conflict("Craft type already exists")
	}
	if err != nil {
		cr.log.Error("Failed to update craft type",
			zap.Error(err),
			zap.String("craft_type_id", craftType.ID.String()),
		)
		return fmt.Errorf("update craft type %s: %w", craftType.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Craft type not found")
	}

	return nil
}

func (cr *craftTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM craft_types WHERE id = $1`

	result, err := cr.db.Exec(ctx, query, id)
	if err != nil {
		cr.log.Error("Failed to delete craft type",
			zap.Error(err),
			zap.String("craft_type_id", id.String()),
		)
		return fmt.Errorf("delete craft type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Craft type not found")
	}

	return nil
}
