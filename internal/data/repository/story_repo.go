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

type StoryRepository interface {
	Create(ctx context.Context, story *entity.Story) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Story, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Story, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, story *entity.Story) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type storyRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewStoryRepository(db database.PgxIface, log *zap.Logger) StoryRepository {
	return &storyRepository{
		db:  db,
		log: log,
	}
}

func (sr *storyRepository) Create(ctx context.Context, story *entity.Story) error {
	query := `
		INSERT INTO stories (id, user_id, title, content, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := sr.db.Exec(ctx, query,
		story.ID,
		story.UserID,
		story.Title,
		story.Content,
		story.Image,
		story.CreatedAt,
		story.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to create story",
			zap.Error(err),
			zap.String("user_id", story.UserID.String()),
		)
		return fmt.Errorf("create story for %s: %w", story.UserID.String(), err)
	}

	return nil
}

func (sr *storyRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Story, error) {
	query := `
		SELECT id, user_id, title, content, image, created_at, updated_at
		FROM stories
		WHERE id = $1
	`

	var story entity.Story
	err := sr.db.QueryRow(ctx, query, id).Scan(
		&story.ID,
		&story.UserID,
		&story.Title,
		&story.Content,
		&story.Image,
		&story.CreatedAt,
		&story.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		sr.log.Error("Failed to find story by ID",
			zap.Error(err),
			zap.String("story_id", id.String()),
		)
		return nil, fmt.Errorf("find story by ID %s: %w", id.String(), err)
	}

	return &story, nil
}

func (sr *storyRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Story, error) {
	query := `
		SELECT id, user_id, title, content, image, created_at, updated_at
		FROM stories
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := sr.db.Query(ctx, query, limit, offset)
	if err != nil {
		sr.log.Error("Failed to list stories", zap.Error(err))
		return nil, fmt.Errorf("find all stories: %w", err)
	}
	defer rows.Close()

	var stories []*entity.Story
	for rows.Next() {
		var story entity.Story
		err := rows.Scan(
			&story.ID,
			&story.UserID,
			&story.Title,
			&story.Content,
			&story.Image,
			&story.CreatedAt,
			&story.UpdatedAt,
		)
		if err != nil {
			sr.log.Error("Failed to scan story row", zap.Error(err))
			return nil, fmt.Errorf("scan story row: %w", err)
		}
		stories = append(stories, &story)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stories rows: %w", err)
	}

	return stories, nil
}

func (sr *storyRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM stories`

	var count int64
	err := sr.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		sr.log.Error("Database error counting stories", zap.Error(err))
		return 0, fmt.Errorf("count all stories: %w", err)
	}

	return count, nil
}

func (sr *storyRepository) Update(ctx context.Context, story *entity.Story) error {
	query := `
		UPDATE stories
		SET title = $2, content = $3, image = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := sr.db.Exec(ctx, query,
		story.ID,
		story.Title,
		story.Content,
		story.Image,
		story.UpdatedAt,
	)

	if err != nil {
		sr.log.Error("Failed to update story",
			zap.Error(err),
			zap.String("story_id", story.ID.String()),
		)
		return fmt.Errorf("update story %s: %w", story.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Story not found")
	}

	return nil
}

func (sr *storyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM stories WHERE id = $1`

	result, err := sr.db.Exec(ctx, query, id)
	if err != nil {
		sr.log.Error("Failed to delete story",
			zap.Error(err),
			zap.String("story_id", id.String()),
		)
		return fmt.Errorf("delete story %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Story not found")
	}

	return nil
}
