package usecase

import (
	"context"
	"time"

	"artisan-market/internal/data/entity"
	"artisan-market/internal/data/repository"
	"artisan-market/internal/dto/request"
	"artisan-market/internal/dto/response"
	"artisan-market/pkg/apperr"
	"artisan-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StoryService interface {
	Create(ctx context.Context, actor Actor, req *request.StoryRequest) (*response.StoryResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.StoryResponse, error)
	List(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.StoryResponse], error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *request.StoryRequest) (*response.StoryResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type storyService struct {
	stories repository.StoryRepository
	log     *zap.Logger
}

func NewStoryService(stories repository.StoryRepository, log *zap.Logger) StoryService {
	return &storyService{
		stories: stories,
		log:     log.With(zap.String("service", "story")),
	}
}

func (s *storyService) Create(ctx context.Context, actor Actor, req *request.StoryRequest) (*response.StoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	story := &entity.Story{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:  actor.ID,
		Title:   req.Title,
		Content: req.Content,
		Image:   req.Image,
	}

	if err := s.stories.Create(ctx, story); err != nil {
		return nil, apperr.Internal("Failed to create story", err)
	}

	s.log.Info("Story created",
		zap.String("story_id", story.ID.String()),
		zap.String("author_id", actor.ID.String()),
	)

	resp := response.StoryToResponse(story)
	return &resp, nil
}

func (s *storyService) GetByID(ctx context.Context, id uuid.UUID) (*response.StoryResponse, error) {
	story, err := s.stories.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Failed to load story", err)
	}
	if story == nil {
		return nil, apperr.NotFound("Story not found")
	}

	resp := response.StoryToResponse(story)
	return &resp, nil
}

func (s *storyService) List(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.StoryResponse], error) {
	stories, err := s.stories.FindAll(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Internal("Failed to list stories", err)
	}

	total, err := s.stories.CountAll(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to count stories", err)
	}

	return response.NewPaginatedResponse(response.StoriesToResponse(stories), page.Page, page.Limit(), total), nil
}

func (s *storyService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *request.StoryRequest) (*response.StoryResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	story, err := s.stories.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Failed to load story", err)
	}
	if story == nil {
		return nil, apperr.NotFound("Story not found")
	}

	if !actor.CanAccess(story.UserID) {
		return nil, apperr.Forbidden("You do not have access to this resource")
	}

	story.Title = req.Title
	story.Content = req.Content
	story.Image = req.Image
	story.UpdatedAt = time.Now()

	if err := s.stories.Update(ctx, story); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, err
		}
		return nil, apperr.Internal("Failed to update story", err)
	}

	resp := response.StoryToResponse(story)
	return &resp, nil
}

func (s *storyService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	story, err := s.stories.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("Failed to load story", err)
	}
	if story == nil {
		return apperr.NotFound("Story not found")
	}

	if !actor.CanAccess(story.UserID) {
		return apperr.Forbidden("You do not have access to this resource")
	}

	if err := s.stories.Delete(ctx, id); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return err
		}
		return apperr.Internal("Failed to delete story", err)
	}

	return nil
}
