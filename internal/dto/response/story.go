package response

import (
	"encoding/json"
	"time"

	"artisan-market/internal/data/entity"
)

type StoryResponse struct {
	ID        string          `json:"id"`
	AuthorID  string          `json:"authorId"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Image     json.RawMessage `json:"image,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func StoryToResponse(story *entity.Story) StoryResponse {
	return StoryResponse{
		ID:        story.ID.String(),
		AuthorID:  story.UserID.String(),
		Title:     story.Title,
		Content:   story.Content,
		Image:     story.Image,
		CreatedAt: story.CreatedAt,
		UpdatedAt: story.UpdatedAt,
	}
}

func StoriesToResponse(stories []*entity.Story) []StoryResponse {
	out := make([]StoryResponse, 0, len(stories))
	for _, story := range stories {
		out = append(out, StoryToResponse(story))
	}
	return out
}
