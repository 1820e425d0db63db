package request

import "encoding/json"

type StoryRequest struct {
	Title   string          `json:"title" validate:"required,min=2,max=200"`
	Content string          `json:"content" validate:"required,min=2"`
	Image   json.RawMessage `json:"image,omitempty"`
}
