package response

import (
	"time"

	"artisan-market/internal/data/entity"
)

type CraftTypeResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func CraftTypeToResponse(craftType *entity.CraftType) CraftTypeResponse {
	return CraftTypeResponse{
		ID:          craftType.ID.String(),
		Name:        craftType.Name,
		Description: craftType.Description,
		CreatedAt:   craftType.CreatedAt,
	}
}

func CraftTypesToResponse(craftTypes []*entity.CraftType) []CraftTypeResponse {
	out := make([]CraftTypeResponse, 0, len(craftTypes))
	for _, craftType := range craftTypes {
		out = append(out, CraftTypeToResponse(craftType))
	}
	return out
}
