package response

import (
	"time"

	"artisan-market/internal/data/entity"
)

type ArtisanProfileResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"userId"`
	Bio             *string   `json:"bio,omitempty"`
	CraftTypeID     *string   `json:"craftTypeId,omitempty"`
	ExperienceYears *int      `json:"experienceYears,omitempty"`
	Location        *string   `json:"location,omitempty"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func ArtisanProfileToResponse(profile *entity.ArtisanProfile) ArtisanProfileResponse {
	resp := ArtisanProfileResponse{
		ID:              profile.ID.String(),
		UserID:          profile.UserID.String(),
		Bio:             profile.Bio,
		ExperienceYears: profile.ExperienceYears,
		Location:        profile.Location,
		UpdatedAt:       profile.UpdatedAt,
	}

	if profile.CraftTypeID != nil {
		id := profile.CraftTypeID.String()
		resp.CraftTypeID = &id
	}

	return resp
}
