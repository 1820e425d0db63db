package request

type ArtisanProfileRequest struct {
	Bio             *string `json:"bio,omitempty" validate:"omitempty,max=1000"`
	CraftTypeID     *string `json:"craftTypeId,omitempty" validate:"omitempty,uuid4"`
	ExperienceYears *int    `json:"experienceYears,omitempty" validate:"omitempty,gte=0,lte=100"`
	Location        *string `json:"location,omitempty" validate:"omitempty,max=200"`
}
