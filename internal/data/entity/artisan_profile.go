package entity

import (
	"github.com/google/uuid"
)

type ArtisanProfile struct {
	BaseNoDelete
	UserID          uuid.UUID  `db:"user_id"`
	Bio             *string    `db:"bio"`
	CraftTypeID     *uuid.UUID `db:"craft_type_id"`
	ExperienceYears *int       `db:"experience_years"`
	Location        *string    `db:"location"`
}
