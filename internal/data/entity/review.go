package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	BaseNoDelete
	ProductID uuid.UUID `db:"product_id"`
	UserID    uuid.UUID `db:"user_id"`
	Rating    int       `db:"rating"` // 1..5
	Comment   *string   `db:"comment"`
}
