package entity

import (
	"github.com/google/uuid"
)

type Address struct {
	BaseNoDelete
	UserID    uuid.UUID `db:"user_id"`
	Street    string    `db:"street"`
	City      string    `db:"city"`
	State     *string   `db:"state"`
	Zip       *string   `db:"zip"`
	Country   string    `db:"country"`
	IsDefault bool      `db:"is_default"`
}
