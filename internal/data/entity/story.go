package entity

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Story is storytelling content an artisan attaches to their craft
type Story struct {
	BaseNoDelete
	UserID  uuid.UUID       `db:"user_id"`
	Title   string          `db:"title"`
	Content string          `db:"content"`
	Image   json.RawMessage `db:"image"`
}
