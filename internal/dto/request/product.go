package request

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

type ProductRequest struct {
	Name        string          `json:"name" validate:"required,min=2,max=200"`
	Description string          `json:"description" validate:"required,min=2"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"required,oneof=pottery textile jewelry woodwork painting other"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CraftTypeID *string         `json:"craftTypeId,omitempty" validate:"omitempty,uuid4"`
	Tags        []string        `json:"tags,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
	Material    *string         `json:"material,omitempty" validate:"omitempty,max=100"`
	Color       *string         `json:"color,omitempty" validate:"omitempty,max=50"`
	Size        *string         `json:"size,omitempty" validate:"omitempty,max=50"`
	Images      json.RawMessage `json:"images,omitempty"`
}
