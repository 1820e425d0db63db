package entity

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductCategory string

const (
	CategoryPottery  ProductCategory = "pottery"
	CategoryTextile  ProductCategory = "textile"
	CategoryJewelry  ProductCategory = "jewelry"
	CategoryWoodwork ProductCategory = "woodwork"
	CategoryPainting ProductCategory = "painting"
	CategoryOther    ProductCategory = "other"
)

type Product struct {
	Base
	UserID      uuid.UUID       `db:"user_id"` // owning artisan
	CraftTypeID *uuid.UUID      `db:"craft_type_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	Category    ProductCategory `db:"category"`
	Stock       int             `db:"stock"`
	Tags        []string        `db:"tags"`
	Material    *string         `db:"material"`
	Color       *string         `db:"color"`
	Size        *string         `db:"size"`
	Images      json.RawMessage `db:"images"`
}
