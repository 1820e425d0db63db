package response

import (
	"encoding/json"
	"time"

	"artisan-market/internal/data/entity"

	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID          string                 `json:"id"`
	ArtisanID   string                 `json:"artisanId"`
	CraftTypeID *string                `json:"craftTypeId,omitempty"`
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Price       decimal.Decimal        `json:"price"`
	Category    entity.ProductCategory `json:"category"`
	Stock       int                    `json:"stock"`
	Tags        []string               `json:"tags,omitempty"`
	Material    *string                `json:"material,omitempty"`
	Color       *string                `json:"color,omitempty"`
	Size        *string                `json:"size,omitempty"`
	Images      json.RawMessage        `json:"images,omitempty"`
	CreatedAt   time.Time              `json:"createdAt"`
	UpdatedAt   time.Time              `json:"updatedAt"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	resp := ProductResponse{
		ID:          product.ID.String(),
		ArtisanID:   product.UserID.String(),
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		Category:    product.Category,
		Stock:       product.Stock,
		Tags:        product.Tags,
		Material:    product.Material,
		Color:       product.Color,
		Size:        product.Size,
		Images:      product.Images,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	if product.CraftTypeID != nil {
		id := product.CraftTypeID.String()
		resp.CraftTypeID = &id
	}

	return resp
}

func ProductsToResponse(products []*entity.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		out = append(out, ProductToResponse(product))
	}
	return out
}
