package response

import (
	"time"

	"artisan-market/internal/data/entity"
)

type AddressResponse struct {
	ID        string    `json:"id"`
	Street    string    `json:"street"`
	City      string    `json:"city"`
	State     *string   `json:"state,omitempty"`
	Zip       *string   `json:"zip,omitempty"`
	Country   string    `json:"country"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}

func AddressToResponse(address *entity.Address) AddressResponse {
	return AddressResponse{
		ID:        address.ID.String(),
		Street:    address.Street,
		City:      address.City,
		State:     address.State,
		Zip:       address.Zip,
		Country:   address.Country,
		IsDefault: address.IsDefault,
		CreatedAt: address.CreatedAt,
	}
}

func AddressesToResponse(addresses []*entity.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		out = append(out, AddressToResponse(address))
	}
	return out
}
