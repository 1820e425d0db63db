package repository

import (
	"errors"

	"artisan-market/pkg/database"

	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type Repository struct {
	User           UserRepository
	ArtisanProfile ArtisanProfileRepository
	Address        AddressRepository
	CraftType      CraftTypeRepository
	Product        ProductRepository
	Cart           CartRepository
	Order          OrderRepository
	Review         ReviewRepository
	Story          StoryRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:           NewUserRepository(db, log),
		ArtisanProfile: NewArtisanProfileRepository(db, log),
		Address:        NewAddressRepository(db, log),
		CraftType:      NewCraftTypeRepository(db, log),
		Product:        NewProductRepository(db, log),
		Cart:           NewCartRepository(db, log),
		Order:          NewOrderRepository(db, log),
		Review:         NewReviewRepository(db, log),
		Story:          NewStoryRepository(db, log),
	}
}

// isUniqueViolation detects a Postgres unique constraint error (23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
