package wire

import (
	"net/http"

	"artisan-market/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCart(
	r chi.Router,
	cartHandler *adaptor.CartHandler,
	authn func(http.Handler) http.Handler,
) {
	// Carts are strictly per-user: the token owns the cart, no IDs in paths
	r.Route("/carts", func(carts chi.Router) {
		carts.Use(authn)

		carts.Get("/", cartHandler.GetCart)
		carts.Delete("/", cartHandler.ClearCart)
		carts.Post("/products/{productId}", cartHandler.AddProduct)
		carts.Delete("/products/{productId}", cartHandler.RemoveProduct)
		carts.Patch("/products/quantity", cartHandler.AdjustQuantity)
	})
}
