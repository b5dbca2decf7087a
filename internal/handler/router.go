package handler

import (
	"net/http"

	"floramart-be/internal/auth"
	"floramart-be/internal/logger"
	"floramart-be/internal/middleware"
	"floramart-be/internal/payment/callback"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// Deps collects everything the router mounts.
type Deps struct {
	Tokens    *auth.TokenManager
	Limiter   *middleware.RateLimiter
	Users     *UserHandler
	Catalog   *CatalogHandler
	Carts     *CartHandler
	Orders    *OrderHandler
	Addresses *AddressHandler
	Callback  *callback.Handler
}

func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(logger.RequestIDMiddleware)
	r.Use(logger.LoggingMiddleware)
	r.Use(chimiddleware.Recoverer)
	r.Use(deps.Limiter.Middleware)
	r.Use(middleware.AuthMiddleware(deps.Tokens))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", deps.Users.Register)
		r.Post("/login", deps.Users.Login)
		r.With(middleware.RequireAuth).Get("/me", deps.Users.Me)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", deps.Catalog.ListCategories)
		r.With(middleware.RequireAuth).Post("/", deps.Catalog.AddCategory)
	})

	r.Route("/flowers", func(r chi.Router) {
		r.Get("/", deps.Catalog.ListFlowers)
		r.Get("/{id}", deps.Catalog.GetFlower)
		r.With(middleware.RequireAuth).Post("/", deps.Catalog.AddFlower)
	})

	r.Route("/sellers", func(r chi.Router) {
		r.Get("/", deps.Catalog.ListSellers)
		r.With(middleware.RequireAuth).Post("/", deps.Catalog.RegisterSeller)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", deps.Carts.GetCart)
		r.Post("/", deps.Carts.AddToCart)
		r.Delete("/", deps.Carts.ClearCart)
		r.Delete("/{flowerID}", deps.Carts.RemoveFromCart)
	})

	r.Route("/addresses", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", deps.Addresses.List)
		r.Post("/", deps.Addresses.Create)
		r.Put("/{id}", deps.Addresses.Update)
		r.Delete("/{id}", deps.Addresses.Delete)
		r.Post("/{id}/default", deps.Addresses.SetDefault)
	})

	r.Route("/orders", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/checkout", deps.Orders.Checkout)
		r.Get("/", deps.Orders.ListOrders)
		r.Get("/{id}", deps.Orders.GetOrder)
	})

	// The gateway redirects the buyer's browser here after payment. No auth:
	// trust comes from the signature, not a session.
	r.Get("/payment/vnpay/return", deps.Callback.HandleReturn)

	return r
}
