package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	authHandler "github.com/justinjeff517/jefstore-gasstations-backend/internal/http/auth"
	inventoryHandler "github.com/justinjeff517/jefstore-gasstations-backend/internal/http/inventory"
	invoiceHandler "github.com/justinjeff517/jefstore-gasstations-backend/internal/http/invoice"
)

func New(
	inventoriesV1 *inventoryHandler.Handler,
	invoicesV1 *invoiceHandler.Handler,
	authV1 *authHandler.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
	}))

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))

		r.Route("/inventories", func(r chi.Router) {
			inventoriesV1.Routes(r)
		})

		r.Route("/sales-invoices", func(r chi.Router) {
			invoicesV1.Routes(r)
		})

		r.Route("/auth", func(r chi.Router) {
			authV1.Routes(r)
		})
	})

	return router
}
