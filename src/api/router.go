package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/events"
	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"
)

func NewRouter(pool *pgxpool.Pool, pub *events.Publisher, allowedOrigins []string) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(allowedOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/users/register", handlers.Register(pool))
		r.Post("/users/login", handlers.Login(pool))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware(pool)).Group(func(r chi.Router) {
			r.Get("/users/me", handlers.Me(pool))

			// Categories
			r.Get("/categories", handlers.GetCategories(pool))
			r.Post("/categories", handlers.CreateCategory(pool))
			r.Put("/categories/{category_id}", handlers.UpdateCategory(pool))
			r.Delete("/categories/{category_id}", handlers.DeleteCategory(pool))

			// Transactions
			r.Get("/transactions", handlers.GetTransactions(pool))
			r.Post("/transactions", handlers.CreateTransaction(pool, pub, time.Now))
			r.Get("/transactions/summary/monthly", handlers.GetMonthlySummary(pool))
			r.Get("/transactions/{transaction_id}", handlers.GetTransaction(pool))
			r.Put("/transactions/{transaction_id}", handlers.UpdateTransaction(pool, pub))
			r.Delete("/transactions/{transaction_id}", handlers.DeleteTransaction(pool, pub))
		})
	})

	return r
}
