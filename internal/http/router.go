package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/RashmikaAkash/ecommerce-product-recommender/docs"
	"github.com/RashmikaAkash/ecommerce-product-recommender/internal/http/handlers"
	rl "github.com/RashmikaAkash/ecommerce-product-recommender/internal/http/rate_limiter"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Group(func(r chi.Router) {
		r.Use(rl.Middleware)

		r.Get("/api/ping", handlers.PingHandler)

		r.Route("/api/products", func(r chi.Router) {
			r.Post("/", handlers.CreateProductHandler)
			r.Get("/", handlers.GetProductsHandler)
			r.Get("/{id}", handlers.GetProductByIDHandler)
			r.Put("/{id}", handlers.UpdateProductHandler)
			r.Delete("/{id}", handlers.DeleteProductHandler)
			r.Get("/{id}/recommendations", handlers.GetRecommendationsHandler)
		})

		r.Route("/api/state/{clientID}/{bucket}", func(r chi.Router) {
			r.Get("/", handlers.GetClientStateHandler)
			r.Put("/", handlers.PutClientStateHandler)
		})
	})

	if dir := handlers.UploadDir(); dir != "" {
		fs := http.StripPrefix("/uploads/", http.FileServer(http.Dir(dir)))
		r.Get("/uploads/*", fs.ServeHTTP)
	}

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
