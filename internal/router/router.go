package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"product-api/internal/config"
	"product-api/internal/handler"
	"product-api/internal/middleware"
)

func New(
	cfg *config.Config,
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	productHandler *handler.ProductHandler,
	docsHandler *handler.DocsHandler,
) http.Handler {
	r := chi.NewRouter()
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.RateLimitRPM, cfg.AuthRateLimitRPM)

	r.Use(middleware.Recovery)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(rateLimitMiddleware.Handler)

	r.NotFound(handler.NotFound)

	r.Get("/health", handler.Health)
	r.Get("/api-docs", docsHandler.SwaggerUI)
	r.Get("/api/docs.json", docsHandler.OpenAPI)

	r.Route("/api", func(api chi.Router) {
		api.Use(middleware.Timeout(cfg.RequestTimeout))

		api.Route("/auth", func(auth chi.Router) {
			auth.Post("/register", authHandler.Register)
			auth.Post("/login", authHandler.Login)
		})

		api.Route("/products", func(products chi.Router) {
			products.Use(authMiddleware.RequireAuth)
			products.Get("/", productHandler.List)
			products.Get("/{id}", productHandler.Get)
		})
	})

	return r
}
