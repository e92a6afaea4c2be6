package api

import (
	_ "countryfx/docs"
	"countryfx/internal/country/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

func NewRouter(countryHandler *handler.Handler) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Post("/api/v1/countries/refresh", countryHandler.Refresh)
	router.Get("/api/v1/countries", countryHandler.List)
	router.Get("/api/v1/countries/image", countryHandler.SummaryImage)
	router.Get("/api/v1/countries/{name}", countryHandler.GetByName)
	router.Delete("/api/v1/countries/{name}", countryHandler.Delete)
	router.Get("/api/v1/status", countryHandler.Status)
	return router
}
