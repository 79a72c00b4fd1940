package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"loadplan-service/internal/api/handlers"
	"loadplan-service/internal/platform/obs"
	"loadplan-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(items ports.CargoRepository, plans ports.PlanRepository, metrics *obs.Metrics, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	itemHandler := &handlers.ItemHandler{Repo: items}
	planHandler := &handlers.PlanHandler{
		Items:   items,
		Plans:   plans,
		Metrics: metrics,
	}
	exportHandler := &handlers.ExportHandler{Plans: plans}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/items", itemHandler.Handle)
	mux.HandleFunc("/plans", planHandler.Handle)
	mux.HandleFunc("/plans/export", exportHandler.Handle)
	mux.Handle("/metrics", promhttp.Handler())

	return loggingMiddleware(logger, metrics, mux)
}
