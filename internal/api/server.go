package api

import (
	"net/http"
	"time"

	"github.com/astromine/planner/internal/export"
)

// NewServer creates an HTTP server with all routes configured.
func NewServer(port string, exporter *export.Service) *http.Server {
	handler := NewHandler(exporter)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handler.Dashboard)
	mux.HandleFunc("GET /healthz", handler.Health)
	mux.HandleFunc("GET /api/v1/asteroids", handler.ListAsteroids)
	mux.HandleFunc("GET /api/v1/asteroids/{name}", handler.GetAsteroid)
	mux.HandleFunc("GET /api/v1/asteroids/{name}/profit", handler.GetProfit)
	mux.HandleFunc("GET /api/v1/spectral-types", handler.ListSpectralTypes)
	mux.HandleFunc("GET /api/v1/export", handler.ExportWorkbook)

	return &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}
