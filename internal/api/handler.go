package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/astromine/planner/internal/catalog"
	"github.com/astromine/planner/internal/dashboard"
	"github.com/astromine/planner/internal/domain"
	"github.com/astromine/planner/internal/export"
	"github.com/astromine/planner/internal/profit"
	"github.com/astromine/planner/internal/screen"
)

// Handler provides the dashboard page and the JSON endpoints.
type Handler struct {
	exporter *export.Service
}

// NewHandler creates a new handler.
func NewHandler(exporter *export.Service) *Handler {
	return &Handler{exporter: exporter}
}

// Dashboard handles GET / — one full filter → estimate → render pass driven
// by the request's query parameters.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromQuery(r.URL.Query())
	filtered := screen.Apply(catalog.All(), criteria)

	view, err := dashboard.BuildView(criteria, catalog.SpectralTypes(), filtered, r.URL.Query().Get("orbit"))
	if err != nil {
		slog.Error("failed to build dashboard view", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboard.Render(w, view); err != nil {
		slog.Warn("failed to write dashboard page", "error", err)
	}
}

// ListAsteroids handles GET /api/v1/asteroids — the filtered catalog, using
// the same query parameters as the page.
func (h *Handler) ListAsteroids(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromQuery(r.URL.Query())
	writeJSON(w, http.StatusOK, screen.Apply(catalog.All(), criteria))
}

// GetAsteroid handles GET /api/v1/asteroids/{name}.
func (h *Handler) GetAsteroid(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	a, ok := catalog.ByName(name)
	if !ok {
		writeError(w, http.StatusNotFound, "asteroid not found")
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// GetProfit handles GET /api/v1/asteroids/{name}/profit.
func (h *Handler) GetProfit(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	a, ok := catalog.ByName(name)
	if !ok {
		writeError(w, http.StatusNotFound, "asteroid not found")
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Name           string            `json:"name"`
		EstimatedValue string            `json:"est_value_billion_usd"`
		Band           domain.ProfitBand `json:"band"`
	}{
		Name:           a.Name,
		EstimatedValue: a.EstimatedValue.String(),
		Band:           profit.Band(a),
	})
}

// ListSpectralTypes handles GET /api/v1/spectral-types — the observed type
// set that seeds the multi-select.
func (h *Handler) ListSpectralTypes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.SpectralTypes())
}

// ExportWorkbook handles GET /api/v1/export — the filtered catalog and its
// profit bands as an .xlsx download.
func (h *Handler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	criteria := criteriaFromQuery(r.URL.Query())
	filtered := screen.Apply(catalog.All(), criteria)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="asteroids.xlsx"`)
	if err := h.exporter.WriteTo(w, filtered); err != nil {
		// Headers are already on the wire; all we can do is log.
		slog.Error("failed to stream workbook", "error", err)
	}
}

// Health handles GET /healthz.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
