package web

import (
	"net/http"

	"ledger-reports/internal/core"

	"github.com/go-chi/chi/v5"
)

// Handler holds the reporting service behind the HTTP endpoints.
type Handler struct {
	reports core.ReportingService
}

// NewHandler creates and wires the chi router with all routes.
func NewHandler(reports core.ReportingService, allowedOrigins string) http.Handler {
	h := &Handler{reports: reports}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))
	r.Use(RequestBodyLimit(1 << 20)) // 1 MB

	r.Get("/api/health", h.health)

	// ── Reports ───────────────────────────────────────────────────────────────
	r.Get("/api/reports/balance-sheet", h.apiBalanceSheet)
	r.Get("/api/reports/profit-loss", h.apiProfitAndLoss)
	r.Get("/api/reports/tax-estimate", h.apiTaxEstimate)

	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}
