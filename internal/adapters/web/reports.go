package web

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// yearParam parses the year query parameter, defaulting to the current
// calendar year. Future years are accepted; the engine resolves them to an
// empty as-of-today snapshot.
func yearParam(r *http.Request) (int, bool) {
	y := r.URL.Query().Get("year")
	if y == "" {
		return time.Now().Year(), true
	}
	parsed, err := strconv.Atoi(y)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

// decimalParam parses an optional decimal query parameter, defaulting to zero.
func decimalParam(r *http.Request, name string) (decimal.Decimal, bool) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// apiBalanceSheet handles GET /api/reports/balance-sheet.
func (h *Handler) apiBalanceSheet(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		writeError(w, r, "invalid year parameter", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	sheet, err := h.reports.BalanceSheet(r.Context(), year)
	if err != nil {
		writeError(w, r, err.Error(), "INTERNAL", http.StatusInternalServerError)
		return
	}
	writeJSON(w, sheet)
}

// apiProfitAndLoss handles GET /api/reports/profit-loss.
// When format=csv, streams CSV instead of JSON.
func (h *Handler) apiProfitAndLoss(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		writeError(w, r, "invalid year parameter", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	report, err := h.reports.ProfitAndLoss(r.Context(), year)
	if err != nil {
		writeError(w, r, err.Error(), "INTERNAL", http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="profit-loss-`+strconv.Itoa(year)+`.csv"`)
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{"Section", "Account", "Name", "Balance"})
		for _, line := range report.Costs {
			_ = cw.Write([]string{"costs", string(line.Account), csvSafe(line.Name), line.Balance.StringFixed(2)})
		}
		for _, line := range report.Revenues {
			_ = cw.Write([]string{"revenues", string(line.Account), csvSafe(line.Name), line.Balance.StringFixed(2)})
		}
		_ = cw.Write([]string{"totals", "", "profit", report.Totals.Profit.StringFixed(2)})
		cw.Flush()
		return
	}

	writeJSON(w, report)
}

// apiTaxEstimate handles GET /api/reports/tax-estimate.
// vatPaid and incomeTaxPaid carry the externally tracked paid advances.
func (h *Handler) apiTaxEstimate(w http.ResponseWriter, r *http.Request) {
	year, ok := yearParam(r)
	if !ok {
		writeError(w, r, "invalid year parameter", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	vatPaid, ok := decimalParam(r, "vatPaid")
	if !ok {
		writeError(w, r, "invalid vatPaid parameter", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	incomeTaxPaid, ok := decimalParam(r, "incomeTaxPaid")
	if !ok {
		writeError(w, r, "invalid incomeTaxPaid parameter", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	est, err := h.reports.TaxEstimate(r.Context(), year, vatPaid, incomeTaxPaid)
	if err != nil {
		writeError(w, r, err.Error(), "INTERNAL", http.StatusInternalServerError)
		return
	}
	writeJSON(w, est)
}

// csvSafe prevents CSV formula injection by prefixing cells that begin with a
// formula-triggering character with a single quote.
func csvSafe(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r':
		return "'" + s
	}
	return s
}
