package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ledger-reports/internal/core"

	"github.com/shopspring/decimal"
)

// stubReports records the arguments of the last call and returns canned
// results.
type stubReports struct {
	err           error
	year          int
	vatPaid       decimal.Decimal
	incomeTaxPaid decimal.Decimal
}

func (s *stubReports) BalanceSheet(_ context.Context, year int) (*core.BalanceSheet, error) {
	s.year = year
	if s.err != nil {
		return nil, s.err
	}
	return &core.BalanceSheet{Meta: core.ReportMeta{Year: year}}, nil
}

func (s *stubReports) ProfitAndLoss(_ context.Context, year int) (*core.ProfitLoss, error) {
	s.year = year
	if s.err != nil {
		return nil, s.err
	}
	return &core.ProfitLoss{
		Costs: []core.PLLine{{Account: "501", Name: "Materials", Balance: decimal.New(30000, 0)}},
		Meta:  core.ReportMeta{Year: year},
	}, nil
}

func (s *stubReports) TaxEstimate(_ context.Context, year int, vatPaid, incomeTaxPaid decimal.Decimal) (*core.TaxEstimate, error) {
	s.year = year
	s.vatPaid = vatPaid
	s.incomeTaxPaid = incomeTaxPaid
	if s.err != nil {
		return nil, s.err
	}
	return &core.TaxEstimate{}, nil
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAPIBalanceSheet_YearParam(t *testing.T) {
	stub := &stubReports{}
	handler := NewHandler(stub, "")

	rec := get(t, handler, "/api/reports/balance-sheet?year=2024")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if stub.year != 2024 {
		t.Errorf("service called with year %d, want 2024", stub.year)
	}

	var body struct {
		Meta struct {
			Year int `json:"year"`
		} `json:"meta"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Meta.Year != 2024 {
		t.Errorf("response year = %d, want 2024", body.Meta.Year)
	}
}

func TestAPIBalanceSheet_DefaultsToCurrentYear(t *testing.T) {
	stub := &stubReports{}
	handler := NewHandler(stub, "")

	get(t, handler, "/api/reports/balance-sheet")
	if stub.year != time.Now().Year() {
		t.Errorf("default year = %d, want %d", stub.year, time.Now().Year())
	}
}

func TestAPIBalanceSheet_InvalidYear(t *testing.T) {
	handler := NewHandler(&stubReports{}, "")

	rec := get(t, handler, "/api/reports/balance-sheet?year=banana")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Error == "" {
		t.Errorf("error body must carry a message")
	}
}

func TestAPIBalanceSheet_ServiceError(t *testing.T) {
	handler := NewHandler(&stubReports{err: errors.New("failed to fetch postings: down")}, "")

	rec := get(t, handler, "/api/reports/balance-sheet")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "failed to fetch postings") {
		t.Errorf("body = %s, want fetch error surfaced", rec.Body.String())
	}
}

func TestAPIProfitAndLoss_CSV(t *testing.T) {
	handler := NewHandler(&stubReports{}, "")

	rec := get(t, handler, "/api/reports/profit-loss?year=2024&format=csv")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("content type = %q, want text/csv", ct)
	}
	if !strings.Contains(rec.Body.String(), "501") {
		t.Errorf("csv body missing cost line: %s", rec.Body.String())
	}
}

func TestAPITaxEstimate_PaidParams(t *testing.T) {
	stub := &stubReports{}
	handler := NewHandler(stub, "")

	rec := get(t, handler, "/api/reports/tax-estimate?year=2024&vatPaid=1500.50&incomeTaxPaid=2000")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !stub.vatPaid.Equal(decimal.RequireFromString("1500.50")) {
		t.Errorf("vatPaid = %s, want 1500.50", stub.vatPaid)
	}
	if !stub.incomeTaxPaid.Equal(decimal.RequireFromString("2000")) {
		t.Errorf("incomeTaxPaid = %s, want 2000", stub.incomeTaxPaid)
	}
}

func TestAPITaxEstimate_InvalidPaid(t *testing.T) {
	handler := NewHandler(&stubReports{}, "")

	rec := get(t, handler, "/api/reports/tax-estimate?vatPaid=abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	handler := NewHandler(&stubReports{}, "")

	rec := get(t, handler, "/api/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("body = %s, want ok status", rec.Body.String())
	}
}

func TestRequestIDHeader(t *testing.T) {
	handler := NewHandler(&stubReports{}, "")

	rec := get(t, handler, "/api/health")
	if rec.Header().Get("X-Request-ID") == "" {
		t.Errorf("X-Request-ID header must be set")
	}
}
