package core

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ── Repositories ──────────────────────────────────────────────────────────────

// PostingRepository supplies the journal snapshot a report is computed
// from. Implementations must return a consistent snapshot per call — the
// engine assumes a fully determined answer for a given as-of date.
type PostingRepository interface {
	// PostingsThrough returns all postings dated on or before asOf,
	// converted to the reporting currency.
	PostingsThrough(ctx context.Context, asOf time.Time) ([]Posting, error)
}

// AccountRepository supplies chart-of-accounts reference data.
type AccountRepository interface {
	All(ctx context.Context) ([]Account, error)
}

// ── Interface ─────────────────────────────────────────────────────────────────

// ReportingService builds financial statements from posted journal entries.
// Every operation is a pure function of the posting snapshot and the
// requested year: no state is held between invocations and concurrent
// requests are independent.
type ReportingService interface {
	// BalanceSheet assembles the classified, VAT-netted balance sheet for
	// the fiscal year, as of its cutoff date.
	BalanceSheet(ctx context.Context, year int) (*BalanceSheet, error)

	// ProfitAndLoss lists the year's cost and revenue accounts with group
	// totals and the period profit.
	ProfitAndLoss(ctx context.Context, year int) (*ProfitLoss, error)

	// TaxEstimate derives the VAT settlement position and a rough corporate
	// tax estimate for the year, net of the supplied paid advances. The
	// result is an approximation and says so.
	TaxEstimate(ctx context.Context, year int, vatPaid, incomeTaxPaid decimal.Decimal) (*TaxEstimate, error)
}

// ── Implementation ────────────────────────────────────────────────────────────

type reportingService struct {
	postings PostingRepository
	accounts AccountRepository
	tax      TaxConfig
	now      func() time.Time
}

// NewReportingService constructs a ReportingService over the given
// repositories. A zero-valued TaxConfig falls back to the statutory
// defaults.
func NewReportingService(postings PostingRepository, accounts AccountRepository, tax TaxConfig) ReportingService {
	if tax.Rate.IsZero() {
		tax.Rate = DefaultTaxConfig().Rate
	}
	if tax.VATPrefix == "" {
		tax.VATPrefix = DefaultVATPrefix
	}
	return &reportingService{postings: postings, accounts: accounts, tax: tax, now: time.Now}
}

// snapshot resolves the cutoff for the year and fetches the posting history
// and account names up to it.
func (s *reportingService) snapshot(ctx context.Context, year int) ([]Posting, AccountIndex, time.Time, error) {
	asOf := ResolveCutoff(year, s.now())

	postings, err := s.postings.PostingsThrough(ctx, asOf)
	if err != nil {
		return nil, nil, asOf, fmt.Errorf("failed to fetch postings: %w", err)
	}
	accounts, err := s.accounts.All(ctx)
	if err != nil {
		return nil, nil, asOf, fmt.Errorf("failed to fetch accounts: %w", err)
	}
	return postings, NewAccountIndex(accounts), asOf, nil
}

func (s *reportingService) BalanceSheet(ctx context.Context, year int) (*BalanceSheet, error) {
	postings, names, asOf, err := s.snapshot(ctx, year)
	if err != nil {
		return nil, err
	}
	sheet := BuildBalanceSheet(Accumulate(postings, year), names, year, s.tax.VATPrefix)
	sheet.Meta.AsOfDate = asOf.Format("2006-01-02")
	return sheet, nil
}

func (s *reportingService) ProfitAndLoss(ctx context.Context, year int) (*ProfitLoss, error) {
	postings, names, _, err := s.snapshot(ctx, year)
	if err != nil {
		return nil, err
	}
	return BuildProfitLoss(Accumulate(postings, year), names, year), nil
}

func (s *reportingService) TaxEstimate(ctx context.Context, year int, vatPaid, incomeTaxPaid decimal.Decimal) (*TaxEstimate, error) {
	postings, _, _, err := s.snapshot(ctx, year)
	if err != nil {
		return nil, err
	}
	return EstimateTaxes(postings, Accumulate(postings, year), year, s.tax, vatPaid, incomeTaxPaid), nil
}
