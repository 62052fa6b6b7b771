package db

import (
	"context"
	"fmt"
	"time"

	"ledger-reports/internal/core"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostingStore is the pgx implementation of core.PostingRepository over the
// synced journal table. Postings whose currency differs from the reporting
// currency are converted on read through the supplied rate function, so the
// engine only ever sees reporting-currency amounts.
type PostingStore struct {
	pool         *pgxpool.Pool
	baseCurrency string
	rate         core.RateFunc
}

// NewPostingStore constructs a PostingStore. rate may be nil when the sync
// collaborator guarantees all postings are already in baseCurrency.
func NewPostingStore(pool *pgxpool.Pool, baseCurrency string, rate core.RateFunc) *PostingStore {
	return &PostingStore{pool: pool, baseCurrency: baseCurrency, rate: rate}
}

func (s *PostingStore) PostingsThrough(ctx context.Context, asOf time.Time) ([]core.Posting, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT external_id,
		       posting_date,
		       COALESCE(debit_account,  ''),
		       COALESCE(credit_account, ''),
		       amount,
		       currency,
		       COALESCE(narration, ''),
		       fiscal_year
		FROM postings
		WHERE posting_date <= $1
		ORDER BY posting_date ASC, external_id ASC`, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to query postings: %w", err)
	}
	defer rows.Close()

	var postings []core.Posting
	for rows.Next() {
		var p core.Posting
		if err := rows.Scan(
			&p.ExternalID, &p.Date, &p.DebitAccount, &p.CreditAccount,
			&p.Amount, &p.Currency, &p.Text, &p.FiscalYear,
		); err != nil {
			return nil, fmt.Errorf("failed to scan posting: %w", err)
		}

		p, err = s.toBase(p)
		if err != nil {
			return nil, err
		}
		postings = append(postings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("posting row iteration error: %w", err)
	}
	return postings, nil
}

// toBase converts a posting into the reporting currency through the rate
// function, rounding to cents. Postings already in the base currency pass
// through unchanged, as does everything when no rate source is configured —
// the sync collaborator normally converts before postings land in the
// store.
func (s *PostingStore) toBase(p core.Posting) (core.Posting, error) {
	if s.rate == nil || p.Currency == "" || p.Currency == s.baseCurrency {
		return p, nil
	}
	r, err := s.rate(p.Date, p.Currency)
	if err != nil {
		return core.Posting{}, fmt.Errorf("failed to convert posting %s from %s: %w", p.ExternalID, p.Currency, err)
	}
	p.Amount = p.Amount.Mul(r).Round(2)
	p.Currency = s.baseCurrency
	return p, nil
}

// AccountStore is the pgx implementation of core.AccountRepository over the
// chart-of-accounts reference table.
type AccountStore struct {
	pool *pgxpool.Pool
}

func NewAccountStore(pool *pgxpool.Pool) *AccountStore {
	return &AccountStore{pool: pool}
}

func (s *AccountStore) All(ctx context.Context) ([]core.Account, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT code, COALESCE(name, '') FROM accounts ORDER BY code")
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []core.Account
	for rows.Next() {
		var a core.Account
		if err := rows.Scan(&a.Code, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("account row iteration error: %w", err)
	}
	return accounts, nil
}
