package core

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AccountCode is a chart-of-accounts code. The first digit identifies the
// account class (0 = fixed assets, 1-2 = inventory and cash-equivalents,
// 3 = receivables/payables/tax, 4 = equity and long-term liabilities,
// 5 = costs, 6 = revenues, 9 = off-balance); the first two digits
// subclassify within classes 3 and 4. Synthetic codes (see below) are
// reserved non-numeric values that can never appear in a chart.
type AccountCode string

// Synthetic line codes. These have no backing chart-of-accounts entry;
// the lines they identify are computed, never stored.
const (
	// RetainedEarningsCode collects the net effect of cost/revenue postings
	// from fiscal years before the reported one.
	RetainedEarningsCode AccountCode = "*RE*"
	// CurrentResultCode is the current-year profit or loss equity line.
	CurrentResultCode AccountCode = "*CY*"
	// VATSettlementCode is the netted VAT receivable-or-payable line.
	VATSettlementCode AccountCode = "*VAT*"
)

// Synthetic reports whether the code is one of the reserved synthetic codes.
func (c AccountCode) Synthetic() bool {
	return c == RetainedEarningsCode || c == CurrentResultCode || c == VATSettlementCode
}

// AccountClass is the statement class an account code belongs to, resolved
// once per code rather than re-parsed at every classification site.
type AccountClass int

const (
	ClassUnknown AccountClass = iota
	ClassFixedAssets
	ClassInventory
	ClassSettlement // receivables, payables, tax
	ClassCapital    // equity and long-term liabilities
	ClassCosts
	ClassRevenues
	ClassOffBalance
	ClassSynthetic
)

// ClassOf resolves the account class from the first digit of the code.
// Synthetic codes resolve to ClassSynthetic; anything else that does not
// start with a known class digit resolves to ClassUnknown.
func ClassOf(code AccountCode) AccountClass {
	if code.Synthetic() {
		return ClassSynthetic
	}
	if len(code) == 0 {
		return ClassUnknown
	}
	switch code[0] {
	case '0':
		return ClassFixedAssets
	case '1', '2':
		return ClassInventory
	case '3':
		return ClassSettlement
	case '4':
		return ClassCapital
	case '5':
		return ClassCosts
	case '6':
		return ClassRevenues
	case '9':
		return ClassOffBalance
	}
	return ClassUnknown
}

// Posting is one double-entry journal record, already converted to the
// reporting currency before it reaches the engine. A posting may
// legitimately carry only one side; the accumulator counts such postings
// so reports can warn about them.
//
// Date is a calendar date (midnight, no intra-day time): the journal store
// keeps posting dates, not timestamps, matching the midnight-of-December-31
// cutoff a closed year resolves to.
type Posting struct {
	ExternalID    string          `json:"external_id"`
	Date          time.Time       `json:"date"`
	DebitAccount  AccountCode     `json:"debit_account"`
	CreditAccount AccountCode     `json:"credit_account"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Text          string          `json:"text"`
	FiscalYear    int             `json:"fiscal_year"`
}

// Account is chart-of-accounts reference data.
type Account struct {
	Code AccountCode `json:"code"`
	Name string      `json:"name"`
}

// Balance is the accumulated debit/credit position of one account over a
// date range.
type Balance struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// Net returns debit minus credit. For a fully balanced journal the nets of
// all accounts sum to zero over any closed range.
func (b Balance) Net() decimal.Decimal {
	return b.Debit.Sub(b.Credit)
}

// Tolerance under which a balance is treated as zero (rounding noise).
var Tolerance = decimal.New(1, -2) // 0.01

// negligible reports whether v is within Tolerance of zero.
func negligible(v decimal.Decimal) bool {
	return v.Abs().LessThan(Tolerance)
}

// RateFunc converts one unit of the given currency into the reporting
// currency at the given date. It is supplied by the currency-sync
// collaborator; the engine itself never calls it.
type RateFunc func(date time.Time, currency string) (decimal.Decimal, error)

// StaticRates builds a RateFunc over a fixed currency-to-rate table, for
// deployments where the sync collaborator publishes a daily rate table into
// the environment instead of exposing a rate service. Currencies absent
// from the table are an error.
func StaticRates(rates map[string]decimal.Decimal) RateFunc {
	return func(_ time.Time, currency string) (decimal.Decimal, error) {
		r, ok := rates[currency]
		if !ok {
			return decimal.Zero, fmt.Errorf("no conversion rate for currency %s", currency)
		}
		return r, nil
	}
}

// AccountIndex maps account codes to display names. Codes absent from the
// index render with an empty name; their lines are never dropped.
type AccountIndex map[AccountCode]string

// NewAccountIndex builds an index from chart-of-accounts reference data.
func NewAccountIndex(accounts []Account) AccountIndex {
	idx := make(AccountIndex, len(accounts))
	for _, a := range accounts {
		idx[a.Code] = a.Name
	}
	return idx
}
