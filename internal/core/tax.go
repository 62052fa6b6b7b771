package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TaxConfig holds the statutory parameters the tax estimate depends on.
type TaxConfig struct {
	// Rate is the statutory corporate income tax rate (e.g. 0.21).
	Rate decimal.Decimal
	// NonDeductiblePrefixes selects cost accounts whose expenses do not
	// reduce the tax base (entertainment and similar).
	NonDeductiblePrefixes []string
	// VATPrefix overrides the VAT control account prefix; empty means
	// DefaultVATPrefix.
	VATPrefix string
}

// DefaultTaxConfig returns the statutory defaults: 21% rate, account group
// 513 (entertainment expenses) non-deductible, standard VAT control prefix.
func DefaultTaxConfig() TaxConfig {
	return TaxConfig{
		Rate:                  decimal.New(21, -2),
		NonDeductiblePrefixes: []string{"513"},
		VATPrefix:             DefaultVATPrefix,
	}
}

// VATEstimate is the value-added-tax settlement position for one year.
// Positive Remaining is still owed to the tax authority, negative is an
// overpayment.
type VATEstimate struct {
	Output    decimal.Decimal `json:"output"`
	Input     decimal.Decimal `json:"input"`
	Net       decimal.Decimal `json:"net"`
	Paid      decimal.Decimal `json:"paid"`
	Remaining decimal.Decimal `json:"remaining"`
}

// IncomeTaxEstimate is the rough corporate income tax (DPPO) position for
// one year.
type IncomeTaxEstimate struct {
	Revenues         decimal.Decimal `json:"revenues"`
	Expenses         decimal.Decimal `json:"expenses"`
	AccountingProfit decimal.Decimal `json:"accountingProfit"`
	NonDeductible    decimal.Decimal `json:"nonDeductible"`
	TaxBase          decimal.Decimal `json:"taxBase"`
	Rate             decimal.Decimal `json:"rate"`
	EstimatedTax     decimal.Decimal `json:"estimatedTax"`
	Paid             decimal.Decimal `json:"paid"`
	Remaining        decimal.Decimal `json:"remaining"`
}

// TaxEstimate combines the VAT settlement and the corporate tax estimate.
// Note flags the result as an approximation: no loss carryforward and no
// tax credits are applied.
type TaxEstimate struct {
	VAT  VATEstimate       `json:"vat"`
	DPPO IncomeTaxEstimate `json:"dppo"`
	Note string            `json:"note"`
}

const taxEstimateNote = "approximation only: no loss carryforward, no tax credits"

// EstimateTaxes derives the VAT and corporate tax positions for the
// reported year. Postings are the same cutoff-bounded snapshot the
// accumulation was folded from; paid advances are externally supplied.
//
// Output VAT is everything credited to the VAT control accounts within the
// year, input VAT everything debited. The corporate tax base starts from
// the accounting profit (revenues minus costs of the year) and adds back
// non-deductible expenses; a negative base estimates zero tax rather than a
// refund.
func EstimateTaxes(postings []Posting, acc Accumulation, year int, cfg TaxConfig, vatPaid, incomeTaxPaid decimal.Decimal) *TaxEstimate {
	vatPrefix := cfg.VATPrefix
	if vatPrefix == "" {
		vatPrefix = DefaultVATPrefix
	}

	est := &TaxEstimate{Note: taxEstimateNote}

	for _, p := range postings {
		if p.Date.Year() != year {
			continue
		}
		if strings.HasPrefix(string(p.DebitAccount), vatPrefix) {
			est.VAT.Input = est.VAT.Input.Add(p.Amount)
		}
		if strings.HasPrefix(string(p.CreditAccount), vatPrefix) {
			est.VAT.Output = est.VAT.Output.Add(p.Amount)
		}
	}
	est.VAT.Net = est.VAT.Output.Sub(est.VAT.Input)
	est.VAT.Paid = vatPaid
	est.VAT.Remaining = est.VAT.Net.Sub(vatPaid)

	for code, b := range acc.Balances {
		switch ClassOf(code) {
		case ClassCosts:
			cost := b.Net()
			est.DPPO.Expenses = est.DPPO.Expenses.Add(cost)
			if hasAnyPrefix(code, cfg.NonDeductiblePrefixes) {
				est.DPPO.NonDeductible = est.DPPO.NonDeductible.Add(cost)
			}
		case ClassRevenues:
			est.DPPO.Revenues = est.DPPO.Revenues.Add(b.Net().Neg())
		}
	}

	est.DPPO.AccountingProfit = est.DPPO.Revenues.Sub(est.DPPO.Expenses)
	est.DPPO.TaxBase = est.DPPO.AccountingProfit.Add(est.DPPO.NonDeductible)
	est.DPPO.Rate = cfg.Rate
	if est.DPPO.TaxBase.Sign() > 0 {
		est.DPPO.EstimatedTax = est.DPPO.TaxBase.Mul(cfg.Rate).Round(2)
	} else {
		est.DPPO.EstimatedTax = decimal.Zero
	}
	est.DPPO.Paid = incomeTaxPaid
	est.DPPO.Remaining = est.DPPO.EstimatedTax.Sub(incomeTaxPaid)
	return est
}

func hasAnyPrefix(code AccountCode, prefixes []string) bool {
	for _, p := range prefixes {
		if p != "" && strings.HasPrefix(string(code), p) {
			return true
		}
	}
	return false
}
