package core

// Accumulation is the folded debit/credit position of every account touched
// by the posting snapshot, keyed by account code plus the synthetic
// retained-earnings code.
type Accumulation struct {
	Balances map[AccountCode]Balance

	// OneSided counts postings that carried only a debit or only a credit
	// account. Such postings still contribute to the side they name, but an
	// unbalanced ledger with no other diagnostic usually starts here.
	OneSided int
}

// Accumulate folds postings into per-account totals for a report on the
// given fiscal year. The caller supplies the full posting history up to the
// cutoff date — the balance sheet is a cumulative snapshot, not a per-year
// slice.
//
// Cost and revenue postings dated in a calendar year before the reported one
// are redirected to the synthetic retained-earnings account: once a fiscal
// year closes, its P&L has been swept into equity and must not be counted
// again. Cost/revenue postings dated within the reported year stay on their
// original accounts so the current-year result can be computed from them.
//
// Accounts whose net is within Tolerance of zero are dropped before
// classification.
func Accumulate(postings []Posting, year int) Accumulation {
	acc := Accumulation{Balances: make(map[AccountCode]Balance)}

	for _, p := range postings {
		if p.DebitAccount == "" || p.CreditAccount == "" {
			acc.OneSided++
		}
		if code := rolloverTarget(p.DebitAccount, p.Date.Year(), year); code != "" {
			b := acc.Balances[code]
			b.Debit = b.Debit.Add(p.Amount)
			acc.Balances[code] = b
		}
		if code := rolloverTarget(p.CreditAccount, p.Date.Year(), year); code != "" {
			b := acc.Balances[code]
			b.Credit = b.Credit.Add(p.Amount)
			acc.Balances[code] = b
		}
	}

	for code, b := range acc.Balances {
		if negligible(b.Net()) {
			delete(acc.Balances, code)
		}
	}
	return acc
}

// rolloverTarget returns the account a posting side should accumulate on:
// the synthetic retained-earnings account for prior-year cost/revenue
// postings, the original account otherwise. Empty for an absent side.
func rolloverTarget(code AccountCode, postingYear, reportYear int) AccountCode {
	if code == "" {
		return ""
	}
	switch ClassOf(code) {
	case ClassCosts, ClassRevenues:
		if postingYear < reportYear {
			return RetainedEarningsCode
		}
	}
	return code
}
