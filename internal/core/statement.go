package core

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// ── Statement types ───────────────────────────────────────────────────────────

// StatementLine is one account row inside a statement group. Synthetic lines
// (retained earnings, current-year result, net VAT, group totals) have no
// backing chart-of-accounts entry.
type StatementLine struct {
	Account   AccountCode     `json:"account"`
	Name      string          `json:"name"`
	Balance   decimal.Decimal `json:"balance"`
	Synthetic bool            `json:"isSynthetic,omitempty"`
	IsTotal   bool            `json:"isTotal,omitempty"`
}

// StatementGroup is one classified section of the balance sheet with its
// subtotal. The last line is always the group total row.
type StatementGroup struct {
	ID      GroupID         `json:"id"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
	Lines   []StatementLine `json:"accounts"`
}

// BalanceSheetTotals carries the grand totals and their difference. Diff is
// reported rather than forced to zero so a caller can detect posting errors.
type BalanceSheetTotals struct {
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Diff        decimal.Decimal `json:"diff"`
}

// ReportMeta describes the snapshot a report was computed from.
type ReportMeta struct {
	Year     int      `json:"year"`
	AsOfDate string   `json:"asOfDate,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// BalanceSheet is the assembled statement: asset groups, liability+equity
// groups, grand totals, and snapshot metadata.
type BalanceSheet struct {
	Assets      []StatementGroup   `json:"assets"`
	Liabilities []StatementGroup   `json:"liabilities"`
	Totals      BalanceSheetTotals `json:"totals"`
	Meta        ReportMeta         `json:"meta"`
}

// PLLine is one cost or revenue account row in the profit & loss statement.
type PLLine struct {
	Account AccountCode     `json:"account"`
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// PLTotals carries the P&L group totals and the period result.
type PLTotals struct {
	Costs    decimal.Decimal `json:"costs"`
	Revenues decimal.Decimal `json:"revenues"`
	Profit   decimal.Decimal `json:"profit"`
}

// ProfitLoss lists the reported year's cost and revenue accounts with their
// totals. Profit is revenues minus costs.
type ProfitLoss struct {
	Costs    []PLLine   `json:"costs"`
	Revenues []PLLine   `json:"revenues"`
	Totals   PLTotals   `json:"totals"`
	Meta     ReportMeta `json:"meta"`
}

// ── Balance sheet ─────────────────────────────────────────────────────────────

// BuildBalanceSheet assembles the classified, VAT-netted balance sheet for
// one fiscal year from an accumulation. The accumulation's balance map is
// consumed (VAT control balances are removed from it).
func BuildBalanceSheet(acc Accumulation, names AccountIndex, year int, vatPrefix string) *BalanceSheet {
	if vatPrefix == "" {
		vatPrefix = DefaultVATPrefix
	}

	vatNet := SplitVAT(acc.Balances, vatPrefix)
	result := currentResult(acc.Balances)

	groups := make(map[GroupID][]StatementLine)
	for code, b := range acc.Balances {
		id, bal, ok := ClassifyBalance(code, b.Net())
		if !ok {
			continue
		}
		groups[id] = append(groups[id], StatementLine{
			Account:   code,
			Name:      lineName(code, names),
			Balance:   bal,
			Synthetic: code.Synthetic(),
		})
	}

	if !negligible(vatNet) {
		if vatNet.Sign() > 0 {
			groups[GroupCurrentAssets] = append(groups[GroupCurrentAssets], StatementLine{
				Account: VATSettlementCode, Name: "Tax receivable", Balance: vatNet, Synthetic: true,
			})
		} else {
			groups[GroupShortTermLiab] = append(groups[GroupShortTermLiab], StatementLine{
				Account: VATSettlementCode, Name: "Tax payable", Balance: vatNet.Neg(), Synthetic: true,
			})
		}
	}

	// The current-year result always appears in Equity, even at zero, and
	// always sorts last there.
	resultLine := StatementLine{
		Account: CurrentResultCode, Name: "Current-year result", Balance: result, Synthetic: true,
	}

	sheet := &BalanceSheet{
		Meta: ReportMeta{Year: year},
	}
	for _, id := range []GroupID{GroupFixedAssets, GroupCurrentAssets, GroupAssetAccruals,
		GroupEquity, GroupShortTermLiab, GroupLongTermLiab, GroupLiabilityAccrls} {

		lines := groups[id]
		sort.Slice(lines, func(i, j int) bool { return lines[i].Account < lines[j].Account })
		if id == GroupEquity {
			lines = append(lines, resultLine)
		}
		if len(lines) == 0 {
			continue
		}

		subtotal := decimal.Zero
		for _, l := range lines {
			subtotal = subtotal.Add(l.Balance)
		}
		lines = append(lines, StatementLine{
			Name: "Total " + groupCaption[id], Balance: subtotal, Synthetic: true, IsTotal: true,
		})

		g := StatementGroup{ID: id, Name: groupCaption[id], Balance: subtotal, Lines: lines}
		if assetGroup(id) {
			sheet.Assets = append(sheet.Assets, g)
			sheet.Totals.Assets = sheet.Totals.Assets.Add(subtotal)
		} else {
			sheet.Liabilities = append(sheet.Liabilities, g)
			sheet.Totals.Liabilities = sheet.Totals.Liabilities.Add(subtotal)
		}
	}

	sheet.Totals.Diff = sheet.Totals.Assets.Sub(sheet.Totals.Liabilities)
	if acc.OneSided > 0 {
		sheet.Meta.Warnings = append(sheet.Meta.Warnings, oneSidedWarning(acc.OneSided))
	}
	return sheet
}

// currentResult computes the current-year profit from the class-5 and
// class-6 balances still on their original accounts: costs net to debit,
// revenues to credit, so profit is the negated sum of both nets.
func currentResult(balances map[AccountCode]Balance) decimal.Decimal {
	sum := decimal.Zero
	for code, b := range balances {
		switch ClassOf(code) {
		case ClassCosts, ClassRevenues:
			sum = sum.Add(b.Net())
		}
	}
	return sum.Neg()
}

// ── Profit & loss ─────────────────────────────────────────────────────────────

// BuildProfitLoss lists the reported year's cost and revenue accounts.
// Prior-year cost/revenue postings never reach it — the accumulator has
// already folded them into retained earnings.
func BuildProfitLoss(acc Accumulation, names AccountIndex, year int) *ProfitLoss {
	pl := &ProfitLoss{Meta: ReportMeta{Year: year}}

	for code, b := range acc.Balances {
		switch ClassOf(code) {
		case ClassCosts:
			// Costs are debit-normal: positive balance = cost incurred.
			bal := b.Net()
			pl.Costs = append(pl.Costs, PLLine{Account: code, Name: lineName(code, names), Balance: bal})
			pl.Totals.Costs = pl.Totals.Costs.Add(bal)
		case ClassRevenues:
			// Revenues are credit-normal: positive balance = income earned.
			bal := b.Net().Neg()
			pl.Revenues = append(pl.Revenues, PLLine{Account: code, Name: lineName(code, names), Balance: bal})
			pl.Totals.Revenues = pl.Totals.Revenues.Add(bal)
		}
	}

	sort.Slice(pl.Costs, func(i, j int) bool { return pl.Costs[i].Account < pl.Costs[j].Account })
	sort.Slice(pl.Revenues, func(i, j int) bool { return pl.Revenues[i].Account < pl.Revenues[j].Account })

	pl.Totals.Profit = pl.Totals.Revenues.Sub(pl.Totals.Costs)
	if acc.OneSided > 0 {
		pl.Meta.Warnings = append(pl.Meta.Warnings, oneSidedWarning(acc.OneSided))
	}
	return pl
}

// lineName resolves a display name; unknown codes render with an empty name
// rather than being dropped.
func lineName(code AccountCode, names AccountIndex) string {
	if code == RetainedEarningsCode {
		return "Retained earnings (prior periods)"
	}
	return names[code]
}

// oneSidedWarning describes postings that carried only one side. They still
// count toward the side they name, but they are the usual cause of a
// non-zero balance diff.
func oneSidedWarning(n int) string {
	if n == 1 {
		return "1 posting is missing its debit or credit account"
	}
	return fmt.Sprintf("%d postings are missing their debit or credit account", n)
}
