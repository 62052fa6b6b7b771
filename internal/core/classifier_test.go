package core_test

import (
	"testing"

	"ledger-reports/internal/core"

	"github.com/shopspring/decimal"
)

func TestClassifyBalance(t *testing.T) {
	tests := []struct {
		name    string
		code    core.AccountCode
		net     string
		group   core.GroupID
		balance string
		ok      bool
	}{
		{"class 0 fixed asset", "022", "100000", core.GroupFixedAssets, "100000", true},
		{"class 1 inventory", "132", "4000", core.GroupCurrentAssets, "4000", true},
		{"class 2 bank", "221", "2500", core.GroupCurrentAssets, "2500", true},
		{"accrual net debit", "381", "1200", core.GroupAssetAccruals, "1200", true},
		{"accrual net credit flips sign", "383", "-900", core.GroupLiabilityAccrls, "900", true},
		{"accrual exactly zero stays asset side", "381", "0", core.GroupAssetAccruals, "0", true},
		{"class 3 receivable", "311", "80000", core.GroupCurrentAssets, "80000", true},
		{"class 3 payable flips sign", "321", "-100000", core.GroupShortTermLiab, "100000", true},
		{"41 equity", "411", "-500000", core.GroupEquity, "500000", true},
		{"42 equity", "428", "-30000", core.GroupEquity, "30000", true},
		{"43 equity", "431", "-10000", core.GroupEquity, "10000", true},
		{"class 4 long-term liability", "461", "-250000", core.GroupLongTermLiab, "250000", true},
		{"synthetic retained earnings is equity", core.RetainedEarningsCode, "-50000", core.GroupEquity, "50000", true},
		{"class 9 off-balance ignored", "961", "700", "", "", false},
		{"class 5 cost is not balance-sheet", "501", "30000", "", "", false},
		{"class 6 revenue is not balance-sheet", "602", "-80000", "", "", false},
		{"class outside scheme ignored", "701", "10", "", "", false},
		{"empty code ignored", "", "10", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, balance, ok := core.ClassifyBalance(tt.code, decimal.RequireFromString(tt.net))
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !ok {
				return
			}
			if group != tt.group {
				t.Errorf("group = %s, want %s", group, tt.group)
			}
			if !balance.Equal(decimal.RequireFromString(tt.balance)) {
				t.Errorf("balance = %s, want %s", balance, tt.balance)
			}
		})
	}
}
