package core_test

import (
	"testing"
	"time"

	"ledger-reports/internal/core"

	"github.com/shopspring/decimal"
)

func TestStaticRates(t *testing.T) {
	rates := core.StaticRates(map[string]decimal.Decimal{
		"EUR": dec("24.755"),
	})
	when := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	r, err := rates(when, "EUR")
	if err != nil {
		t.Fatalf("rate lookup failed: %v", err)
	}
	if !r.Equal(dec("24.755")) {
		t.Errorf("rate = %s, want 24.755", r)
	}

	if _, err := rates(when, "USD"); err == nil {
		t.Errorf("expected error for currency outside the table")
	}
}

func TestClassOf(t *testing.T) {
	tests := []struct {
		code core.AccountCode
		want core.AccountClass
	}{
		{"022", core.ClassFixedAssets},
		{"132", core.ClassInventory},
		{"221", core.ClassInventory},
		{"343", core.ClassSettlement},
		{"411", core.ClassCapital},
		{"501", core.ClassCosts},
		{"602", core.ClassRevenues},
		{"961", core.ClassOffBalance},
		{"7xx", core.ClassUnknown},
		{"", core.ClassUnknown},
		{core.RetainedEarningsCode, core.ClassSynthetic},
	}
	for _, tt := range tests {
		if got := core.ClassOf(tt.code); got != tt.want {
			t.Errorf("ClassOf(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
