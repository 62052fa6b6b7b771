package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultVATPrefix selects the VAT control accounts: the tax-settlement
// subgroup of class 3 where input and output VAT accrue before settlement
// with the tax authority.
const DefaultVATPrefix = "343"

// SplitVAT removes every balance under the VAT control prefix from the
// accumulation and returns their combined net. The individual control
// accounts have no statement meaning; only the net settlement position
// does, and it must appear on exactly one side of the sheet — positive net
// (the authority owes the entity) becomes a single current-asset line,
// negative net a single short-term-liability line, and a position within
// Tolerance of zero contributes nothing.
func SplitVAT(balances map[AccountCode]Balance, prefix string) decimal.Decimal {
	net := decimal.Zero
	for code, b := range balances {
		if strings.HasPrefix(string(code), prefix) {
			net = net.Add(b.Net())
			delete(balances, code)
		}
	}
	return net
}
