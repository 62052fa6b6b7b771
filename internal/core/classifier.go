package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// GroupID identifies a balance-sheet statement group.
type GroupID string

const (
	GroupFixedAssets     GroupID = "fixed-assets"
	GroupCurrentAssets   GroupID = "current-assets"
	GroupAssetAccruals   GroupID = "asset-accruals"
	GroupEquity          GroupID = "equity"
	GroupShortTermLiab   GroupID = "short-term-liabilities"
	GroupLongTermLiab    GroupID = "long-term-liabilities"
	GroupLiabilityAccrls GroupID = "liability-accruals"
)

// groupCaption is the display name for each statement group.
var groupCaption = map[GroupID]string{
	GroupFixedAssets:     "Fixed assets",
	GroupCurrentAssets:   "Current assets",
	GroupAssetAccruals:   "Accruals",
	GroupEquity:          "Equity",
	GroupShortTermLiab:   "Short-term liabilities",
	GroupLongTermLiab:    "Long-term liabilities",
	GroupLiabilityAccrls: "Accruals",
}

// assetGroup reports whether the group sits on the asset side of the sheet.
func assetGroup(id GroupID) bool {
	switch id {
	case GroupFixedAssets, GroupCurrentAssets, GroupAssetAccruals:
		return true
	}
	return false
}

// ClassifyBalance maps an account's net position to its balance-sheet group
// and presented balance. Equity and liability balances are sign-flipped:
// the chart records them with credit-normal polarity while net is
// debit − credit, so presenting −net yields the conventional positive
// figure.
//
// The second return is false for positions that do not belong on the
// balance sheet: off-balance class 9, current-year costs and revenues
// (they feed the P&L and the result line instead), and codes outside the
// chart's class scheme.
func ClassifyBalance(code AccountCode, net decimal.Decimal) (GroupID, decimal.Decimal, bool) {
	if code == RetainedEarningsCode {
		return GroupEquity, net.Neg(), true
	}

	switch ClassOf(code) {
	case ClassFixedAssets:
		return GroupFixedAssets, net, true

	case ClassInventory:
		return GroupCurrentAssets, net, true

	case ClassSettlement:
		if strings.HasPrefix(string(code), "38") {
			if net.Sign() >= 0 {
				return GroupAssetAccruals, net, true
			}
			return GroupLiabilityAccrls, net.Neg(), true
		}
		if net.Sign() >= 0 {
			return GroupCurrentAssets, net, true
		}
		return GroupShortTermLiab, net.Neg(), true

	case ClassCapital:
		switch {
		case strings.HasPrefix(string(code), "41"),
			strings.HasPrefix(string(code), "42"),
			strings.HasPrefix(string(code), "43"):
			return GroupEquity, net.Neg(), true
		}
		return GroupLongTermLiab, net.Neg(), true
	}

	return "", decimal.Zero, false
}
