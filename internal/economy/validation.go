package economy

import (
	"fmt"

	"github.com/grove-games/armory/internal/domain"
)

// validateLines checks the shape of a multi-line trade request. Any invalid
// line rejects the whole request before a single record is touched.
func validateLines(lines []TradeLine) error {
	if len(lines) == 0 {
		return fmt.Errorf(ErrMsgEmptyLinesFmt, domain.ErrInvalidInput)
	}
	if len(lines) > domain.MaxPurchaseLines {
		return fmt.Errorf(ErrMsgTooManyLinesFmt, len(lines), domain.MaxPurchaseLines, domain.ErrInvalidInput)
	}
	for _, line := range lines {
		if line.ItemCode <= 0 {
			return fmt.Errorf(ErrMsgInvalidItemCodeFmt, line.ItemCode, domain.ErrInvalidInput)
		}
		if line.Count <= 0 {
			return fmt.Errorf(ErrMsgInvalidCountFmt, line.Count, domain.ErrInvalidInput)
		}
		if line.Count > domain.MaxTransactionQuantity {
			return fmt.Errorf(ErrMsgCountExceedsMaxFmt, line.Count, domain.MaxTransactionQuantity, domain.ErrInvalidInput)
		}
	}
	return nil
}

// mergeLines folds duplicate item codes into one line, preserving first-seen
// order. Downstream checks (stock, affordability) then see each item's true
// aggregate count instead of per-line slices of it.
func mergeLines(lines []TradeLine) []TradeLine {
	counts := make(map[int]int, len(lines))
	order := make([]int, 0, len(lines))
	for _, line := range lines {
		if _, seen := counts[line.ItemCode]; !seen {
			order = append(order, line.ItemCode)
		}
		counts[line.ItemCode] += line.Count
	}

	merged := make([]TradeLine, 0, len(order))
	for _, code := range order {
		merged = append(merged, TradeLine{ItemCode: code, Count: counts[code]})
	}
	return merged
}
