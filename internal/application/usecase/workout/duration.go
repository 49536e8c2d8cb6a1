package workout

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// formatHistoryDuration renders a stored duration in whole minutes for the
// history listing, "記録なし" when the session was never completed.
func formatHistoryDuration(durationSeconds *int) string {
	if durationSeconds == nil {
		return "記録なし"
	}
	minutes := (*durationSeconds + 30) / 60
	return fmt.Sprintf("%d分", minutes)
}

func decimalFromInt(v int) decimal.Decimal {
	return decimal.NewFromInt(int64(v))
}
