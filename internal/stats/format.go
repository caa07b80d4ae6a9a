package stats

import "fmt"

// FormatDuration converts a month count into a "Y年M月"-style label.
// Zero months renders as "0ヶ月". Negative input is treated as zero.
func FormatDuration(months int) string {
	if months <= 0 {
		return "0ヶ月"
	}
	years := months / 12
	rem := months % 12
	switch {
	case years == 0:
		return fmt.Sprintf("%dヶ月", rem)
	case rem == 0:
		return fmt.Sprintf("%d年", years)
	default:
		return fmt.Sprintf("%d年%dヶ月", years, rem)
	}
}
