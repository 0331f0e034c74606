package convert

import (
	"fmt"
	"math"
	"strconv"
)

// NoDataText is rendered when a result carries no usable numeric field.
const NoDataText = "No data available"

// FormatResult renders a single result as a human-readable equivalence
// sentence. Field priority: units_equivalent, then amount_in_target_currency,
// then the bare per-unit USD value, then the no-data marker.
func FormatResult(r Result) string {
	if r.UnitsEquivalent != nil {
		return fmt.Sprintf("%s %s ≈ %s %s",
			formatNumber(r.InputAmount), r.InputCurrency,
			DisplayRound(*r.UnitsEquivalent), r.Unit)
	}
	if r.Mode == ModeHistoricalToModern {
		return fmt.Sprintf("%s %s ≈ %s %s",
			formatNumber(r.InputHistoricalAmount), r.Unit,
			DisplayRound(r.AmountInTargetCurrency), r.TargetCurrency)
	}
	if r.ModernUSDPerUnit > 0 && r.Unit != "" {
		return fmt.Sprintf("≈ %s USD per %s", formatNumber(r.ModernUSDPerUnit), r.Unit)
	}
	return NoDataText
}

// DisplayRound applies the cosmetic display tiering: values below 100 keep
// two decimals, values at or above 100 round to the nearest integer. Purely
// presentational; the payload keeps the 6-decimal values.
func DisplayRound(v float64) string {
	if v >= 100 {
		return strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	}
	return formatNumber(math.Round(v*100) / 100)
}

// formatNumber prints a float without trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
