package convert

import (
	"math"

	"ancientsvc/internal/dataset"
)

// ComputeAll maps every dataset entry to a Result, one output per input with
// order preserved. The rate direction must match the mode: currency into USD
// for modern-to-historical, USD into the target currency for
// historical-to-modern. ComputeAll never fails: unknown unit values degrade
// per entry to null (modern-to-historical) or zero (historical-to-modern).
func ComputeAll(entries []dataset.Entry, amount float64, mode Mode, currency string, rate float64) []Result {
	results := make([]Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, computeOne(e, amount, mode, currency, rate))
	}
	return results
}

func computeOne(e dataset.Entry, amount float64, mode Mode, currency string, rate float64) Result {
	r := Result{
		Mode:      mode,
		Name:      e.Name,
		Unit:      e.Unit,
		YearRange: e.YearRange,
		Note:      e.Note,
		Image:     e.Image,
	}

	unitUSD := unitValueUSD(e)
	r.ModernUSDPerUnit = Round6(unitUSD)

	if mode == ModeHistoricalToModern {
		// Pure multiplication: a zero unit value legitimately yields 0,
		// never null, since this path never divides.
		amountUSD := amount * unitUSD
		r.InputHistoricalAmount = amount
		r.TargetCurrency = currency
		r.AmountInUSD = Round6(amountUSD)
		r.AmountInTargetCurrency = Round6(amountUSD * rate)
		return r
	}

	amountUSD := amount * rate
	r.InputAmount = amount
	r.InputCurrency = currency
	r.AmountInUSD = Round6(amountUSD)
	if unitUSD != 0 {
		units := Round6(amountUSD / unitUSD)
		r.UnitsEquivalent = &units
	}
	return r
}

// unitValueUSD returns the entry's modern USD unit value, treating missing,
// negative, and non-finite values as 0 (unit value unknown).
func unitValueUSD(e dataset.Entry) float64 {
	v := e.ModernUSD
	if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Round6 rounds half away from zero to 6 decimal digits. This is the storage
// precision carried in the payload; it must stay stable for round-trip
// conversions and is independent of the cosmetic display rounding.
func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
