package convert

import "encoding/json"

// Result is the per-entry outcome of a conversion. The populated numeric
// fields depend on the mode; MarshalJSON emits the mode-specific wire shape.
// A Result is owned by the request that produced it and is never persisted.
type Result struct {
	Mode Mode

	Name      string
	Unit      string
	YearRange string
	Note      string
	Image     string

	// Modern-to-historical inputs.
	InputAmount   float64
	InputCurrency string

	// Historical-to-modern inputs.
	InputHistoricalAmount float64
	TargetCurrency        string

	AmountInUSD      float64
	ModernUSDPerUnit float64

	// UnitsEquivalent is nil when the entry's unit value is unknown.
	// Modern-to-historical only; never coerced to 0 or to a string.
	UnitsEquivalent *float64

	AmountInTargetCurrency float64
}

type modernToHistoricalJSON struct {
	Name             string   `json:"name"`
	Unit             string   `json:"unit"`
	YearRange        string   `json:"year_range"`
	Note             string   `json:"note"`
	Image            string   `json:"image,omitempty"`
	InputAmount      float64  `json:"input_amount"`
	InputCurrency    string   `json:"input_currency"`
	AmountInUSD      float64  `json:"amount_in_usd"`
	UnitsEquivalent  *float64 `json:"units_equivalent"`
	ModernUSDPerUnit float64  `json:"modern_usd_per_unit"`
}

type historicalToModernJSON struct {
	Name                   string  `json:"name"`
	Unit                   string  `json:"unit"`
	YearRange              string  `json:"year_range"`
	Note                   string  `json:"note"`
	Image                  string  `json:"image,omitempty"`
	InputHistoricalAmount  float64 `json:"input_historical_amount"`
	AmountInUSD            float64 `json:"amount_in_usd"`
	AmountInTargetCurrency float64 `json:"amount_in_target_currency"`
	TargetCurrency         string  `json:"target_currency"`
	ModernUSDPerUnit       float64 `json:"modern_usd_per_unit"`
}

// MarshalJSON emits the payload for the result's mode. In modern-to-historical
// mode units_equivalent is always present and may be an explicit null; in
// historical-to-modern mode the field does not exist at all, which struct tags
// alone cannot express.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.Mode == ModeHistoricalToModern {
		return json.Marshal(historicalToModernJSON{
			Name:                   r.Name,
			Unit:                   r.Unit,
			YearRange:              r.YearRange,
			Note:                   r.Note,
			Image:                  r.Image,
			InputHistoricalAmount:  r.InputHistoricalAmount,
			AmountInUSD:            r.AmountInUSD,
			AmountInTargetCurrency: r.AmountInTargetCurrency,
			TargetCurrency:         r.TargetCurrency,
			ModernUSDPerUnit:       r.ModernUSDPerUnit,
		})
	}
	return json.Marshal(modernToHistoricalJSON{
		Name:             r.Name,
		Unit:             r.Unit,
		YearRange:        r.YearRange,
		Note:             r.Note,
		Image:            r.Image,
		InputAmount:      r.InputAmount,
		InputCurrency:    r.InputCurrency,
		AmountInUSD:      r.AmountInUSD,
		UnitsEquivalent:  r.UnitsEquivalent,
		ModernUSDPerUnit: r.ModernUSDPerUnit,
	})
}
