// Package convert implements the currency-equivalence conversion engine:
// bidirectional unit math over the historical dataset given a resolved
// exchange rate, plus the display formatting applied at the presentation
// boundary.
package convert

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Mode selects the conversion direction. There are exactly two modes and no
// transitions; a mode is chosen once per request.
type Mode string

const (
	// ModeModernToHistorical interprets the amount as modern currency and
	// produces historical unit counts.
	ModeModernToHistorical Mode = "modern-to-historical"
	// ModeHistoricalToModern interprets the amount as a count of each
	// entry's historical unit and produces modern currency amounts.
	ModeHistoricalToModern Mode = "historical-to-modern"
)

// ErrInvalidMode indicates an unrecognized conversion mode.
var ErrInvalidMode = errors.New("invalid conversion mode")

// ParseMode validates a raw mode string. An empty string defaults to
// modern-to-historical; anything else unrecognized is a client error.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case ModeModernToHistorical, ModeHistoricalToModern:
		return Mode(raw), nil
	case "":
		return ModeModernToHistorical, nil
	}
	return "", ErrInvalidMode
}

// ParseAmount coerces a raw amount string. An absent amount defaults to 1; a
// non-numeric amount degrades to 0 rather than failing.
func ParseAmount(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 1
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// NormalizeCurrency trims and uppercases a currency code, defaulting to USD.
// Codes are forwarded to the rate source without further validation.
func NormalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "USD"
	}
	return code
}
