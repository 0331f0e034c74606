package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ancientsvc/internal/dataset"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		raw     string
		want    Mode
		wantErr bool
	}{
		{"modern-to-historical", ModeModernToHistorical, false},
		{"historical-to-modern", ModeHistoricalToModern, false},
		{"", ModeModernToHistorical, false}, // default
		{"sideways", "", true},
		{"MODERN-TO-HISTORICAL", "", true}, // mode strings are exact
		{"modern-to-historical ", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.raw, func(t *testing.T) {
			mode, err := ParseMode(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidMode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, mode)
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"absent defaults to one", "", 1},
		{"whitespace defaults to one", "   ", 1},
		{"integer", "100", 100},
		{"decimal", "2.5", 2.5},
		{"negative passes through", "-3", -3},
		{"non-numeric coerces to zero", "abc", 0},
		{"trailing garbage coerces to zero", "12abc", 0},
		{"nan coerces to zero", "NaN", 0},
		{"inf coerces to zero", "Inf", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseAmount(tc.raw))
		})
	}
}

func TestNormalizeCurrency(t *testing.T) {
	assert.Equal(t, "USD", NormalizeCurrency(""))
	assert.Equal(t, "USD", NormalizeCurrency("  "))
	assert.Equal(t, "EUR", NormalizeCurrency("eur"))
	assert.Equal(t, "GBP", NormalizeCurrency(" gBp "))
	// Arbitrary strings are forwarded untouched beyond case folding.
	assert.Equal(t, "DOGE", NormalizeCurrency("doge"))
}

func TestComputeAll_ModernToHistorical(t *testing.T) {
	t.Run("hundred dollars into denarii", func(t *testing.T) {
		entries := []dataset.Entry{{Name: "Roman Empire", Unit: "denarius", ModernUSD: 0.05}}

		results := ComputeAll(entries, 100, ModeModernToHistorical, "USD", 1)
		require.Len(t, results, 1)

		r := results[0]
		assert.Equal(t, 100.0, r.AmountInUSD)
		require.NotNil(t, r.UnitsEquivalent)
		assert.Equal(t, 2000.0, *r.UnitsEquivalent)
		assert.Equal(t, 0.05, r.ModernUSDPerUnit)
		assert.Equal(t, "USD", r.InputCurrency)
		assert.Equal(t, 100.0, r.InputAmount)
	})

	t.Run("unknown unit value yields null, never infinity", func(t *testing.T) {
		entries := []dataset.Entry{
			{Name: "Indus Valley", Unit: "weight of barley", ModernUSD: 0},
			{Name: "Minoan Crete", Unit: "copper oxhide ingot"}, // missing value
		}

		results := ComputeAll(entries, 50, ModeModernToHistorical, "EUR", 1.1)
		require.Len(t, results, 2)
		for _, r := range results {
			assert.Nil(t, r.UnitsEquivalent)
			assert.Equal(t, 0.0, r.ModernUSDPerUnit)
			assert.False(t, math.IsInf(r.AmountInUSD, 0))
			assert.False(t, math.IsNaN(r.AmountInUSD))
		}
	})

	t.Run("non-USD currency applies the rate before dividing", func(t *testing.T) {
		entries := []dataset.Entry{{Unit: "drachma", ModernUSD: 2}}

		// 10 EUR at 1.2 EUR->USD = 12 USD = 6 drachmas.
		results := ComputeAll(entries, 10, ModeModernToHistorical, "EUR", 1.2)
		require.Len(t, results, 1)
		assert.Equal(t, 12.0, results[0].AmountInUSD)
		require.NotNil(t, results[0].UnitsEquivalent)
		assert.Equal(t, 6.0, *results[0].UnitsEquivalent)
	})
}

func TestComputeAll_HistoricalToModern(t *testing.T) {
	t.Run("five units into euros", func(t *testing.T) {
		entries := []dataset.Entry{{Unit: "solidus", ModernUSD: 10}}

		results := ComputeAll(entries, 5, ModeHistoricalToModern, "EUR", 0.9)
		require.Len(t, results, 1)

		r := results[0]
		assert.Equal(t, 50.0, r.AmountInUSD)
		assert.Equal(t, 45.0, r.AmountInTargetCurrency)
		assert.Equal(t, "EUR", r.TargetCurrency)
		assert.Equal(t, 5.0, r.InputHistoricalAmount)
		assert.Nil(t, r.UnitsEquivalent)
	})

	t.Run("zero unit value yields zero, never null", func(t *testing.T) {
		entries := []dataset.Entry{
			{Unit: "weight of barley", ModernUSD: 0},
			{Unit: "cacao bean", ModernUSD: 0.04},
		}

		results := ComputeAll(entries, 3, ModeHistoricalToModern, "GBP", 0.8)
		require.Len(t, results, 2)
		assert.Equal(t, 0.0, results[0].AmountInUSD)
		assert.Equal(t, 0.0, results[0].AmountInTargetCurrency)
		assert.Equal(t, 0.12, results[1].AmountInUSD)
		assert.Equal(t, 0.096, results[1].AmountInTargetCurrency)
	})
}

func TestComputeAll_PreservesOrderAndLength(t *testing.T) {
	entries := []dataset.Entry{
		{Name: "first", ModernUSD: 1},
		{Name: "second", ModernUSD: 0},
		{Name: "third", ModernUSD: 2},
	}

	results := ComputeAll(entries, 7, ModeModernToHistorical, "USD", 1)
	require.Len(t, results, len(entries))
	for i, r := range results {
		assert.Equal(t, entries[i].Name, r.Name)
	}
}

func TestComputeAll_Idempotent(t *testing.T) {
	entries := []dataset.Entry{
		{Name: "Roman Empire", Unit: "denarius", ModernUSD: 3.62},
		{Name: "Indus Valley", Unit: "weight of barley"},
	}

	first := ComputeAll(entries, 42.5, ModeModernToHistorical, "JPY", 0.0068)
	second := ComputeAll(entries, 42.5, ModeModernToHistorical, "JPY", 0.0068)
	assert.Equal(t, first, second)
}

func TestComputeAll_RoundTrip(t *testing.T) {
	// Converting A modern-to-historical and feeding units_equivalent back
	// through historical-to-modern with the inverse rate recovers A within
	// the 6-decimal storage precision.
	const rate = 1.25 // EUR -> USD
	entries := []dataset.Entry{{Unit: "denarius", ModernUSD: 3.62}}

	forward := ComputeAll(entries, 80, ModeModernToHistorical, "EUR", rate)
	require.NotNil(t, forward[0].UnitsEquivalent)

	back := ComputeAll(entries, *forward[0].UnitsEquivalent, ModeHistoricalToModern, "EUR", 1/rate)
	assert.InDelta(t, 80, back[0].AmountInTargetCurrency, 1e-4)
}

func TestComputeAll_NegativeUnitValueTreatedAsUnknown(t *testing.T) {
	entries := []dataset.Entry{{Unit: "coin", ModernUSD: -5}}

	m2h := ComputeAll(entries, 10, ModeModernToHistorical, "USD", 1)
	assert.Nil(t, m2h[0].UnitsEquivalent)
	assert.Equal(t, 0.0, m2h[0].ModernUSDPerUnit)

	h2m := ComputeAll(entries, 10, ModeHistoricalToModern, "USD", 1)
	assert.Equal(t, 0.0, h2m[0].AmountInTargetCurrency)
}

func TestRound6(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.23456789, 1.234568},
		{0.0000004, 0},
		{0.0000005, 0.000001}, // half away from zero
		{-0.0000005, -0.000001},
		{2000, 2000},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Round6(tc.in), "Round6(%v)", tc.in)
	}
}
