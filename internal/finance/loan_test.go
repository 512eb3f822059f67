package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyPayment_StandardEMI(t *testing.T) {
	// 500000 at 9.5% over 20 years: a well-known EMI of roughly 4661.
	payment, err := MonthlyPayment(500000, 9.5, 20)
	require.NoError(t, err)

	assert.InDelta(t, 4661, payment, 1)
}

func TestMonthlyPayment_ZeroRateIsStraightLine(t *testing.T) {
	payment, err := MonthlyPayment(120000, 0, 10)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, payment)
}

func TestMonthlyPayment_InvalidInputs(t *testing.T) {
	tests := []struct {
		name      string
		principal float64
		rate      float64
		termYears int
	}{
		{"zero principal", 0, 5, 10},
		{"negative principal", -100, 5, 10},
		{"zero term", 100000, 5, 0},
		{"negative rate", 100000, -1, 10},
		{"NaN rate", 100000, math.NaN(), 10},
		{"infinite rate", 100000, math.Inf(1), 10},
		{"NaN principal", math.NaN(), 5, 10},
		{"infinite principal", math.Inf(1), 5, 10},
		{"rate overflowing the formula", 1000000, 1e12, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MonthlyPayment(tt.principal, tt.rate, tt.termYears)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestAmortize_FullTermWithoutExtra(t *testing.T) {
	result, err := Amortize(500000, 9.5, 20, 0)
	require.NoError(t, err)

	assert.Equal(t, 240, result.MonthsToPayoff)
	assert.Positive(t, result.TotalInterest)
	assert.Len(t, result.Schedule, result.MonthsToPayoff)

	// The schedule must terminate with the balance paid off and the
	// running balance strictly decreasing.
	last := result.Schedule[len(result.Schedule)-1]
	assert.LessOrEqual(t, last.RemainingBalance, payoffEpsilon)
	for i := 1; i < len(result.Schedule); i++ {
		assert.Less(t, result.Schedule[i].RemainingBalance, result.Schedule[i-1].RemainingBalance)
	}
}

func TestAmortize_ZeroRateLoanPaysNoInterest(t *testing.T) {
	result, err := Amortize(120000, 0, 10, 0)
	require.NoError(t, err)

	assert.Equal(t, 120, result.MonthsToPayoff)
	assert.InDelta(t, 0, result.TotalInterest, 1e-9)
}

func TestAmortize_ExtraPaymentNeverIncreasesInterest(t *testing.T) {
	standard, err := Amortize(300000, 8, 15, 0)
	require.NoError(t, err)

	for _, extra := range []float64{100, 1000, 5000} {
		accelerated, err := Amortize(300000, 8, 15, extra)
		require.NoError(t, err)

		assert.LessOrEqual(t, accelerated.TotalInterest, standard.TotalInterest)
		assert.LessOrEqual(t, accelerated.MonthsToPayoff, standard.MonthsToPayoff)
	}
}

func TestAmortize_InvalidExtraPayment(t *testing.T) {
	for name, extra := range map[string]float64{
		"negative": -50,
		"NaN":      math.NaN(),
		"infinite": math.Inf(1),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Amortize(100000, 5, 10, extra)
			assert.ErrorIs(t, err, ErrInvalidParameter)
		})
	}
}

func TestAmortize_NonFiniteRateRejected(t *testing.T) {
	result, err := Amortize(500000, math.NaN(), 20, 0)

	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Equal(t, AmortizationResult{}, result)
}

func TestAmortize_ExtremeRateHitsIterationCap(t *testing.T) {
	// At 5000% annual the installment's principal portion underflows to
	// nothing, so the balance never drains and the loop must bail out at
	// the safety cap instead of spinning or reporting a bogus payoff.
	result, err := Amortize(500000, 5000, 20, 0)

	assert.ErrorIs(t, err, ErrDidNotConverge)
	assert.Equal(t, AmortizationResult{}, result)
}

func TestComparePayoff_Scenario(t *testing.T) {
	comparison, err := ComparePayoff(500000, 9.5, 20, 2000)
	require.NoError(t, err)

	assert.Less(t, comparison.Accelerated.TotalInterest, comparison.Standard.TotalInterest)
	assert.Less(t, comparison.Accelerated.MonthsToPayoff, comparison.Standard.MonthsToPayoff)
	assert.InDelta(t, comparison.Standard.TotalInterest-comparison.Accelerated.TotalInterest, comparison.InterestSaved, 1e-9)
	assert.Equal(t, comparison.Standard.MonthsToPayoff-comparison.Accelerated.MonthsToPayoff, comparison.MonthsSaved)

	// Both runs must share the same base installment since they describe
	// the same loan.
	assert.Equal(t, comparison.Standard.MonthlyPayment, comparison.Accelerated.MonthlyPayment)
}

func TestComparePayoff_RequiresPositiveExtra(t *testing.T) {
	_, err := ComparePayoff(500000, 9.5, 20, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
