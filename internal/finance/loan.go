package finance

import "math"

// payoffEpsilon is the residual balance below which a loan is considered
// fully repaid. Expressed in currency units.
const payoffEpsilon = 0.1

// SchedulePeriod is one month of an amortization schedule.
type SchedulePeriod struct {
	// Month is the one-based period index.
	Month int `json:"month"`

	// RemainingBalance is the principal still owed after this month's
	// payment has been applied.
	RemainingBalance float64 `json:"remainingBalance"`

	// InterestPaid is the interest portion of this month's payment.
	InterestPaid float64 `json:"interestPaid"`
}

// AmortizationResult summarizes a full amortization run.
type AmortizationResult struct {
	// MonthlyPayment is the fixed installment computed from the EMI
	// formula, excluding any extra payment.
	MonthlyPayment float64 `json:"monthlyPayment"`

	// TotalInterest is the interest paid over the life of the loan.
	TotalInterest float64 `json:"totalInterest"`

	// MonthsToPayoff is the number of payments until the balance
	// reached zero.
	MonthsToPayoff int `json:"monthsToPayoff"`

	// Schedule is the month-by-month repayment trace.
	Schedule []SchedulePeriod `json:"schedule,omitempty"`
}

// PayoffComparison pairs a standard amortization run with an accelerated
// run of the same principal, rate and term. Pairing the two runs in one
// result guarantees both used identical loan parameters, which is the whole
// point of the comparison.
type PayoffComparison struct {
	Standard    AmortizationResult `json:"standard"`
	Accelerated AmortizationResult `json:"accelerated"`

	// InterestSaved is Standard.TotalInterest − Accelerated.TotalInterest.
	InterestSaved float64 `json:"interestSaved"`

	// MonthsSaved is Standard.MonthsToPayoff − Accelerated.MonthsToPayoff.
	MonthsSaved int `json:"monthsSaved"`
}

// finite reports whether every value is a real number, screening out NaN
// and ±Inf before they can poison a calculation.
func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MonthlyPayment computes the fixed installment for a loan using the EMI
// formula. The zero-rate case degenerates to straight-line division, which
// must be special-cased because the formula's denominator vanishes as the
// rate approaches zero.
//
// Returns ErrInvalidParameter for non-positive principal or term, a
// negative rate, a non-finite input, or a rate so large that the formula
// overflows float64.
func MonthlyPayment(principal, annualRatePercent float64, termYears int) (float64, error) {
	if !finite(principal, annualRatePercent) || principal <= 0 || termYears <= 0 || annualRatePercent < 0 {
		return 0, ErrInvalidParameter
	}

	n := float64(termYears * 12)
	if annualRatePercent == 0 {
		return principal / n, nil
	}

	r := annualRatePercent / 100 / 12
	pow := math.Pow(1+r, n)

	payment := principal * r * pow / (pow - 1)
	if !finite(payment) {
		return 0, ErrInvalidParameter
	}

	return payment, nil
}

// Amortize runs a month-by-month repayment simulation.
//
// Each month accrues interest on the open balance, then applies the fixed
// EMI payment plus extraMonthly toward interest first and principal second.
// The final principal payment is clamped so the balance never goes negative.
// The loop stops once the balance falls to payoffEpsilon or below.
//
// A safety cap of twice the scheduled term guards against pathological
// rate/extra-payment combinations; exhausting it returns ErrDidNotConverge
// with no partial result.
//
// Returns ErrInvalidParameter under the same conditions as
// [MonthlyPayment]; a negative or non-finite extraMonthly is also rejected.
func Amortize(principal, annualRatePercent float64, termYears int, extraMonthly float64) (AmortizationResult, error) {
	if !finite(extraMonthly) || extraMonthly < 0 {
		return AmortizationResult{}, ErrInvalidParameter
	}

	payment, err := MonthlyPayment(principal, annualRatePercent, termYears)
	if err != nil {
		return AmortizationResult{}, err
	}

	r := annualRatePercent / 100 / 12
	n := termYears * 12
	iterationCap := 2 * n

	balance := principal
	totalInterest := 0.0
	months := 0
	schedule := make([]SchedulePeriod, 0, n)

	for balance > payoffEpsilon {
		if months >= iterationCap {
			return AmortizationResult{}, ErrDidNotConverge
		}

		interest := balance * r
		principalPaid := payment + extraMonthly - interest
		if principalPaid > balance {
			// last payment
			principalPaid = balance
		}

		balance -= principalPaid
		totalInterest += interest
		months++

		schedule = append(schedule, SchedulePeriod{
			Month:            months,
			RemainingBalance: balance,
			InterestPaid:     interest,
		})
	}

	return AmortizationResult{
		MonthlyPayment: payment,
		TotalInterest:  totalInterest,
		MonthsToPayoff: months,
		Schedule:       schedule,
	}, nil
}

// ComparePayoff runs Amortize twice over identical loan parameters — once
// without and once with the extra monthly payment — and reports the interest
// and time saved by accelerating.
//
// extraMonthly must be strictly positive; a comparison against a zero extra
// payment is meaningless and is rejected with ErrInvalidParameter.
func ComparePayoff(principal, annualRatePercent float64, termYears int, extraMonthly float64) (PayoffComparison, error) {
	if extraMonthly <= 0 {
		return PayoffComparison{}, ErrInvalidParameter
	}

	standard, err := Amortize(principal, annualRatePercent, termYears, 0)
	if err != nil {
		return PayoffComparison{}, err
	}

	accelerated, err := Amortize(principal, annualRatePercent, termYears, extraMonthly)
	if err != nil {
		return PayoffComparison{}, err
	}

	return PayoffComparison{
		Standard:      standard,
		Accelerated:   accelerated,
		InterestSaved: standard.TotalInterest - accelerated.TotalInterest,
		MonthsSaved:   standard.MonthsToPayoff - accelerated.MonthsToPayoff,
	}, nil
}
