package finance

// ProjectionParams are the inputs of a compound-growth projection.
type ProjectionParams struct {
	// Initial is the starting capital.
	Initial float64 `json:"initial"`

	// Contribution is the amount added at the start of every compounding
	// period (typically monthly).
	Contribution float64 `json:"contribution"`

	// AnnualRatePercent is the expected yearly return in percent.
	// Negative values are allowed and model loss.
	AnnualRatePercent float64 `json:"annualRatePercent"`

	// Years is the projection horizon. Must be ≥ 0.
	Years int `json:"years"`

	// PeriodsPerYear is the number of compounding steps per year.
	// Zero means the default of 12 (monthly compounding).
	PeriodsPerYear int `json:"periodsPerYear,omitempty"`
}

// TrajectoryPoint is one yearly sample of a growth projection.
type TrajectoryPoint struct {
	// Year is the zero-based year index of this sample.
	Year int `json:"year"`

	// Contributed is the cumulative amount paid in up to this point,
	// including the initial capital.
	Contributed float64 `json:"contributed"`

	// Balance is the projected account value at this point.
	Balance float64 `json:"balance"`
}

// GrowthTrajectory is the year-by-year result of a projection plus its
// derived summary values.
type GrowthTrajectory struct {
	// Points holds one sample per year from year 0 through the horizon,
	// so its length is always Years+1.
	Points []TrajectoryPoint `json:"points"`

	// FinalBalance is the balance of the last point.
	FinalBalance float64 `json:"finalBalance"`

	// TotalContributed is the contributed amount of the last point.
	TotalContributed float64 `json:"totalContributed"`

	// InterestEarned is FinalBalance − TotalContributed.
	InterestEarned float64 `json:"interestEarned"`
}

// Project computes a year-by-year balance trajectory for a recurring
// investment plan.
//
// The year-0 point carries the unmodified initial capital as both
// contributed and balance. For each following year the balance is advanced
// by PeriodsPerYear compounding steps of
//
//	balance = (balance + contribution) × (1 + rate/100/periodsPerYear)
//
// with the contribution added before the growth factor is applied.
// Accumulation runs at full float64 precision; any rounding to currency
// minor units is left to the presentation layer so that the trajectory does
// not drift.
//
// Returns ErrInvalidParameter if Years is negative, any numeric input is
// non-finite, or the trajectory overflows float64.
func Project(p ProjectionParams) (GrowthTrajectory, error) {
	if p.Years < 0 || !finite(p.Initial, p.Contribution, p.AnnualRatePercent) {
		return GrowthTrajectory{}, ErrInvalidParameter
	}

	periodsPerYear := p.PeriodsPerYear
	if periodsPerYear <= 0 {
		periodsPerYear = 12
	}

	factor := 1 + p.AnnualRatePercent/100/float64(periodsPerYear)

	balance := p.Initial
	contributed := p.Initial

	points := make([]TrajectoryPoint, 0, p.Years+1)
	points = append(points, TrajectoryPoint{Year: 0, Contributed: contributed, Balance: balance})

	for year := 1; year <= p.Years; year++ {
		for period := 0; period < periodsPerYear; period++ {
			balance = (balance + p.Contribution) * factor
			contributed += p.Contribution
		}
		points = append(points, TrajectoryPoint{Year: year, Contributed: contributed, Balance: balance})
	}

	last := points[len(points)-1]
	if !finite(last.Balance) {
		// absurd rate overflowed the accumulation
		return GrowthTrajectory{}, ErrInvalidParameter
	}

	return GrowthTrajectory{
		Points:           points,
		FinalBalance:     last.Balance,
		TotalContributed: last.Contributed,
		InterestEarned:   last.Balance - last.Contributed,
	}, nil
}
