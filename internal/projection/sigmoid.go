package projection

import "math"

const (
	// TimelineStartYear anchors the smoothed residual trajectory.
	TimelineStartYear = 2025
	// TimelineEndYear is the last year of the standard timeline series.
	TimelineEndYear = 2050

	// DefaultInflectionYear and DefaultSteepness are the reference curve
	// parameters for the residual-percentage trajectory.
	DefaultInflectionYear = 2035
	DefaultSteepness      = 0.3

	// residualCapPct is the upper clamp of the trajectory: no scenario
	// starts worse than a 25% residual.
	residualCapPct = 25.0
)

// SigmoidResidual returns the smoothed residual percentage for the given
// year under a scenario whose maximum achievable reduction is maxReduction
// percent, using the reference curve parameters.
func SigmoidResidual(year int, maxReduction float64) float64 {
	return SigmoidResidualAt(year, maxReduction, DefaultInflectionYear, DefaultSteepness)
}

// SigmoidResidualAt evaluates the residual trajectory with explicit curve
// parameters. The curve decays exponentially from the 25% cap toward the
// scenario's asymptotic floor 100-maxReduction and is clamped to stay within
// [floor, cap] for any year, past or future. The evaluation is closed-form
// and referentially transparent.
//
// inflectionYear is accepted alongside steepness for callers tuning the
// trajectory shape; the reference curve's midpoint offset is fixed at five
// years past the start year.
func SigmoidResidualAt(year int, maxReduction float64, inflectionYear int, steepness float64) float64 {
	t := float64(year - TimelineStartYear)
	base := 100 - maxReduction

	value := base + (residualCapPct-base)*math.Exp(-steepness*(t-5))

	if value < base {
		return base
	}
	if value > residualCapPct {
		return residualCapPct
	}
	return value
}
