// Package projection implements the scenario projection engine: pure,
// deterministic transformations of (industry profile, user parameters, time
// horizon) into labeled numeric series. Nothing in this package performs I/O
// or holds state between calls; identical inputs always reproduce identical
// output.
package projection

import (
	"fmt"
	"math"

	"emissions-platform/internal/models"
)

const (
	// BaselineUnits is the normalized emissions mass every decomposition
	// series starts from.
	BaselineUnits = 1000.0

	// horizonStepYears is the sampling granularity the growth factor
	// compounds at: once per horizon step, not per calendar year.
	horizonStepYears = 5
)

// DefaultHorizon returns the standard query years: every 5th year from 2030
// through 2050.
func DefaultHorizon() []int {
	return []int{2030, 2035, 2040, 2045, 2050}
}

// Project produces the year-by-year emissions decomposition for an industry
// under the given scenario parameters.
//
// Cumulative growth at step i compounds as (1+g/100)^(5i); the growth-driven
// increase is split between unabated growth and genuine decarbonization by
// the decarbonization efficiency. The dynamic residual ramps linearly from
// the flat static allowance up to the constraint intensity across the
// horizon, clamped below by the industry's biological floor. Carbon removals
// are sized to exactly offset the residual at every step; this is a modeling
// choice, not a derived fact.
//
// All inputs are validated before any point is produced; a violated bound
// yields an InvalidParameterError and no output.
func Project(profile *models.IndustryProfile, params models.ScenarioParameters, horizon []int) ([]models.ProjectionPoint, error) {
	if profile == nil {
		return nil, &models.InvalidParameterError{
			Field:   "profile",
			Message: "profile must not be nil",
		}
	}
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := params.Validate(profile); err != nil {
		return nil, err
	}
	if err := validateHorizon(horizon); err != nil {
		return nil, err
	}

	floor := BaselineUnits * profile.BiologicalFloorPct / 100
	lastIndex := len(horizon) - 1

	points := make([]models.ProjectionPoint, 0, len(horizon))
	for i, year := range horizon {
		growthFactor := math.Pow(1+params.GrowthRate/100, float64(horizonStepYears*i))
		growthEmissions := BaselineUnits * (growthFactor - 1)

		unabated := growthEmissions * (1 - params.DecarbEfficiency/100)
		genuine := -growthEmissions * params.DecarbEfficiency / 100

		// Linear ramp from 1.0 at the first step to the full constraint
		// intensity at the last. A single-point horizon has no ramp.
		ramp := 1.0
		if lastIndex > 0 {
			ramp = 1 + (params.ConstraintIntensity-1)*float64(i)/float64(lastIndex)
		}
		residual := BaselineUnits * models.StaticResidualPct / 100 * ramp
		if residual < floor {
			residual = floor
		}

		benchmark := BaselineUnits * (1 - profile.TechCeilingPct/100) * (1 + 0.1*float64(i))

		points = append(points, models.ProjectionPoint{
			Year:                   year,
			UnabatedGrowth:         unabated,
			GenuineDecarbonization: genuine,
			DynamicResidual:        residual,
			CarbonRemovals:         residual,
			Benchmark:              benchmark,
		})
	}

	return points, nil
}

// validateHorizon requires a non-empty, strictly increasing year list.
func validateHorizon(horizon []int) error {
	if len(horizon) == 0 {
		return &models.InvalidParameterError{
			Field:   "horizon",
			Message: "horizon must contain at least one year",
		}
	}
	for i := 1; i < len(horizon); i++ {
		if horizon[i] <= horizon[i-1] {
			return &models.InvalidParameterError{
				Field:   "horizon",
				Value:   fmt.Sprintf("%d", horizon[i]),
				Message: "horizon years must be strictly increasing",
			}
		}
	}
	return nil
}
