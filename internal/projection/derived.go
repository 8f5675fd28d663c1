package projection

import (
	"fmt"

	"emissions-platform/internal/models"
)

// ResidualFromReduction converts a maximum-reduction percentage into the
// residual percentage left over: 100 - maxReduction.
func ResidualFromReduction(maxReduction float64) float64 {
	return 100 - maxReduction
}

// RemovalsRequired returns the annual carbon removals, in the same unit as
// baselineEmissions, needed to offset a residual share of residualPct.
// Negative baselines are rejected.
func RemovalsRequired(baselineEmissions, residualPct float64) (float64, error) {
	if baselineEmissions < 0 {
		return 0, &models.InvalidParameterError{
			Field:   "baseline_emissions",
			Value:   fmt.Sprintf("%g", baselineEmissions),
			Message: "baseline emissions must be nonnegative",
		}
	}
	return baselineEmissions * residualPct / 100, nil
}

// Cost returns the annual removal spend for the given removal volume at
// costPerTon. Negative costs are rejected.
func Cost(removals, costPerTon float64) (float64, error) {
	if costPerTon < 0 {
		return 0, &models.InvalidParameterError{
			Field:   "cost_per_ton",
			Value:   fmt.Sprintf("%g", costPerTon),
			Message: "cost per ton must be nonnegative",
		}
	}
	return removals * costPerTon, nil
}

// Gap returns the signed difference between a scenario residual and the
// static policy residual, in percentage points. Positive means the scenario
// needs a larger residual allowance than the static policy assumes.
func Gap(scenarioResidual, staticResidual float64) float64 {
	return scenarioResidual - staticResidual
}
