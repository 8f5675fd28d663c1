package models

import "fmt"

// StaticResidualPct is the flat residual-emissions threshold applied
// uniformly across industries by the static policy, in percent.
const StaticResidualPct = 11.0

// ScenarioParameters carries the user-adjusted control values for one
// projection run. Instances are built fresh per recomputation and hold no
// identity across interactions.
type ScenarioParameters struct {
	// GrowthRate is annual emissions growth in percent per year, bounded by
	// the industry's growth-rate bounds.
	GrowthRate float64 `json:"growth_rate"`

	// DecarbEfficiency is the fraction of growth-driven emissions eliminated
	// by genuine abatement, in percent [0, 100].
	DecarbEfficiency float64 `json:"decarb_efficiency"`

	// ConstraintIntensity tightens the residual allowance across the horizon;
	// a multiplier >= 1.0 reached at the final horizon step.
	ConstraintIntensity float64 `json:"constraint_intensity"`

	Reductions ReductionScenarios `json:"reductions"`
}

// Validate checks the parameters against their documented bounds and the
// industry's growth-rate range. It reports the first violation found.
func (p *ScenarioParameters) Validate(profile *IndustryProfile) error {
	if !profile.GrowthRateBounds.Contains(p.GrowthRate) {
		return &InvalidParameterError{
			Field: "growth_rate",
			Value: fmt.Sprintf("%g", p.GrowthRate),
			Message: fmt.Sprintf("growth rate for %s must be in [%g, %g] %%/year",
				profile.Name, profile.GrowthRateBounds.Min, profile.GrowthRateBounds.Max),
		}
	}

	if p.DecarbEfficiency < 0 || p.DecarbEfficiency > 100 {
		return &InvalidParameterError{
			Field:   "decarb_efficiency",
			Value:   fmt.Sprintf("%g", p.DecarbEfficiency),
			Message: "decarbonization efficiency must be in [0, 100]",
		}
	}

	if p.ConstraintIntensity < 1.0 {
		return &InvalidParameterError{
			Field:   "constraint_intensity",
			Value:   fmt.Sprintf("%g", p.ConstraintIntensity),
			Message: "constraint intensity must be at least 1.0",
		}
	}

	return p.Reductions.validateOrdered(98)
}

// ProjectionPoint is one sampled year of a scenario decomposition. All
// quantities are in the abstract mass units of the normalized baseline.
// GenuineDecarbonization is signed: negative denotes reduction from the
// gross figure.
type ProjectionPoint struct {
	Year                   int     `json:"year"`
	UnabatedGrowth         float64 `json:"unabated_growth"`
	GenuineDecarbonization float64 `json:"genuine_decarbonization"`
	DynamicResidual        float64 `json:"dynamic_residual"`
	CarbonRemovals         float64 `json:"carbon_removals"`
	Benchmark              float64 `json:"benchmark"`
}

// NetEmissions returns the displayed net figure for the point: residual plus
// any growth left unabated.
func (p ProjectionPoint) NetEmissions() float64 {
	growth := p.UnabatedGrowth
	if growth < 0 {
		growth = 0
	}
	return growth + p.DynamicResidual
}

// TimelinePoint is one sampled year of the smoothed residual-percentage
// trajectory for a named scenario tier.
type TimelinePoint struct {
	Year        int     `json:"year"`
	Scenario    string  `json:"scenario"`
	ResidualPct float64 `json:"residual_pct"`
}

// ScenarioImpact is the business impact of one scenario tier for a given
// company baseline: required removals and their annual cost, with the delta
// against the static-policy cost.
type ScenarioImpact struct {
	Scenario        string  `json:"scenario"`
	ResidualPct     float64 `json:"residual_pct"`
	RemovalsNeeded  float64 `json:"removals_needed_tco2e"`
	AnnualCost      float64 `json:"annual_cost_usd"`
	CostDeltaStatic float64 `json:"cost_delta_vs_static_usd"`
}

// IndustryComparison contrasts one industry's scenario residuals with the
// flat static threshold. GuidanceGap is the signed difference between the
// conservative residual and the static allowance, in percentage points.
type IndustryComparison struct {
	Industry             string  `json:"industry"`
	Scope3Percentage     float64 `json:"scope3_percentage"`
	ConservativeResidual float64 `json:"conservative_residual_pct"`
	AmbitiousResidual    float64 `json:"ambitious_residual_pct"`
	BreakthroughResidual float64 `json:"breakthrough_residual_pct"`
	StaticResidual       float64 `json:"static_residual_pct"`
	GuidanceGap          float64 `json:"guidance_gap_pct"`
	Urgent               bool    `json:"urgent"`
}

// InterventionSummary flattens an intervention's ranges to their midpoints
// for plotting potential against deployment timeline.
type InterventionSummary struct {
	Name            string      `json:"name"`
	PotentialMidPct float64     `json:"potential_mid_pct"`
	TimelineMidYrs  float64     `json:"timeline_mid_years"`
	Scalability     Scalability `json:"scalability"`
}
