package projection

import "emissions-platform/internal/models"

// Scenario labels used across the timeline, impact and comparison series.
const (
	ScenarioStatic       = "static"
	ScenarioConservative = "conservative"
	ScenarioAmbitious    = "ambitious"
	ScenarioBreakthrough = "breakthrough"
)

// Timeline produces the year-by-year residual-percentage trajectories from
// TimelineStartYear through TimelineEndYear: the flat static line plus the
// smoothed curve of each reduction tier. Points are ordered by year, one
// block of four scenarios per year.
func Timeline(reductions models.ReductionScenarios) []models.TimelinePoint {
	years := TimelineEndYear - TimelineStartYear + 1
	points := make([]models.TimelinePoint, 0, 4*years)

	for year := TimelineStartYear; year <= TimelineEndYear; year++ {
		points = append(points,
			models.TimelinePoint{Year: year, Scenario: ScenarioStatic, ResidualPct: models.StaticResidualPct},
			models.TimelinePoint{Year: year, Scenario: ScenarioConservative, ResidualPct: SigmoidResidual(year, reductions.Conservative)},
			models.TimelinePoint{Year: year, Scenario: ScenarioAmbitious, ResidualPct: SigmoidResidual(year, reductions.Ambitious)},
			models.TimelinePoint{Year: year, Scenario: ScenarioBreakthrough, ResidualPct: SigmoidResidual(year, reductions.Breakthrough)},
		)
	}

	return points
}

// Impact converts the reduction tiers into per-scenario removal volumes and
// annual costs for a company with the given baseline emissions (tCO2e/year)
// and removal cost ($/tCO2e). The static policy scenario comes first and the
// others carry their cost delta against it. Negative baselines or costs are
// rejected before any scenario is computed.
func Impact(reductions models.ReductionScenarios, baselineEmissions, removalCost float64) ([]models.ScenarioImpact, error) {
	scenarios := []struct {
		name        string
		residualPct float64
	}{
		{ScenarioStatic, models.StaticResidualPct},
		{ScenarioConservative, ResidualFromReduction(reductions.Conservative)},
		{ScenarioAmbitious, ResidualFromReduction(reductions.Ambitious)},
		{ScenarioBreakthrough, ResidualFromReduction(reductions.Breakthrough)},
	}

	impacts := make([]models.ScenarioImpact, 0, len(scenarios))
	staticCost := 0.0

	for i, sc := range scenarios {
		removals, err := RemovalsRequired(baselineEmissions, sc.residualPct)
		if err != nil {
			return nil, err
		}
		annualCost, err := Cost(removals, removalCost)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			staticCost = annualCost
		}

		impacts = append(impacts, models.ScenarioImpact{
			Scenario:        sc.name,
			ResidualPct:     sc.residualPct,
			RemovalsNeeded:  removals,
			AnnualCost:      annualCost,
			CostDeltaStatic: annualCost - staticCost,
		})
	}

	return impacts, nil
}

// Compare contrasts each profile's scenario residuals with the static
// threshold, in the order the profiles are given. An industry is flagged
// urgent when Scope 3 dominates (>80%) and its conservative residual exceeds
// the static allowance.
func Compare(profiles []*models.IndustryProfile) []models.IndustryComparison {
	comparisons := make([]models.IndustryComparison, 0, len(profiles))

	for _, p := range profiles {
		conservative := ResidualFromReduction(p.Reductions.Conservative)
		gap := Gap(conservative, models.StaticResidualPct)

		comparisons = append(comparisons, models.IndustryComparison{
			Industry:             p.Name,
			Scope3Percentage:     p.Scope3Percentage,
			ConservativeResidual: conservative,
			AmbitiousResidual:    ResidualFromReduction(p.Reductions.Ambitious),
			BreakthroughResidual: ResidualFromReduction(p.Reductions.Breakthrough),
			StaticResidual:       models.StaticResidualPct,
			GuidanceGap:          gap,
			Urgent:               p.Scope3Percentage > 80 && gap > 0,
		})
	}

	return comparisons
}

// InterventionSummaries flattens a profile's interventions to range
// midpoints for potential-vs-timeline plotting.
func InterventionSummaries(p *models.IndustryProfile) []models.InterventionSummary {
	summaries := make([]models.InterventionSummary, 0, len(p.Interventions))
	for _, iv := range p.Interventions {
		summaries = append(summaries, models.InterventionSummary{
			Name:            iv.Name,
			PotentialMidPct: iv.Potential.Midpoint(),
			TimelineMidYrs:  iv.Timeline.Midpoint(),
			Scalability:     iv.Scalability,
		})
	}
	return summaries
}
