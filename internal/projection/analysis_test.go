package projection

import (
	"testing"

	"emissions-platform/internal/models"
)

func TestTimeline_CoversHorizonForAllScenarios(t *testing.T) {
	points := Timeline(testProfile().Reductions)

	years := TimelineEndYear - TimelineStartYear + 1
	if len(points) != 4*years {
		t.Fatalf("len(points) = %d, want %d", len(points), 4*years)
	}

	if points[0].Year != TimelineStartYear {
		t.Errorf("first year = %d, want %d", points[0].Year, TimelineStartYear)
	}
	if points[len(points)-1].Year != TimelineEndYear {
		t.Errorf("last year = %d, want %d", points[len(points)-1].Year, TimelineEndYear)
	}

	for _, p := range points {
		if p.Scenario == ScenarioStatic && p.ResidualPct != models.StaticResidualPct {
			t.Errorf("static scenario at %d = %v, want %v", p.Year, p.ResidualPct, models.StaticResidualPct)
		}
	}
}

func TestImpact_StaticFirstWithDeltas(t *testing.T) {
	impacts, err := Impact(testProfile().Reductions, 100000, 400)
	if err != nil {
		t.Fatalf("Impact() error = %v", err)
	}

	if len(impacts) != 4 {
		t.Fatalf("len(impacts) = %d, want 4", len(impacts))
	}

	static := impacts[0]
	if static.Scenario != ScenarioStatic {
		t.Fatalf("first scenario = %q, want %q", static.Scenario, ScenarioStatic)
	}
	if static.RemovalsNeeded != 11000 {
		t.Errorf("static removals = %v, want 11000", static.RemovalsNeeded)
	}
	if static.AnnualCost != 4400000 {
		t.Errorf("static cost = %v, want 4400000", static.AnnualCost)
	}
	if static.CostDeltaStatic != 0 {
		t.Errorf("static delta = %v, want 0", static.CostDeltaStatic)
	}

	conservative := impacts[1]
	if conservative.RemovalsNeeded != 25000 {
		t.Errorf("conservative removals = %v, want 25000", conservative.RemovalsNeeded)
	}
	if conservative.CostDeltaStatic != 10000000-4400000 {
		t.Errorf("conservative delta = %v, want %v", conservative.CostDeltaStatic, 10000000-4400000)
	}
}

func TestImpact_RejectsNegativeInputs(t *testing.T) {
	if _, err := Impact(testProfile().Reductions, -1, 400); err == nil {
		t.Error("Impact() with negative baseline expected error")
	}
	if _, err := Impact(testProfile().Reductions, 100000, -1); err == nil {
		t.Error("Impact() with negative removal cost expected error")
	}
}

func TestCompare_FlagsUrgentIndustries(t *testing.T) {
	scope3Heavy := testProfile()
	scope3Heavy.Name = "Scope 3 Heavy"
	scope3Heavy.Scope3Percentage = 95
	scope3Heavy.Reductions.Conservative = 75 // residual 25, gap +14

	scope3Light := testProfile()
	scope3Light.Name = "Scope 3 Light"
	scope3Light.Scope3Percentage = 40

	negativeGap := testProfile()
	negativeGap.Name = "Below Allowance"
	negativeGap.Scope3Percentage = 95
	negativeGap.Reductions = models.ReductionScenarios{Conservative: 92, Ambitious: 95, Breakthrough: 97}

	comparisons := Compare([]*models.IndustryProfile{scope3Heavy, scope3Light, negativeGap})

	if len(comparisons) != 3 {
		t.Fatalf("len(comparisons) = %d, want 3", len(comparisons))
	}

	if !comparisons[0].Urgent {
		t.Error("scope 3 heavy industry with positive gap should be urgent")
	}
	if comparisons[0].GuidanceGap != 14 {
		t.Errorf("guidance gap = %v, want 14", comparisons[0].GuidanceGap)
	}
	if comparisons[1].Urgent {
		t.Error("scope 3 light industry should not be urgent")
	}
	if comparisons[2].Urgent {
		t.Error("industry with negative gap should not be urgent")
	}
	if comparisons[2].GuidanceGap != -3 {
		t.Errorf("negative gap = %v, want -3", comparisons[2].GuidanceGap)
	}
}

func TestInterventionSummaries_Midpoints(t *testing.T) {
	profile := testProfile()
	profile.Interventions = []models.Intervention{
		{
			Name:        "Regenerative agriculture",
			Potential:   models.Range{Min: 30, Max: 50},
			Timeline:    models.Range{Min: 5, Max: 10},
			Scalability: models.ScalabilityHigh,
		},
	}

	summaries := InterventionSummaries(profile)
	if len(summaries) != 1 {
		t.Fatalf("len(summaries) = %d, want 1", len(summaries))
	}

	s := summaries[0]
	if s.PotentialMidPct != 40 {
		t.Errorf("PotentialMidPct = %v, want 40", s.PotentialMidPct)
	}
	if s.TimelineMidYrs != 7.5 {
		t.Errorf("TimelineMidYrs = %v, want 7.5", s.TimelineMidYrs)
	}
	if s.Scalability != models.ScalabilityHigh {
		t.Errorf("Scalability = %v, want High", s.Scalability)
	}
}
