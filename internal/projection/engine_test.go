package projection

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"emissions-platform/internal/models"
)

func testProfile() *models.IndustryProfile {
	return &models.IndustryProfile{
		Name:             "Test Industry",
		Scope3Percentage: 85,
		CDPSampleSize:    100,
		Reductions: models.ReductionScenarios{
			Conservative: 75,
			Ambitious:    85,
			Breakthrough: 88,
		},
		BiologicalFloorPct: 3,
		TechCeilingPct:     88,
		CostPerTon:         400,
		GrowthRateBounds:   models.Range{Min: 0, Max: 8},
	}
}

func testParams() models.ScenarioParameters {
	return models.ScenarioParameters{
		GrowthRate:          4,
		DecarbEfficiency:    50,
		ConstraintIntensity: 1.5,
		Reductions: models.ReductionScenarios{
			Conservative: 75,
			Ambitious:    85,
			Breakthrough: 88,
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestProject_FirstStepHasNoGrowth(t *testing.T) {
	points, err := Project(testProfile(), testParams(), DefaultHorizon())
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	if len(points) != 5 {
		t.Fatalf("len(points) = %d, want 5", len(points))
	}

	first := points[0]
	if first.Year != 2030 {
		t.Errorf("first.Year = %d, want 2030", first.Year)
	}
	if first.UnabatedGrowth != 0 {
		t.Errorf("first.UnabatedGrowth = %v, want 0", first.UnabatedGrowth)
	}
	if first.GenuineDecarbonization != 0 {
		t.Errorf("first.GenuineDecarbonization = %v, want 0", first.GenuineDecarbonization)
	}
}

func TestProject_GrowthDecomposition(t *testing.T) {
	params := testParams()
	points, err := Project(testProfile(), params, DefaultHorizon())
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	for i, p := range points {
		factor := math.Pow(1.04, float64(5*i))
		growth := BaselineUnits * (factor - 1)

		if !almostEqual(p.UnabatedGrowth, growth*0.5) {
			t.Errorf("point %d: UnabatedGrowth = %v, want %v", i, p.UnabatedGrowth, growth*0.5)
		}
		if !almostEqual(p.GenuineDecarbonization, -growth*0.5) {
			t.Errorf("point %d: GenuineDecarbonization = %v, want %v", i, p.GenuineDecarbonization, -growth*0.5)
		}
		if p.GenuineDecarbonization > 0 {
			t.Errorf("point %d: GenuineDecarbonization must never be positive", i)
		}
	}
}

func TestProject_ConstraintRamp(t *testing.T) {
	points, err := Project(testProfile(), testParams(), DefaultHorizon())
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	// Floor is 30 units (3% of baseline), far below the ramped allowance, so
	// the residual follows the linear ramp from 110 to 110*1.5.
	wantRamp := []float64{110, 123.75, 137.5, 151.25, 165}
	for i, p := range points {
		if !almostEqual(p.DynamicResidual, wantRamp[i]) {
			t.Errorf("point %d: DynamicResidual = %v, want %v", i, p.DynamicResidual, wantRamp[i])
		}
	}
}

func TestProject_RemovalsOffsetResidual(t *testing.T) {
	points, err := Project(testProfile(), testParams(), DefaultHorizon())
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	for i, p := range points {
		if p.CarbonRemovals != p.DynamicResidual {
			t.Errorf("point %d: CarbonRemovals = %v, want DynamicResidual %v", i, p.CarbonRemovals, p.DynamicResidual)
		}
	}
}

func TestProject_FloorClampHolds(t *testing.T) {
	profile := testProfile()
	profile.BiologicalFloorPct = 25
	floor := BaselineUnits * 0.25

	tests := []struct {
		name      string
		intensity float64
	}{
		{"no tightening", 1.0},
		{"moderate tightening", 1.5},
		{"strong tightening", 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := testParams()
			params.ConstraintIntensity = tt.intensity

			points, err := Project(profile, params, DefaultHorizon())
			if err != nil {
				t.Fatalf("Project() error = %v", err)
			}

			for i, p := range points {
				if p.DynamicResidual < floor {
					t.Errorf("point %d: DynamicResidual = %v below floor %v", i, p.DynamicResidual, floor)
				}
			}
		})
	}
}

func TestProject_Benchmark(t *testing.T) {
	points, err := Project(testProfile(), testParams(), DefaultHorizon())
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	// 12% of baseline, growing 10% of itself per step.
	for i, p := range points {
		want := 120 * (1 + 0.1*float64(i))
		if !almostEqual(p.Benchmark, want) {
			t.Errorf("point %d: Benchmark = %v, want %v", i, p.Benchmark, want)
		}
	}
}

func TestProject_Deterministic(t *testing.T) {
	profile := testProfile()
	params := testParams()
	horizon := DefaultHorizon()

	first, err := Project(profile, params, horizon)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	second, err := Project(profile, params, horizon)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different series")
	}
}

func TestProject_YearsStrictlyIncreasing(t *testing.T) {
	points, err := Project(testProfile(), testParams(), []int{2030, 2040, 2045})
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	for i := 1; i < len(points); i++ {
		if points[i].Year <= points[i-1].Year {
			t.Errorf("years not strictly increasing at index %d", i)
		}
	}
}

func TestProject_InvalidInputs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.IndustryProfile, *models.ScenarioParameters)
		horizon []int
	}{
		{
			name: "ambitious below conservative",
			mutate: func(_ *models.IndustryProfile, params *models.ScenarioParameters) {
				params.Reductions.Conservative = 90
				params.Reductions.Ambitious = 80
			},
			horizon: DefaultHorizon(),
		},
		{
			name: "growth rate outside industry bounds",
			mutate: func(_ *models.IndustryProfile, params *models.ScenarioParameters) {
				params.GrowthRate = 50
			},
			horizon: DefaultHorizon(),
		},
		{
			name: "decarb efficiency above 100",
			mutate: func(_ *models.IndustryProfile, params *models.ScenarioParameters) {
				params.DecarbEfficiency = 101
			},
			horizon: DefaultHorizon(),
		},
		{
			name: "constraint intensity below 1",
			mutate: func(_ *models.IndustryProfile, params *models.ScenarioParameters) {
				params.ConstraintIntensity = 0.9
			},
			horizon: DefaultHorizon(),
		},
		{
			name: "reduction above user cap",
			mutate: func(_ *models.IndustryProfile, params *models.ScenarioParameters) {
				params.Reductions.Breakthrough = 99
			},
			horizon: DefaultHorizon(),
		},
		{
			name:    "empty horizon",
			mutate:  func(*models.IndustryProfile, *models.ScenarioParameters) {},
			horizon: nil,
		},
		{
			name:    "non-increasing horizon",
			mutate:  func(*models.IndustryProfile, *models.ScenarioParameters) {},
			horizon: []int{2030, 2030, 2035},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := testProfile()
			params := testParams()
			tt.mutate(profile, &params)

			points, err := Project(profile, params, tt.horizon)
			if err == nil {
				t.Fatal("Project() expected error, got nil")
			}

			var invalid *models.InvalidParameterError
			if !errors.As(err, &invalid) {
				t.Errorf("error = %T, want *models.InvalidParameterError", err)
			}
			if points != nil {
				t.Error("Project() must not produce partial output on invalid input")
			}
		})
	}
}

func TestProject_SinglePointHorizon(t *testing.T) {
	points, err := Project(testProfile(), testParams(), []int{2030})
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	if len(points) != 1 {
		t.Fatalf("len(points) = %d, want 1", len(points))
	}
	// No ramp with a single step: the residual equals the static allowance.
	if !almostEqual(points[0].DynamicResidual, 110) {
		t.Errorf("DynamicResidual = %v, want 110", points[0].DynamicResidual)
	}
}
