package models

import (
	"errors"
	"testing"
)

func validProfile() *IndustryProfile {
	return &IndustryProfile{
		Name:               "Test Industry",
		Scope3Percentage:   85,
		CDPSampleSize:      120,
		Reductions:         ReductionScenarios{Conservative: 75, Ambitious: 85, Breakthrough: 88},
		BiologicalFloorPct: 12,
		TechCeilingPct:     88,
		CostPerTon:         150,
		GrowthRateBounds:   Range{Min: 0.5, Max: 4},
		Interventions: []Intervention{
			{Name: "Lever", Potential: Range{Min: 30, Max: 50}, Timeline: Range{Min: 5, Max: 10}, Scalability: ScalabilityHigh},
		},
	}
}

func TestIndustryProfile_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*IndustryProfile)
		wantErr bool
	}{
		{
			name:    "valid profile",
			mutate:  func(*IndustryProfile) {},
			wantErr: false,
		},
		{
			name:    "empty name",
			mutate:  func(p *IndustryProfile) { p.Name = "" },
			wantErr: true,
		},
		{
			name:    "scope 3 above 100",
			mutate:  func(p *IndustryProfile) { p.Scope3Percentage = 101 },
			wantErr: true,
		},
		{
			name:    "ambitious below conservative",
			mutate:  func(p *IndustryProfile) { p.Reductions.Ambitious = 60 },
			wantErr: true,
		},
		{
			name:    "breakthrough below ambitious",
			mutate:  func(p *IndustryProfile) { p.Reductions.Breakthrough = 80 },
			wantErr: true,
		},
		{
			name:    "breakthrough above 100",
			mutate:  func(p *IndustryProfile) { p.Reductions.Breakthrough = 101 },
			wantErr: true,
		},
		{
			name:    "negative biological floor",
			mutate:  func(p *IndustryProfile) { p.BiologicalFloorPct = -1 },
			wantErr: true,
		},
		{
			name:    "tech ceiling above 100",
			mutate:  func(p *IndustryProfile) { p.TechCeilingPct = 120 },
			wantErr: true,
		},
		{
			name:    "negative cost per ton",
			mutate:  func(p *IndustryProfile) { p.CostPerTon = -10 },
			wantErr: true,
		},
		{
			name:    "inverted growth bounds",
			mutate:  func(p *IndustryProfile) { p.GrowthRateBounds = Range{Min: 5, Max: 1} },
			wantErr: true,
		},
		{
			name:    "unknown scalability",
			mutate:  func(p *IndustryProfile) { p.Interventions[0].Scalability = "Enormous" },
			wantErr: true,
		},
		{
			name:    "unnamed intervention",
			mutate:  func(p *IndustryProfile) { p.Interventions[0].Name = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(p)

			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				var invalid *InvalidParameterError
				if !errors.As(err, &invalid) {
					t.Errorf("error = %T, want *InvalidParameterError", err)
				}
			}
		})
	}
}

func TestScenarioParameters_Validate(t *testing.T) {
	profile := validProfile()

	tests := []struct {
		name    string
		params  ScenarioParameters
		wantErr bool
	}{
		{
			name: "valid",
			params: ScenarioParameters{
				GrowthRate:          2,
				DecarbEfficiency:    50,
				ConstraintIntensity: 1.5,
				Reductions:          ReductionScenarios{Conservative: 75, Ambitious: 85, Breakthrough: 88},
			},
			wantErr: false,
		},
		{
			name: "growth below industry bounds",
			params: ScenarioParameters{
				GrowthRate:          0.1,
				DecarbEfficiency:    50,
				ConstraintIntensity: 1,
				Reductions:          ReductionScenarios{Conservative: 75, Ambitious: 85, Breakthrough: 88},
			},
			wantErr: true,
		},
		{
			name: "reduction above 98 cap",
			params: ScenarioParameters{
				GrowthRate:          2,
				DecarbEfficiency:    50,
				ConstraintIntensity: 1,
				Reductions:          ReductionScenarios{Conservative: 75, Ambitious: 85, Breakthrough: 99},
			},
			wantErr: true,
		},
		{
			name: "negative decarb efficiency",
			params: ScenarioParameters{
				GrowthRate:          2,
				DecarbEfficiency:    -5,
				ConstraintIntensity: 1,
				Reductions:          ReductionScenarios{Conservative: 75, Ambitious: 85, Breakthrough: 88},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate(profile)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDefaultParameters_PassValidation(t *testing.T) {
	profile := validProfile()
	params := profile.DefaultParameters()

	if err := params.Validate(profile); err != nil {
		t.Errorf("DefaultParameters() should validate against the profile: %v", err)
	}
	if params.GrowthRate != profile.GrowthRateBounds.Midpoint() {
		t.Errorf("GrowthRate = %v, want bounds midpoint %v", params.GrowthRate, profile.GrowthRateBounds.Midpoint())
	}
}

func TestProjectionPoint_NetEmissions(t *testing.T) {
	p := ProjectionPoint{UnabatedGrowth: 120, DynamicResidual: 110}
	if got := p.NetEmissions(); got != 230 {
		t.Errorf("NetEmissions() = %v, want 230", got)
	}

	// Negative growth never subtracts from the net figure.
	p = ProjectionPoint{UnabatedGrowth: -50, DynamicResidual: 110}
	if got := p.NetEmissions(); got != 110 {
		t.Errorf("NetEmissions() = %v, want 110", got)
	}
}

func TestRange_Midpoint(t *testing.T) {
	r := Range{Min: 30, Max: 50}
	if got := r.Midpoint(); got != 40 {
		t.Errorf("Midpoint() = %v, want 40", got)
	}
}
