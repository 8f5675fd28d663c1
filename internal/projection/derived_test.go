package projection

import (
	"errors"
	"testing"

	"emissions-platform/internal/models"
)

func TestDerivedMetrics_ReferenceScenario(t *testing.T) {
	// Industry with a 25% floor: reduction of 75% leaves a 25% residual.
	residual := ResidualFromReduction(75)
	if residual != 25 {
		t.Fatalf("ResidualFromReduction(75) = %v, want 25", residual)
	}

	removals, err := RemovalsRequired(100000, residual)
	if err != nil {
		t.Fatalf("RemovalsRequired() error = %v", err)
	}
	if removals != 25000 {
		t.Errorf("RemovalsRequired(100000, 25) = %v, want 25000", removals)
	}

	cost, err := Cost(removals, 400)
	if err != nil {
		t.Fatalf("Cost() error = %v", err)
	}
	if cost != 10000000 {
		t.Errorf("Cost(25000, 400) = %v, want 10000000", cost)
	}
}

func TestGap(t *testing.T) {
	tests := []struct {
		name         string
		maxReduction float64
		want         float64
	}{
		{"floor above static allowance", 75, 14},
		{"floor at static allowance", 89, 0},
		{"floor below static allowance", 95, -6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gap(ResidualFromReduction(tt.maxReduction), models.StaticResidualPct)
			if got != tt.want {
				t.Errorf("Gap(ResidualFromReduction(%g), 11) = %v, want %v", tt.maxReduction, got, tt.want)
			}
		})
	}
}

func TestRemovalsRequired_RejectsNegativeBaseline(t *testing.T) {
	_, err := RemovalsRequired(-1, 25)
	var invalid *models.InvalidParameterError
	if !errors.As(err, &invalid) {
		t.Errorf("error = %T, want *models.InvalidParameterError", err)
	}
}

func TestCost_RejectsNegativeCostPerTon(t *testing.T) {
	_, err := Cost(25000, -400)
	var invalid *models.InvalidParameterError
	if !errors.As(err, &invalid) {
		t.Errorf("error = %T, want *models.InvalidParameterError", err)
	}
}
