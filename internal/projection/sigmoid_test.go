package projection

import (
	"math"
	"testing"
)

func TestSigmoidResidual_NeverBelowFloor(t *testing.T) {
	for _, maxReduction := range []float64{75, 85, 88, 97} {
		floor := 100 - maxReduction
		for year := TimelineStartYear; year <= 2200; year++ {
			got := SigmoidResidual(year, maxReduction)
			if got < floor {
				t.Fatalf("SigmoidResidual(%d, %g) = %v, below floor %v", year, maxReduction, got, floor)
			}
			if got > residualCapPct {
				t.Fatalf("SigmoidResidual(%d, %g) = %v, above cap %v", year, maxReduction, got, residualCapPct)
			}
		}
	}
}

func TestSigmoidResidual_NonIncreasing(t *testing.T) {
	prev := math.MaxFloat64
	for year := TimelineStartYear; year <= TimelineEndYear; year++ {
		got := SigmoidResidual(year, 85)
		if got > prev {
			t.Fatalf("SigmoidResidual not non-increasing at year %d: %v > %v", year, got, prev)
		}
		prev = got
	}
}

func TestSigmoidResidual_ApproachesFloorAsymptotically(t *testing.T) {
	maxReduction := 85.0
	floor := 100 - maxReduction

	farFuture := SigmoidResidual(2500, maxReduction)
	if farFuture != floor {
		t.Errorf("far-future residual = %v, want clamped floor %v", farFuture, floor)
	}

	// Within the horizon the curve stays strictly above the floor.
	at2050 := SigmoidResidual(2050, maxReduction)
	if at2050 <= floor {
		t.Errorf("residual at 2050 = %v, want > %v", at2050, floor)
	}
}

func TestSigmoidResidual_ReferenceValues(t *testing.T) {
	tests := []struct {
		year         int
		maxReduction float64
		want         float64
	}{
		// At t = 5 the exponential term is exactly 1, so the curve sits at
		// the 25% cap regardless of the scenario floor.
		{2030, 75, 25},
		{2030, 88, 25},
		// Early years clamp to the cap.
		{2025, 85, 25},
		// base + (25-base)*exp(-0.3*(t-5)) for t = 15.
		{2040, 85, 15 + 10*math.Exp(-3)},
	}

	for _, tt := range tests {
		got := SigmoidResidual(tt.year, tt.maxReduction)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SigmoidResidual(%d, %g) = %v, want %v", tt.year, tt.maxReduction, got, tt.want)
		}
	}
}

func TestSigmoidResidual_Deterministic(t *testing.T) {
	for year := TimelineStartYear; year <= TimelineEndYear; year++ {
		a := SigmoidResidual(year, 88)
		b := SigmoidResidual(year, 88)
		if a != b {
			t.Fatalf("SigmoidResidual(%d, 88) not referentially transparent: %v != %v", year, a, b)
		}
	}
}

func TestSigmoidResidualAt_SteepnessShapesDecay(t *testing.T) {
	// A steeper curve reaches the floor sooner.
	gentle := SigmoidResidualAt(2040, 85, DefaultInflectionYear, 0.1)
	steep := SigmoidResidualAt(2040, 85, DefaultInflectionYear, 0.9)
	if steep >= gentle {
		t.Errorf("steep curve (%v) should sit below gentle curve (%v) at 2040", steep, gentle)
	}
}
