package models

import "fmt"

// Scalability classifies how readily a decarbonization intervention can be
// deployed across an industry.
type Scalability string

const (
	ScalabilityHigh     Scalability = "High"
	ScalabilityMedium   Scalability = "Medium"
	ScalabilityLow      Scalability = "Low"
	ScalabilityVariable Scalability = "Variable"
)

// Valid reports whether s is one of the known scalability classes.
func (s Scalability) Valid() bool {
	switch s {
	case ScalabilityHigh, ScalabilityMedium, ScalabilityLow, ScalabilityVariable:
		return true
	}
	return false
}

// Range is an inclusive numeric span [Min, Max].
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Midpoint returns the arithmetic middle of the range.
func (r Range) Midpoint() float64 {
	return (r.Min + r.Max) / 2.0
}

// Contains reports whether v lies inside the range, bounds included.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Intervention is a named decarbonization lever available to an industry.
// Potential is the achievable emission reduction in percent; Timeline is the
// deployment window in years.
type Intervention struct {
	Name        string      `json:"name"`
	Potential   Range       `json:"potential_pct"`
	Timeline    Range       `json:"timeline_years"`
	Scalability Scalability `json:"scalability"`
}

// ReductionScenarios holds the maximum-achievable-reduction percentages for
// the three scenario tiers. The tiers must be monotonically non-decreasing.
type ReductionScenarios struct {
	Conservative float64 `json:"conservative" db:"conservative_max_reduction"`
	Ambitious    float64 `json:"ambitious" db:"ambitious_max_reduction"`
	Breakthrough float64 `json:"breakthrough" db:"breakthrough_max_reduction"`
}

// validateOrdered checks tier ordering and the upper bound. Catalog profiles
// allow up to 100%; user-adjusted scenario parameters are capped at 98%.
func (r ReductionScenarios) validateOrdered(upper float64) error {
	levels := []struct {
		name  string
		value float64
	}{
		{"conservative", r.Conservative},
		{"ambitious", r.Ambitious},
		{"breakthrough", r.Breakthrough},
	}

	prev := 0.0
	for _, level := range levels {
		if level.value <= 0 || level.value > upper {
			return &InvalidParameterError{
				Field:   level.name,
				Value:   fmt.Sprintf("%g", level.value),
				Message: fmt.Sprintf("%s reduction must be in (0, %g]", level.name, upper),
			}
		}
		if level.value < prev {
			return &InvalidParameterError{
				Field:   level.name,
				Value:   fmt.Sprintf("%g", level.value),
				Message: "reduction tiers must satisfy conservative <= ambitious <= breakthrough",
			}
		}
		prev = level.value
	}

	return nil
}

// IndustryProfile is the static reference record for one Scope 3-heavy
// industry. Profiles are constructed once at startup and never mutated.
type IndustryProfile struct {
	Name             string             `json:"name" db:"name"`
	Scope3Percentage float64            `json:"scope3_percentage" db:"scope3_percentage"`
	CDPSampleSize    int                `json:"cdp_sample_size" db:"cdp_sample_size"`
	Reductions       ReductionScenarios `json:"reduction_scenarios"`

	// BiologicalFloorPct is the minimum residual percentage the industry can
	// physically reach; TechCeilingPct the maximum reduction technology allows.
	BiologicalFloorPct float64 `json:"biological_floor_pct" db:"biological_floor_pct"`
	TechCeilingPct     float64 `json:"tech_ceiling_pct" db:"tech_ceiling_pct"`

	// CostPerTon is the reference decarbonization investment cost in $/tCO2e.
	CostPerTon float64 `json:"cost_per_ton" db:"cost_per_ton"`

	// GrowthRateBounds limits the growth-rate slider for this industry,
	// in percent per year.
	GrowthRateBounds Range `json:"growth_rate_bounds"`

	Interventions    []Intervention `json:"interventions"`
	Scope3Categories []string       `json:"scope3_categories"`
	ResidualDrivers  []string       `json:"residual_drivers"`
	MainChallenge    string         `json:"main_challenge"`
}

// Validate checks the profile invariants: percentage fields within [0, 100],
// ordered reduction tiers, consistent growth-rate bounds, and well-formed
// interventions.
func (p *IndustryProfile) Validate() error {
	if p.Name == "" {
		return &InvalidParameterError{
			Field:   "name",
			Value:   "",
			Message: "industry name must not be empty",
		}
	}

	if p.Scope3Percentage < 0 || p.Scope3Percentage > 100 {
		return &InvalidParameterError{
			Field:   "scope3_percentage",
			Value:   fmt.Sprintf("%g", p.Scope3Percentage),
			Message: "scope 3 percentage must be in [0, 100]",
		}
	}

	if err := p.Reductions.validateOrdered(100); err != nil {
		return err
	}

	if p.BiologicalFloorPct < 0 || p.BiologicalFloorPct > 100 {
		return &InvalidParameterError{
			Field:   "biological_floor_pct",
			Value:   fmt.Sprintf("%g", p.BiologicalFloorPct),
			Message: "biological floor must be in [0, 100]",
		}
	}

	if p.TechCeilingPct < 0 || p.TechCeilingPct > 100 {
		return &InvalidParameterError{
			Field:   "tech_ceiling_pct",
			Value:   fmt.Sprintf("%g", p.TechCeilingPct),
			Message: "tech ceiling must be in [0, 100]",
		}
	}

	if p.CostPerTon < 0 {
		return &InvalidParameterError{
			Field:   "cost_per_ton",
			Value:   fmt.Sprintf("%g", p.CostPerTon),
			Message: "cost per ton must be nonnegative",
		}
	}

	if p.GrowthRateBounds.Min > p.GrowthRateBounds.Max {
		return &InvalidParameterError{
			Field:   "growth_rate_bounds",
			Value:   fmt.Sprintf("[%g, %g]", p.GrowthRateBounds.Min, p.GrowthRateBounds.Max),
			Message: "growth rate bounds must satisfy min <= max",
		}
	}

	for _, iv := range p.Interventions {
		if iv.Name == "" {
			return &InvalidParameterError{
				Field:   "interventions",
				Value:   "",
				Message: "intervention name must not be empty",
			}
		}
		if !iv.Scalability.Valid() {
			return &InvalidParameterError{
				Field:   "interventions",
				Value:   string(iv.Scalability),
				Message: fmt.Sprintf("unknown scalability class for intervention %q", iv.Name),
			}
		}
	}

	return nil
}

// DefaultParameters returns the scenario parameters implied by the profile's
// reference data: mid-range growth, the catalog reduction tiers, half
// decarbonization efficiency and no constraint tightening. Used to seed the
// controls before the first user adjustment.
func (p *IndustryProfile) DefaultParameters() ScenarioParameters {
	return ScenarioParameters{
		GrowthRate:          p.GrowthRateBounds.Midpoint(),
		DecarbEfficiency:    50,
		ConstraintIntensity: 1.0,
		Reductions:          p.Reductions,
	}
}
