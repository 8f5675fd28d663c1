package catalog

import "emissions-platform/internal/models"

// defaultProfiles returns the built-in reference table for the five Scope
// 3-heavy industries. Reduction tiers, Scope 3 shares and interventions come
// from CDP disclosure analysis; floors, ceilings and costs are illustrative
// literature-derived values, not measured thresholds.
func defaultProfiles() []*models.IndustryProfile {
	return []*models.IndustryProfile{
		{
			Name:             "Food, Beverage & Tobacco",
			Scope3Percentage: 67,
			CDPSampleSize:    162,
			Reductions: models.ReductionScenarios{
				Conservative: 75,
				Ambitious:    85,
				Breakthrough: 88,
			},
			BiologicalFloorPct: 12,
			TechCeilingPct:     88,
			CostPerTon:         150,
			GrowthRateBounds:   models.Range{Min: 0.5, Max: 4},
			Interventions: []models.Intervention{
				{Name: "Regenerative agriculture", Potential: models.Range{Min: 30, Max: 50}, Timeline: models.Range{Min: 5, Max: 10}, Scalability: models.ScalabilityHigh},
				{Name: "Alternative proteins", Potential: models.Range{Min: 60, Max: 80}, Timeline: models.Range{Min: 10, Max: 15}, Scalability: models.ScalabilityMedium},
				{Name: "Precision fermentation", Potential: models.Range{Min: 70, Max: 90}, Timeline: models.Range{Min: 15, Max: 25}, Scalability: models.ScalabilityLow},
				{Name: "Packaging optimization", Potential: models.Range{Min: 40, Max: 60}, Timeline: models.Range{Min: 2, Max: 5}, Scalability: models.ScalabilityHigh},
			},
			Scope3Categories: []string{
				"C1: Agricultural inputs (40%)",
				"C1: Packaging (20%)",
				"C4+C9: Transport (15%)",
				"C2: Processing (15%)",
				"C13: Retail (10%)",
			},
			ResidualDrivers: []string{
				"Biological methane limits",
				"Seasonal agricultural cycles",
				"Land use constraints",
				"Global supply chain logistics",
			},
			MainChallenge: "Farm-level methane emissions have biological floors that exceed the flat threshold assumption",
		},
		{
			Name:             "Capital Goods",
			Scope3Percentage: 90,
			CDPSampleSize:    166,
			Reductions: models.ReductionScenarios{
				Conservative: 92,
				Ambitious:    95,
				Breakthrough: 97,
			},
			BiologicalFloorPct: 3,
			TechCeilingPct:     97,
			CostPerTon:         90,
			GrowthRateBounds:   models.Range{Min: 1, Max: 6},
			Interventions: []models.Intervention{
				{Name: "Equipment efficiency", Potential: models.Range{Min: 20, Max: 40}, Timeline: models.Range{Min: 2, Max: 5}, Scalability: models.ScalabilityHigh},
				{Name: "Smart controls/IoT", Potential: models.Range{Min: 15, Max: 30}, Timeline: models.Range{Min: 3, Max: 7}, Scalability: models.ScalabilityHigh},
				{Name: "Electrification-ready design", Potential: models.Range{Min: 50, Max: 80}, Timeline: models.Range{Min: 5, Max: 15}, Scalability: models.ScalabilityMedium},
				{Name: "Circular design", Potential: models.Range{Min: 30, Max: 50}, Timeline: models.Range{Min: 10, Max: 20}, Scalability: models.ScalabilityMedium},
			},
			Scope3Categories: []string{
				"C11: Equipment use-phase (91%)",
				"C1: Manufacturing (6%)",
				"C2: Facilities (3%)",
			},
			ResidualDrivers: []string{
				"Heavy industrial process heat requirements",
				"Long equipment lifespans",
				"Customer behavior variability",
				"End-use sector constraints",
			},
			MainChallenge: "Cannot control decades of customer equipment use across multiple end-use sectors",
		},
		{
			Name:             "Consumer Goods",
			Scope3Percentage: 85,
			CDPSampleSize:    120,
			Reductions: models.ReductionScenarios{
				Conservative: 78,
				Ambitious:    82,
				Breakthrough: 85,
			},
			BiologicalFloorPct: 15,
			TechCeilingPct:     85,
			CostPerTon:         110,
			GrowthRateBounds:   models.Range{Min: 1, Max: 5},
			Interventions: []models.Intervention{
				{Name: "Sustainable packaging", Potential: models.Range{Min: 40, Max: 60}, Timeline: models.Range{Min: 3, Max: 8}, Scalability: models.ScalabilityHigh},
				{Name: "Circular business models", Potential: models.Range{Min: 50, Max: 70}, Timeline: models.Range{Min: 5, Max: 15}, Scalability: models.ScalabilityMedium},
				{Name: "Alternative materials", Potential: models.Range{Min: 30, Max: 80}, Timeline: models.Range{Min: 10, Max: 20}, Scalability: models.ScalabilityVariable},
				{Name: "Consumer education", Potential: models.Range{Min: 20, Max: 40}, Timeline: models.Range{Min: 5, Max: 10}, Scalability: models.ScalabilityMedium},
			},
			Scope3Categories: []string{
				"C1: Raw materials (45%)",
				"C1: Packaging (25%)",
				"C11: Consumer use (15%)",
				"C4+C9: Transport (10%)",
				"C12: End-of-life (5%)",
			},
			ResidualDrivers: []string{
				"Food safety packaging requirements",
				"Consumer behavior patterns",
				"Material availability constraints",
				"Regional waste infrastructure",
			},
			MainChallenge: "Depends on consumer behavior and global supply chain transformation",
		},
		{
			Name:             "Financial Services",
			Scope3Percentage: 99.98,
			CDPSampleSize:    377,
			Reductions: models.ReductionScenarios{
				Conservative: 70,
				Ambitious:    80,
				Breakthrough: 85,
			},
			BiologicalFloorPct: 15,
			TechCeilingPct:     85,
			CostPerTon:         45,
			GrowthRateBounds:   models.Range{Min: 2, Max: 8},
			Interventions: []models.Intervention{
				{Name: "Portfolio decarbonization", Potential: models.Range{Min: 40, Max: 70}, Timeline: models.Range{Min: 5, Max: 15}, Scalability: models.ScalabilityHigh},
				{Name: "Green finance products", Potential: models.Range{Min: 20, Max: 50}, Timeline: models.Range{Min: 2, Max: 8}, Scalability: models.ScalabilityHigh},
				{Name: "Engagement programs", Potential: models.Range{Min: 30, Max: 60}, Timeline: models.Range{Min: 3, Max: 10}, Scalability: models.ScalabilityMedium},
				{Name: "Sector-specific strategies", Potential: models.Range{Min: 50, Max: 80}, Timeline: models.Range{Min: 10, Max: 25}, Scalability: models.ScalabilityMedium},
			},
			Scope3Categories: []string{
				"C15: Financed emissions (99%)",
				"C13: Real estate (0.8%)",
				"Other (0.2%)",
			},
			ResidualDrivers: []string{
				"Sectoral portfolio composition",
				"Client decarbonization rates",
				"Regulatory constraints",
				"Market transformation speeds",
			},
			MainChallenge: "Residual emissions depend entirely on portfolio company sector mix and their maximum potentials",
		},
		{
			Name:             "Retail",
			Scope3Percentage: 95,
			CDPSampleSize:    80,
			Reductions: models.ReductionScenarios{
				Conservative: 80,
				Ambitious:    85,
				Breakthrough: 88,
			},
			BiologicalFloorPct: 12,
			TechCeilingPct:     88,
			CostPerTon:         75,
			GrowthRateBounds:   models.Range{Min: 1, Max: 5},
			Interventions: []models.Intervention{
				{Name: "Supplier engagement", Potential: models.Range{Min: 40, Max: 60}, Timeline: models.Range{Min: 3, Max: 10}, Scalability: models.ScalabilityHigh},
				{Name: "Private label optimization", Potential: models.Range{Min: 50, Max: 70}, Timeline: models.Range{Min: 2, Max: 7}, Scalability: models.ScalabilityHigh},
				{Name: "Customer education", Potential: models.Range{Min: 20, Max: 40}, Timeline: models.Range{Min: 5, Max: 15}, Scalability: models.ScalabilityMedium},
				{Name: "Circular retail models", Potential: models.Range{Min: 30, Max: 50}, Timeline: models.Range{Min: 10, Max: 20}, Scalability: models.ScalabilityLow},
			},
			Scope3Categories: []string{
				"C1: Purchased goods (70%)",
				"C11: Customer use (15%)",
				"C4+C9: Transport (10%)",
				"C13: Leased stores (3%)",
				"Other (2%)",
			},
			ResidualDrivers: []string{
				"Supplier industry mix",
				"Customer demand patterns",
				"Product category constraints",
				"Geographic market differences",
			},
			MainChallenge: "Success depends on supplier decarbonization and customer behavior change",
		},
	}
}
