package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"emissions-platform/internal/catalog"
	"emissions-platform/internal/config"
	"emissions-platform/internal/services"
	"emissions-platform/pkg/logging"
	"emissions-platform/pkg/metrics"
)

func main() {
	// Parse command-line flags
	baseline := flag.Float64("baseline", 100000, "Annual baseline emissions in tCO2e for impact sizing")
	removalCost := flag.Float64("removal-cost", 400, "Carbon removal cost in USD per tCO2e")
	industry := flag.String("industry", "", "Limit the impact section to a single industry (default: all)")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logLevel := logging.InfoLevel
	if cfg.Logging.Level == "debug" {
		logLevel = logging.DebugLevel
	}

	logger := logging.NewStructuredLogger("emissions-report", "1.0.0", logLevel)

	ctx := context.Background()
	logger.Info(ctx, "[REPORT_START] Generating cross-industry scenario report", logging.Fields{
		"version":      "1.0.0",
		"baseline":     *baseline,
		"removal_cost": *removalCost,
		"industry":     *industry,
	})

	// Initialize metrics collector
	metricsCollector := metrics.NewCollector("emissions_report")

	// The report always runs off the embedded catalog; no database needed.
	catalogService := services.NewCatalogService(catalog.New(), logger, metricsCollector)
	scenarioService := services.NewScenarioService(catalogService, logger, metricsCollector)

	// Cross-industry comparison
	comparisons := scenarioService.Compare(ctx)

	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("CROSS-INDUSTRY RESIDUAL EMISSIONS COMPARISON")
	fmt.Println(strings.Repeat("=", 80))
	fmt.Printf("%-28s %8s %8s %8s %8s %8s %7s\n",
		"Industry", "Scope3%", "Cons%", "Amb%", "Break%", "Gap", "Urgent")
	fmt.Println(strings.Repeat("-", 80))

	urgentCount := 0
	for _, c := range comparisons {
		urgentMarker := ""
		if c.Urgent {
			urgentMarker = "YES"
			urgentCount++
		}
		fmt.Printf("%-28s %8.1f %8.1f %8.1f %8.1f %+8.1f %7s\n",
			c.Industry,
			c.Scope3Percentage,
			c.ConservativeResidual,
			c.AmbitiousResidual,
			c.BreakthroughResidual,
			c.GuidanceGap,
			urgentMarker)
	}

	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("Static residual allowance: %.1f%% of baseline\n", comparisons[0].StaticResidual)
	fmt.Printf("Industries flagged urgent: %d of %d\n", urgentCount, len(comparisons))

	// Per-industry impact sizing
	industries := catalogService.ListIndustries(ctx)
	if *industry != "" {
		industries = []string{*industry}
	}

	for _, name := range industries {
		impacts, err := scenarioService.Impact(ctx, name, *baseline, *removalCost)
		if err != nil {
			logger.Error(ctx, "[REPORT_ERROR] Impact computation failed", logging.Fields{
				"industry": name,
			}, err)
			fmt.Fprintf(os.Stderr, "Impact computation failed for %q: %v\n", name, err)
			os.Exit(1)
		}

		fmt.Println("\n" + strings.Repeat("=", 80))
		fmt.Printf("IMPACT: %s (baseline %.0f tCO2e, removals at $%.0f/tCO2e)\n", name, *baseline, *removalCost)
		fmt.Println(strings.Repeat("=", 80))
		fmt.Printf("%-14s %10s %16s %16s %18s\n",
			"Scenario", "Residual%", "Removals tCO2e", "Annual Cost $", "Delta vs Static $")
		fmt.Println(strings.Repeat("-", 80))

		for _, impact := range impacts {
			fmt.Printf("%-14s %10.1f %16.0f %16.0f %+18.0f\n",
				impact.Scenario,
				impact.ResidualPct,
				impact.RemovalsNeeded,
				impact.AnnualCost,
				impact.CostDeltaStatic)
		}
	}

	logger.Info(ctx, "[REPORT_COMPLETE] Report generated", logging.Fields{
		"industries":     len(industries),
		"urgent_flagged": urgentCount,
	})
}
