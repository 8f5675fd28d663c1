package services

import (
	"context"
	"errors"

	"emissions-platform/internal/models"
	"emissions-platform/internal/projection"
	"emissions-platform/pkg/logging"
	"emissions-platform/pkg/metrics"
)

// Series kinds reported to metrics.
const (
	seriesDecomposition = "decomposition"
	seriesTimeline      = "timeline"
	seriesImpact        = "impact"
	seriesComparison    = "comparison"
)

// ScenarioService runs the projection engine for the API layer. Every call
// is an independent, full recomputation; the service holds no per-session
// state beyond the read-only catalog.
type ScenarioService struct {
	catalog *CatalogService
	logger  *logging.StructuredLogger
	metrics *metrics.Collector
}

// NewScenarioService creates a new scenario service
func NewScenarioService(catalogService *CatalogService, logger *logging.StructuredLogger, metricsCollector *metrics.Collector) *ScenarioService {
	return &ScenarioService{
		catalog: catalogService,
		logger:  logger,
		metrics: metricsCollector,
	}
}

// ProjectScenario computes the emissions decomposition series for an
// industry under the given parameters. A nil horizon selects the default
// 2030-2050 five-year sampling.
func (s *ScenarioService) ProjectScenario(ctx context.Context, industry string, params models.ScenarioParameters, horizon []int) ([]models.ProjectionPoint, error) {
	profile, err := s.catalog.GetProfile(ctx, industry)
	if err != nil {
		return nil, err
	}

	if horizon == nil {
		horizon = projection.DefaultHorizon()
	}

	timer := s.metrics.NewTimer(s.metrics.ProjectionDuration.WithLabelValues(seriesDecomposition))
	points, err := projection.Project(profile, params, horizon)
	timer.ObserveDuration()

	if err != nil {
		s.recordRejection(ctx, industry, err)
		return nil, err
	}

	s.metrics.RecordProjection(seriesDecomposition, industry, len(points))
	s.logger.Debug(ctx, "[SCENARIO_PROJECTED] Decomposition series computed", logging.Fields{
		"industry":             industry,
		"points":               len(points),
		"growth_rate":          params.GrowthRate,
		"decarb_efficiency":    params.DecarbEfficiency,
		"constraint_intensity": params.ConstraintIntensity,
	})

	return points, nil
}

// Timeline computes the 2025-2050 residual-percentage trajectories for an
// industry. Nil reductions fall back to the catalog tiers.
func (s *ScenarioService) Timeline(ctx context.Context, industry string, reductions *models.ReductionScenarios) ([]models.TimelinePoint, error) {
	profile, err := s.catalog.GetProfile(ctx, industry)
	if err != nil {
		return nil, err
	}

	tiers := profile.Reductions
	if reductions != nil {
		tiers = *reductions
	}

	timer := s.metrics.NewTimer(s.metrics.ProjectionDuration.WithLabelValues(seriesTimeline))
	points := projection.Timeline(tiers)
	timer.ObserveDuration()

	s.metrics.RecordProjection(seriesTimeline, industry, len(points))
	return points, nil
}

// Impact computes per-scenario removal volumes and costs for an industry
// and a company baseline.
func (s *ScenarioService) Impact(ctx context.Context, industry string, baselineEmissions, removalCost float64) ([]models.ScenarioImpact, error) {
	profile, err := s.catalog.GetProfile(ctx, industry)
	if err != nil {
		return nil, err
	}

	timer := s.metrics.NewTimer(s.metrics.ProjectionDuration.WithLabelValues(seriesImpact))
	impacts, err := projection.Impact(profile.Reductions, baselineEmissions, removalCost)
	timer.ObserveDuration()

	if err != nil {
		s.recordRejection(ctx, industry, err)
		return nil, err
	}

	s.metrics.RecordProjection(seriesImpact, industry, len(impacts))
	return impacts, nil
}

// Compare contrasts every catalog industry's scenario residuals with the
// static threshold.
func (s *ScenarioService) Compare(ctx context.Context) []models.IndustryComparison {
	timer := s.metrics.NewTimer(s.metrics.ProjectionDuration.WithLabelValues(seriesComparison))
	comparisons := projection.Compare(s.catalog.Profiles(ctx))
	timer.ObserveDuration()

	s.metrics.RecordProjection(seriesComparison, "all", len(comparisons))
	return comparisons
}

// Interventions returns the midpoint summaries of an industry's
// decarbonization levers.
func (s *ScenarioService) Interventions(ctx context.Context, industry string) ([]models.InterventionSummary, error) {
	profile, err := s.catalog.GetProfile(ctx, industry)
	if err != nil {
		return nil, err
	}
	return projection.InterventionSummaries(profile), nil
}

// recordRejection classifies and counts a rejected computation.
func (s *ScenarioService) recordRejection(ctx context.Context, industry string, err error) {
	errorType := "internal_error"

	var invalid *models.InvalidParameterError
	if errors.As(err, &invalid) {
		errorType = "invalid_parameter"
	}

	s.metrics.RecordProjectionError(errorType)
	s.logger.Warn(ctx, "[SCENARIO_REJECTED] Scenario computation rejected", logging.Fields{
		"industry":   industry,
		"error_type": errorType,
		"error":      err.Error(),
	})
}
