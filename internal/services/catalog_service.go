package services

import (
	"context"

	"emissions-platform/internal/catalog"
	"emissions-platform/internal/models"
	"emissions-platform/pkg/logging"
	"emissions-platform/pkg/metrics"
)

// CatalogService exposes the immutable industry reference table
type CatalogService struct {
	catalog *catalog.Catalog
	logger  *logging.StructuredLogger
	metrics *metrics.Collector
}

// NewCatalogService creates a new catalog service
func NewCatalogService(c *catalog.Catalog, logger *logging.StructuredLogger, metricsCollector *metrics.Collector) *CatalogService {
	return &CatalogService{
		catalog: c,
		logger:  logger,
		metrics: metricsCollector,
	}
}

// ListIndustries returns the industry names in catalog order
func (s *CatalogService) ListIndustries(ctx context.Context) []string {
	return s.catalog.List()
}

// GetProfile returns the reference profile for the named industry
func (s *CatalogService) GetProfile(ctx context.Context, name string) (*models.IndustryProfile, error) {
	profile, err := s.catalog.Get(name)
	if err != nil {
		s.metrics.RecordCatalogLookup("miss")
		s.logger.Debug(ctx, "[CATALOG_MISS] Unknown industry requested", logging.Fields{
			"industry": name,
		})
		return nil, err
	}

	s.metrics.RecordCatalogLookup("hit")
	return profile, nil
}

// Profiles returns every profile in catalog order
func (s *CatalogService) Profiles(ctx context.Context) []*models.IndustryProfile {
	names := s.catalog.List()
	profiles := make([]*models.IndustryProfile, 0, len(names))
	for _, name := range names {
		// Names came from List; a miss here means the catalog is corrupt.
		p, err := s.catalog.Get(name)
		if err != nil {
			s.logger.Error(ctx, "[CATALOG_CORRUPT] Listed industry missing from catalog", logging.Fields{
				"industry": name,
			}, err)
			continue
		}
		profiles = append(profiles, p)
	}
	return profiles
}
