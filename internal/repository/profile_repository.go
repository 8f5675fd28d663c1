// Package repository provides the optional Postgres-backed store for the
// industry reference table. The store only ever holds the read-only catalog
// rows seeded by cmd/migrate; computed scenario series are never persisted.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx/types"

	"emissions-platform/internal/models"
	"emissions-platform/pkg/database"
	"emissions-platform/pkg/logging"
	"emissions-platform/pkg/metrics"
)

// ProfileRepository provides data access for industry reference profiles
type ProfileRepository interface {
	UpsertProfile(ctx context.Context, profile *models.IndustryProfile, position int) error
	GetProfile(ctx context.Context, name string) (*models.IndustryProfile, error)
	ListProfiles(ctx context.Context) ([]*models.IndustryProfile, error)
	Seed(ctx context.Context, profiles []*models.IndustryProfile) error
	HealthCheck(ctx context.Context) error
}

// profileRow is the flat database representation of an IndustryProfile.
// Slice-valued fields are stored as JSONB.
type profileRow struct {
	Name                     string         `db:"name"`
	Scope3Percentage         float64        `db:"scope3_percentage"`
	CDPSampleSize            int            `db:"cdp_sample_size"`
	ConservativeMaxReduction float64        `db:"conservative_max_reduction"`
	AmbitiousMaxReduction    float64        `db:"ambitious_max_reduction"`
	BreakthroughMaxReduction float64        `db:"breakthrough_max_reduction"`
	BiologicalFloorPct       float64        `db:"biological_floor_pct"`
	TechCeilingPct           float64        `db:"tech_ceiling_pct"`
	CostPerTon               float64        `db:"cost_per_ton"`
	GrowthRateMin            float64        `db:"growth_rate_min"`
	GrowthRateMax            float64        `db:"growth_rate_max"`
	Interventions            types.JSONText `db:"interventions"`
	Scope3Categories         types.JSONText `db:"scope3_categories"`
	ResidualDrivers          types.JSONText `db:"residual_drivers"`
	MainChallenge            string         `db:"main_challenge"`
	Position                 int            `db:"position"`
}

func rowFromProfile(p *models.IndustryProfile, position int) (*profileRow, error) {
	interventions, err := json.Marshal(p.Interventions)
	if err != nil {
		return nil, fmt.Errorf("failed to encode interventions: %w", err)
	}
	categories, err := json.Marshal(p.Scope3Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scope 3 categories: %w", err)
	}
	drivers, err := json.Marshal(p.ResidualDrivers)
	if err != nil {
		return nil, fmt.Errorf("failed to encode residual drivers: %w", err)
	}

	return &profileRow{
		Name:                     p.Name,
		Scope3Percentage:         p.Scope3Percentage,
		CDPSampleSize:            p.CDPSampleSize,
		ConservativeMaxReduction: p.Reductions.Conservative,
		AmbitiousMaxReduction:    p.Reductions.Ambitious,
		BreakthroughMaxReduction: p.Reductions.Breakthrough,
		BiologicalFloorPct:       p.BiologicalFloorPct,
		TechCeilingPct:           p.TechCeilingPct,
		CostPerTon:               p.CostPerTon,
		GrowthRateMin:            p.GrowthRateBounds.Min,
		GrowthRateMax:            p.GrowthRateBounds.Max,
		Interventions:            interventions,
		Scope3Categories:         categories,
		ResidualDrivers:          drivers,
		MainChallenge:            p.MainChallenge,
		Position:                 position,
	}, nil
}

func (r *profileRow) toProfile() (*models.IndustryProfile, error) {
	p := &models.IndustryProfile{
		Name:             r.Name,
		Scope3Percentage: r.Scope3Percentage,
		CDPSampleSize:    r.CDPSampleSize,
		Reductions: models.ReductionScenarios{
			Conservative: r.ConservativeMaxReduction,
			Ambitious:    r.AmbitiousMaxReduction,
			Breakthrough: r.BreakthroughMaxReduction,
		},
		BiologicalFloorPct: r.BiologicalFloorPct,
		TechCeilingPct:     r.TechCeilingPct,
		CostPerTon:         r.CostPerTon,
		GrowthRateBounds:   models.Range{Min: r.GrowthRateMin, Max: r.GrowthRateMax},
		MainChallenge:      r.MainChallenge,
	}

	if err := json.Unmarshal(r.Interventions, &p.Interventions); err != nil {
		return nil, fmt.Errorf("failed to decode interventions for %q: %w", r.Name, err)
	}
	if err := json.Unmarshal(r.Scope3Categories, &p.Scope3Categories); err != nil {
		return nil, fmt.Errorf("failed to decode scope 3 categories for %q: %w", r.Name, err)
	}
	if err := json.Unmarshal(r.ResidualDrivers, &p.ResidualDrivers); err != nil {
		return nil, fmt.Errorf("failed to decode residual drivers for %q: %w", r.Name, err)
	}

	return p, nil
}

// profileRepository implements ProfileRepository
type profileRepository struct {
	db      *database.PostgresDB
	logger  *logging.StructuredLogger
	metrics *metrics.Collector
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *database.PostgresDB, logger *logging.StructuredLogger, metricsCollector *metrics.Collector) ProfileRepository {
	return &profileRepository{
		db:      db,
		logger:  logger,
		metrics: metricsCollector,
	}
}

const profileColumns = `
	name, scope3_percentage, cdp_sample_size,
	conservative_max_reduction, ambitious_max_reduction, breakthrough_max_reduction,
	biological_floor_pct, tech_ceiling_pct, cost_per_ton,
	growth_rate_min, growth_rate_max,
	interventions, scope3_categories, residual_drivers,
	main_challenge, position
`

// UpsertProfile inserts or replaces a reference profile. The profile is
// validated before it touches the table; the store never holds rows the
// catalog would reject.
func (r *profileRepository) UpsertProfile(ctx context.Context, profile *models.IndustryProfile, position int) error {
	if err := profile.Validate(); err != nil {
		return err
	}

	row, err := rowFromProfile(profile, position)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO industry_profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (name) DO UPDATE SET
			scope3_percentage = EXCLUDED.scope3_percentage,
			cdp_sample_size = EXCLUDED.cdp_sample_size,
			conservative_max_reduction = EXCLUDED.conservative_max_reduction,
			ambitious_max_reduction = EXCLUDED.ambitious_max_reduction,
			breakthrough_max_reduction = EXCLUDED.breakthrough_max_reduction,
			biological_floor_pct = EXCLUDED.biological_floor_pct,
			tech_ceiling_pct = EXCLUDED.tech_ceiling_pct,
			cost_per_ton = EXCLUDED.cost_per_ton,
			growth_rate_min = EXCLUDED.growth_rate_min,
			growth_rate_max = EXCLUDED.growth_rate_max,
			interventions = EXCLUDED.interventions,
			scope3_categories = EXCLUDED.scope3_categories,
			residual_drivers = EXCLUDED.residual_drivers,
			main_challenge = EXCLUDED.main_challenge,
			position = EXCLUDED.position
	`

	_, err = r.db.ExecContext(ctx, "upsert_profile", query,
		row.Name,
		row.Scope3Percentage,
		row.CDPSampleSize,
		row.ConservativeMaxReduction,
		row.AmbitiousMaxReduction,
		row.BreakthroughMaxReduction,
		row.BiologicalFloorPct,
		row.TechCeilingPct,
		row.CostPerTon,
		row.GrowthRateMin,
		row.GrowthRateMax,
		row.Interventions,
		row.Scope3Categories,
		row.ResidualDrivers,
		row.MainChallenge,
		row.Position,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}

	r.logger.Debug(ctx, "[REPO_UPSERT_PROFILE] Profile stored", logging.Fields{
		"industry": profile.Name,
		"position": position,
	})

	return nil
}

// GetProfile retrieves a reference profile by industry name
func (r *profileRepository) GetProfile(ctx context.Context, name string) (*models.IndustryProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM industry_profiles WHERE name = $1`

	var row profileRow
	err := r.db.GetContext(ctx, "get_profile", &row, query, name)

	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{
			Resource: "industry_profile",
			ID:       name,
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return row.toProfile()
}

// ListProfiles retrieves all reference profiles in catalog order
func (r *profileRepository) ListProfiles(ctx context.Context) ([]*models.IndustryProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM industry_profiles ORDER BY position`

	var rows []profileRow
	if err := r.db.SelectContext(ctx, "list_profiles", &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*models.IndustryProfile, 0, len(rows))
	for i := range rows {
		p, err := rows[i].toProfile()
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}

// Seed writes the given profiles in order, replacing existing rows with the
// same name. Used by cmd/migrate to load the embedded reference table.
func (r *profileRepository) Seed(ctx context.Context, profiles []*models.IndustryProfile) error {
	for i, p := range profiles {
		if err := r.UpsertProfile(ctx, p, i); err != nil {
			return fmt.Errorf("failed to seed profile %q: %w", p.Name, err)
		}
	}

	r.logger.Info(ctx, "[REPO_SEED_COMPLETE] Reference profiles seeded", logging.Fields{
		"profiles": len(profiles),
	})

	return nil
}

// HealthCheck verifies the database connection
func (r *profileRepository) HealthCheck(ctx context.Context) error {
	return r.db.HealthCheck(ctx)
}
