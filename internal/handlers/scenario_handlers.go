package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"emissions-platform/internal/models"
	"emissions-platform/internal/services"
	"emissions-platform/pkg/logging"
	"emissions-platform/pkg/metrics"
)

// ScenarioHandler handles the scenario API endpoints
type ScenarioHandler struct {
	catalogService  *services.CatalogService
	scenarioService *services.ScenarioService
	logger          *logging.StructuredLogger
	metrics         *metrics.Collector
}

// NewScenarioHandler creates a new scenario handler
func NewScenarioHandler(
	catalogService *services.CatalogService,
	scenarioService *services.ScenarioService,
	logger *logging.StructuredLogger,
	metricsCollector *metrics.Collector,
) *ScenarioHandler {
	return &ScenarioHandler{
		catalogService:  catalogService,
		scenarioService: scenarioService,
		logger:          logger,
		metrics:         metricsCollector,
	}
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// IndustrySummary is the list-view representation of a catalog entry
type IndustrySummary struct {
	Name             string                    `json:"name"`
	Scope3Percentage float64                   `json:"scope3_percentage"`
	CDPSampleSize    int                       `json:"cdp_sample_size"`
	Reductions       models.ReductionScenarios `json:"reduction_scenarios"`
	MainChallenge    string                    `json:"main_challenge"`
}

// SeriesResponse wraps a computed series with its inputs echoed back
type SeriesResponse struct {
	Industry   string      `json:"industry"`
	Parameters interface{} `json:"parameters,omitempty"`
	Data       interface{} `json:"data"`
	Count      int         `json:"count"`
}

// ListIndustries handles GET /api/industries
func (h *ScenarioHandler) ListIndustries(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	defer func() {
		h.metrics.APIRequestDuration.WithLabelValues("/api/industries").Observe(time.Since(startTime).Seconds())
	}()

	profiles := h.catalogService.Profiles(ctx)
	summaries := make([]IndustrySummary, 0, len(profiles))
	for _, p := range profiles {
		summaries = append(summaries, IndustrySummary{
			Name:             p.Name,
			Scope3Percentage: p.Scope3Percentage,
			CDPSampleSize:    p.CDPSampleSize,
			Reductions:       p.Reductions,
			MainChallenge:    p.MainChallenge,
		})
	}

	h.metrics.RecordAPIRequest("/api/industries", "GET", "200")
	h.sendJSON(w, map[string]interface{}{
		"industries": summaries,
		"count":      len(summaries),
	}, http.StatusOK)
}

// GetIndustry handles GET /api/industries/{name}
func (h *ScenarioHandler) GetIndustry(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	defer func() {
		h.metrics.APIRequestDuration.WithLabelValues("/api/industries/{name}").Observe(time.Since(startTime).Seconds())
	}()

	name := mux.Vars(r)["name"]

	profile, err := h.catalogService.GetProfile(ctx, name)
	if err != nil {
		h.handleServiceError(w, r, "/api/industries/{name}", err)
		return
	}

	h.metrics.RecordAPIRequest("/api/industries/{name}", "GET", "200")
	h.sendJSON(w, map[string]interface{}{
		"profile":            profile,
		"default_parameters": profile.DefaultParameters(),
	}, http.StatusOK)
}

// GetProjection handles GET /api/industries/{name}/projection
func (h *ScenarioHandler) GetProjection(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	endpoint := "/api/industries/{name}/projection"

	defer func() {
		h.metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	name := mux.Vars(r)["name"]

	profile, err := h.catalogService.GetProfile(ctx, name)
	if err != nil {
		h.handleServiceError(w, r, endpoint, err)
		return
	}

	params := profile.DefaultParameters()
	if err := h.overrideParams(r, &params); err != nil {
		h.metrics.RecordAPIError("bad_request", endpoint)
		h.sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	horizon, err := parseHorizon(r.URL.Query().Get("horizon"))
	if err != nil {
		h.metrics.RecordAPIError("bad_request", endpoint)
		h.sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	points, err := h.scenarioService.ProjectScenario(ctx, name, params, horizon)
	if err != nil {
		h.handleServiceError(w, r, endpoint, err)
		return
	}

	h.metrics.RecordAPIRequest(endpoint, "GET", "200")
	h.sendJSON(w, SeriesResponse{
		Industry:   name,
		Parameters: params,
		Data:       points,
		Count:      len(points),
	}, http.StatusOK)
}

// GetTimeline handles GET /api/industries/{name}/timeline
func (h *ScenarioHandler) GetTimeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	endpoint := "/api/industries/{name}/timeline"

	defer func() {
		h.metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	name := mux.Vars(r)["name"]

	reductions, err := parseReductions(r)
	if err != nil {
		h.metrics.RecordAPIError("bad_request", endpoint)
		h.sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	points, err := h.scenarioService.Timeline(ctx, name, reductions)
	if err != nil {
		h.handleServiceError(w, r, endpoint, err)
		return
	}

	h.metrics.RecordAPIRequest(endpoint, "GET", "200")
	h.sendJSON(w, SeriesResponse{
		Industry: name,
		Data:     points,
		Count:    len(points),
	}, http.StatusOK)
}

// GetImpact handles GET /api/industries/{name}/impact
func (h *ScenarioHandler) GetImpact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	endpoint := "/api/industries/{name}/impact"

	defer func() {
		h.metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	name := mux.Vars(r)["name"]

	baseline, err := parseFloatParam(r, "baseline_emissions", 100000)
	if err != nil {
		h.metrics.RecordAPIError("bad_request", endpoint)
		h.sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	removalCost, err := parseFloatParam(r, "removal_cost", 400)
	if err != nil {
		h.metrics.RecordAPIError("bad_request", endpoint)
		h.sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	impacts, err := h.scenarioService.Impact(ctx, name, baseline, removalCost)
	if err != nil {
		h.handleServiceError(w, r, endpoint, err)
		return
	}

	h.metrics.RecordAPIRequest(endpoint, "GET", "200")
	h.sendJSON(w, SeriesResponse{
		Industry: name,
		Parameters: map[string]float64{
			"baseline_emissions": baseline,
			"removal_cost":       removalCost,
		},
		Data:  impacts,
		Count: len(impacts),
	}, http.StatusOK)
}

// GetInterventions handles GET /api/industries/{name}/interventions
func (h *ScenarioHandler) GetInterventions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()
	endpoint := "/api/industries/{name}/interventions"

	defer func() {
		h.metrics.APIRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	name := mux.Vars(r)["name"]

	summaries, err := h.scenarioService.Interventions(ctx, name)
	if err != nil {
		h.handleServiceError(w, r, endpoint, err)
		return
	}

	h.metrics.RecordAPIRequest(endpoint, "GET", "200")
	h.sendJSON(w, SeriesResponse{
		Industry: name,
		Data:     summaries,
		Count:    len(summaries),
	}, http.StatusOK)
}

// GetComparison handles GET /api/comparison
func (h *ScenarioHandler) GetComparison(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	startTime := time.Now()

	defer func() {
		h.metrics.APIRequestDuration.WithLabelValues("/api/comparison").Observe(time.Since(startTime).Seconds())
	}()

	comparisons := h.scenarioService.Compare(ctx)

	h.metrics.RecordAPIRequest("/api/comparison", "GET", "200")
	h.sendJSON(w, map[string]interface{}{
		"comparisons":         comparisons,
		"static_residual_pct": models.StaticResidualPct,
		"count":               len(comparisons),
	}, http.StatusOK)
}

// HealthCheck handles GET /health
func (h *ScenarioHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	status := map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	h.logger.Debug(ctx, "[HEALTH_CHECK] Health check requested", logging.Fields{})
	h.sendJSON(w, status, http.StatusOK)
}

// overrideParams applies query-string overrides onto the industry defaults.
func (h *ScenarioHandler) overrideParams(r *http.Request, params *models.ScenarioParameters) error {
	var err error

	if params.GrowthRate, err = parseFloatParam(r, "growth_rate", params.GrowthRate); err != nil {
		return err
	}
	if params.DecarbEfficiency, err = parseFloatParam(r, "decarb_efficiency", params.DecarbEfficiency); err != nil {
		return err
	}
	if params.ConstraintIntensity, err = parseFloatParam(r, "constraint_intensity", params.ConstraintIntensity); err != nil {
		return err
	}

	reductions, err := parseReductions(r)
	if err != nil {
		return err
	}
	if reductions != nil {
		params.Reductions = *reductions
	}

	return nil
}

// parseReductions reads the three reduction-tier overrides. Either all three
// are supplied or none; partial overrides would silently mix catalog tiers
// with user tiers.
func parseReductions(r *http.Request) (*models.ReductionScenarios, error) {
	q := r.URL.Query()
	raw := []string{q.Get("conservative"), q.Get("ambitious"), q.Get("breakthrough")}

	supplied := 0
	for _, v := range raw {
		if v != "" {
			supplied++
		}
	}
	if supplied == 0 {
		return nil, nil
	}
	if supplied != 3 {
		return nil, &models.InvalidParameterError{
			Field:   "reductions",
			Message: "conservative, ambitious and breakthrough must be supplied together",
		}
	}

	values := make([]float64, 3)
	names := []string{"conservative", "ambitious", "breakthrough"}
	for i, v := range raw {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, &models.InvalidParameterError{
				Field:   names[i],
				Value:   v,
				Message: "invalid " + names[i] + ", expected a number",
			}
		}
		values[i] = parsed
	}

	return &models.ReductionScenarios{
		Conservative: values[0],
		Ambitious:    values[1],
		Breakthrough: values[2],
	}, nil
}

// parseHorizon reads a comma-separated year list; empty means the default
// horizon.
func parseHorizon(raw string) ([]int, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	years := make([]int, 0, len(parts))
	for _, part := range parts {
		year, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, &models.InvalidParameterError{
				Field:   "horizon",
				Value:   part,
				Message: "invalid horizon, expected comma-separated years",
			}
		}
		years = append(years, year)
	}

	return years, nil
}

func parseFloatParam(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &models.InvalidParameterError{
			Field:   name,
			Value:   raw,
			Message: "invalid " + name + ", expected a number",
		}
	}
	return value, nil
}

// handleServiceError maps domain errors onto HTTP statuses.
func (h *ScenarioHandler) handleServiceError(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	ctx := r.Context()

	var notFound *models.NotFoundError
	if errors.As(err, &notFound) {
		h.metrics.RecordAPIError("not_found", endpoint)
		h.sendError(w, r, err.Error(), http.StatusNotFound)
		return
	}

	var invalid *models.InvalidParameterError
	if errors.As(err, &invalid) {
		h.metrics.RecordAPIError("invalid_parameter", endpoint)
		h.sendError(w, r, err.Error(), http.StatusBadRequest)
		return
	}

	h.logger.Error(ctx, "[API_INTERNAL_ERROR] Request failed", logging.Fields{
		"endpoint": endpoint,
	}, err)
	h.metrics.RecordAPIError("internal_error", endpoint)
	h.sendError(w, r, "internal error", http.StatusInternalServerError)
}

// sendJSON sends a JSON response
func (h *ScenarioHandler) sendJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// sendError sends an error response
func (h *ScenarioHandler) sendError(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	h.metrics.RecordAPIRequest(r.URL.Path, r.Method, strconv.Itoa(statusCode))

	response := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}

	h.sendJSON(w, response, statusCode)
}

// requestIDMiddleware stores the client-supplied request ID, if any, for the
// structured logger.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if requestID := r.Header.Get("X-Request-ID"); requestID != "" {
			ctx := context.WithValue(r.Context(), logging.RequestIDKey, requestID)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

// RegisterRoutes registers all scenario API routes
func (h *ScenarioHandler) RegisterRoutes(router *mux.Router) {
	router.Use(requestIDMiddleware)

	router.HandleFunc("/api/industries", h.ListIndustries).Methods("GET")
	router.HandleFunc("/api/industries/{name}", h.GetIndustry).Methods("GET")
	router.HandleFunc("/api/industries/{name}/projection", h.GetProjection).Methods("GET")
	router.HandleFunc("/api/industries/{name}/timeline", h.GetTimeline).Methods("GET")
	router.HandleFunc("/api/industries/{name}/impact", h.GetImpact).Methods("GET")
	router.HandleFunc("/api/industries/{name}/interventions", h.GetInterventions).Methods("GET")
	router.HandleFunc("/api/comparison", h.GetComparison).Methods("GET")
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")

	router.HandleFunc("/api/docs", SwaggerUI).Methods("GET")
	router.HandleFunc("/api/docs/openapi.json", OpenAPISpec).Methods("GET")
}
