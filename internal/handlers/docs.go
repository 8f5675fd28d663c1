package handlers

import (
	"encoding/json"
	"net/http"
)

// OpenAPISpec returns the OpenAPI 3.0 specification for the Emissions Platform API
func OpenAPISpec(w http.ResponseWriter, r *http.Request) {
	industryParam := map[string]interface{}{
		"name":        "name",
		"in":          "path",
		"description": "Industry name as returned by /api/industries",
		"required":    true,
		"schema":      map[string]string{"type": "string"},
	}

	reductionParams := []map[string]interface{}{
		{
			"name":        "conservative",
			"in":          "query",
			"description": "Conservative maximum decarbonization (%), supplied together with ambitious and breakthrough",
			"required":    false,
			"schema":      map[string]string{"type": "number"},
		},
		{
			"name":        "ambitious",
			"in":          "query",
			"description": "Ambitious maximum decarbonization (%)",
			"required":    false,
			"schema":      map[string]string{"type": "number"},
		},
		{
			"name":        "breakthrough",
			"in":          "query",
			"description": "Breakthrough maximum decarbonization (%), capped at 98",
			"required":    false,
			"schema":      map[string]string{"type": "number"},
		},
	}

	spec := map[string]interface{}{
		"openapi": "3.0.0",
		"info": map[string]interface{}{
			"title":       "Emissions Platform API",
			"description": "Industry-specific residual emissions scenario engine: projection, timeline, impact and comparison series over a static industry catalog",
			"version":     "1.0.0",
			"contact": map[string]string{
				"name": "Emissions Platform Team",
			},
		},
		"servers": []map[string]string{
			{"url": "http://localhost:8080", "description": "Local development server"},
		},
		"paths": map[string]interface{}{
			"/api/industries": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "List industries",
					"description": "Returns the catalog industries in insertion order with summary reference data",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{
							"description": "Industry summaries",
						},
					},
				},
			},
			"/api/industries/{name}": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Get industry profile",
					"description": "Returns the full reference profile and the default scenario parameters",
					"parameters":  []map[string]interface{}{industryParam},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Industry profile"},
						"404": map[string]interface{}{"description": "Unknown industry"},
					},
				},
			},
			"/api/industries/{name}/projection": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Compute emissions decomposition",
					"description": "Deterministic year-by-year decomposition: unabated growth, genuine decarbonization, dynamic residual, removals and benchmark",
					"parameters": append([]map[string]interface{}{
						industryParam,
						{
							"name":        "growth_rate",
							"in":          "query",
							"description": "Annual emissions growth (%/year), within the industry's bounds",
							"required":    false,
							"schema":      map[string]string{"type": "number"},
						},
						{
							"name":        "decarb_efficiency",
							"in":          "query",
							"description": "Share of growth-driven emissions genuinely abated (%, 0-100)",
							"required":    false,
							"schema":      map[string]string{"type": "number"},
						},
						{
							"name":        "constraint_intensity",
							"in":          "query",
							"description": "Residual-allowance tightening multiplier (>= 1.0) reached at the final horizon step",
							"required":    false,
							"schema":      map[string]string{"type": "number"},
						},
						{
							"name":        "horizon",
							"in":          "query",
							"description": "Comma-separated, strictly increasing query years; defaults to 2030,2035,2040,2045,2050",
							"required":    false,
							"schema":      map[string]string{"type": "string"},
						},
					}, reductionParams...),
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Projection series"},
						"400": map[string]interface{}{"description": "Parameter outside its documented bounds"},
						"404": map[string]interface{}{"description": "Unknown industry"},
					},
				},
			},
			"/api/industries/{name}/timeline": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Compute residual-percentage timeline",
					"description": "Smoothed 2025-2050 residual trajectories per scenario tier plus the flat static line",
					"parameters":  append([]map[string]interface{}{industryParam}, reductionParams...),
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Timeline series"},
						"400": map[string]interface{}{"description": "Parameter outside its documented bounds"},
						"404": map[string]interface{}{"description": "Unknown industry"},
					},
				},
			},
			"/api/industries/{name}/impact": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Compute removal and cost impact",
					"description": "Per-scenario carbon removal volumes and annual costs for a company baseline, with deltas against the static policy",
					"parameters": []map[string]interface{}{
						industryParam,
						{
							"name":        "baseline_emissions",
							"in":          "query",
							"description": "Company baseline emissions (tCO2e/year), nonnegative; defaults to 100000",
							"required":    false,
							"schema":      map[string]string{"type": "number"},
						},
						{
							"name":        "removal_cost",
							"in":          "query",
							"description": "Carbon removal cost ($/tCO2e), nonnegative; defaults to 400",
							"required":    false,
							"schema":      map[string]string{"type": "number"},
						},
					},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Impact analysis"},
						"400": map[string]interface{}{"description": "Negative baseline or cost"},
						"404": map[string]interface{}{"description": "Unknown industry"},
					},
				},
			},
			"/api/industries/{name}/interventions": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "List intervention summaries",
					"description": "Decarbonization levers flattened to potential/timeline midpoints",
					"parameters":  []map[string]interface{}{industryParam},
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Intervention summaries"},
						"404": map[string]interface{}{"description": "Unknown industry"},
					},
				},
			},
			"/api/comparison": map[string]interface{}{
				"get": map[string]interface{}{
					"summary":     "Compare industries against the static threshold",
					"description": "Scenario residuals, guidance gaps and urgency flags across the whole catalog",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Cross-industry comparison"},
					},
				},
			},
			"/health": map[string]interface{}{
				"get": map[string]interface{}{
					"summary": "Health check",
					"responses": map[string]interface{}{
						"200": map[string]interface{}{"description": "Service healthy"},
					},
				},
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spec)
}
