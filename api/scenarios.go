/*
scenarios.go - Preset demo plans

PURPOSE:
  Provides pre-built plans that exercise specific engine behaviors, for
  demos and quick exploration. Loading a scenario projects its plan and
  records a normal run, exactly as if the client had posted the
  definition itself.

AVAILABLE SCENARIOS:
  steady-saver:     One segment, monthly contributions for a decade
  pause-and-resume: Contributions stop for two years mid-plan
  quarterly-bonus:  Quarterly top-ups on top of a lump starting amount
  drawdown:         A withdrawal segment (negative amounts are tracked
                    in the baseline but never compounded)

USAGE VIA API:
  GET  /api/scenarios
  POST /api/scenarios/load
  {"scenario_id": "steady-saver"}

SEE ALSO:
  - handlers.go: shares the run-recording path
  - plan package: Definition semantics
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/warp/growth-engine/plan"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "steady-saver",
		Name:        "Steady Saver",
		Description: "10 years of 200/month at 8% annually",
		Definition: plan.Definition{
			InitialAmount:    5000,
			ProfitPercentage: 8,
			ProfitPeriod:     "annually",
			Durations:        []int{10},
			Amounts:          []float64{200},
			Periods:          []string{"monthly"},
		},
	},
	{
		ID:          "pause-and-resume",
		Name:        "Pause and Resume",
		Description: "3 saving years, 2 paused years, 5 more saving years",
		Definition: plan.Definition{
			InitialAmount:    10000,
			ProfitPercentage: 7,
			ProfitPeriod:     "annually",
			Durations:        []int{3, 2, 5},
			Amounts:          []float64{300, 0, 400},
			Periods:          []string{"monthly"},
		},
	},
	{
		ID:          "quarterly-bonus",
		Name:        "Quarterly Bonus",
		Description: "Large start, quarterly 1500 top-ups for 5 years",
		Definition: plan.Definition{
			InitialAmount:    50000,
			ProfitPercentage: 6,
			ProfitPeriod:     "annually",
			Durations:        []int{5},
			Amounts:          []float64{1500},
			Periods:          []string{"quarterly"},
		},
	},
	{
		ID:          "drawdown",
		Name:        "Drawdown",
		Description: "Accumulate for 8 years, then a negative-amount segment",
		Definition: plan.Definition{
			InitialAmount:    20000,
			ProfitPercentage: 5,
			ProfitPeriod:     "annually",
			Durations:        []int{8, 4},
			Amounts:          []float64{500, -500},
			Periods:          []string{"monthly"},
		},
	},
}

// =============================================================================
// SCENARIO HANDLERS
// =============================================================================

// ListScenarios returns available scenarios.
// GET /api/scenarios
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario projects a preset plan and records the run.
// POST /api/scenarios/load
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req LoadScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err)
		return
	}

	scenario, ok := findScenario(req.ScenarioID)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown scenario "+req.ScenarioID, nil)
		return
	}

	res, err := plan.ProjectDefinition(scenario.Definition)
	if err != nil {
		// Presets are maintained with the engine; a failure here is a bug.
		h.writeDomainError(w, err)
		return
	}

	run := plan.NewRun(scenario.Definition, res)
	if err := h.Runs.Save(r.Context(), run); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save run", err)
		return
	}

	h.Log.Info().Str("scenario", scenario.ID).Str("run_id", run.ID).Msg("scenario loaded")

	dto := toProjectionDTO(res)
	dto.ID = run.ID
	dto.CreatedAt = toRunDTO(run).CreatedAt
	writeJSON(w, http.StatusCreated, dto)
}

func findScenario(id string) (ScenarioDTO, bool) {
	for _, s := range scenarios {
		if s.ID == id {
			return s, true
		}
	}
	return ScenarioDTO{}, false
}
