/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation via struct tags
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Structural validation (required fields, numeric bounds) lives in
  validator tags and runs before the domain sees the input. Semantic
  validation (period tokens, broadcast shapes) stays in the plan
  package, which reports typed errors the handlers map to 400s.

DISPLAY ROUNDING:
  Balance fields carry both the raw float64 the engine produced and a
  2-decimal display string rounded with shopspring/decimal. The engine
  never rounds; only this layer does.

SEE ALSO:
  - handlers.go: Uses these types
  - plan package: Definition / Result the DTOs wrap
*/
package api

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/growth-engine/plan"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// ProjectionRequest is the request to run a projection.
type ProjectionRequest struct {
	InitialAmount    float64   `json:"initial_amount" validate:"gte=0"`
	ProfitPercentage float64   `json:"profit_percentage" validate:"gt=-100"`
	ProfitPeriod     string    `json:"profit_period"`
	Durations        []int     `json:"durations" validate:"required,min=1,dive,gt=0"`
	Amounts          []float64 `json:"amounts" validate:"required,min=1"`
	Periods          []string  `json:"periods"`
}

// ToDefinition converts the request into the domain's raw input form.
func (r ProjectionRequest) ToDefinition() plan.Definition {
	return plan.Definition{
		InitialAmount:    r.InitialAmount,
		ProfitPercentage: r.ProfitPercentage,
		ProfitPeriod:     r.ProfitPeriod,
		Durations:        r.Durations,
		Amounts:          r.Amounts,
		Periods:          r.Periods,
	}
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// ScheduleEntryDTO is the month-range expansion of one segment.
type ScheduleEntryDTO struct {
	StartMonth     int     `json:"start_month"`
	EndMonth       int     `json:"end_month"`
	Amount         float64 `json:"amount"`
	IntervalMonths int     `json:"interval_months"`
}

// ProjectionDTO is the outcome of one projection.
type ProjectionDTO struct {
	ID        string `json:"id,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`

	FinalBalance float64 `json:"final_balance"`
	Baseline     float64 `json:"baseline"`
	Gain         float64 `json:"gain"`
	MonthlyRate  float64 `json:"monthly_rate"`
	TotalMonths  int     `json:"total_months"`

	// 2-decimal display strings for UIs that don't want to round.
	FinalBalanceDisplay string `json:"final_balance_display"`
	BaselineDisplay     string `json:"baseline_display"`
	GainDisplay         string `json:"gain_display"`

	Schedule []ScheduleEntryDTO `json:"schedule,omitempty"`
}

// RunDTO is a historical run: the input alongside its outcome.
type RunDTO struct {
	ID         string          `json:"id"`
	CreatedAt  string          `json:"created_at"`
	Definition plan.Definition `json:"definition"`
	Result     ProjectionDTO   `json:"result"`
}

// ScenarioDTO describes a preset demo plan.
type ScenarioDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Definition  plan.Definition `json:"definition"`
}

// LoadScenarioRequest selects a preset scenario to run.
type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id" validate:"required"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func display(v float64) string {
	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

func toProjectionDTO(res plan.Result) ProjectionDTO {
	entries := make([]ScheduleEntryDTO, len(res.Schedule.Entries))
	for i, e := range res.Schedule.Entries {
		entries[i] = ScheduleEntryDTO{
			StartMonth:     e.StartMonth,
			EndMonth:       e.EndMonth,
			Amount:         e.Amount,
			IntervalMonths: e.IntervalMonths,
		}
	}

	return ProjectionDTO{
		FinalBalance:        res.FinalBalance,
		Baseline:            res.Baseline,
		Gain:                res.Gain,
		MonthlyRate:         res.MonthlyRate,
		TotalMonths:         res.TotalMonths,
		FinalBalanceDisplay: display(res.FinalBalance),
		BaselineDisplay:     display(res.Baseline),
		GainDisplay:         display(res.Gain),
		Schedule:            entries,
	}
}

func toRunDTO(run plan.Run) RunDTO {
	return RunDTO{
		ID:         run.ID,
		CreatedAt:  run.CreatedAt.Format(time.RFC3339),
		Definition: run.Definition,
		Result: ProjectionDTO{
			FinalBalance:        run.FinalBalance,
			Baseline:            run.Baseline,
			Gain:                run.Gain,
			MonthlyRate:         run.MonthlyRate,
			TotalMonths:         run.TotalMonths,
			FinalBalanceDisplay: display(run.FinalBalance),
			BaselineDisplay:     display(run.Baseline),
			GainDisplay:         display(run.Gain),
		},
	}
}
