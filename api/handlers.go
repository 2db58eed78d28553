/*
handlers.go - HTTP handler implementations

PURPOSE:
  Implements the HTTP handlers for the projection API. Each handler
  follows the same shape:
  1. Decode request body / URL params
  2. Validate structurally (validator tags)
  3. Call domain logic (plan.ProjectDefinition)
  4. Persist the run and serialize the response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input (growth.IsClientError)
  - 404: Run or scenario not found
  - 500: Store failures

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Preset plan loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/warp/growth-engine/growth"
	"github.com/warp/growth-engine/plan"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Runs     plan.RunStore
	Log      zerolog.Logger
	validate *validator.Validate
}

// NewHandler creates a handler backed by the given run store.
func NewHandler(runs plan.RunStore, log zerolog.Logger) *Handler {
	return &Handler{
		Runs:     runs,
		Log:      log,
		validate: validator.New(),
	}
}

// =============================================================================
// PROJECTION HANDLERS
// =============================================================================

// CreateProjection runs a projection and records it in the run history.
// POST /api/projections
func (h *Handler) CreateProjection(w http.ResponseWriter, r *http.Request) {
	var req ProjectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request", err)
		return
	}

	def := req.ToDefinition()
	res, err := plan.ProjectDefinition(def)
	if err != nil {
		h.writeDomainError(w, err)
		return
	}

	run := plan.NewRun(def, res)
	if err := h.Runs.Save(r.Context(), run); err != nil {
		h.Log.Error().Err(err).Str("run_id", run.ID).Msg("failed to save run")
		writeError(w, http.StatusInternalServerError, "failed to save run", err)
		return
	}

	h.Log.Info().
		Str("run_id", run.ID).
		Int("total_months", res.TotalMonths).
		Float64("final_balance", res.FinalBalance).
		Msg("projection run")

	dto := toProjectionDTO(res)
	dto.ID = run.ID
	dto.CreatedAt = toRunDTO(run).CreatedAt
	writeJSON(w, http.StatusCreated, dto)
}

// ListProjections returns the run history, newest first.
// GET /api/projections?limit=N
func (h *Handler) ListProjections(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "limit must be a non-negative integer", err)
			return
		}
		limit = n
	}

	runs, err := h.Runs.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list runs", err)
		return
	}

	dtos := make([]RunDTO, len(runs))
	for i, run := range runs {
		dtos[i] = toRunDTO(run)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetProjection returns one historical run.
// GET /api/projections/{id}
func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	run, err := h.Runs.Get(r.Context(), id)
	if errors.Is(err, plan.ErrRunNotFound) {
		writeError(w, http.StatusNotFound, "run not found", nil)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load run", err)
		return
	}

	writeJSON(w, http.StatusOK, toRunDTO(run))
}

// writeDomainError maps typed engine errors onto HTTP statuses.
func (h *Handler) writeDomainError(w http.ResponseWriter, err error) {
	if growth.IsClientError(err) {
		writeError(w, http.StatusBadRequest, "invalid plan", err)
		return
	}
	h.Log.Error().Err(err).Msg("projection failed")
	writeError(w, http.StatusInternalServerError, "projection failed", err)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
