package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/daypulse/daypulse/internal/domain"
	"github.com/daypulse/daypulse/internal/service"
	"github.com/daypulse/daypulse/pkg/problem"
)

type PlanHandler struct {
	service service.PlanService
}

func NewPlanHandler(service service.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// GetPlan handles GET /v1/days/{date}/plan
// @Summary Get the full day plan
// @Description Compute recovery, 24 hourly productivity scores, energy-flow windows, and ranked deep-work blocks for a date.
// @Tags days
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)" format(date) example(2024-03-15)
// @Success 200 {object} domain.DayPlanResponse "Complete day plan"
// @Failure 400 {object} problem.Problem "Malformed date"
// @Failure 404 {object} problem.Problem "No sample recorded for the date"
// @Failure 422 {object} problem.Problem "No usable metric for the date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /days/{date}/plan [get]
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDate(w, r)
	if !ok {
		return
	}

	plan, err := h.service.Plan(r.Context(), date)
	if err != nil {
		writePlanError(w, date, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(plan)
}

// GetEnergyFlow handles GET /v1/days/{date}/energy-flow
// @Summary Get the energy-flow prediction
// @Description Return only the wake-anchored energy windows and peak times for a date.
// @Tags days
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)" format(date) example(2024-03-15)
// @Success 200 {object} domain.EnergyFlowPrediction "Energy-flow prediction"
// @Failure 400 {object} problem.Problem "Malformed date"
// @Failure 404 {object} problem.Problem "No sample recorded for the date"
// @Failure 422 {object} problem.Problem "No usable metric for the date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /days/{date}/energy-flow [get]
func (h *PlanHandler) GetEnergyFlow(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDate(w, r)
	if !ok {
		return
	}

	flow, err := h.service.EnergyFlow(r.Context(), date)
	if err != nil {
		writePlanError(w, date, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(flow)
}

// GetRecovery handles GET /v1/days/{date}/recovery
// @Summary Get the recovery analysis
// @Description Return only the recovery score and its per-metric breakdown for a date.
// @Tags days
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)" format(date) example(2024-03-15)
// @Success 200 {object} domain.RecoveryResult "Recovery analysis"
// @Failure 400 {object} problem.Problem "Malformed date"
// @Failure 404 {object} problem.Problem "No sample recorded for the date"
// @Failure 422 {object} problem.Problem "No usable metric for the date"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /days/{date}/recovery [get]
func (h *PlanHandler) GetRecovery(w http.ResponseWriter, r *http.Request) {
	date, ok := parseDate(w, r)
	if !ok {
		return
	}

	recovery, err := h.service.Recovery(r.Context(), date)
	if err != nil {
		writePlanError(w, date, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recovery)
}

func parseDate(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := chi.URLParam(r, "date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		problem.BadRequest("Date must be YYYY-MM-DD").Write(w)
		return "", false
	}
	return date, true
}

func writePlanError(w http.ResponseWriter, date string, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		problem.NotFound("No wellness sample recorded for " + date).Write(w)
	case errors.Is(err, domain.ErrDataInsufficient):
		problem.DataInsufficient("No usable wellness metric recorded for " + date).Write(w)
	case errors.Is(err, domain.ErrInvalidInput):
		problem.BadRequest("Date must be YYYY-MM-DD").Write(w)
	default:
		problem.InternalError("Failed to compute day plan").Write(w)
	}
}
