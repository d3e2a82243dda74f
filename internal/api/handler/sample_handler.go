package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/daypulse/daypulse/internal/api/validation"
	"github.com/daypulse/daypulse/internal/domain"
	"github.com/daypulse/daypulse/internal/service"
	"github.com/daypulse/daypulse/pkg/problem"
)

type SampleHandler struct {
	service service.SampleService
}

func NewSampleHandler(service service.SampleService) *SampleHandler {
	return &SampleHandler{service: service}
}

// Create handles POST /v1/samples
// @Summary Record a wellness sample
// @Description Store one day's wellness metrics. Posting the same date again replaces the stored sample and invalidates derived plans.
// @Tags samples
// @Accept json
// @Produce json
// @Param request body domain.CreateSampleRequest true "Daily wellness metrics"
// @Success 201 {object} domain.WellnessSample "Sample stored"
// @Failure 400 {object} problem.Problem "Invalid request body"
// @Failure 422 {object} problem.Problem "Validation failure"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /samples [post]
func (h *SampleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateSampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.BadRequest("Invalid JSON body").Write(w)
		return
	}

	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		problem.ValidationError("Request body contains invalid fields", fieldErrors).Write(w)
		return
	}

	sample, err := h.service.Ingest(r.Context(), &req)
	if err != nil {
		problem.InternalError("Failed to store sample").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(sample)
}

// List handles GET /v1/samples
// @Summary List wellness samples
// @Description Fetch paginated samples, newest first. Filter by date range.
// @Tags samples
// @Produce json
// @Param from query string false "Start date (inclusive, YYYY-MM-DD)" format(date) example(2024-03-01)
// @Param to query string false "End date (inclusive, YYYY-MM-DD)" format(date) example(2024-03-31)
// @Param limit query integer false "Results per page (1-100)" default(20) minimum(1) maximum(100)
// @Param cursor query string false "Cursor from previous response's next_cursor"
// @Success 200 {object} domain.SampleListResponse "Samples with pagination"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /samples [get]
func (h *SampleHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := parseSampleFilter(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	response, err := h.service.List(r.Context(), filter)
	if err != nil {
		problem.InternalError("Failed to list samples").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func parseSampleFilter(r *http.Request) (domain.SampleFilter, []problem.FieldError) {
	var filter domain.SampleFilter
	var fieldErrors []problem.FieldError

	// Parse 'from' parameter
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		if _, err := time.Parse("2006-01-02", fromStr); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid YYYY-MM-DD date",
			})
		} else {
			filter.From = fromStr
		}
	}

	// Parse 'to' parameter
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		if _, err := time.Parse("2006-01-02", toStr); err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid YYYY-MM-DD date",
			})
		} else {
			filter.To = toStr
		}
	}

	// Parse 'limit' parameter
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "limit",
				Message: "must be a positive integer",
			})
		} else {
			filter.Limit = limit
		}
	}

	// Parse 'cursor' parameter
	filter.Cursor = r.URL.Query().Get("cursor")

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}

	return filter, nil
}
