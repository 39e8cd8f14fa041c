package main

import (
	"net/http"
	"time"

	"github.com/myrjola/fitfokus/internal/contexthelpers"
	"github.com/myrjola/fitfokus/internal/workout"
)

type planTypeRequest struct {
	PlanType *string `json:"planType"`
}

// parsePlanTypeRequest decodes an optional plan type override. It writes the error response and returns false
// when the request is invalid.
func (app *application) parsePlanTypeRequest(w http.ResponseWriter, r *http.Request) (*workout.PlanType, bool) {
	var req planTypeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		app.badRequest(w, r, err)
		return nil, false
	}
	var v validator
	planType := v.optionalPlanType(req.PlanType)
	if !v.valid() {
		app.unprocessable(w, r, v.issues)
		return nil, false
	}
	return planType, true
}

func (app *application) planSuggestPOST(w http.ResponseWriter, r *http.Request) {
	planType, ok := app.parsePlanTypeRequest(w, r)
	if !ok {
		return
	}
	userID := contexthelpers.AuthenticatedUserID(r.Context())
	draft, err := app.workoutService.SuggestNextWorkout(r.Context(), userID, workout.SuggestOptions{PlanType: planType})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.metrics.CounterDraftsSuggested.WithLabelValues(string(draft.PlanType)).Inc()
	app.metrics.HistogramDraftSize.Observe(float64(len(draft.Sets)))
	app.writeJSON(w, r, http.StatusOK, draft)
}

func (app *application) workoutStartPOST(w http.ResponseWriter, r *http.Request) {
	planType, ok := app.parsePlanTypeRequest(w, r)
	if !ok {
		return
	}
	userID := contexthelpers.AuthenticatedUserID(r.Context())
	active, err := app.workoutService.StartWorkout(r.Context(), userID, planType, time.Now())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.metrics.HistogramDraftSize.Observe(float64(len(active.Sets)))
	app.writeJSON(w, r, http.StatusOK, active)
}
