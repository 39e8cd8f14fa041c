package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/myrjola/fitfokus/internal/contexthelpers"
	"github.com/myrjola/fitfokus/internal/workout"
)

func (app *application) workoutsGET(w http.ResponseWriter, r *http.Request) {
	var v validator
	from, err := parseTimeParam(r.URL.Query().Get("from"))
	v.check(err == nil, "from", "must be a date or an RFC 3339 timestamp")
	to, err := parseTimeParam(r.URL.Query().Get("to"))
	v.check(err == nil, "to", "must be a date or an RFC 3339 timestamp")
	if !v.valid() {
		app.unprocessable(w, r, v.issues)
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	workouts, err := app.workoutService.ListWorkouts(r.Context(), userID, from, to)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	if workouts == nil {
		workouts = []workout.WorkoutWithSets{}
	}
	app.writeJSON(w, r, http.StatusOK, workouts)
}

type createWorkoutRequest struct {
	PlanType *string    `json:"planType"`
	Note     *string    `json:"note"`
	Date     *time.Time `json:"date"`
}

func (app *application) workoutsPOST(w http.ResponseWriter, r *http.Request) {
	var req createWorkoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		app.badRequest(w, r, err)
		return
	}
	var v validator
	planType := v.optionalPlanType(req.PlanType)
	if !v.valid() {
		app.unprocessable(w, r, v.issues)
		return
	}

	nw := workout.NewWorkout{PlanType: "", Note: req.Note, Date: time.Time{}}
	if planType != nil {
		nw.PlanType = *planType
	}
	if req.Date != nil {
		nw.Date = *req.Date
	}
	userID := contexthelpers.AuthenticatedUserID(r.Context())
	created, err := app.workoutService.CreateWorkout(r.Context(), userID, nw)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusCreated, created)
}

// workoutGET returns one workout of the user with its sets.
func (app *application) workoutGET(w http.ResponseWriter, r *http.Request) {
	userID := contexthelpers.AuthenticatedUserID(r.Context())
	found, err := app.workoutService.Workout(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, found)
}
