package main

import (
	"net/http"
	"time"

	"github.com/myrjola/fitfokus/internal/contexthelpers"
	"github.com/myrjola/fitfokus/internal/errors"
	"github.com/myrjola/fitfokus/internal/ptr"
	"github.com/myrjola/fitfokus/internal/workout"
)

type cardioRequest struct {
	ExerciseName string     `json:"exerciseName"`
	Date         *time.Time `json:"date"`
	DurationMin  int        `json:"durationMin"`
	DistanceM    *int       `json:"distanceM"`
	Intensity    int        `json:"intensity"`
	AvgHeartRate *int       `json:"avgHeartRate"`
	Notes        *string    `json:"notes"`
}

func (app *application) cardioGET(w http.ResponseWriter, r *http.Request) {
	userID := contexthelpers.AuthenticatedUserID(r.Context())
	sessions, err := app.workoutService.ListCardio(r.Context(), userID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	if sessions == nil {
		sessions = []workout.CardioSession{}
	}
	app.writeJSON(w, r, http.StatusOK, sessions)
}

func (app *application) cardioPOST(w http.ResponseWriter, r *http.Request) {
	var req cardioRequest
	if err := decodeJSON(w, r, &req); err != nil {
		app.badRequest(w, r, err)
		return
	}
	var v validator
	v.check(req.DurationMin >= 1, "durationMin", "must be at least 1")
	v.check(req.Intensity >= 1 && req.Intensity <= 10, "intensity", "must be between 1 and 10")
	v.check(req.DistanceM == nil || *req.DistanceM >= 0, "distanceM", "must be zero or greater")
	v.check(req.AvgHeartRate == nil || *req.AvgHeartRate > 0, "avgHeartRate", "must be greater than zero")
	if !v.valid() {
		app.unprocessable(w, r, v.issues)
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	session, err := app.workoutService.LogCardio(r.Context(), userID, workout.CardioInput{
		ExerciseName: req.ExerciseName,
		Date:         ptr.Deref(req.Date, time.Time{}),
		DurationMin:  req.DurationMin,
		DistanceM:    req.DistanceM,
		Intensity:    req.Intensity,
		AvgHeartRate: req.AvgHeartRate,
		Notes:        req.Notes,
	})
	if errors.Is(err, workout.ErrExerciseMissing) {
		app.unprocessable(w, r, map[string]string{"exerciseName": "unknown exercise"})
		return
	}
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.metrics.CounterCardioLogged.Inc()
	app.writeJSON(w, r, http.StatusCreated, session)
}
