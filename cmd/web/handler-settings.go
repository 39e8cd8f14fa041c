package main

import (
	"net/http"

	"github.com/myrjola/fitfokus/internal/contexthelpers"
	"github.com/myrjola/fitfokus/internal/workout"
)

func (app *application) settingsGET(w http.ResponseWriter, r *http.Request) {
	userID := contexthelpers.AuthenticatedUserID(r.Context())
	settings, err := app.workoutService.Settings(r.Context(), userID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, settings)
}

func (app *application) settingsPOST(w http.ResponseWriter, r *http.Request) {
	var update workout.SettingsUpdate
	if err := decodeJSON(w, r, &update); err != nil {
		app.badRequest(w, r, err)
		return
	}
	var v validator
	v.check(update.DaysPerWeek == nil || (*update.DaysPerWeek >= 1 && *update.DaysPerWeek <= 7),
		"daysPerWeek", "must be between 1 and 7")
	if !v.valid() {
		app.unprocessable(w, r, v.issues)
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	settings, err := app.workoutService.SaveSettings(r.Context(), userID, update)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, settings)
}

// settingsDELETE removes every workout, set, cardio session and the settings of the user.
func (app *application) settingsDELETE(w http.ResponseWriter, r *http.Request) {
	userID := contexthelpers.AuthenticatedUserID(r.Context())
	if err := app.workoutService.DeleteUserData(r.Context(), userID); err != nil {
		app.serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
