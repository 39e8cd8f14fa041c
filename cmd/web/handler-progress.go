package main

import (
	"net/http"

	"github.com/myrjola/fitfokus/internal/contexthelpers"
)

func (app *application) progressGET(w http.ResponseWriter, r *http.Request) {
	userID := contexthelpers.AuthenticatedUserID(r.Context())
	report, err := app.workoutService.Progress(r.Context(), userID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	app.writeJSON(w, r, http.StatusOK, report)
}
