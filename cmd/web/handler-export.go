package main

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/myrjola/fitfokus/internal/contexthelpers"
	"github.com/myrjola/fitfokus/internal/errors"
	"github.com/myrjola/fitfokus/internal/workout"
)

// exportGET downloads the training data of the user as JSON or, with format=csv, as CSV.
func (app *application) exportGET(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format != "" && format != "json" && format != "csv" {
		app.unprocessable(w, r, map[string]string{"format": "must be json or csv"})
		return
	}

	userID := contexthelpers.AuthenticatedUserID(r.Context())
	data, err := app.workoutService.Export(r.Context(), userID)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}
	if format != "csv" {
		w.Header().Set("Content-Disposition", `attachment; filename="fitfokus-export.json"`)
		app.writeJSON(w, r, http.StatusOK, data)
		return
	}

	var buf bytes.Buffer
	if err = workout.WriteCSV(&buf, data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "write csv"))
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="fitfokus-export.csv"`)
	if _, err = buf.WriteTo(w); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelWarn, "failed to write export", errors.SlogError(err))
	}
}
