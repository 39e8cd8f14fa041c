package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app *application) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(app.recoverPanic, app.logAndTraceRequest, app.requestMetrics, secureHeaders, noCache)
	r.NotFound(app.notFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		app.writeJSON(w, r, http.StatusMethodNotAllowed,
			errorResponse{Message: http.StatusText(http.StatusMethodNotAllowed), Issues: nil})
	})

	r.Get("/api/healthy", app.healthy)
	r.Handle("/metrics", promhttp.HandlerFor(app.registry, promhttp.HandlerOpts{})) //nolint:exhaustruct // defaults
	r.With(app.timeout).Get("/api/test/timeout", app.testTimeout)

	r.Group(func(r chi.Router) {
		r.Use(app.timeout, app.sessionManager.LoadAndSave, app.identity.Middleware)

		r.Post("/api/plan/suggest", app.planSuggestPOST)
		r.Post("/api/workout/start", app.workoutStartPOST)
		r.Post("/api/sets/batch", app.setsBatchPOST)

		r.Get("/api/workouts", app.workoutsGET)
		r.Post("/api/workouts", app.workoutsPOST)
		r.Get("/api/workouts/{id}", app.workoutGET)

		r.Get("/api/settings", app.settingsGET)
		r.Post("/api/settings", app.settingsPOST)
		r.Delete("/api/settings", app.settingsDELETE)

		r.Get("/api/exercises", app.exercisesGET)
		r.Get("/api/cardio", app.cardioGET)
		r.Post("/api/cardio", app.cardioPOST)
		r.Get("/api/progress", app.progressGET)
		r.Get("/api/export", app.exportGET)
	})

	return r
}
