package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/myrjola/fitfokus/internal/errors"
	"github.com/myrjola/fitfokus/internal/workout"
)

const maxRequestBodyBytes = 1 << 20

type errorResponse struct {
	Message string            `json:"message"`
	Issues  map[string]string `json:"issues,omitempty"`
}

func (app *application) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "marshal response"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(body); err != nil {
		app.logger.LogAttrs(r.Context(), slog.LevelWarn, "failed to write response", errors.SlogError(err))
	}
}

// decodeJSON decodes the request body into dst. An empty body leaves dst untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	if err := dec.Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "decode request body")
	}
	return nil
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusInternalServerError,
		errorResponse{Message: http.StatusText(http.StatusInternalServerError), Issues: nil})
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.writeJSON(w, r, http.StatusNotFound, errorResponse{Message: http.StatusText(http.StatusNotFound), Issues: nil})
}

func (app *application) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelDebug, "bad request", errors.SlogError(err))
	app.writeJSON(w, r, http.StatusBadRequest, errorResponse{Message: "invalid JSON body", Issues: nil})
}

func (app *application) unprocessable(w http.ResponseWriter, r *http.Request, issues map[string]string) {
	app.writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Message: "validation failed", Issues: issues})
}

// serviceError maps workout errors to responses.
func (app *application) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, workout.ErrWorkoutNotFound), errors.Is(err, workout.ErrNotFound):
		app.notFound(w, r)
	case errors.Is(err, workout.ErrUnknownPlanType):
		app.unprocessable(w, r, map[string]string{"planType": "unknown plan type"})
	default:
		app.serverError(w, r, err)
	}
}

// validator collects field problems.
type validator struct {
	issues map[string]string
}

func (v *validator) check(ok bool, field, message string) {
	if ok {
		return
	}
	if v.issues == nil {
		v.issues = make(map[string]string)
	}
	if _, exists := v.issues[field]; !exists {
		v.issues[field] = message
	}
}

func (v *validator) valid() bool {
	return len(v.issues) == 0
}

// optionalPlanType parses s when given. The returned pointer is nil for an absent plan type.
func (v *validator) optionalPlanType(s *string) *workout.PlanType {
	if s == nil || *s == "" {
		return nil
	}
	p, err := workout.ParsePlanType(*s)
	v.check(err == nil, "planType", "unknown plan type")
	if err != nil {
		return nil
	}
	return &p
}

// parseTimeParam accepts RFC 3339 timestamps and plain dates.
func parseTimeParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil //nolint:nilnil // absent parameter
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return nil, errors.Wrap(err, "parse time", slog.String("value", s))
	}
	return &t, nil
}
