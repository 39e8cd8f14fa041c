package main

import (
	"net/http"
	"strconv"

	"github.com/myrjola/fitfokus/internal/contexthelpers"
	"github.com/myrjola/fitfokus/internal/workout"
)

// setsBatchRequest records sets. An empty planType keeps the plan type of the workout.
type setsBatchRequest struct {
	WorkoutID string                   `json:"workoutId"`
	PlanType  string                   `json:"planType"`
	Note      *string                  `json:"note"`
	Sets      []workout.RecordSetInput `json:"sets"`
}

type setsBatchResponse struct {
	WorkoutID string              `json:"workoutId"`
	Sets      []workout.LoggedSet `json:"sets"`
}

func validateSetsBatch(req setsBatchRequest) (workout.RecordResultInput, map[string]string) {
	var v validator
	v.check(req.WorkoutID != "", "workoutId", "must be provided")
	var planType workout.PlanType
	if req.PlanType != "" {
		parsed, err := workout.ParsePlanType(req.PlanType)
		v.check(err == nil, "planType", "unknown plan type")
		planType = parsed
	}
	v.check(len(req.Sets) > 0, "sets", "must contain at least one set")
	for i, set := range req.Sets {
		field := "sets[" + strconv.Itoa(i) + "]"
		v.check(set.ExerciseID > 0, field+".exerciseId", "must be provided")
		v.check(set.OrderIndex >= 0, field+".orderIndex", "must be zero or greater")
		v.check(set.Reps == nil || *set.Reps >= 0, field+".reps", "must be zero or greater")
		v.check(set.WeightKg == nil || *set.WeightKg >= 0, field+".weightKg", "must be zero or greater")
		v.check(set.RPE == nil || (*set.RPE >= 1 && *set.RPE <= 10), field+".rpe", "must be between 1 and 10")
	}
	if !v.valid() {
		return workout.RecordResultInput{}, v.issues
	}
	return workout.RecordResultInput{
		WorkoutID: req.WorkoutID,
		PlanType:  planType,
		Note:      req.Note,
		Sets:      req.Sets,
	}, nil
}

func (app *application) setsBatchPOST(w http.ResponseWriter, r *http.Request) {
	var req setsBatchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		app.badRequest(w, r, err)
		return
	}
	input, issues := validateSetsBatch(req)
	if issues != nil {
		app.unprocessable(w, r, issues)
		return
	}

	ctx := r.Context()
	userID := contexthelpers.AuthenticatedUserID(ctx)
	if err := app.workoutService.RecordResult(ctx, userID, input); err != nil {
		app.serviceError(w, r, err)
		return
	}
	recorded, err := app.workoutService.Workout(ctx, userID, input.WorkoutID)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.metrics.CounterResultsRecorded.WithLabelValues(string(recorded.PlanType)).Inc()
	app.metrics.CounterSetsRecorded.Add(float64(len(input.Sets)))
	app.writeJSON(w, r, http.StatusOK, setsBatchResponse{WorkoutID: input.WorkoutID, Sets: recorded.Sets})
}
