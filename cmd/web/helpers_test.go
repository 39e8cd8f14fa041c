package main

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/myrjola/fitfokus/internal/ptr"
	"github.com/myrjola/fitfokus/internal/workout"
)

func Test_validateSetsBatch(t *testing.T) {
	valid := workout.RecordSetInput{
		ExerciseID: 1, OrderIndex: 0, WeightKg: ptr.Ref(40.0), Reps: ptr.Ref(10), RPE: ptr.Ref(8.0),
		Completed: true, Notes: nil,
	}
	tests := []struct {
		name       string
		req        setsBatchRequest
		wantIssues map[string]string
	}{
		{
			name:       "valid",
			req:        setsBatchRequest{WorkoutID: "w1", PlanType: "upper", Note: nil, Sets: []workout.RecordSetInput{valid}},
			wantIssues: nil,
		},
		{
			name:       "plan type omitted",
			req:        setsBatchRequest{WorkoutID: "w1", PlanType: "", Note: nil, Sets: []workout.RecordSetInput{valid}},
			wantIssues: nil,
		},
		{
			name:       "unknown plan type",
			req:        setsBatchRequest{WorkoutID: "w1", PlanType: "arms", Note: nil, Sets: []workout.RecordSetInput{valid}},
			wantIssues: map[string]string{"planType": "unknown plan type"},
		},
		{
			name: "negative reps and rpe below range",
			req: setsBatchRequest{WorkoutID: "w1", PlanType: "legs", Note: nil, Sets: []workout.RecordSetInput{
				valid,
				{ExerciseID: 1, OrderIndex: 1, WeightKg: nil, Reps: ptr.Ref(-1), RPE: ptr.Ref(0.5), Completed: false,
					Notes: nil},
			}},
			wantIssues: map[string]string{
				"sets[1].reps": "must be zero or greater",
				"sets[1].rpe":  "must be between 1 and 10",
			},
		},
		{
			name: "missing workout and sets",
			req:  setsBatchRequest{WorkoutID: "", PlanType: "legs", Note: nil, Sets: nil},
			wantIssues: map[string]string{
				"workoutId": "must be provided",
				"sets":      "must contain at least one set",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, issues := validateSetsBatch(tt.req)
			if diff := cmp.Diff(tt.wantIssues, issues); diff != "" {
				t.Errorf("issues mismatch (-want +got):\n%s", diff)
			}
			if issues == nil && input.WorkoutID != tt.req.WorkoutID {
				t.Errorf("WorkoutID = %q, want %q", input.WorkoutID, tt.req.WorkoutID)
			}
		})
	}
}

func Test_parseTimeParam(t *testing.T) {
	tests := []struct {
		in      string
		want    *time.Time
		wantErr bool
	}{
		{in: "", want: nil, wantErr: false},
		{in: "2025-03-10", want: ptr.Ref(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)), wantErr: false},
		{in: "2025-03-10T09:30:00Z", want: ptr.Ref(time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)), wantErr: false},
		{in: "yesterday", want: nil, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTimeParam(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseTimeParam(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("parseTimeParam(%q) mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}
