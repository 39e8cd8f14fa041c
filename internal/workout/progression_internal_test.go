package workout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/fitfokus/internal/ptr"
)

func session(weight *float64, minReps, maxReps int, rpe *float64) SetHistory {
	return SetHistory{
		WorkoutID: "",
		Weight:    weight,
		MinReps:   minReps,
		MaxReps:   maxReps,
		RPE:       rpe,
	}
}

func TestSuggestedWeight(t *testing.T) {
	tests := []struct {
		name      string
		exercise  string
		metric    Metric
		histories []SetHistory
		want      *float64
	}{
		{
			name:     "deload wins over sustained success",
			exercise: "Seated Row",
			metric:   MetricKgReps,
			histories: []SetHistory{
				session(ptr.Ref(40.0), 5, 12, nil),
				session(ptr.Ref(40.0), 12, 12, nil),
			},
			want: ptr.Ref(37.5),
		},
		{
			name:      "top of range progresses",
			exercise:  "Seated Row",
			metric:    MetricKgReps,
			histories: []SetHistory{session(ptr.Ref(40.0), 10, 12, ptr.Ref(6.0))},
			want:      ptr.Ref(42.5),
		},
		{
			name:      "large lift progresses with bigger increment",
			exercise:  "Bench Press",
			metric:    MetricKgReps,
			histories: []SetHistory{session(ptr.Ref(40.0), 10, 12, ptr.Ref(6.0))},
			want:      ptr.Ref(45.0),
		},
		{
			name:      "no history seeds deadlift",
			exercise:  "Deadlift",
			metric:    MetricKgReps,
			histories: nil,
			want:      ptr.Ref(60.0),
		},
		{
			name:      "no history seeds romanian deadlift before press or row",
			exercise:  "Romanian Deadlift",
			metric:    MetricKgReps,
			histories: nil,
			want:      ptr.Ref(60.0),
		},
		{
			name:      "unknown exercise uses fallback seed",
			exercise:  "Hip Thrust",
			metric:    MetricKgReps,
			histories: nil,
			want:      ptr.Ref(FallbackSeedWeightKg),
		},
		{
			name:      "pull-up never gets a weight",
			exercise:  "Pull-up",
			metric:    MetricKgReps,
			histories: []SetHistory{session(ptr.Ref(10.0), 12, 12, nil)},
			want:      nil,
		},
		{
			name:      "non weight metric",
			exercise:  "Plank",
			metric:    MetricDurationMin,
			histories: nil,
			want:      nil,
		},
		{
			name:      "high rpe at top of range holds weight",
			exercise:  "Seated Row",
			metric:    MetricKgReps,
			histories: []SetHistory{session(ptr.Ref(40.0), 12, 12, ptr.Ref(9.0))},
			want:      ptr.Ref(40.0),
		},
		{
			name:     "sustained success progresses despite high rpe",
			exercise: "Seated Row",
			metric:   MetricKgReps,
			histories: []SetHistory{
				session(ptr.Ref(40.0), 12, 12, ptr.Ref(9.0)),
				session(ptr.Ref(37.5), 12, 12, ptr.Ref(8.0)),
			},
			want: ptr.Ref(42.5),
		},
		{
			name:     "sustained success needs a known weight",
			exercise: "Seated Row",
			metric:   MetricKgReps,
			histories: []SetHistory{
				session(nil, 12, 12, ptr.Ref(9.0)),
				session(ptr.Ref(37.5), 12, 12, ptr.Ref(8.0)),
			},
			want: ptr.Ref(30.0),
		},
		{
			name:      "missing weight falls back to seed",
			exercise:  "Squat",
			metric:    MetricKgReps,
			histories: []SetHistory{session(nil, 8, 10, nil)},
			want:      ptr.Ref(50.0),
		},
		{
			name:      "deload floors at zero",
			exercise:  "Biceps Curl (EZ-bar)",
			metric:    MetricKgReps,
			histories: []SetHistory{session(ptr.Ref(1.0), 3, 4, nil)},
			want:      ptr.Ref(0.0),
		},
		{
			name:      "rounds to nearest half kilogram",
			exercise:  "Seated Row",
			metric:    MetricKgReps,
			histories: []SetHistory{session(ptr.Ref(41.3), 8, 10, nil)},
			want:      ptr.Ref(41.5),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestedWeight(tt.exercise, tt.metric, tt.histories)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SuggestedWeight() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLastLoggedSummary(t *testing.T) {
	tests := []struct {
		name      string
		histories []SetHistory
		want      *LastLogged
	}{
		{name: "no history", histories: nil, want: nil},
		{
			name:      "rep range",
			histories: []SetHistory{session(ptr.Ref(40.0), 8, 10, nil)},
			want:      &LastLogged{Weight: ptr.Ref(40.0), Reps: ptr.Ref("8-10 reps")},
		},
		{
			name:      "single rep count",
			histories: []SetHistory{session(ptr.Ref(40.0), 10, 10, nil)},
			want:      &LastLogged{Weight: ptr.Ref(40.0), Reps: ptr.Ref("10 reps")},
		},
		{
			name:      "no reps logged",
			histories: []SetHistory{session(nil, 0, 0, nil)},
			want:      &LastLogged{Weight: nil, Reps: nil},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, lastLoggedSummary(tt.histories)); diff != "" {
				t.Errorf("lastLoggedSummary() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
