package workout

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/myrjola/fitfokus/internal/ptr"
)

func TestSummarizeSessions(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2025, 3, d, 17, 0, 0, 0, time.UTC) }
	rows := []historyRow{
		{workoutID: "w3", date: day(10), weightKg: ptr.Ref(40.0), reps: ptr.Ref(12), rpe: ptr.Ref(7.0)},
		{workoutID: "w3", date: day(10), weightKg: nil, reps: ptr.Ref(10), rpe: nil},
		{workoutID: "w3", date: day(10), weightKg: ptr.Ref(42.5), reps: nil, rpe: ptr.Ref(8.0)},
		{workoutID: "w2", date: day(7), weightKg: nil, reps: nil, rpe: nil},
		{workoutID: "w1", date: day(3), weightKg: ptr.Ref(35.0), reps: ptr.Ref(8), rpe: nil},
	}

	tests := []struct {
		name  string
		limit int
		want  []SetHistory
	}{
		{
			name:  "keeps most recent sessions",
			limit: 2,
			want: []SetHistory{
				{WorkoutID: "w3", Date: day(10), Weight: ptr.Ref(42.5), MinReps: 10, MaxReps: 12, RPE: ptr.Ref(8.0)},
				{WorkoutID: "w2", Date: day(7), Weight: nil, MinReps: 0, MaxReps: 0, RPE: nil},
			},
		},
		{
			name:  "limit larger than sessions",
			limit: 5,
			want: []SetHistory{
				{WorkoutID: "w3", Date: day(10), Weight: ptr.Ref(42.5), MinReps: 10, MaxReps: 12, RPE: ptr.Ref(8.0)},
				{WorkoutID: "w2", Date: day(7), Weight: nil, MinReps: 0, MaxReps: 0, RPE: nil},
				{WorkoutID: "w1", Date: day(3), Weight: ptr.Ref(35.0), MinReps: 8, MaxReps: 8, RPE: nil},
			},
		},
		{
			name:  "zero limit",
			limit: 0,
			want:  []SetHistory{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarizeSessions(rows, tt.limit)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("summarizeSessions() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSummarizeSessionsEmpty(t *testing.T) {
	if got := summarizeSessions(nil, HistorySessions); len(got) != 0 {
		t.Errorf("summarizeSessions(nil) = %v, want empty", got)
	}
}
