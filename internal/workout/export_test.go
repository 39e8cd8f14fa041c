package workout_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/fitfokus/internal/ptr"
	"github.com/myrjola/fitfokus/internal/workout"
)

func TestWriteCSV(t *testing.T) {
	date := time.Date(2025, 3, 10, 17, 30, 0, 0, time.UTC)
	data := workout.ExportData{
		Workouts: []workout.Workout{
			{ID: "w1", UserID: "u", Date: date, PlanType: workout.PlanPush, Note: ptr.Ref(`said "light"`)},
		},
		Sets: []workout.LoggedSet{
			{
				Set: workout.Set{
					ID:         1,
					WorkoutID:  "w1",
					ExerciseID: 1,
					OrderIndex: 0,
					WeightKg:   ptr.Ref(42.5),
					Reps:       ptr.Ref(10),
					RPE:        nil,
					Completed:  true,
					Notes:      ptr.Ref("slow, controlled"),
				},
				ExerciseName: "Bench Press",
			},
		},
		Cardio: []workout.CardioSession{
			{
				ID:           "c1",
				ExerciseID:   20,
				ExerciseName: "Treadmill Run",
				Date:         date,
				DurationMin:  30,
				DistanceM:    nil,
				Intensity:    6,
				AvgHeartRate: nil,
				Notes:        nil,
			},
		},
	}

	var sb strings.Builder
	if err := workout.WriteCSV(&sb, data); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	want := `# Workouts
id,date,planType,note
w1,2025-03-10T17:30:00.000Z,push,"said ""light"""

# Sets
workoutId,exercise,orderIndex,weightKg,reps,rpe,completed,notes
w1,Bench Press,0,42.5,10,,true,"slow, controlled"

# Cardio
id,date,exercise,durationMin,distanceM,intensity,notes
c1,2025-03-10T17:30:00.000Z,Treadmill Run,30,,6,
`
	if diff := cmp.Diff(want, sb.String()); diff != "" {
		t.Errorf("WriteCSV() mismatch (-want +got):\n%s", diff)
	}
}
