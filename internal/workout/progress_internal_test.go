package workout

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		in   time.Time
		want string
	}{
		{in: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), want: "2025-03-10"},
		{in: time.Date(2025, 3, 12, 23, 59, 0, 0, time.UTC), want: "2025-03-10"},
		{in: time.Date(2025, 3, 16, 12, 0, 0, 0, time.UTC), want: "2025-03-10"},
		{in: time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC), want: "2024-12-30"},
	}
	for _, tt := range tests {
		if got := startOfWeek(tt.in).Format(time.DateOnly); got != tt.want {
			t.Errorf("startOfWeek(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestStreak(t *testing.T) {
	on := func(days ...int) []WorkoutWithSets {
		workouts := make([]WorkoutWithSets, len(days))
		for i, d := range days {
			workouts[i].Date = time.Date(2025, 3, d, 18, 0, 0, 0, time.UTC)
		}
		return workouts
	}
	tests := []struct {
		name     string
		workouts []WorkoutWithSets
		want     int
	}{
		{name: "no workouts", workouts: nil, want: 0},
		{name: "single workout", workouts: on(10), want: 1},
		{name: "consecutive days", workouts: on(12, 11, 10), want: 3},
		{name: "same day counts once", workouts: on(12, 12, 11), want: 2},
		{name: "gap stops the streak", workouts: on(12, 11, 9, 8), want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := streak(tt.workouts); got != tt.want {
				t.Errorf("streak() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestProgressReport_SkipsIncompleteSets(t *testing.T) {
	weight, reps := 100.0, 5
	workouts := []WorkoutWithSets{{
		Workout: Workout{Date: time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)},
		Sets: []LoggedSet{
			{Set: Set{WeightKg: &weight, Reps: &reps}, ExerciseName: "Deadlift"},
			{Set: Set{WeightKg: &weight, Reps: nil}, ExerciseName: "Deadlift"},
			{Set: Set{WeightKg: nil, Reps: &reps}, ExerciseName: "Pull-up"},
		},
	}}

	report := progressReport(workouts)

	if len(report.VolumePerWeek) != 1 || report.VolumePerWeek[0].TotalVolume != 500 {
		t.Errorf("VolumePerWeek = %+v, want 500 in one week", report.VolumePerWeek)
	}
	deadlift := report.OneRepMaxTrends[2]
	if deadlift.Lift != "Deadlift" || len(deadlift.Points) != 1 {
		t.Fatalf("deadlift trend = %+v, want one point", deadlift)
	}
	// 100 * (1 + 5/30) = 116.67
	if deadlift.Points[0].Value != 116.7 {
		t.Errorf("deadlift estimate = %v, want 116.7", deadlift.Points[0].Value)
	}
	if len(report.OneRepMaxTrends[0].Points) != 0 {
		t.Errorf("bench trend has %d points, want 0", len(report.OneRepMaxTrends[0].Points))
	}
}
