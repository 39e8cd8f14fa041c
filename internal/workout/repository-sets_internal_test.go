package workout

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/myrjola/fitfokus/internal/ptr"
	"github.com/myrjola/fitfokus/internal/sqlite"
	"github.com/myrjola/fitfokus/internal/testhelpers"
)

func newTestRepository(t *testing.T) *repository {
	t.Helper()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(t.Context(), ":memory:", logger)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err = db.Close(); err != nil {
			t.Errorf("Failed to close database: %v", err)
		}
	})
	return newRepositoryFactory(db, logger).newRepository()
}

type loggedSession struct {
	id   string
	date time.Time
	sets []RecordSetInput
}

func recordSessions(t *testing.T, repo *repository, userID string, sessions []loggedSession) {
	t.Helper()
	ctx := t.Context()
	for _, s := range sessions {
		w := Workout{ID: s.id, UserID: userID, Date: s.date, PlanType: PlanLegs, Note: nil}
		if err := repo.workouts.Create(ctx, w); err != nil {
			t.Fatalf("Create(%s) error = %v", s.id, err)
		}
		if err := repo.workouts.RecordResult(ctx, userID, RecordResultInput{
			WorkoutID: s.id, PlanType: PlanLegs, Note: nil, Sets: s.sets,
		}); err != nil {
			t.Fatalf("RecordResult(%s) error = %v", s.id, err)
		}
	}
}

func squatSets(exerciseID int, weightsAndReps ...[2]float64) []RecordSetInput {
	sets := make([]RecordSetInput, len(weightsAndReps))
	for i, wr := range weightsAndReps {
		sets[i] = RecordSetInput{
			ExerciseID: exerciseID,
			OrderIndex: i,
			WeightKg:   ptr.Ref(wr[0]),
			Reps:       ptr.Ref(int(wr[1])),
			RPE:        nil,
			Completed:  true,
			Notes:      nil,
		}
	}
	return sets
}

func Test_sqliteSetRepository_History(t *testing.T) {
	ctx := t.Context()
	repo := newTestRepository(t)
	if err := repo.users.Ensure(ctx, "user-1"); err != nil {
		t.Fatalf("Ensure() error = %v", err)
	}
	squat, err := repo.exercises.FindByName(ctx, "Squat")
	if err != nil {
		t.Fatalf("FindByName() error = %v", err)
	}

	day := func(d int) time.Time { return time.Date(2025, 3, d, 18, 0, 0, 0, time.UTC) }
	// Created out of date order so that only the query can put them in order.
	recordSessions(t, repo, "user-1", []loggedSession{
		{id: "w-mar-05", date: day(5), sets: squatSets(squat.ID, [2]float64{55, 10}, [2]float64{57.5, 9})},
		{id: "w-mar-08", date: day(8), sets: squatSets(squat.ID, [2]float64{60, 8}, [2]float64{62.5, 6})},
		{id: "w-mar-01", date: day(1), sets: squatSets(squat.ID, [2]float64{50, 12}, [2]float64{52.5, 10})},
	})

	got, err := repo.sets.History(ctx, "user-1", squat.ID, HistorySessions)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	want := []SetHistory{
		{WorkoutID: "w-mar-08", Date: day(8), Weight: ptr.Ref(62.5), MinReps: 6, MaxReps: 8, RPE: nil},
		{WorkoutID: "w-mar-05", Date: day(5), Weight: ptr.Ref(57.5), MinReps: 9, MaxReps: 10, RPE: nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("History() mismatch (-want +got):\n%s", diff)
	}

	// A session with as many sets as the row budget leaves no room for older sessions.
	recordSessions(t, repo, "user-1", []loggedSession{
		{id: "w-mar-10", date: day(10), sets: squatSets(squat.ID,
			[2]float64{40, 12}, [2]float64{50, 10}, [2]float64{60, 8},
			[2]float64{65, 6}, [2]float64{70, 5}, [2]float64{60, 8})},
	})

	got, err = repo.sets.History(ctx, "user-1", squat.ID, HistorySessions)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	want = []SetHistory{
		{WorkoutID: "w-mar-10", Date: day(10), Weight: ptr.Ref(60.0), MinReps: 5, MaxReps: 12, RPE: nil},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("History() with a full row budget mismatch (-want +got):\n%s", diff)
	}

	if got, err = repo.sets.History(ctx, "user-2", squat.ID, HistorySessions); err != nil || len(got) != 0 {
		t.Errorf("History() of another user = %v, %v, want no sessions", got, err)
	}
}
