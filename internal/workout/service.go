package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/myrjola/fitfokus/internal/sqlite"
)

// Service handles workout planning and result recording for authenticated users.
type Service struct {
	repo    *repository
	builder *draftBuilder
	logger  *slog.Logger
	now     func() time.Time
}

// NewService creates a new workout service. A nil rnd draws from the math/rand/v2 global generator.
func NewService(db *sqlite.Database, logger *slog.Logger, strategy SelectionStrategy, rnd RandSource) *Service {
	if rnd == nil {
		rnd = globalRand{}
	}
	factory := newRepositoryFactory(db, logger)
	repo := factory.newRepository()
	return &Service{
		repo: repo,
		builder: &draftBuilder{
			exercises: repo.exercises,
			sets:      repo.sets,
			strategy:  strategy,
			rand:      rnd,
		},
		logger: logger,
		now:    time.Now,
	}
}

// SuggestOptions tunes SuggestNextWorkout.
type SuggestOptions struct {
	// PlanType overrides the resolved plan type when set.
	PlanType *PlanType
}

// ActiveWorkout is today's workout merged with a fresh draft.
type ActiveWorkout struct {
	WorkoutID string      `json:"workoutId"`
	Date      time.Time   `json:"date"`
	PlanType  PlanType    `json:"planType"`
	Note      *string     `json:"note"`
	Resumed   bool        `json:"resumed"`
	Sets      []MergedSet `json:"sets"`
}

// EnsureUser creates the user with default settings unless it already exists.
func (s *Service) EnsureUser(ctx context.Context, userID string) error {
	if err := s.repo.users.Ensure(ctx, userID); err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	return nil
}

// SuggestNextWorkout resolves the next plan type and drafts a workout for it. Nothing is persisted.
func (s *Service) SuggestNextWorkout(ctx context.Context, userID string, opts SuggestOptions) (WorkoutDraft, error) {
	planType, err := s.nextPlanType(ctx, userID, opts.PlanType)
	if err != nil {
		return WorkoutDraft{}, err
	}
	draft, err := s.builder.build(ctx, userID, planType)
	if err != nil {
		return WorkoutDraft{}, fmt.Errorf("build %s draft: %w", planType, err)
	}
	return draft, nil
}

func (s *Service) nextPlanType(ctx context.Context, userID string, override *PlanType) (PlanType, error) {
	if override != nil && override.Valid() {
		return *override, nil
	}
	settings, err := s.repo.settings.Get(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("get settings: %w", err)
	}
	var latest *Workout
	w, err := s.repo.workouts.Latest(ctx, userID)
	switch {
	case errors.Is(err, ErrNotFound):
	case err != nil:
		return "", fmt.Errorf("get latest workout: %w", err)
	default:
		latest = &w
	}
	return resolvePlanType(override, settings, latest), nil
}

// RecordResult stores the logged sets of a workout owned by userID and advances the plan type cursor. An empty plan
// type keeps the one stored on the workout.
func (s *Service) RecordResult(ctx context.Context, userID string, input RecordResultInput) error {
	if input.PlanType != "" && !input.PlanType.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownPlanType, input.PlanType)
	}
	if err := s.repo.workouts.RecordResult(ctx, userID, input); err != nil {
		return fmt.Errorf("record result of workout %s: %w", input.WorkoutID, err)
	}
	return nil
}

// StartWorkout continues the latest workout when it is dated on referenceDate's day or later, otherwise it creates
// a new one. A nil planType keeps the plan type of a continued workout and is otherwise resolved like
// SuggestNextWorkout does. The fresh draft is merged with what was
// already logged.
func (s *Service) StartWorkout(
	ctx context.Context,
	userID string,
	planType *PlanType,
	referenceDate time.Time,
) (ActiveWorkout, error) {
	w, resumed, err := s.continuableWorkout(ctx, userID, referenceDate)
	if err != nil {
		return ActiveWorkout{}, err
	}
	resolved := w.PlanType
	if !resumed || planType != nil {
		if resolved, err = s.nextPlanType(ctx, userID, planType); err != nil {
			return ActiveWorkout{}, err
		}
	}
	switch {
	case !resumed:
		w = Workout{
			ID:       uuid.NewString(),
			UserID:   userID,
			Date:     referenceDate.UTC().Truncate(time.Millisecond),
			PlanType: resolved,
			Note:     nil,
		}
		if err = s.repo.workouts.Create(ctx, w); err != nil {
			return ActiveWorkout{}, fmt.Errorf("create workout: %w", err)
		}
	case w.PlanType != resolved:
		if err = s.repo.workouts.UpdatePlanType(ctx, w.ID, resolved); err != nil {
			return ActiveWorkout{}, fmt.Errorf("update plan type: %w", err)
		}
		w.PlanType = resolved
	}

	draft, err := s.builder.build(ctx, userID, resolved)
	if err != nil {
		return ActiveWorkout{}, fmt.Errorf("build %s draft: %w", resolved, err)
	}
	var logged []LoggedSet
	if resumed {
		if logged, err = s.repo.sets.ListByWorkout(ctx, w.ID); err != nil {
			return ActiveWorkout{}, fmt.Errorf("list sets: %w", err)
		}
	}

	return ActiveWorkout{
		WorkoutID: w.ID,
		Date:      w.Date,
		PlanType:  w.PlanType,
		Note:      w.Note,
		Resumed:   resumed,
		Sets:      MergeDraft(draft, logged),
	}, nil
}

func (s *Service) continuableWorkout(
	ctx context.Context,
	userID string,
	referenceDate time.Time,
) (Workout, bool, error) {
	latest, err := s.repo.workouts.Latest(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return Workout{}, false, nil
	}
	if err != nil {
		return Workout{}, false, fmt.Errorf("get latest workout: %w", err)
	}
	y, m, d := referenceDate.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, referenceDate.Location())
	if latest.Date.Before(startOfDay) {
		return Workout{}, false, nil
	}
	return latest, true, nil
}

// CreateWorkout creates a workout. The plan type defaults to full body and the date to now.
func (s *Service) CreateWorkout(ctx context.Context, userID string, nw NewWorkout) (Workout, error) {
	if nw.PlanType == "" {
		nw.PlanType = PlanFullBody
	}
	if !nw.PlanType.Valid() {
		return Workout{}, fmt.Errorf("%w: %q", ErrUnknownPlanType, nw.PlanType)
	}
	if nw.Date.IsZero() {
		nw.Date = s.now()
	}
	w := Workout{
		ID:       uuid.NewString(),
		UserID:   userID,
		Date:     nw.Date.UTC().Truncate(time.Millisecond),
		PlanType: nw.PlanType,
		Note:     nw.Note,
	}
	if err := s.repo.workouts.Create(ctx, w); err != nil {
		return Workout{}, fmt.Errorf("create workout: %w", err)
	}
	return w, nil
}

// ListWorkouts returns the workouts of the user with their sets, newest first, optionally bounded by [from, to].
func (s *Service) ListWorkouts(ctx context.Context, userID string, from, to *time.Time) ([]WorkoutWithSets, error) {
	workouts, err := s.repo.workouts.List(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	return workouts, nil
}

// Workout returns a workout of the user with its sets. ErrWorkoutNotFound covers workouts of other users.
func (s *Service) Workout(ctx context.Context, userID, workoutID string) (WorkoutWithSets, error) {
	w, err := s.repo.workouts.Get(ctx, userID, workoutID)
	if err != nil {
		return WorkoutWithSets{}, fmt.Errorf("get workout: %w", err)
	}
	return w, nil
}

// WorkoutSets returns the sets of a workout ordered by order index.
func (s *Service) WorkoutSets(ctx context.Context, workoutID string) ([]LoggedSet, error) {
	sets, err := s.repo.sets.ListByWorkout(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("list sets of workout %s: %w", workoutID, err)
	}
	return sets, nil
}

// ListExercises returns the exercise catalog ordered by name.
func (s *Service) ListExercises(ctx context.Context) ([]Exercise, error) {
	exercises, err := s.repo.exercises.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

// Settings returns the settings of the user.
func (s *Service) Settings(ctx context.Context, userID string) (UserSettings, error) {
	settings, err := s.repo.settings.Get(ctx, userID)
	if err != nil {
		return UserSettings{}, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// SaveSettings applies a partial settings update and returns the stored settings.
func (s *Service) SaveSettings(ctx context.Context, userID string, update SettingsUpdate) (UserSettings, error) {
	settings, err := s.repo.settings.Update(ctx, userID, update)
	if err != nil {
		return UserSettings{}, fmt.Errorf("save settings: %w", err)
	}
	return settings, nil
}

// DeleteUserData removes the training data and settings of the user. The user row itself is kept.
func (s *Service) DeleteUserData(ctx context.Context, userID string) error {
	if err := s.repo.users.DeleteData(ctx, userID); err != nil {
		return fmt.Errorf("delete user data: %w", err)
	}
	return nil
}

// LogCardio records a cardio session. ErrExerciseMissing is returned when the catalog lacks the exercise.
func (s *Service) LogCardio(ctx context.Context, userID string, input CardioInput) (CardioSession, error) {
	name := input.ExerciseName
	if name == "" {
		name = DefaultCardioExercise
	}
	exercise, err := s.repo.exercises.FindByName(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return CardioSession{}, fmt.Errorf("%w: %s", ErrExerciseMissing, name)
	}
	if err != nil {
		return CardioSession{}, fmt.Errorf("find cardio exercise: %w", err)
	}
	date := input.Date
	if date.IsZero() {
		date = s.now()
	}
	session := CardioSession{
		ID:           uuid.NewString(),
		ExerciseID:   exercise.ID,
		ExerciseName: exercise.Name,
		Date:         date.UTC().Truncate(time.Millisecond),
		DurationMin:  input.DurationMin,
		DistanceM:    input.DistanceM,
		Intensity:    input.Intensity,
		AvgHeartRate: input.AvgHeartRate,
		Notes:        input.Notes,
	}
	if err = s.repo.cardio.Create(ctx, userID, session); err != nil {
		return CardioSession{}, fmt.Errorf("log cardio: %w", err)
	}
	return session, nil
}

// ListCardio returns the cardio sessions of the user, newest first.
func (s *Service) ListCardio(ctx context.Context, userID string) ([]CardioSession, error) {
	sessions, err := s.repo.cardio.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cardio sessions: %w", err)
	}
	return sessions, nil
}
