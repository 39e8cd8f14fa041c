package workout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/myrjola/fitfokus/internal/sqlite"
)

// timestampFormat stores UTC instants as fixed-width text so that lexical order equals chronological order.
const timestampFormat = "2006-01-02T15:04:05.000Z"

func formatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

func parseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(timestampFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

// exerciseRepository reads the exercise catalog.
type exerciseRepository interface {
	// FindByName returns ErrNotFound when the catalog has no exercise called name.
	FindByName(ctx context.Context, name string) (Exercise, error)
	// FindByCategory lists exercises of category ordered by id. A nil muscles slice disables muscle filtering.
	FindByCategory(ctx context.Context, category Category, muscles []string) ([]Exercise, error)
	// List returns the whole catalog ordered by name.
	List(ctx context.Context) ([]Exercise, error)
}

// setRepository reads logged sets.
type setRepository interface {
	// History summarizes at most sessionLimit of the most recent sessions of an exercise.
	History(ctx context.Context, userID string, exerciseID int, sessionLimit int) ([]SetHistory, error)
	// ListByWorkout returns the sets of a workout ordered by order index.
	ListByWorkout(ctx context.Context, workoutID string) ([]LoggedSet, error)
}

// workoutRepository persists workouts and records results.
type workoutRepository interface {
	// Latest returns the most recent workout of the user or ErrNotFound.
	Latest(ctx context.Context, userID string) (Workout, error)
	Create(ctx context.Context, w Workout) error
	UpdatePlanType(ctx context.Context, workoutID string, planType PlanType) error
	// List returns workouts with their sets, newest first, optionally bounded by [from, to].
	List(ctx context.Context, userID string, from, to *time.Time) ([]WorkoutWithSets, error)
	// Get returns a workout of the user with its sets, or ErrWorkoutNotFound.
	Get(ctx context.Context, userID, workoutID string) (WorkoutWithSets, error)
	// RecordResult updates the workout, upserts its sets, and moves the rotation cursor in one transaction.
	RecordResult(ctx context.Context, userID string, input RecordResultInput) error
}

// settingsRepository persists user settings.
type settingsRepository interface {
	// Get returns the settings of the user. Users without a settings row get empty settings.
	Get(ctx context.Context, userID string) (UserSettings, error)
	Update(ctx context.Context, userID string, update SettingsUpdate) (UserSettings, error)
}

// userRepository manages user rows.
type userRepository interface {
	// Ensure creates the user with default settings unless it exists.
	Ensure(ctx context.Context, userID string) error
	// DeleteData removes every workout, set, cardio session and the settings of the user.
	DeleteData(ctx context.Context, userID string) error
}

// cardioRepository persists cardio sessions.
type cardioRepository interface {
	Create(ctx context.Context, userID string, session CardioSession) error
	// List returns the cardio sessions of the user, newest first.
	List(ctx context.Context, userID string) ([]CardioSession, error)
}

// repository aggregates all repositories.
type repository struct {
	exercises exerciseRepository
	sets      setRepository
	workouts  workoutRepository
	settings  settingsRepository
	users     userRepository
	cardio    cardioRepository
}

// repositoryFactory creates repositories.
type repositoryFactory struct {
	db     *sqlite.Database
	logger *slog.Logger
}

// newRepositoryFactory creates a new repository factory.
func newRepositoryFactory(db *sqlite.Database, logger *slog.Logger) *repositoryFactory {
	return &repositoryFactory{
		db:     db,
		logger: logger,
	}
}

// newRepository creates a new repository.
func (f *repositoryFactory) newRepository() *repository {
	base := newBaseRepository(f.db, f.logger)
	return &repository{
		exercises: &sqliteExerciseRepository{baseRepository: base},
		sets:      &sqliteSetRepository{baseRepository: base},
		workouts:  &sqliteWorkoutRepository{baseRepository: base},
		settings:  &sqliteSettingsRepository{baseRepository: base},
		users:     &sqliteUserRepository{baseRepository: base},
		cardio:    &sqliteCardioRepository{baseRepository: base},
	}
}

// baseRepository holds what every SQLite repository needs.
type baseRepository struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func newBaseRepository(db *sqlite.Database, logger *slog.Logger) baseRepository {
	return baseRepository{
		db:     db,
		logger: logger,
	}
}

// withTx runs fn in a read-write transaction that is committed when fn succeeds and rolled back otherwise.
func (r baseRepository) withTx(ctx context.Context, fn func(tx *sql.Tx) error) (err error) {
	tx, err := r.db.ReadWrite.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rbErr))
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
