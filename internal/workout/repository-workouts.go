package workout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// sqliteWorkoutRepository implements workoutRepository.
type sqliteWorkoutRepository struct {
	baseRepository
}

func (r *sqliteWorkoutRepository) Latest(ctx context.Context, userID string) (Workout, error) {
	var (
		w        Workout
		date     string
		planType string
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT id, user_id, date, plan_type, note
		FROM workouts
		WHERE user_id = ?
		ORDER BY date DESC, id DESC
		LIMIT 1`, userID).Scan(&w.ID, &w.UserID, &date, &planType, &w.Note)
	if errors.Is(err, sql.ErrNoRows) {
		return Workout{}, ErrNotFound
	}
	if err != nil {
		return Workout{}, fmt.Errorf("query latest workout: %w", err)
	}
	if w.Date, err = parseTimestamp(date); err != nil {
		return Workout{}, err
	}
	w.PlanType = PlanType(planType)
	return w, nil
}

func (r *sqliteWorkoutRepository) Create(ctx context.Context, w Workout) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO workouts (id, user_id, date, plan_type, note)
		VALUES (?, ?, ?, ?, ?)`,
		w.ID, w.UserID, formatTimestamp(w.Date), string(w.PlanType), w.Note); err != nil {
		return fmt.Errorf("insert workout: %w", err)
	}
	return nil
}

func (r *sqliteWorkoutRepository) UpdatePlanType(ctx context.Context, workoutID string, planType PlanType) error {
	result, err := r.db.ReadWrite.ExecContext(ctx,
		"UPDATE workouts SET plan_type = ? WHERE id = ?", string(planType), workoutID)
	if err != nil {
		return fmt.Errorf("update plan type: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

const selectWorkoutsWithSets = `
		SELECT w.id, w.user_id, w.date, w.plan_type, w.note,
		       s.id, s.exercise_id, s.order_index, s.weight_kg, s.reps, s.rpe, s.completed, s.notes, e.name
		FROM workouts w
		LEFT JOIN sets s ON s.workout_id = w.id
		LEFT JOIN exercises e ON e.id = s.exercise_id
		WHERE w.user_id = ?`

func (r *sqliteWorkoutRepository) List(
	ctx context.Context,
	userID string,
	from, to *time.Time,
) ([]WorkoutWithSets, error) {
	query := selectWorkoutsWithSets
	args := []any{userID}
	if from != nil {
		query += " AND w.date >= ?"
		args = append(args, formatTimestamp(*from))
	}
	if to != nil {
		query += " AND w.date <= ?"
		args = append(args, formatTimestamp(*to))
	}
	query += " ORDER BY w.date DESC, w.id, s.order_index"
	return r.queryWorkoutsWithSets(ctx, query, args...)
}

func (r *sqliteWorkoutRepository) Get(ctx context.Context, userID, workoutID string) (WorkoutWithSets, error) {
	workouts, err := r.queryWorkoutsWithSets(ctx,
		selectWorkoutsWithSets+" AND w.id = ? ORDER BY s.order_index", userID, workoutID)
	if err != nil {
		return WorkoutWithSets{}, err
	}
	if len(workouts) == 0 {
		return WorkoutWithSets{}, fmt.Errorf("workout %s: %w", workoutID, ErrWorkoutNotFound)
	}
	return workouts[0], nil
}

// queryWorkoutsWithSets groups rows of selectWorkoutsWithSets by workout, keeping the row order.
func (r *sqliteWorkoutRepository) queryWorkoutsWithSets(
	ctx context.Context,
	query string,
	args ...any,
) (_ []WorkoutWithSets, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query workouts: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	var workouts []WorkoutWithSets
	for rows.Next() {
		var (
			w            Workout
			date         string
			planType     string
			setID        sql.NullInt64
			exerciseID   sql.NullInt64
			orderIndex   sql.NullInt64
			completed    sql.NullBool
			exerciseName sql.NullString
			set          LoggedSet
		)
		if err = rows.Scan(&w.ID, &w.UserID, &date, &planType, &w.Note,
			&setID, &exerciseID, &orderIndex, &set.WeightKg, &set.Reps, &set.RPE, &completed, &set.Notes,
			&exerciseName); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}

		if len(workouts) == 0 || workouts[len(workouts)-1].ID != w.ID {
			if w.Date, err = parseTimestamp(date); err != nil {
				return nil, err
			}
			w.PlanType = PlanType(planType)
			workouts = append(workouts, WorkoutWithSets{Workout: w, Sets: []LoggedSet{}})
		}
		if !setID.Valid {
			continue
		}
		set.ID = int(setID.Int64)
		set.WorkoutID = w.ID
		set.ExerciseID = int(exerciseID.Int64)
		set.OrderIndex = int(orderIndex.Int64)
		set.Completed = completed.Bool
		set.ExerciseName = exerciseName.String
		last := &workouts[len(workouts)-1]
		last.Sets = append(last.Sets, set)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workouts: %w", err)
	}
	return workouts, nil
}

func (r *sqliteWorkoutRepository) RecordResult(ctx context.Context, userID string, input RecordResultInput) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		var owner, storedPlanType string
		err := tx.QueryRowContext(ctx, "SELECT user_id, plan_type FROM workouts WHERE id = ?", input.WorkoutID).
			Scan(&owner, &storedPlanType)
		if errors.Is(err, sql.ErrNoRows) || (err == nil && owner != userID) {
			return fmt.Errorf("workout %s: %w", input.WorkoutID, ErrWorkoutNotFound)
		}
		if err != nil {
			return fmt.Errorf("query workout: %w", err)
		}
		planType := input.PlanType
		if planType == "" {
			planType = PlanType(storedPlanType)
		}

		if _, err = tx.ExecContext(ctx, `
			UPDATE workouts
			SET plan_type = ?, note = COALESCE(?, note)
			WHERE id = ?`, string(planType), input.Note, input.WorkoutID); err != nil {
			return fmt.Errorf("update workout: %w", err)
		}

		for _, s := range input.Sets {
			if _, err = tx.ExecContext(ctx, `
				INSERT INTO sets (workout_id, exercise_id, order_index, weight_kg, reps, rpe, completed, notes)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)
				ON CONFLICT (workout_id, order_index) DO UPDATE SET
					exercise_id = excluded.exercise_id,
					weight_kg = excluded.weight_kg,
					reps = excluded.reps,
					rpe = excluded.rpe,
					completed = excluded.completed,
					notes = excluded.notes`,
				input.WorkoutID, s.ExerciseID, s.OrderIndex, s.WeightKg, s.Reps, s.RPE, s.Completed, s.Notes,
			); err != nil {
				return fmt.Errorf("upsert set %d: %w", s.OrderIndex, err)
			}
		}

		if _, err = tx.ExecContext(ctx, `
			INSERT INTO user_settings (user_id, last_plan_type)
			VALUES (?, ?)
			ON CONFLICT (user_id) DO UPDATE SET last_plan_type = excluded.last_plan_type`,
			owner, string(planType)); err != nil {
			return fmt.Errorf("upsert rotation cursor: %w", err)
		}
		return nil
	})
}
