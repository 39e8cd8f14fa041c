package workout

import (
	"context"
	"errors"
	"fmt"
)

// sqliteSetRepository implements setRepository.
type sqliteSetRepository struct {
	baseRepository
}

func (r *sqliteSetRepository) History(
	ctx context.Context,
	userID string,
	exerciseID int,
	sessionLimit int,
) (_ []SetHistory, err error) {
	if sessionLimit <= 0 {
		return nil, nil
	}
	// Sessions usually hold several sets of the same exercise, so over-fetch rows.
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT w.id, w.date, s.weight_kg, s.reps, s.rpe
		FROM sets s
		JOIN workouts w ON w.id = s.workout_id
		WHERE w.user_id = ? AND s.exercise_id = ?
		ORDER BY w.date DESC, w.id, s.order_index
		LIMIT ?`, userID, exerciseID, sessionLimit*historyOverFetch)
	if err != nil {
		return nil, fmt.Errorf("query set history: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	var history []historyRow
	for rows.Next() {
		var (
			row  historyRow
			date string
		)
		if err = rows.Scan(&row.workoutID, &date, &row.weightKg, &row.reps, &row.rpe); err != nil {
			return nil, fmt.Errorf("scan set history: %w", err)
		}
		if row.date, err = parseTimestamp(date); err != nil {
			return nil, err
		}
		history = append(history, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate set history: %w", err)
	}

	return summarizeSessions(history, sessionLimit), nil
}

func (r *sqliteSetRepository) ListByWorkout(ctx context.Context, workoutID string) (_ []LoggedSet, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT s.id, s.workout_id, s.exercise_id, s.order_index, s.weight_kg, s.reps, s.rpe, s.completed, s.notes,
		       e.name
		FROM sets s
		JOIN exercises e ON e.id = s.exercise_id
		WHERE s.workout_id = ?
		ORDER BY s.order_index`, workoutID)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	var sets []LoggedSet
	for rows.Next() {
		var s LoggedSet
		if s, err = scanLoggedSet(rows); err != nil {
			return nil, err
		}
		sets = append(sets, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sets: %w", err)
	}
	return sets, nil
}

func scanLoggedSet(s scanner) (LoggedSet, error) {
	var ls LoggedSet
	if err := s.Scan(&ls.ID, &ls.WorkoutID, &ls.ExerciseID, &ls.OrderIndex, &ls.WeightKg, &ls.Reps, &ls.RPE,
		&ls.Completed, &ls.Notes, &ls.ExerciseName); err != nil {
		return LoggedSet{}, fmt.Errorf("scan set: %w", err)
	}
	return ls, nil
}
