package workout

import (
	"context"
	"errors"
	"fmt"
)

// sqliteCardioRepository implements cardioRepository.
type sqliteCardioRepository struct {
	baseRepository
}

func (r *sqliteCardioRepository) Create(ctx context.Context, userID string, session CardioSession) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO cardio_sessions (id, user_id, exercise_id, date, duration_min, distance_m, intensity,
		                             avg_heart_rate, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID, userID, session.ExerciseID, formatTimestamp(session.Date), session.DurationMin,
		session.DistanceM, session.Intensity, session.AvgHeartRate, session.Notes); err != nil {
		return fmt.Errorf("insert cardio session: %w", err)
	}
	return nil
}

func (r *sqliteCardioRepository) List(ctx context.Context, userID string) (_ []CardioSession, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT c.id, c.exercise_id, e.name, c.date, c.duration_min, c.distance_m, c.intensity, c.avg_heart_rate,
		       c.notes
		FROM cardio_sessions c
		JOIN exercises e ON e.id = c.exercise_id
		WHERE c.user_id = ?
		ORDER BY c.date DESC, c.id`, userID)
	if err != nil {
		return nil, fmt.Errorf("query cardio sessions: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	var sessions []CardioSession
	for rows.Next() {
		var (
			s    CardioSession
			date string
		)
		if err = rows.Scan(&s.ID, &s.ExerciseID, &s.ExerciseName, &date, &s.DurationMin, &s.DistanceM,
			&s.Intensity, &s.AvgHeartRate, &s.Notes); err != nil {
			return nil, fmt.Errorf("scan cardio session: %w", err)
		}
		if s.Date, err = parseTimestamp(date); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cardio sessions: %w", err)
	}
	return sessions, nil
}
