package workout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// sqliteSettingsRepository implements settingsRepository.
type sqliteSettingsRepository struct {
	baseRepository
}

func (r *sqliteSettingsRepository) Get(ctx context.Context, userID string) (UserSettings, error) {
	return getSettings(ctx, r.db.ReadOnly, userID)
}

func (r *sqliteSettingsRepository) Update(
	ctx context.Context,
	userID string,
	update SettingsUpdate,
) (UserSettings, error) {
	var settings UserSettings
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO user_settings (user_id, goal, days_per_week, equipment_profile)
			VALUES (?, COALESCE(?, ''), ?, COALESCE(?, ''))
			ON CONFLICT (user_id) DO UPDATE SET
				goal = COALESCE(?, goal),
				days_per_week = COALESCE(?, days_per_week),
				equipment_profile = COALESCE(?, equipment_profile)`,
			userID, update.Goal, update.DaysPerWeek, update.EquipmentProfile,
			update.Goal, update.DaysPerWeek, update.EquipmentProfile); err != nil {
			return fmt.Errorf("upsert settings: %w", err)
		}
		var err error
		settings, err = getSettings(ctx, tx, userID)
		return err
	})
	if err != nil {
		return UserSettings{}, err
	}
	return settings, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getSettings(ctx context.Context, q queryRower, userID string) (UserSettings, error) {
	settings := UserSettings{
		UserID:           userID,
		Goal:             "",
		DaysPerWeek:      nil,
		EquipmentProfile: "",
		LastPlanType:     nil,
	}
	err := q.QueryRowContext(ctx, `
		SELECT goal, days_per_week, equipment_profile, last_plan_type
		FROM user_settings
		WHERE user_id = ?`, userID).
		Scan(&settings.Goal, &settings.DaysPerWeek, &settings.EquipmentProfile, &settings.LastPlanType)
	if errors.Is(err, sql.ErrNoRows) {
		return settings, nil
	}
	if err != nil {
		return UserSettings{}, fmt.Errorf("query settings: %w", err)
	}
	return settings, nil
}

// sqliteUserRepository implements userRepository.
type sqliteUserRepository struct {
	baseRepository
}

func (r *sqliteUserRepository) Ensure(ctx context.Context, userID string) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, "INSERT INTO users (id) VALUES (?) ON CONFLICT (id) DO NOTHING", userID)
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		created, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("get rows affected: %w", err)
		}
		if created == 0 {
			return nil
		}
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO user_settings (user_id, goal, days_per_week, equipment_profile)
			VALUES (?, ?, ?, ?)
			ON CONFLICT (user_id) DO NOTHING`,
			userID, DefaultGoal, DefaultDaysPerWeek, DefaultEquipmentProfile); err != nil {
			return fmt.Errorf("insert default settings: %w", err)
		}
		return nil
	})
}

func (r *sqliteUserRepository) DeleteData(ctx context.Context, userID string) error {
	return r.withTx(ctx, func(tx *sql.Tx) error {
		// Sets cascade with their workouts.
		for _, stmt := range []string{
			"DELETE FROM workouts WHERE user_id = ?",
			"DELETE FROM cardio_sessions WHERE user_id = ?",
			"DELETE FROM user_settings WHERE user_id = ?",
		} {
			if _, err := tx.ExecContext(ctx, stmt, userID); err != nil {
				return fmt.Errorf("delete user data: %w", err)
			}
		}
		return nil
	})
}
