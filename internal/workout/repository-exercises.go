package workout

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// sqliteExerciseRepository implements exerciseRepository.
type sqliteExerciseRepository struct {
	baseRepository
}

const exerciseColumns = "id, name, category, equipment, primary_muscle, metric"

func (r *sqliteExerciseRepository) FindByName(ctx context.Context, name string) (Exercise, error) {
	row := r.db.ReadOnly.QueryRowContext(ctx,
		"SELECT "+exerciseColumns+" FROM exercises WHERE name = ?", name)
	ex, err := scanExercise(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Exercise{}, fmt.Errorf("exercise %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return Exercise{}, fmt.Errorf("query exercise %q: %w", name, err)
	}
	return ex, nil
}

func (r *sqliteExerciseRepository) FindByCategory(
	ctx context.Context,
	category Category,
	muscles []string,
) ([]Exercise, error) {
	query := "SELECT " + exerciseColumns + " FROM exercises WHERE category = ?"
	args := []any{string(category)}
	if muscles != nil {
		if len(muscles) == 0 {
			return nil, nil
		}
		query += " AND primary_muscle IN (?" + strings.Repeat(", ?", len(muscles)-1) + ")"
		for _, m := range muscles {
			args = append(args, m)
		}
	}
	query += " ORDER BY id"

	exercises, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exercises by category %s: %w", category, err)
	}
	return exercises, nil
}

func (r *sqliteExerciseRepository) List(ctx context.Context) ([]Exercise, error) {
	exercises, err := r.query(ctx, "SELECT "+exerciseColumns+" FROM exercises ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	return exercises, nil
}

func (r *sqliteExerciseRepository) query(ctx context.Context, query string, args ...any) (_ []Exercise, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer func() {
		err = errors.Join(err, rows.Close())
	}()

	var exercises []Exercise
	for rows.Next() {
		var ex Exercise
		if ex, err = scanExercise(rows); err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, ex)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}
	return exercises, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanExercise(s scanner) (Exercise, error) {
	var (
		ex       Exercise
		category string
		metric   string
	)
	if err := s.Scan(&ex.ID, &ex.Name, &category, &ex.Equipment, &ex.PrimaryMuscle, &metric); err != nil {
		return Exercise{}, err //nolint:wrapcheck // callers wrap with context.
	}
	ex.Category = Category(category)
	ex.Metric = Metric(metric)
	return ex, nil
}
