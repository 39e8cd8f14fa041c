package workout

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"golang.org/x/sync/errgroup"
)

// RandSource is the randomness used to pick exercises. *rand.Rand satisfies it.
type RandSource interface {
	IntN(n int) int
}

// globalRand draws from the math/rand/v2 top-level generator.
type globalRand struct{}

func (globalRand) IntN(n int) int {
	return rand.IntN(n) //nolint:gosec // exercise selection is not security sensitive
}

// SelectionStrategy decides how exercises are picked for a draft.
type SelectionStrategy string

const (
	// StrategyRandom samples a muscle filtered pool and falls back to templates when the pool is empty.
	StrategyRandom SelectionStrategy = "random"
	// StrategyTemplate uses the fixed template of the plan type.
	StrategyTemplate SelectionStrategy = "template"
)

// ParseSelectionStrategy validates s as a selection strategy.
func ParseSelectionStrategy(s string) (SelectionStrategy, error) {
	switch strategy := SelectionStrategy(s); strategy {
	case StrategyRandom, StrategyTemplate:
		return strategy, nil
	default:
		return "", fmt.Errorf("unknown selection strategy %q", s)
	}
}

// historyFetchLimit bounds concurrent history lookups per draft.
const historyFetchLimit = 4

// draftBuilder turns a plan type into a WorkoutDraft.
type draftBuilder struct {
	exercises exerciseRepository
	sets      setRepository
	strategy  SelectionStrategy
	rand      RandSource
}

func (b *draftBuilder) build(ctx context.Context, userID string, planType PlanType) (WorkoutDraft, error) {
	var (
		selected []Exercise
		err      error
	)
	if b.strategy == StrategyRandom {
		if selected, err = b.randomSelection(ctx, planType); err != nil {
			return WorkoutDraft{}, err
		}
	}
	if len(selected) == 0 {
		if selected, err = b.templateSelection(ctx, planType); err != nil {
			return WorkoutDraft{}, err
		}
	}

	draftSets := make([]DraftSet, len(selected))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(historyFetchLimit)
	for i, exercise := range selected {
		g.Go(func() error {
			histories, historyErr := b.sets.History(gctx, userID, exercise.ID, HistorySessions)
			if historyErr != nil {
				return fmt.Errorf("history of %s: %w", exercise.Name, historyErr)
			}
			rpe := RPETarget
			draftSets[i] = DraftSet{
				ExerciseID:      exercise.ID,
				ExerciseName:    exercise.Name,
				TargetReps:      TargetRepRange,
				SuggestedWeight: SuggestedWeight(exercise.Name, exercise.Metric, histories),
				RPETarget:       &rpe,
				OrderIndex:      i,
				Metric:          exercise.Metric,
				LastLogged:      lastLoggedSummary(histories),
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return WorkoutDraft{}, err
	}

	return WorkoutDraft{
		PlanType: planType,
		Sets:     draftSets,
	}, nil
}

// templateSelection resolves the template of planType through the catalog.
func (b *draftBuilder) templateSelection(ctx context.Context, planType PlanType) ([]Exercise, error) {
	names := templateNames(planType)
	selected := make([]Exercise, 0, len(names))
	for _, name := range names {
		exercise, err := b.exercises.FindByName(ctx, name)
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrExerciseMissing, name)
		}
		if err != nil {
			return nil, fmt.Errorf("find exercise %s: %w", name, err)
		}
		selected = append(selected, exercise)
	}
	return selected, nil
}

// randomSelection samples between MinDraftSize and MaxDraftSize exercises from the pool of planType.
func (b *draftBuilder) randomSelection(ctx context.Context, planType PlanType) ([]Exercise, error) {
	pool, err := b.pool(ctx, planType)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, nil
	}
	count := min(len(pool), MinDraftSize+b.rand.IntN(MaxDraftSize-MinDraftSize+1))
	for i := len(pool) - 1; i > 0; i-- {
		j := b.rand.IntN(i + 1)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:count], nil
}

func (b *draftBuilder) pool(ctx context.Context, planType PlanType) ([]Exercise, error) {
	switch planType {
	case PlanCardio:
		return b.findByCategory(ctx, CategoryCardio, nil)
	case PlanYoga:
		return b.findByCategory(ctx, CategoryYoga, nil)
	case PlanFullBody, PlanUpper, PlanLower, PlanPush, PlanPull, PlanLegs:
	}

	pool, err := b.findByCategory(ctx, CategoryStrength, muscleWhitelist(planType))
	if err != nil || len(pool) >= MinDraftSize {
		return pool, err
	}
	all, err := b.findByCategory(ctx, CategoryStrength, nil)
	if err != nil {
		return nil, err
	}
	for _, exercise := range all {
		if !slices.ContainsFunc(pool, func(e Exercise) bool { return e.ID == exercise.ID }) {
			pool = append(pool, exercise)
		}
	}
	return pool, nil
}

func (b *draftBuilder) findByCategory(ctx context.Context, category Category, muscles []string) ([]Exercise, error) {
	exercises, err := b.exercises.FindByCategory(ctx, category, muscles)
	if err != nil {
		return nil, fmt.Errorf("find %s exercises: %w", category, err)
	}
	return exercises, nil
}
