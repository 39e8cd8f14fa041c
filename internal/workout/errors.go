package workout

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist.
	ErrNotFound = errors.New("not found")
	// ErrExerciseMissing signals that a template names an exercise the catalog does not have.
	ErrExerciseMissing = errors.New("exercise missing from catalog")
	// ErrWorkoutNotFound is returned when recording results for an unknown workout.
	ErrWorkoutNotFound = errors.New("workout not found")
	// ErrUnknownPlanType is returned when parsing a string that is not a known plan type.
	ErrUnknownPlanType = errors.New("unknown plan type")
)
