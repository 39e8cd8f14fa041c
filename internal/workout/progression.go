package workout

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Weight progression constants.
const (
	StandardWeightIncrementKg = 2.5
	LargeLiftIncrementKg      = 5.0
	FallbackSeedWeightKg      = 20.0
)

// seedWeights are matched in order against the lowercased exercise name. First match wins.
//
//nolint:gochecknoglobals // static configuration.
var seedWeights = []struct {
	substring string
	weightKg  float64
}{
	{substring: "deadlift", weightKg: 60},
	{substring: "squat", weightKg: 50},
	{substring: "bench", weightKg: 40},
	{substring: "press", weightKg: 30},
	{substring: "row", weightKg: 30},
	{substring: "curl", weightKg: 12},
	{substring: "extension", weightKg: 25},
	{substring: "pushdown", weightKg: 20},
}

// seedWeight is the starting weight for an exercise without usable history.
func seedWeight(name string) float64 {
	lower := strings.ToLower(name)
	for _, s := range seedWeights {
		if strings.Contains(lower, s.substring) {
			return s.weightKg
		}
	}
	return FallbackSeedWeightKg
}

// weightIncrement is the progression step of an exercise.
func weightIncrement(name string) float64 {
	if slices.Contains(largeLifts, name) {
		return LargeLiftIncrementKg
	}
	return StandardWeightIncrementKg
}

// SuggestedWeight computes the next working weight from the two most recent sessions, most recent first.
//
// Exactly one adjustment applies, checked in order: deload when the last session's minimum reps fell below
// DeloadRepsBelow, progress when the last session hit TargetRepsMax at RPE 7 or below (or without RPE), progress
// when both sessions hit TargetRepsMax and the last weight is known. The result is rounded to the nearest 0.5 kg.
// Nil means weight does not apply to the exercise.
func SuggestedWeight(name string, metric Metric, histories []SetHistory) *float64 {
	if metric != MetricKgReps {
		return nil
	}
	if strings.Contains(strings.ToLower(name), "pull-up") {
		return nil
	}
	if len(histories) == 0 {
		w := roundToHalf(seedWeight(name))
		return &w
	}

	last := histories[0]
	suggested := seedWeight(name)
	if last.Weight != nil {
		suggested = *last.Weight
	}

	increment := weightIncrement(name)
	switch {
	case last.MinReps < DeloadRepsBelow:
		suggested = max(0, suggested-increment)
	case last.MaxReps >= TargetRepsMax && (last.RPE == nil || *last.RPE <= RPETarget):
		suggested += increment
	case len(histories) > 1 && histories[1].MaxReps >= TargetRepsMax &&
		last.MaxReps >= TargetRepsMax && last.Weight != nil:
		suggested += increment
	}

	suggested = roundToHalf(suggested)
	return &suggested
}

// roundToHalf rounds half away from zero to the nearest 0.5 for the non-negative weights used here.
func roundToHalf(w float64) float64 {
	return math.Floor(w*2+0.5) / 2 //nolint:mnd // half kilograms
}

// lastLoggedSummary describes the most recent session or returns nil when there is none.
func lastLoggedSummary(histories []SetHistory) *LastLogged {
	if len(histories) == 0 {
		return nil
	}
	last := histories[0]
	return &LastLogged{
		Weight: last.Weight,
		Reps:   repsSummary(last.MinReps, last.MaxReps),
	}
}

// repsSummary formats a rep range as "8-12 reps" or "10 reps". Nil when no reps were recorded.
func repsSummary(minReps, maxReps int) *string {
	if minReps == 0 && maxReps == 0 {
		return nil
	}
	var s string
	if minReps != maxReps {
		s = strconv.Itoa(minReps) + "-" + strconv.Itoa(maxReps) + " reps"
	} else {
		s = strconv.Itoa(maxReps) + " reps"
	}
	return &s
}
