package workout

import "slices"

// Draft constants.
const (
	TargetRepRange   = "8-12"
	TargetRepsMax    = 12
	DeloadRepsBelow  = 6
	RPETarget        = 7.0
	MinDraftSize     = 6
	MaxDraftSize     = 12
	HistorySessions  = 2
	historyOverFetch = 3
)

// templates are the fixed exercise name lists per plan type.
//
//nolint:gochecknoglobals // static configuration.
var templates = map[PlanType][]string{
	PlanFullBody: {"Squat", "Bench Press", "Deadlift", "Shoulder Press (Dumbbell)", "Seated Row", "Pull-up"},
	PlanUpper: {"Bench Press", "Shoulder Press (Dumbbell)", "Seated Row", "Pull-up", "Biceps Curl (EZ-bar)",
		"Triceps Rope Pushdown"},
	PlanLower: {"Squat", "Deadlift", "Leg Extension"},
	PlanPush: {"Bench Press", "Shoulder Press (Dumbbell)", "Shoulder Press (Dumbbell)",
		"Triceps Rope Pushdown"},
	PlanPull: {"Deadlift", "Seated Row", "Pull-up", "Biceps Curl (EZ-bar)"},
	PlanLegs: {"Squat", "Leg Extension"},
}

// templateNames returns the deduplicated template of p. Plan types without a template use the full body one.
func templateNames(p PlanType) []string {
	names, ok := templates[p]
	if !ok {
		names = templates[PlanFullBody]
	}
	deduped := make([]string, 0, len(names))
	for _, name := range names {
		if !slices.Contains(deduped, name) {
			deduped = append(deduped, name)
		}
	}
	return deduped
}

// muscleWhitelist returns the primary muscles allowed in a randomized strength pool. Nil allows all.
func muscleWhitelist(p PlanType) []string {
	switch p {
	case PlanUpper:
		return []string{"Chest", "Back", "Shoulders", "Biceps", "Triceps"}
	case PlanPush:
		return []string{"Chest", "Shoulders", "Triceps"}
	case PlanPull:
		return []string{"Back", "Biceps"}
	case PlanLower, PlanLegs:
		return []string{"Quads", "Hamstrings", "Glutes", "Calves"}
	case PlanFullBody, PlanCardio, PlanYoga:
		return nil
	default:
		return nil
	}
}

// largeLifts progress with LargeLiftIncrementKg.
//
//nolint:gochecknoglobals // static configuration.
var largeLifts = []string{"Bench Press", "Squat", "Deadlift", "Shoulder Press (Dumbbell)"}
