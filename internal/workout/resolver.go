package workout

import "slices"

// resolvePlanType picks the plan type of the next workout.
//
// A valid override wins, then a valid stored cursor, then the split family derived from settings advanced one step
// past the latest workout's plan type. latest is nil for users without workouts.
func resolvePlanType(override *PlanType, settings UserSettings, latest *Workout) PlanType {
	if override != nil && override.Valid() {
		return *override
	}
	if settings.LastPlanType != nil {
		if p, err := ParsePlanType(*settings.LastPlanType); err == nil {
			return p
		}
	}

	family := splitFamilyForDays(settings.DaysPerWeek)
	if family == SplitFullBody {
		return PlanFullBody
	}
	sequence := family.Sequence()
	if latest == nil {
		return sequence[0]
	}
	i := slices.Index(sequence, latest.PlanType)
	if i == -1 {
		return sequence[0]
	}
	return sequence[(i+1)%len(sequence)]
}
