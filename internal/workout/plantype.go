package workout

import (
	"fmt"
	"slices"
)

// PlanType identifies the training split of a workout.
type PlanType string

const (
	PlanFullBody PlanType = "full_body"
	PlanUpper    PlanType = "upper"
	PlanLower    PlanType = "lower"
	PlanPush     PlanType = "push"
	PlanPull     PlanType = "pull"
	PlanLegs     PlanType = "legs"
	PlanCardio   PlanType = "cardio"
	PlanYoga     PlanType = "yoga"
)

// PlanTypes lists every known plan type.
//
//nolint:gochecknoglobals // closed enumeration.
var PlanTypes = []PlanType{
	PlanFullBody, PlanUpper, PlanLower, PlanPush, PlanPull, PlanLegs, PlanCardio, PlanYoga,
}

// ParsePlanType validates s as a known plan type.
func ParsePlanType(s string) (PlanType, error) {
	p := PlanType(s)
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownPlanType, s)
	}
	return p, nil
}

// Valid reports whether p is a known plan type.
func (p PlanType) Valid() bool {
	return slices.Contains(PlanTypes, p)
}

func (p PlanType) String() string {
	return string(p)
}

// SplitFamily is a rotation of plan types chosen by training frequency.
type SplitFamily string

const (
	SplitFullBody     SplitFamily = "full_body"
	SplitUpperLower   SplitFamily = "upper_lower"
	SplitPushPullLegs SplitFamily = "push_pull_legs"
)

// splitFamilyForDays maps days per week to a split family. Unknown frequency trains full body.
func splitFamilyForDays(daysPerWeek *int) SplitFamily {
	switch {
	case daysPerWeek == nil || *daysPerWeek <= 2: //nolint:mnd // two days or fewer
		return SplitFullBody
	case *daysPerWeek <= 4: //nolint:mnd // three to four days
		return SplitUpperLower
	default:
		return SplitPushPullLegs
	}
}

// Sequence returns the rotation order of the family.
func (f SplitFamily) Sequence() []PlanType {
	switch f {
	case SplitUpperLower:
		return []PlanType{PlanUpper, PlanLower}
	case SplitPushPullLegs:
		return []PlanType{PlanPush, PlanPull, PlanLegs}
	case SplitFullBody:
		return []PlanType{PlanFullBody}
	default:
		return []PlanType{PlanFullBody}
	}
}
