package workout

import (
	"cmp"
	"slices"
)

// MergedSet is a drafted exercise reconciled with a set logged earlier in the same workout.
type MergedSet struct {
	// SetID is the id of the logged set this item was matched with, nil for new items.
	SetID        *int     `json:"id"`
	ExerciseID   int      `json:"exerciseId"`
	ExerciseName string   `json:"exerciseName"`
	OrderIndex   int      `json:"orderIndex"`
	Metric       Metric   `json:"metric"`
	WeightKg     *float64 `json:"weight"`
	Reps         *int     `json:"reps"`
	RPE          *float64 `json:"rpe"`
	Completed    bool     `json:"completed"`
	Notes        *string  `json:"notes"`
	TargetReps   string   `json:"targetReps"`
	// PreviousWeight and PreviousReps come from the last logged session of the exercise.
	PreviousWeight *float64 `json:"previousWeight"`
	PreviousReps   *string  `json:"previousReps"`
}

// MergeDraft reconciles draft with the sets already logged in the workout.
//
// Every drafted item claims at most one unclaimed logged set of the same exercise. Items whose draft position equals
// a logged set's order index claim first, the rest take the first unclaimed set of their exercise. Claimed sets keep
// their logged values and order index; unclaimed draft items start from the suggested weight and get order indices
// no logged set uses. Logged sets nobody claimed are kept with their order index. The result is ordered by order
// index and no two items share one, so saving it never overwrites logged work.
func MergeDraft(draft WorkoutDraft, existing []LoggedSet) []MergedSet {
	logged := slices.Clone(existing)
	slices.SortStableFunc(logged, func(a, b LoggedSet) int { return cmp.Compare(a.OrderIndex, b.OrderIndex) })
	claimed := make([]bool, len(logged))
	claims := make([]int, len(draft.Sets))
	for i := range claims {
		claims[i] = -1
	}
	for i, item := range draft.Sets {
		for j, s := range logged {
			if !claimed[j] && s.ExerciseID == item.ExerciseID && s.OrderIndex == i {
				claims[i] = j
				claimed[j] = true
				break
			}
		}
	}
	for i, item := range draft.Sets {
		if claims[i] != -1 {
			continue
		}
		for j, s := range logged {
			if !claimed[j] && s.ExerciseID == item.ExerciseID {
				claims[i] = j
				claimed[j] = true
				break
			}
		}
	}

	used := make(map[int]bool, len(logged))
	for _, s := range logged {
		used[s.OrderIndex] = true
	}
	nextFree := 0
	freeIndex := func() int {
		for used[nextFree] {
			nextFree++
		}
		used[nextFree] = true
		return nextFree
	}

	byExercise := make(map[int]DraftSet, len(draft.Sets))
	merged := make([]MergedSet, 0, len(draft.Sets)+len(logged))
	for i, item := range draft.Sets {
		if _, ok := byExercise[item.ExerciseID]; !ok {
			byExercise[item.ExerciseID] = item
		}

		m := MergedSet{
			SetID:          nil,
			ExerciseID:     item.ExerciseID,
			ExerciseName:   item.ExerciseName,
			OrderIndex:     0,
			Metric:         item.Metric,
			WeightKg:       item.SuggestedWeight,
			Reps:           nil,
			RPE:            nil,
			Completed:      false,
			Notes:          nil,
			TargetReps:     item.TargetReps,
			PreviousWeight: nil,
			PreviousReps:   nil,
		}
		if item.LastLogged != nil {
			m.PreviousWeight = item.LastLogged.Weight
			m.PreviousReps = item.LastLogged.Reps
		}

		if j := claims[i]; j != -1 {
			s := logged[j]
			m.SetID = &s.ID
			m.OrderIndex = s.OrderIndex
			if s.WeightKg != nil {
				m.WeightKg = s.WeightKg
			}
			m.Reps = s.Reps
			m.RPE = s.RPE
			m.Completed = s.Completed
			m.Notes = s.Notes
		} else {
			m.OrderIndex = freeIndex()
		}
		merged = append(merged, m)
	}

	for j, s := range logged {
		if claimed[j] {
			continue
		}
		m := MergedSet{
			SetID:          &s.ID,
			ExerciseID:     s.ExerciseID,
			ExerciseName:   s.ExerciseName,
			OrderIndex:     s.OrderIndex,
			Metric:         "",
			WeightKg:       s.WeightKg,
			Reps:           s.Reps,
			RPE:            s.RPE,
			Completed:      s.Completed,
			Notes:          s.Notes,
			TargetReps:     TargetRepRange,
			PreviousWeight: nil,
			PreviousReps:   nil,
		}
		if item, ok := byExercise[s.ExerciseID]; ok {
			m.Metric = item.Metric
			m.TargetReps = item.TargetReps
			if item.LastLogged != nil {
				m.PreviousWeight = item.LastLogged.Weight
				m.PreviousReps = item.LastLogged.Reps
			}
		}
		merged = append(merged, m)
	}

	slices.SortStableFunc(merged, func(a, b MergedSet) int { return cmp.Compare(a.OrderIndex, b.OrderIndex) })
	return merged
}
