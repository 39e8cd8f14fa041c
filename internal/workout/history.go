package workout

import "time"

// historyRow is one logged set as read for history aggregation.
type historyRow struct {
	workoutID string
	date      time.Time
	weightKg  *float64
	reps      *int
	rpe       *float64
}

// summarizeSessions groups rows, ordered by workout date descending then order index, into one SetHistory per
// workout in first-seen order and keeps at most limit sessions.
func summarizeSessions(rows []historyRow, limit int) []SetHistory {
	var (
		histories []SetHistory
		seenReps  []bool
		index     = make(map[string]int)
	)
	for _, row := range rows {
		i, ok := index[row.workoutID]
		if !ok {
			i = len(histories)
			index[row.workoutID] = i
			histories = append(histories, SetHistory{
				WorkoutID: row.workoutID,
				Date:      row.date,
				Weight:    row.weightKg,
				MinReps:   0,
				MaxReps:   0,
				RPE:       nil,
			})
			seenReps = append(seenReps, false)
		}
		h := &histories[i]
		if row.weightKg != nil {
			h.Weight = row.weightKg
		}
		if row.rpe != nil {
			h.RPE = row.rpe
		}
		if row.reps != nil {
			if !seenReps[i] {
				h.MinReps, h.MaxReps = *row.reps, *row.reps
				seenReps[i] = true
			} else {
				h.MinReps = min(h.MinReps, *row.reps)
				h.MaxReps = max(h.MaxReps, *row.reps)
			}
		}
	}
	limit = max(limit, 0)
	if len(histories) > limit {
		histories = histories[:limit]
	}
	return histories
}
