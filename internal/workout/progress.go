package workout

import (
	"cmp"
	"context"
	"fmt"
	"math"
	"slices"
	"time"
)

// keyLifts get one-rep-max trends in the progress report.
//
//nolint:gochecknoglobals // static configuration.
var keyLifts = []string{"Bench Press", "Squat", "Deadlift"}

// WeeklyVolume is the summed weight times reps of the week starting Monday Week.
type WeeklyVolume struct {
	Week        string  `json:"week"`
	TotalVolume float64 `json:"totalVolume"`
}

// OneRepMaxPoint is an estimated one-rep max of a single set.
type OneRepMaxPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// OneRepMaxTrend lists the estimates of a lift in chronological order.
type OneRepMaxTrend struct {
	Lift   string           `json:"lift"`
	Points []OneRepMaxPoint `json:"points"`
}

// ProgressReport summarizes training volume, strength trends and consistency.
type ProgressReport struct {
	VolumePerWeek   []WeeklyVolume   `json:"volumePerWeek"`
	OneRepMaxTrends []OneRepMaxTrend `json:"oneRepMaxTrends"`
	Streak          int              `json:"streak"`
}

// Progress computes the progress report of the user.
func (s *Service) Progress(ctx context.Context, userID string) (ProgressReport, error) {
	workouts, err := s.repo.workouts.List(ctx, userID, nil, nil)
	if err != nil {
		return ProgressReport{}, fmt.Errorf("list workouts: %w", err)
	}
	return progressReport(workouts), nil
}

// progressReport expects workouts newest first.
func progressReport(workouts []WorkoutWithSets) ProgressReport {
	volumeByWeek := make(map[string]float64)
	trends := make([]OneRepMaxTrend, len(keyLifts))
	for i, lift := range keyLifts {
		trends[i] = OneRepMaxTrend{Lift: lift, Points: []OneRepMaxPoint{}}
	}

	for _, w := range workouts {
		week := startOfWeek(w.Date).Format(time.DateOnly)
		for _, set := range w.Sets {
			if set.WeightKg == nil || set.Reps == nil {
				continue
			}
			volume := *set.WeightKg * float64(*set.Reps)
			if volume <= 0 {
				continue
			}
			volumeByWeek[week] += volume
			if i := slices.Index(keyLifts, set.ExerciseName); i != -1 {
				trends[i].Points = append(trends[i].Points, OneRepMaxPoint{
					Date:  w.Date,
					Value: math.Round(epleyOneRepMax(*set.WeightKg, *set.Reps)*10) / 10, //nolint:mnd // one decimal
				})
			}
		}
	}

	volume := make([]WeeklyVolume, 0, len(volumeByWeek))
	for week, total := range volumeByWeek {
		volume = append(volume, WeeklyVolume{Week: week, TotalVolume: total})
	}
	slices.SortFunc(volume, func(a, b WeeklyVolume) int { return cmp.Compare(a.Week, b.Week) })
	for _, trend := range trends {
		slices.SortStableFunc(trend.Points, func(a, b OneRepMaxPoint) int { return a.Date.Compare(b.Date) })
	}

	return ProgressReport{
		VolumePerWeek:   volume,
		OneRepMaxTrends: trends,
		Streak:          streak(workouts),
	}
}

// epleyOneRepMax estimates the one-rep max from a set of reps at weight.
func epleyOneRepMax(weight float64, reps int) float64 {
	return weight * (1 + float64(reps)/30) //nolint:mnd // Epley formula
}

// startOfWeek returns the Monday starting the UTC week of t.
func startOfWeek(t time.Time) time.Time {
	t = t.UTC()
	offset := (int(t.Weekday()) + 6) % 7 //nolint:mnd // Monday is day zero
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// streak counts consecutive calendar days with a workout, walking back from the most recent workout.
// Several workouts on the same day count once.
func streak(workouts []WorkoutWithSets) int {
	if len(workouts) == 0 {
		return 0
	}
	count := 1
	previous := calendarDay(workouts[0].Date)
	for _, w := range workouts[1:] {
		current := calendarDay(w.Date)
		switch diff := int(previous.Sub(current).Hours() / 24); { //nolint:mnd // hours per day
		case diff == 1:
			count++
			previous = current
		case diff > 1:
			return count
		}
	}
	return count
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
