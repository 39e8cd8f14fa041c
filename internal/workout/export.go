package workout

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/myrjola/fitfokus/internal/ptr"
)

// ExportData is every workout, set and cardio session of a user.
type ExportData struct {
	Workouts []Workout       `json:"workouts"`
	Sets     []LoggedSet     `json:"sets"`
	Cardio   []CardioSession `json:"cardio"`
}

// Export collects the training data of the user, newest first.
func (s *Service) Export(ctx context.Context, userID string) (ExportData, error) {
	workouts, err := s.repo.workouts.List(ctx, userID, nil, nil)
	if err != nil {
		return ExportData{}, fmt.Errorf("list workouts: %w", err)
	}
	cardio, err := s.repo.cardio.List(ctx, userID)
	if err != nil {
		return ExportData{}, fmt.Errorf("list cardio sessions: %w", err)
	}
	data := ExportData{
		Workouts: make([]Workout, 0, len(workouts)),
		Sets:     []LoggedSet{},
		Cardio:   cardio,
	}
	if data.Cardio == nil {
		data.Cardio = []CardioSession{}
	}
	for _, w := range workouts {
		data.Workouts = append(data.Workouts, w.Workout)
		data.Sets = append(data.Sets, w.Sets...)
	}
	return data, nil
}

// WriteCSV writes data as "# Workouts", "# Sets" and "# Cardio" sections separated by blank lines.
func WriteCSV(w io.Writer, data ExportData) error {
	workouts := [][]string{{"id", "date", "planType", "note"}}
	for _, wo := range data.Workouts {
		workouts = append(workouts, []string{wo.ID, exportTime(wo.Date), wo.PlanType.String(), ptr.Deref(wo.Note, "")})
	}
	sets := [][]string{{"workoutId", "exercise", "orderIndex", "weightKg", "reps", "rpe", "completed", "notes"}}
	for _, s := range data.Sets {
		sets = append(sets, []string{
			s.WorkoutID,
			s.ExerciseName,
			strconv.Itoa(s.OrderIndex),
			formatFloat(s.WeightKg),
			formatInt(s.Reps),
			formatFloat(s.RPE),
			strconv.FormatBool(s.Completed),
			ptr.Deref(s.Notes, ""),
		})
	}
	cardio := [][]string{{"id", "date", "exercise", "durationMin", "distanceM", "intensity", "notes"}}
	for _, c := range data.Cardio {
		cardio = append(cardio, []string{
			c.ID,
			exportTime(c.Date),
			c.ExerciseName,
			strconv.Itoa(c.DurationMin),
			formatInt(c.DistanceM),
			strconv.Itoa(c.Intensity),
			ptr.Deref(c.Notes, ""),
		})
	}

	for i, section := range []struct {
		title string
		rows  [][]string
	}{
		{title: "Workouts", rows: workouts},
		{title: "Sets", rows: sets},
		{title: "Cardio", rows: cardio},
	} {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return fmt.Errorf("write separator: %w", err)
			}
		}
		if _, err := io.WriteString(w, "# "+section.title+"\n"); err != nil {
			return fmt.Errorf("write %s title: %w", section.title, err)
		}
		cw := csv.NewWriter(w)
		if err := cw.WriteAll(section.rows); err != nil {
			return fmt.Errorf("write %s rows: %w", section.title, err)
		}
	}
	return nil
}

func exportTime(t time.Time) string {
	return t.UTC().Format(timestampFormat)
}

func formatFloat(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func formatInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
