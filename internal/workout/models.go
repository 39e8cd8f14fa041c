// Package workout resolves the next training split, drafts workouts with progressive overload suggestions, and
// records logged results.
package workout

import (
	"time"
)

// Category groups exercises in the catalog.
type Category string

const (
	CategoryStrength Category = "Strength"
	CategoryCardio   Category = "Cardio"
	CategoryYoga     Category = "Yoga"
	CategoryCore     Category = "Core"
)

// Metric determines how an exercise is measured.
type Metric string

const (
	MetricKgReps              Metric = "kg_reps"
	MetricBodyweightReps      Metric = "bodyweight_reps"
	MetricDurationMin         Metric = "duration_min"
	MetricDurationMinDistance Metric = "duration_min_distance_m"
)

// Exercise is a catalog entry, e.g. Squat or Cycling (Stationary).
type Exercise struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	Equipment     *string  `json:"equipment"`
	PrimaryMuscle *string  `json:"primaryMuscle"`
	Metric        Metric   `json:"metric"`
}

// Set is one logged working set. (WorkoutID, OrderIndex) is unique.
type Set struct {
	ID         int      `json:"id"`
	WorkoutID  string   `json:"workoutId"`
	ExerciseID int      `json:"exerciseId"`
	OrderIndex int      `json:"orderIndex"`
	WeightKg   *float64 `json:"weightKg"`
	Reps       *int     `json:"reps"`
	RPE        *float64 `json:"rpe"`
	Completed  bool     `json:"completed"`
	Notes      *string  `json:"notes"`
}

// LoggedSet is a Set together with the name of its exercise.
type LoggedSet struct {
	Set
	ExerciseName string `json:"exerciseName"`
}

// Workout is a dated training session.
type Workout struct {
	ID       string    `json:"id"`
	UserID   string    `json:"-"`
	Date     time.Time `json:"date"`
	PlanType PlanType  `json:"planType"`
	Note     *string   `json:"note"`
}

// WorkoutWithSets is a Workout with its sets ordered by order index.
type WorkoutWithSets struct {
	Workout
	Sets []LoggedSet `json:"sets"`
}

// UserSettings holds the training preferences and the plan type rotation cursor of a user.
type UserSettings struct {
	UserID           string  `json:"-"`
	Goal             string  `json:"goal"`
	DaysPerWeek      *int    `json:"daysPerWeek"`
	EquipmentProfile string  `json:"equipmentProfile"`
	LastPlanType     *string `json:"lastPlanType"`
}

// Default settings for new users.
const (
	DefaultGoal             = "Styrke + kondition"
	DefaultDaysPerWeek      = 4
	DefaultEquipmentProfile = "Fitnesscenter (maskiner + frie vægte)"
)

// SettingsUpdate is a partial update of UserSettings. Nil fields are left unchanged.
type SettingsUpdate struct {
	Goal             *string `json:"goal"`
	DaysPerWeek      *int    `json:"daysPerWeek"`
	EquipmentProfile *string `json:"equipmentProfile"`
}

// SetHistory summarizes one past session of an exercise.
type SetHistory struct {
	WorkoutID string
	Date      time.Time
	// Weight is the last non-null weight logged in the session.
	Weight *float64
	// MinReps and MaxReps are 0 when no reps were logged.
	MinReps int
	MaxReps int
	// RPE is the last non-null RPE logged in the session.
	RPE *float64
}

// LastLogged summarizes the most recent session of an exercise for display.
type LastLogged struct {
	Weight *float64 `json:"weight"`
	Reps   *string  `json:"reps"`
}

// DraftSet is one proposed exercise in a WorkoutDraft.
type DraftSet struct {
	ExerciseID      int         `json:"exerciseId"`
	ExerciseName    string      `json:"exerciseName"`
	TargetReps      string      `json:"targetReps"`
	SuggestedWeight *float64    `json:"suggestedWeight"`
	RPETarget       *float64    `json:"rpeTarget"`
	OrderIndex      int         `json:"orderIndex"`
	Metric          Metric      `json:"metric"`
	LastLogged      *LastLogged `json:"lastLogged"`
}

// WorkoutDraft is a computed, never persisted, workout proposal.
type WorkoutDraft struct {
	PlanType PlanType   `json:"planType"`
	Sets     []DraftSet `json:"sets"`
}

// RecordSetInput is one set submitted for recording.
type RecordSetInput struct {
	ExerciseID int      `json:"exerciseId"`
	OrderIndex int      `json:"orderIndex"`
	WeightKg   *float64 `json:"weightKg"`
	Reps       *int     `json:"reps"`
	RPE        *float64 `json:"rpe"`
	Completed  bool     `json:"completed"`
	Notes      *string  `json:"notes"`
}

// RecordResultInput is the payload of RecordResult. A nil Note leaves the stored note unchanged and an empty PlanType
// keeps the plan type of the workout.
type RecordResultInput struct {
	WorkoutID string           `json:"workoutId"`
	PlanType  PlanType         `json:"planType"`
	Note      *string          `json:"note"`
	Sets      []RecordSetInput `json:"sets"`
}

// NewWorkout describes a workout to create. A zero Date means the reference date of the call.
type NewWorkout struct {
	PlanType PlanType
	Note     *string
	Date     time.Time
}

// CardioSession is a logged cardio activity.
type CardioSession struct {
	ID           string    `json:"id"`
	ExerciseID   int       `json:"exerciseId"`
	ExerciseName string    `json:"exerciseName"`
	Date         time.Time `json:"date"`
	DurationMin  int       `json:"durationMin"`
	DistanceM    *int      `json:"distanceM"`
	Intensity    int       `json:"intensity"`
	AvgHeartRate *int      `json:"avgHeartRate"`
	Notes        *string   `json:"notes"`
}

// CardioInput is the payload of LogCardio. An empty ExerciseName means DefaultCardioExercise.
type CardioInput struct {
	ExerciseName string
	Date         time.Time
	DurationMin  int
	DistanceM    *int
	Intensity    int
	AvgHeartRate *int
	Notes        *string
}

// DefaultCardioExercise is the catalog entry cardio sessions are logged against by default.
const DefaultCardioExercise = "Cycling (Stationary)"
