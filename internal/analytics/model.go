package analytics

import (
	"github.com/2beens/fittracker/internal/workouts"
	"github.com/2beens/fittracker/pkg"
)

// SetRecord is a logged set joined with its workout date and exercise name.
type SetRecord struct {
	WorkoutID    string
	ExerciseID   string
	ExerciseName string
	Date         pkg.Date
	Reps         int
	Weight       float64
	WeightUnit   workouts.WeightUnit
}

// WeightInPounds is the set weight converted to the reference unit.
func (s SetRecord) WeightInPounds() float64 {
	return workouts.InPounds(s.Weight, s.WeightUnit)
}

func (s SetRecord) Volume() float64 {
	return s.WeightInPounds() * float64(s.Reps)
}

type WorkoutDay struct {
	Date pkg.Date
	Name string
}

// SetQuery narrows the sets loaded for progress and volume. Empty fields do not filter.
type SetQuery struct {
	ExerciseID string
	StartDate  *pkg.Date
	EndDate    *pkg.Date
}

type ProgressPoint struct {
	Date        pkg.Date `json:"date"`
	MaxWeight   float64  `json:"maxWeight"`
	TotalVolume float64  `json:"totalVolume"`
	TotalReps   int      `json:"totalReps"`
	Sets        int      `json:"sets"`
}

type PersonalRecord struct {
	ExerciseID   string   `json:"exerciseId"`
	ExerciseName string   `json:"exerciseName"`
	MaxWeight    float64  `json:"maxWeight"`
	Reps         int      `json:"reps"`
	Date         pkg.Date `json:"date"`
}

type FrequencyPoint struct {
	Week  pkg.Date `json:"week"`
	Count int      `json:"count"`
}

type VolumePoint struct {
	Date   pkg.Date `json:"date"`
	Volume float64  `json:"volume"`
	Sets   int      `json:"sets"`
}

type LastWorkout struct {
	Date pkg.Date `json:"date"`
	Name string   `json:"name"`
}

type Summary struct {
	TotalWorkouts   int          `json:"totalWorkouts"`
	UniqueExercises int          `json:"uniqueExercises"`
	CurrentStreak   int          `json:"currentStreak"`
	LastWorkout     *LastWorkout `json:"lastWorkout"`
}
