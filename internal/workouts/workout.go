package workouts

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/2beens/fittracker/internal/exercises"
	"github.com/2beens/fittracker/pkg"
)

type WeightUnit string

const (
	UnitLbs WeightUnit = "lbs"
	UnitKg  WeightUnit = "kg"

	// DefaultWeightUnit is assumed when a set does not name its unit.
	DefaultWeightUnit = UnitLbs

	lbsPerKg = 2.20462
)

// InPounds converts weight given in unit to pounds.
func InPounds(weight float64, unit WeightUnit) float64 {
	if unit == UnitKg {
		return weight * lbsPerKg
	}
	return weight
}

type Set struct {
	ID         string              `json:"id"`
	ExerciseID string              `json:"exerciseId"`
	SetNumber  int                 `json:"setNumber"`
	Reps       int                 `json:"reps"`
	Weight     float64             `json:"weight"`
	WeightUnit WeightUnit          `json:"weightUnit"`
	Notes      *string             `json:"notes"`
	Exercise   *exercises.Exercise `json:"exercise,omitempty"`
}

type Workout struct {
	ID              string    `json:"id"`
	UserID          string    `json:"-"`
	Name            string    `json:"name"`
	Date            pkg.Date  `json:"date"`
	Notes           *string   `json:"notes"`
	DurationMinutes *int      `json:"durationMinutes"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
	Sets            []Set     `json:"sets"`
}

type SetInput struct {
	ExerciseID string     `json:"exerciseId" validate:"required"`
	SetNumber  *int       `json:"setNumber" validate:"required"`
	Reps       *int       `json:"reps" validate:"required,gt=0"`
	Weight     *float64   `json:"weight" validate:"required,gte=0"`
	WeightUnit WeightUnit `json:"weightUnit" validate:"omitempty,oneof=lbs kg"`
	Notes      *string    `json:"notes"`
}

// WorkoutInput is the payload for creating a workout and for replacing one on update.
type WorkoutInput struct {
	Name            string     `json:"name" validate:"required"`
	Date            pkg.Date   `json:"date"`
	Notes           *string    `json:"notes"`
	DurationMinutes *int       `json:"durationMinutes" validate:"omitempty,gte=0"`
	Sets            []SetInput `json:"sets" validate:"required,min=1,dive"`
}

func (in *WorkoutInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	if err := pkg.ValidateStruct(in); err != nil {
		return err
	}
	if in.Date.IsZero() {
		return fmt.Errorf("%w: date is required", pkg.ErrValidation)
	}
	return nil
}

func (in *WorkoutInput) ExerciseIDs() []string {
	ids := make([]string, 0, len(in.Sets))
	for _, s := range in.Sets {
		ids = append(ids, s.ExerciseID)
	}
	return ids
}

// NormalizedSets orders the sets by the client supplied set number, keeping the input
// order for equal numbers, then renumbers them 1..N. A missing unit becomes lbs.
func (in *WorkoutInput) NormalizedSets() []Set {
	inputs := make([]SetInput, len(in.Sets))
	copy(inputs, in.Sets)
	sort.SliceStable(inputs, func(i, j int) bool {
		return *inputs[i].SetNumber < *inputs[j].SetNumber
	})

	sets := make([]Set, 0, len(inputs))
	for i, si := range inputs {
		unit := si.WeightUnit
		if unit == "" {
			unit = DefaultWeightUnit
		}
		sets = append(sets, Set{
			ExerciseID: si.ExerciseID,
			SetNumber:  i + 1,
			Reps:       *si.Reps,
			Weight:     *si.Weight,
			WeightUnit: unit,
			Notes:      si.Notes,
		})
	}
	return sets
}

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type ListParams struct {
	StartDate *pkg.Date
	EndDate   *pkg.Date
	Limit     int
	Offset    int
}

func (p ListParams) Validate() error {
	if p.Limit < 1 || p.Limit > MaxListLimit {
		return fmt.Errorf("%w: limit must be between 1 and %d", pkg.ErrValidation, MaxListLimit)
	}
	if p.Offset < 0 {
		return fmt.Errorf("%w: offset must not be negative", pkg.ErrValidation)
	}
	return nil
}
