package exercises

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/2beens/fittracker/pkg"
)

type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryCardio      Category = "cardio"
	CategoryFlexibility Category = "flexibility"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryStrength, CategoryCardio, CategoryFlexibility:
		return true
	default:
		return false
	}
}

type Exercise struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	Category     Category  `json:"category"`
	MuscleGroups []string  `json:"muscleGroups"`
	Equipment    *string   `json:"equipment"`
	Instructions *string   `json:"instructions"`
	IsCustom     bool      `json:"isCustom"`
	UserID       *string   `json:"userId,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OwnedBy reports whether the exercise is a custom one authored by userID.
func (e *Exercise) OwnedBy(userID string) bool {
	return e.IsCustom && e.UserID != nil && *e.UserID == userID
}

// ExerciseInput is the payload for creating and updating custom exercises.
type ExerciseInput struct {
	Name         string   `json:"name" validate:"required"`
	Description  *string  `json:"description"`
	Category     Category `json:"category" validate:"required,oneof=strength cardio flexibility"`
	MuscleGroups []string `json:"muscleGroups" validate:"required,min=1,dive,required"`
	Equipment    *string  `json:"equipment"`
	Instructions *string  `json:"instructions"`
}

func (in *ExerciseInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	groups := make([]string, 0, len(in.MuscleGroups))
	for _, g := range in.MuscleGroups {
		groups = append(groups, strings.TrimSpace(g))
	}
	in.MuscleGroups = groups
}

type Filter struct {
	Category    Category
	MuscleGroup string
	Search      string
}

func (f Filter) Validate() error {
	if f.Category != "" && !f.Category.Valid() {
		return fmt.Errorf("%w: category must be one of [strength cardio flexibility]", pkg.ErrValidation)
	}
	return nil
}

// Matches applies the exact category, muscle group membership and
// case-insensitive name search filters.
func (f Filter) Matches(e Exercise) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if f.MuscleGroup != "" && !slices.Contains(e.MuscleGroups, f.MuscleGroup) {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(e.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func (f Filter) Apply(exercises []Exercise) []Exercise {
	filtered := make([]Exercise, 0, len(exercises))
	for _, e := range exercises {
		if f.Matches(e) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
