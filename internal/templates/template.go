package templates

import (
	"strings"
	"time"

	"github.com/2beens/fittracker/internal/exercises"
	"github.com/2beens/fittracker/pkg"
)

// Entry is one exercise slot of a template, with optional prefilled defaults.
type Entry struct {
	ID            string              `json:"id"`
	ExerciseID    string              `json:"exerciseId"`
	OrderIndex    int                 `json:"orderIndex"`
	DefaultSets   *int                `json:"defaultSets"`
	DefaultReps   *int                `json:"defaultReps"`
	DefaultWeight *float64            `json:"defaultWeight"`
	Notes         *string             `json:"notes"`
	Exercise      *exercises.Exercise `json:"exercise,omitempty"`
}

type Template struct {
	ID          string    `json:"id"`
	UserID      string    `json:"-"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Exercises   []Entry   `json:"exercises"`
}

type EntryInput struct {
	ExerciseID    string   `json:"exerciseId" validate:"required"`
	DefaultSets   *int     `json:"defaultSets" validate:"omitempty,gte=0"`
	DefaultReps   *int     `json:"defaultReps" validate:"omitempty,gte=0"`
	DefaultWeight *float64 `json:"defaultWeight" validate:"omitempty,gte=0"`
	Notes         *string  `json:"notes"`
}

type TemplateInput struct {
	Name        string       `json:"name" validate:"required"`
	Description *string      `json:"description"`
	Exercises   []EntryInput `json:"exercises" validate:"required,min=1,dive"`
}

func (in *TemplateInput) Validate() error {
	in.Name = strings.TrimSpace(in.Name)
	return pkg.ValidateStruct(in)
}

func (in *TemplateInput) ExerciseIDs() []string {
	ids := make([]string, 0, len(in.Exercises))
	for _, e := range in.Exercises {
		ids = append(ids, e.ExerciseID)
	}
	return ids
}

// Entries numbers the input entries by their position.
func (in *TemplateInput) Entries() []Entry {
	entries := make([]Entry, 0, len(in.Exercises))
	for i, e := range in.Exercises {
		entries = append(entries, Entry{
			ExerciseID:    e.ExerciseID,
			OrderIndex:    i,
			DefaultSets:   e.DefaultSets,
			DefaultReps:   e.DefaultReps,
			DefaultWeight: e.DefaultWeight,
			Notes:         e.Notes,
		})
	}
	return entries
}
