package analytics

import (
	"sort"
	"strings"

	"github.com/2beens/fittracker/pkg"
)

// Analyzer aggregates loaded rows in memory. It holds no state and does no I/O.
type Analyzer struct{}

func byDate(sets []SetRecord) []SetRecord {
	sorted := make([]SetRecord, len(sets))
	copy(sorted, sets)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date.Time)
	})
	return sorted
}

// Progress groups sets by workout date, ascending.
func (Analyzer) Progress(sets []SetRecord) []ProgressPoint {
	points := make([]ProgressPoint, 0)
	index := make(map[pkg.Date]int)
	for _, set := range byDate(sets) {
		weight := set.WeightInPounds()
		i, ok := index[set.Date]
		if !ok {
			index[set.Date] = len(points)
			points = append(points, ProgressPoint{
				Date:        set.Date,
				MaxWeight:   weight,
				TotalVolume: set.Volume(),
				TotalReps:   set.Reps,
				Sets:        1,
			})
			continue
		}
		p := &points[i]
		p.MaxWeight = max(p.MaxWeight, weight)
		p.TotalVolume += set.Volume()
		p.TotalReps += set.Reps
		p.Sets++
	}
	return points
}

// PersonalRecords keeps, per exercise, the heaviest set. Equal weights are broken by
// higher reps, a full tie keeps the earlier set. Sorted by exercise name.
func (Analyzer) PersonalRecords(sets []SetRecord) []PersonalRecord {
	best := make(map[string]*PersonalRecord)
	order := make([]string, 0)
	for _, set := range sets {
		weight := set.WeightInPounds()
		current, ok := best[set.ExerciseID]
		if !ok {
			order = append(order, set.ExerciseID)
		}
		if !ok || weight > current.MaxWeight || (weight == current.MaxWeight && set.Reps > current.Reps) {
			best[set.ExerciseID] = &PersonalRecord{
				ExerciseID:   set.ExerciseID,
				ExerciseName: set.ExerciseName,
				MaxWeight:    weight,
				Reps:         set.Reps,
				Date:         set.Date,
			}
		}
	}

	records := make([]PersonalRecord, 0, len(order))
	for _, id := range order {
		records = append(records, *best[id])
	}
	sort.SliceStable(records, func(i, j int) bool {
		return strings.ToLower(records[i].ExerciseName) < strings.ToLower(records[j].ExerciseName)
	})
	return records
}

// Frequency counts workouts per week, weeks starting on Sunday, ascending.
func (Analyzer) Frequency(days []WorkoutDay) []FrequencyPoint {
	counts := make(map[pkg.Date]int)
	for _, d := range days {
		counts[d.Date.WeekStart()]++
	}

	points := make([]FrequencyPoint, 0, len(counts))
	for week, count := range counts {
		points = append(points, FrequencyPoint{Week: week, Count: count})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Week.Before(points[j].Week.Time)
	})
	return points
}

// Volume sums weight times reps per workout date, ascending.
func (Analyzer) Volume(sets []SetRecord) []VolumePoint {
	points := make([]VolumePoint, 0)
	index := make(map[pkg.Date]int)
	for _, set := range byDate(sets) {
		i, ok := index[set.Date]
		if !ok {
			index[set.Date] = len(points)
			points = append(points, VolumePoint{
				Date:   set.Date,
				Volume: set.Volume(),
				Sets:   1,
			})
			continue
		}
		points[i].Volume += set.Volume()
		points[i].Sets++
	}
	return points
}

// Streak counts consecutive training days ending at the most recent one.
// dates must be distinct and sorted descending.
func (Analyzer) Streak(dates []pkg.Date) int {
	if len(dates) == 0 {
		return 0
	}
	streak := 1
	for i := 1; i < len(dates); i++ {
		if !dates[i].Equal(dates[i-1].AddDays(-1).Time) {
			break
		}
		streak++
	}
	return streak
}
