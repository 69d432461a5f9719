package analytics

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/internal/workouts"
	"github.com/2beens/fittracker/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func dateWindow(column string, start, end *pkg.Date, where []string, args []any) ([]string, []any) {
	if start != nil {
		args = append(args, start.Time)
		where = append(where, fmt.Sprintf("%s >= $%d", column, len(args)))
	}
	if end != nil {
		args = append(args, end.Time)
		where = append(where, fmt.Sprintf("%s <= $%d", column, len(args)))
	}
	return where, args
}

// ListSets loads the user's sets with their workout date, oldest workout first.
func (r *Repo) ListSets(ctx context.Context, userID string, query SetQuery) (_ []SetRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.sets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	where := []string{"w.user_id = $1"}
	args := []any{userID}
	if query.ExerciseID != "" {
		args = append(args, query.ExerciseID)
		where = append(where, fmt.Sprintf("s.exercise_id = $%d", len(args)))
		span.SetAttributes(attribute.String("exercise.id", query.ExerciseID))
	}
	where, args = dateWindow("w.date", query.StartDate, query.EndDate, where, args)

	rows, err := r.db.Query(
		ctx,
		`SELECT s.workout_id, s.exercise_id, e.name, w.date, s.reps, s.weight, s.weight_unit
			FROM workout_sets s
			JOIN workouts w ON w.id = s.workout_id
			JOIN exercises e ON e.id = s.exercise_id
			WHERE `+strings.Join(where, " AND ")+`
			ORDER BY w.date ASC, w.created_at ASC, s.set_number ASC;`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query sets: %w", err)
	}
	defer rows.Close()

	sets := make([]SetRecord, 0)
	for rows.Next() {
		var (
			set  SetRecord
			date time.Time
			unit string
		)
		if err := rows.Scan(
			&set.WorkoutID,
			&set.ExerciseID,
			&set.ExerciseName,
			&date,
			&set.Reps,
			&set.Weight,
			&unit,
		); err != nil {
			return nil, fmt.Errorf("scan set: %w", err)
		}
		set.Date = pkg.DateOf(date)
		set.WeightUnit = workouts.WeightUnit(unit)
		sets = append(sets, set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sets: %w", err)
	}

	span.SetAttributes(attribute.Int("sets.count", len(sets)))
	return sets, nil
}

func (r *Repo) ListWorkoutDays(ctx context.Context, userID string, start, end *pkg.Date) (_ []WorkoutDay, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.workoutDays")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	where, args := dateWindow("date", start, end, []string{"user_id = $1"}, []any{userID})
	rows, err := r.db.Query(
		ctx,
		`SELECT date, name FROM workouts
			WHERE `+strings.Join(where, " AND ")+`
			ORDER BY date ASC;`,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("query workout days: %w", err)
	}
	defer rows.Close()

	days := make([]WorkoutDay, 0)
	for rows.Next() {
		var (
			day  WorkoutDay
			date time.Time
		)
		if err := rows.Scan(&date, &day.Name); err != nil {
			return nil, fmt.Errorf("scan workout day: %w", err)
		}
		day.Date = pkg.DateOf(date)
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout days: %w", err)
	}
	return days, nil
}

// Counts returns the number of workouts and of distinct exercises the user has logged sets for.
func (r *Repo) Counts(ctx context.Context, userID string) (totalWorkouts, uniqueExercises int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.counts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err := r.db.QueryRow(
		ctx,
		`SELECT
				(SELECT count(*) FROM workouts WHERE user_id = $1),
				(SELECT count(DISTINCT s.exercise_id)
					FROM workout_sets s
					JOIN workouts w ON w.id = s.workout_id
					WHERE w.user_id = $1);`,
		userID,
	).Scan(&totalWorkouts, &uniqueExercises); err != nil {
		return 0, 0, fmt.Errorf("count workouts: %w", err)
	}
	return totalWorkouts, uniqueExercises, nil
}

// WorkoutDates returns the distinct days the user trained on, most recent first.
func (r *Repo) WorkoutDates(ctx context.Context, userID string) (_ []pkg.Date, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.workoutDates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT DISTINCT date FROM workouts WHERE user_id = $1 ORDER BY date DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query workout dates: %w", err)
	}
	defer rows.Close()

	dates := make([]pkg.Date, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("scan workout date: %w", err)
		}
		dates = append(dates, pkg.DateOf(date))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout dates: %w", err)
	}
	return dates, nil
}

// LastWorkout returns nil when the user has not logged any workout.
func (r *Repo) LastWorkout(ctx context.Context, userID string) (_ *LastWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.analytics.lastWorkout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var (
		last LastWorkout
		date time.Time
	)
	if err := r.db.QueryRow(
		ctx,
		`SELECT date, name FROM workouts
			WHERE user_id = $1
			ORDER BY date DESC, created_at DESC
			LIMIT 1;`,
		userID,
	).Scan(&date, &last.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get last workout: %w", err)
	}
	last.Date = pkg.DateOf(date)
	return &last, nil
}
