package workouts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/2beens/fittracker/internal/db"
	"github.com/2beens/fittracker/internal/exercises"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrWorkoutNotFound = fmt.Errorf("workout %w", pkg.ErrNotFound)

const (
	workoutColumns = `id, user_id, name, date, notes, duration_minutes, created_at, updated_at`
	setColumns     = `s.id, s.workout_id, s.exercise_id, s.set_number, s.reps, s.weight, s.weight_unit, s.notes,
		e.id, e.name, e.description, e.category, e.muscle_groups, e.equipment, e.instructions,
		e.is_custom, e.user_id, e.created_at, e.updated_at`
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// List returns a page of the user's workouts, newest first, and the number of
// workouts matching the date window regardless of paging.
func (r *Repo) List(ctx context.Context, userID string, params ListParams) (_ []Workout, _ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	where := []string{"user_id = $1"}
	args := []any{userID}
	if params.StartDate != nil {
		args = append(args, params.StartDate.Time)
		where = append(where, fmt.Sprintf("date >= $%d", len(args)))
	}
	if params.EndDate != nil {
		args = append(args, params.EndDate.Time)
		where = append(where, fmt.Sprintf("date <= $%d", len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRow(
		ctx,
		`SELECT count(*) FROM workouts WHERE `+whereClause+`;`,
		args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count workouts: %w", err)
	}

	pageArgs := append(args, params.Limit, params.Offset)
	rows, err := r.db.Query(
		ctx,
		fmt.Sprintf(
			`SELECT %s FROM workouts WHERE %s
				ORDER BY date DESC, created_at DESC
				LIMIT $%d OFFSET $%d;`,
			workoutColumns, whereClause, len(args)+1, len(args)+2,
		),
		pageArgs...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("query workouts: %w", err)
	}

	workouts := make([]Workout, 0)
	for rows.Next() {
		w, err := scanWorkout(rows)
		if err != nil {
			rows.Close()
			return nil, 0, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, *w)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate workouts: %w", err)
	}

	if len(workouts) == 0 {
		return workouts, total, nil
	}

	ids := make([]string, 0, len(workouts))
	for _, w := range workouts {
		ids = append(ids, w.ID)
	}
	setsByWorkout, err := r.setsOf(ctx, r.db, ids)
	if err != nil {
		return nil, 0, err
	}
	for i := range workouts {
		workouts[i].Sets = setsByWorkout[workouts[i].ID]
		if workouts[i].Sets == nil {
			workouts[i].Sets = []Set{}
		}
	}

	span.SetAttributes(attribute.Int("workouts.count", len(workouts)))
	return workouts, total, nil
}

func (r *Repo) Get(ctx context.Context, id, userID string) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	return r.get(ctx, r.db, id, userID)
}

func (r *Repo) Exists(ctx context.Context, id, userID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM workouts WHERE id = $1 AND user_id = $2);`,
		id, userID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("check workout: %w", err)
	}
	return exists, nil
}

// Create stores the workout header and all of its sets in one transaction.
func (r *Repo) Create(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if workout.ID == "" {
		workout.ID = uuid.NewString()
	}
	span.SetAttributes(attribute.String("workout.id", workout.ID))

	var created *Workout
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO workouts (id, user_id, name, date, notes, duration_minutes)
				VALUES ($1, $2, $3, $4, $5, $6);`,
			workout.ID,
			workout.UserID,
			workout.Name,
			workout.Date.Time,
			workout.Notes,
			workout.DurationMinutes,
		); err != nil {
			return fmt.Errorf("insert workout: %w", err)
		}
		if err := insertSets(ctx, tx, workout.ID, workout.Sets); err != nil {
			return err
		}

		var err error
		created, err = r.get(ctx, tx, workout.ID, workout.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update overwrites the header and replaces all sets of the workout in one transaction.
func (r *Repo) Update(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", workout.ID))

	var updated *Workout
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`UPDATE workouts
				SET name = $3, date = $4, notes = $5, duration_minutes = $6, updated_at = now()
				WHERE id = $1 AND user_id = $2;`,
			workout.ID,
			workout.UserID,
			workout.Name,
			workout.Date.Time,
			workout.Notes,
			workout.DurationMinutes,
		)
		if err != nil {
			return fmt.Errorf("update workout: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrWorkoutNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM workout_sets WHERE workout_id = $1;`, workout.ID); err != nil {
			return fmt.Errorf("delete workout sets: %w", err)
		}
		if err := insertSets(ctx, tx, workout.ID, workout.Sets); err != nil {
			return err
		}

		updated, err = r.get(ctx, tx, workout.ID, workout.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repo) Delete(ctx context.Context, id, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("workout.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM workouts WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *Repo) get(ctx context.Context, q querier, id, userID string) (*Workout, error) {
	row := q.QueryRow(
		ctx,
		`SELECT `+workoutColumns+` FROM workouts WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	workout, err := scanWorkout(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkoutNotFound
		}
		return nil, fmt.Errorf("get workout: %w", err)
	}

	setsByWorkout, err := r.setsOf(ctx, q, []string{workout.ID})
	if err != nil {
		return nil, err
	}
	workout.Sets = setsByWorkout[workout.ID]
	if workout.Sets == nil {
		workout.Sets = []Set{}
	}
	return workout, nil
}

func (r *Repo) setsOf(ctx context.Context, q querier, workoutIDs []string) (map[string][]Set, error) {
	rows, err := q.Query(
		ctx,
		`SELECT `+setColumns+`
			FROM workout_sets s
			JOIN exercises e ON e.id = s.exercise_id
			WHERE s.workout_id = ANY($1)
			ORDER BY s.workout_id, s.set_number ASC;`,
		workoutIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query workout sets: %w", err)
	}
	defer rows.Close()

	setsByWorkout := make(map[string][]Set, len(workoutIDs))
	for rows.Next() {
		var (
			set       Set
			workoutID string
			unit      string
			category  string
			exercise  exercises.Exercise
		)
		if err := rows.Scan(
			&set.ID,
			&workoutID,
			&set.ExerciseID,
			&set.SetNumber,
			&set.Reps,
			&set.Weight,
			&unit,
			&set.Notes,
			&exercise.ID,
			&exercise.Name,
			&exercise.Description,
			&category,
			&exercise.MuscleGroups,
			&exercise.Equipment,
			&exercise.Instructions,
			&exercise.IsCustom,
			&exercise.UserID,
			&exercise.CreatedAt,
			&exercise.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan workout set: %w", err)
		}
		set.WeightUnit = WeightUnit(unit)
		exercise.Category = exercises.Category(category)
		set.Exercise = &exercise
		setsByWorkout[workoutID] = append(setsByWorkout[workoutID], set)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workout sets: %w", err)
	}
	return setsByWorkout, nil
}

func insertSets(ctx context.Context, tx pgx.Tx, workoutID string, sets []Set) error {
	batch := &pgx.Batch{}
	for _, set := range sets {
		batch.Queue(
			`INSERT INTO workout_sets (id, workout_id, exercise_id, set_number, reps, weight, weight_unit, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			uuid.NewString(),
			workoutID,
			set.ExerciseID,
			set.SetNumber,
			set.Reps,
			set.Weight,
			string(set.WeightUnit),
			set.Notes,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return fmt.Errorf("%w: set references an unknown exercise", pkg.ErrValidation)
		}
		return fmt.Errorf("insert workout sets: %w", err)
	}
	return nil
}

func scanWorkout(row pgx.Row) (*Workout, error) {
	var (
		w    Workout
		date time.Time
	)
	if err := row.Scan(
		&w.ID,
		&w.UserID,
		&w.Name,
		&date,
		&w.Notes,
		&w.DurationMinutes,
		&w.CreatedAt,
		&w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	w.Date = pkg.DateOf(date)
	return &w, nil
}
