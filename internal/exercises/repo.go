package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/db"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound = fmt.Errorf("exercise %w", pkg.ErrNotFound)
	ErrExerciseInUse    = fmt.Errorf("%w: exercise is used in logged workouts or templates", pkg.ErrValidation)
)

const exerciseColumns = `id, name, description, category, muscle_groups, equipment, instructions,
	is_custom, user_id, created_at, updated_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListSystem(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list.system")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercises
			WHERE user_id IS NULL
			ORDER BY name ASC;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query system exercises: %w", err)
	}
	return collectExercises(rows)
}

func (r *Repo) ListCustom(ctx context.Context, userID string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list.custom")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercises
			WHERE user_id = $1
			ORDER BY name ASC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query custom exercises: %w", err)
	}
	return collectExercises(rows)
}

func (r *Repo) Get(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	row := r.db.QueryRow(ctx, `SELECT `+exerciseColumns+` FROM exercises WHERE id = $1;`, id)
	exercise, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	return exercise, nil
}

func (r *Repo) Create(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if exercise.ID == "" {
		exercise.ID = uuid.NewString()
	}
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO exercises
				(id, name, description, category, muscle_groups, equipment, instructions, is_custom, user_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING `+exerciseColumns+`;`,
		exercise.ID,
		exercise.Name,
		exercise.Description,
		string(exercise.Category),
		exercise.MuscleGroups,
		exercise.Equipment,
		exercise.Instructions,
		exercise.IsCustom,
		exercise.UserID,
	)
	created, err := scanExercise(row)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}
	return created, nil
}

// Update overwrites all editable fields of a custom exercise owned by userID.
func (r *Repo) Update(ctx context.Context, exercise Exercise, userID string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", exercise.ID))

	row := r.db.QueryRow(
		ctx,
		`UPDATE exercises
			SET name = $3, description = $4, category = $5, muscle_groups = $6,
				equipment = $7, instructions = $8, updated_at = now()
			WHERE id = $1 AND user_id = $2 AND is_custom
			RETURNING `+exerciseColumns+`;`,
		exercise.ID,
		userID,
		exercise.Name,
		exercise.Description,
		string(exercise.Category),
		exercise.MuscleGroups,
		exercise.Equipment,
		exercise.Instructions,
	)
	updated, err := scanExercise(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, fmt.Errorf("update exercise: %w", err)
	}
	return updated, nil
}

func (r *Repo) Delete(ctx context.Context, id, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercises WHERE id = $1 AND user_id = $2 AND is_custom;`,
		id, userID,
	)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return ErrExerciseInUse
		}
		return fmt.Errorf("delete exercise: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}
	return nil
}

// CountVisible counts how many of the given ids are system exercises or custom ones of userID.
func (r *Repo) CountVisible(ctx context.Context, userID string, ids []string) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.count.visible")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err := r.db.QueryRow(
		ctx,
		`SELECT count(*) FROM exercises
			WHERE id = ANY($1) AND (user_id IS NULL OR user_id = $2);`,
		ids, userID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count visible exercises: %w", err)
	}
	return count, nil
}

// InsertSystem adds the catalog entries whose name is not yet taken by a system exercise.
func (r *Repo) InsertSystem(ctx context.Context, catalog []Exercise) (created int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.insert.system")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		for _, exercise := range catalog {
			tag, err := tx.Exec(
				ctx,
				`INSERT INTO exercises
						(id, name, description, category, muscle_groups, equipment, instructions, is_custom, user_id)
					SELECT $1, $2, $3, $4, $5, $6, $7, false, NULL
					WHERE NOT EXISTS (
						SELECT 1 FROM exercises WHERE name = $2 AND user_id IS NULL
					);`,
				uuid.NewString(),
				exercise.Name,
				exercise.Description,
				string(exercise.Category),
				exercise.MuscleGroups,
				exercise.Equipment,
				exercise.Instructions,
			)
			if err != nil {
				return fmt.Errorf("insert system exercise %s: %w", exercise.Name, err)
			}
			created += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func scanExercise(row pgx.Row) (*Exercise, error) {
	var e Exercise
	var category string
	if err := row.Scan(
		&e.ID,
		&e.Name,
		&e.Description,
		&category,
		&e.MuscleGroups,
		&e.Equipment,
		&e.Instructions,
		&e.IsCustom,
		&e.UserID,
		&e.CreatedAt,
		&e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	e.Category = Category(category)
	if e.MuscleGroups == nil {
		e.MuscleGroups = []string{}
	}
	return &e, nil
}

func collectExercises(rows pgx.Rows) ([]Exercise, error) {
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		exercise, err := scanExercise(rows)
		if err != nil {
			return nil, fmt.Errorf("scan exercise: %w", err)
		}
		exercises = append(exercises, *exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exercises: %w", err)
	}
	return exercises, nil
}
