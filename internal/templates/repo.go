package templates

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fittracker/internal/db"
	"github.com/2beens/fittracker/internal/exercises"
	"github.com/2beens/fittracker/internal/telemetry/tracing"
	"github.com/2beens/fittracker/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrTemplateNotFound = fmt.Errorf("template %w", pkg.ErrNotFound)

const (
	templateColumns = `id, user_id, name, description, created_at, updated_at`
	entryColumns    = `t.id, t.template_id, t.exercise_id, t.order_index, t.default_sets, t.default_reps,
		t.default_weight, t.notes,
		e.id, e.name, e.description, e.category, e.muscle_groups, e.equipment, e.instructions,
		e.is_custom, e.user_id, e.created_at, e.updated_at`
)

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, userID string) (_ []Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT `+templateColumns+` FROM templates
			WHERE user_id = $1
			ORDER BY created_at DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}

	templates := make([]Template, 0)
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan template: %w", err)
		}
		templates = append(templates, *t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	if len(templates) == 0 {
		return templates, nil
	}

	ids := make([]string, 0, len(templates))
	for _, t := range templates {
		ids = append(ids, t.ID)
	}
	entriesByTemplate, err := entriesOf(ctx, r.db, ids)
	if err != nil {
		return nil, err
	}
	for i := range templates {
		templates[i].Exercises = entriesByTemplate[templates[i].ID]
		if templates[i].Exercises == nil {
			templates[i].Exercises = []Entry{}
		}
	}

	span.SetAttributes(attribute.Int("templates.count", len(templates)))
	return templates, nil
}

func (r *Repo) Get(ctx context.Context, id, userID string) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", id))

	return get(ctx, r.db, id, userID)
}

func (r *Repo) Exists(ctx context.Context, id, userID string) (_ bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.exists")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var exists bool
	if err := r.db.QueryRow(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM templates WHERE id = $1 AND user_id = $2);`,
		id, userID,
	).Scan(&exists); err != nil {
		return false, fmt.Errorf("check template: %w", err)
	}
	return exists, nil
}

func (r *Repo) Create(ctx context.Context, template Template) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if template.ID == "" {
		template.ID = uuid.NewString()
	}
	span.SetAttributes(attribute.String("template.id", template.ID))

	var created *Template
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`INSERT INTO templates (id, user_id, name, description) VALUES ($1, $2, $3, $4);`,
			template.ID,
			template.UserID,
			template.Name,
			template.Description,
		); err != nil {
			return fmt.Errorf("insert template: %w", err)
		}
		if err := insertEntries(ctx, tx, template.ID, template.Exercises); err != nil {
			return err
		}

		var err error
		created, err = get(ctx, tx, template.ID, template.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update overwrites the header and replaces all entries of the template in one transaction.
func (r *Repo) Update(ctx context.Context, template Template) (_ *Template, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", template.ID))

	var updated *Template
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`UPDATE templates
				SET name = $3, description = $4, updated_at = now()
				WHERE id = $1 AND user_id = $2;`,
			template.ID,
			template.UserID,
			template.Name,
			template.Description,
		)
		if err != nil {
			return fmt.Errorf("update template: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrTemplateNotFound
		}

		if _, err := tx.Exec(ctx, `DELETE FROM template_exercises WHERE template_id = $1;`, template.ID); err != nil {
			return fmt.Errorf("delete template exercises: %w", err)
		}
		if err := insertEntries(ctx, tx, template.ID, template.Exercises); err != nil {
			return err
		}

		updated, err = get(ctx, tx, template.ID, template.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *Repo) Delete(ctx context.Context, id, userID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.templates.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("template.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM templates WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("delete template: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTemplateNotFound
	}
	return nil
}

func get(ctx context.Context, q querier, id, userID string) (*Template, error) {
	row := q.QueryRow(
		ctx,
		`SELECT `+templateColumns+` FROM templates WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	template, err := scanTemplate(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTemplateNotFound
		}
		return nil, fmt.Errorf("get template: %w", err)
	}

	entriesByTemplate, err := entriesOf(ctx, q, []string{template.ID})
	if err != nil {
		return nil, err
	}
	template.Exercises = entriesByTemplate[template.ID]
	if template.Exercises == nil {
		template.Exercises = []Entry{}
	}
	return template, nil
}

func entriesOf(ctx context.Context, q querier, templateIDs []string) (map[string][]Entry, error) {
	rows, err := q.Query(
		ctx,
		`SELECT `+entryColumns+`
			FROM template_exercises t
			JOIN exercises e ON e.id = t.exercise_id
			WHERE t.template_id = ANY($1)
			ORDER BY t.template_id, t.order_index ASC;`,
		templateIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("query template exercises: %w", err)
	}
	defer rows.Close()

	entriesByTemplate := make(map[string][]Entry, len(templateIDs))
	for rows.Next() {
		var (
			entry      Entry
			templateID string
			category   string
			exercise   exercises.Exercise
		)
		if err := rows.Scan(
			&entry.ID,
			&templateID,
			&entry.ExerciseID,
			&entry.OrderIndex,
			&entry.DefaultSets,
			&entry.DefaultReps,
			&entry.DefaultWeight,
			&entry.Notes,
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
			return nil, fmt.Errorf("scan template exercise: %w", err)
		}
		exercise.Category = exercises.Category(category)
		entry.Exercise = &exercise
		entriesByTemplate[templateID] = append(entriesByTemplate[templateID], entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate template exercises: %w", err)
	}
	return entriesByTemplate, nil
}

func insertEntries(ctx context.Context, tx pgx.Tx, templateID string, entries []Entry) error {
	batch := &pgx.Batch{}
	for _, entry := range entries {
		batch.Queue(
			`INSERT INTO template_exercises
					(id, template_id, exercise_id, order_index, default_sets, default_reps, default_weight, notes)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`,
			uuid.NewString(),
			templateID,
			entry.ExerciseID,
			entry.OrderIndex,
			entry.DefaultSets,
			entry.DefaultReps,
			entry.DefaultWeight,
			entry.Notes,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return fmt.Errorf("%w: template references an unknown exercise", pkg.ErrValidation)
		}
		return fmt.Errorf("insert template exercises: %w", err)
	}
	return nil
}

func scanTemplate(row pgx.Row) (*Template, error) {
	var t Template
	if err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Name,
		&t.Description,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &t, nil
}
