package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/ngrujic/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrExerciseNotFound = errors.New("exercise not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise (name, category, default_sets, default_reps, description, created_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at;`,
		exercise.Name, exercise.Category, exercise.DefaultSets, exercise.DefaultReps, exercise.Description,
	).Scan(&exercise.ID, &exercise.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert exercise: %w", err)
	}

	span.SetAttributes(attribute.Int("exercise.id", exercise.ID))

	return &exercise, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var exercise Exercise
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, category, COALESCE(default_sets, 0), COALESCE(default_reps, 0), COALESCE(description, ''), created_at
			FROM exercise WHERE id = $1;`,
		id,
	).Scan(
		&exercise.ID, &exercise.Name, &exercise.Category,
		&exercise.DefaultSets, &exercise.DefaultReps, &exercise.Description, &exercise.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}

	return &exercise, nil
}

func (r *Repo) List(ctx context.Context, category string) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `SELECT id, name, category, COALESCE(default_sets, 0), COALESCE(default_reps, 0), COALESCE(description, ''), created_at FROM exercise`
	var args []interface{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY name;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exercisesList []Exercise
	for rows.Next() {
		var exercise Exercise
		if err := rows.Scan(
			&exercise.ID, &exercise.Name, &exercise.Category,
			&exercise.DefaultSets, &exercise.DefaultReps, &exercise.Description, &exercise.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exercisesList = append(exercisesList, exercise)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exercisesList, nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM exercise WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrExerciseNotFound
	}

	return nil
}
