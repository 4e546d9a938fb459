package summary

import (
	"context"
	"fmt"
	"time"

	"github.com/ngrujic/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.opentelemetry.io/otel/attribute"
)

// Querier is the subset of pgx used by the summary queries, satisfied by both
// *pgxpool.Pool and pgx.Tx so the orchestrator can run everything inside one
// transaction.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repo struct{}

func NewRepo() *Repo {
	return &Repo{}
}

// MealLogs returns the meal logs of a user within [start, end), each joined
// with the per-serving macros of its food.
func (r *Repo) MealLogs(ctx context.Context, q Querier, userID int, start, end time.Time) (_ []MealLogRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summary.mealLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := q.Query(
		ctx,
		`SELECT fl.log_date, fl.amount, f.calories, f.protein, f.carbs, f.fat
		FROM food_log fl
		JOIN food f ON f.id = fl.food_id
		WHERE fl.user_id = $1 AND fl.log_date >= $2 AND fl.log_date < $3;`,
		userID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("query meal logs: %w", err)
	}
	defer rows.Close()

	var mealLogs []MealLogRow
	for rows.Next() {
		var mealLog MealLogRow
		if err := rows.Scan(
			&mealLog.LogDate, &mealLog.Amount,
			&mealLog.Calories, &mealLog.Protein, &mealLog.Carbs, &mealLog.Fat,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		mealLogs = append(mealLogs, mealLog)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mealLogs, nil
}

// CompletedWorkouts returns the completed sessions of a user scheduled within
// [start, end), left-joined with their exercise logs. Sessions without logs
// come back as a single row with nil log columns.
func (r *Repo) CompletedWorkouts(ctx context.Context, q Querier, userID int, start, end time.Time) (_ []WorkoutRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summary.completedWorkouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := q.Query(
		ctx,
		`SELECT ws.id, ws.scheduled_date, e.name, e.category, el.sets, el.reps, el.weight_kg, el.duration_seconds
		FROM workout_session ws
		LEFT JOIN exercise_log el ON el.session_id = ws.id
		LEFT JOIN exercise e ON e.id = el.exercise_id
		WHERE ws.user_id = $1 AND ws.completed = TRUE
			AND ws.scheduled_date >= $2 AND ws.scheduled_date < $3
		ORDER BY ws.scheduled_date, ws.id;`,
		userID, start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("query completed workouts: %w", err)
	}
	defer rows.Close()

	var workoutRows []WorkoutRow
	for rows.Next() {
		var row WorkoutRow
		if err := rows.Scan(
			&row.SessionID, &row.ScheduledDate,
			&row.ExerciseName, &row.Category,
			&row.Sets, &row.Reps, &row.WeightKg, &row.DurationSeconds,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workoutRows = append(workoutRows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workoutRows, nil
}

// Upsert writes the summary row of one (user, period type, period start) key,
// fully replacing every scalar on conflict so regeneration stays idempotent.
func (r *Repo) Upsert(ctx context.Context, q Querier, userID int, period Period, s Summary) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.summary.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("period.type", string(period.Type)),
	)

	_, err = q.Exec(
		ctx,
		`INSERT INTO summary (
			user_id, period_type, period_start,
			total_workouts, total_duration_minutes, total_calories_intake,
			avg_protein, avg_carbs, avg_fat,
			total_gr_score, avg_gr_score, generated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
		ON CONFLICT (user_id, period_type, period_start) DO UPDATE SET
			total_workouts = EXCLUDED.total_workouts,
			total_duration_minutes = EXCLUDED.total_duration_minutes,
			total_calories_intake = EXCLUDED.total_calories_intake,
			avg_protein = EXCLUDED.avg_protein,
			avg_carbs = EXCLUDED.avg_carbs,
			avg_fat = EXCLUDED.avg_fat,
			total_gr_score = EXCLUDED.total_gr_score,
			avg_gr_score = EXCLUDED.avg_gr_score,
			generated_at = NOW();`,
		userID, period.Type, period.Start,
		s.TotalWorkouts, s.TotalDurationMinutes, s.TotalCaloriesIntake,
		s.AvgProtein, s.AvgCarbs, s.AvgFat,
		s.TotalGRScore, s.AvgGRScore,
	)
	if err != nil {
		return fmt.Errorf("upsert summary: %w", err)
	}

	return nil
}
