package plans

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ngrujic/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var ErrPlanNotFound = errors.New("plan not found")

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context) (_ []Plan, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, description, days_per_week FROM plan ORDER BY id;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plansList []Plan
	for rows.Next() {
		var plan Plan
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.Description, &plan.DaysPerWeek); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		plansList = append(plansList, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return plansList, nil
}

// Details returns a plan with its days, each day carrying its exercises.
func (r *Repo) Details(ctx context.Context, planID int) (_ *PlanDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.details")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("plan.id", planID))

	var plan Plan
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, description, days_per_week FROM plan WHERE id = $1;`,
		planID,
	).Scan(&plan.ID, &plan.Name, &plan.Description, &plan.DaysPerWeek)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlanNotFound
		}
		return nil, err
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT pd.id, pd.plan_id, pd.day_number, pd.name,
				pe.id, pe.plan_day_id, pe.exercise_id, e.name,
				COALESCE(pe.sets, 0), COALESCE(pe.reps, 0)
			FROM plan_day pd
			LEFT JOIN plan_exercise pe ON pe.plan_day_id = pd.id
			LEFT JOIN exercise e ON e.id = pe.exercise_id
			WHERE pd.plan_id = $1
			ORDER BY pd.day_number, pe.id;`,
		planID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// group exercise rows under their day, preserving day order
	var days []PlanDay
	dayIndex := map[int]int{}
	for rows.Next() {
		var day PlanDay
		var (
			peID, peDayID, peExerciseID *int
			peExerciseName              *string
			peSets, peReps              int
		)
		if err := rows.Scan(
			&day.ID, &day.PlanID, &day.DayNumber, &day.Name,
			&peID, &peDayID, &peExerciseID, &peExerciseName, &peSets, &peReps,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		idx, seen := dayIndex[day.ID]
		if !seen {
			day.Exercises = []PlanExercise{}
			days = append(days, day)
			idx = len(days) - 1
			dayIndex[day.ID] = idx
		}

		// days without exercises produce NULL exercise columns
		if peID != nil {
			planExercise := PlanExercise{
				ID:        *peID,
				PlanDayID: *peDayID,
				Sets:      peSets,
				Reps:      peReps,
			}
			if peExerciseID != nil {
				planExercise.ExerciseID = *peExerciseID
			}
			if peExerciseName != nil {
				planExercise.ExerciseName = *peExerciseName
			}
			days[idx].Exercises = append(days[idx].Exercises, planExercise)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &PlanDetails{
		Plan: plan,
		Days: days,
	}, nil
}

// Apply expands a plan into scheduled workout sessions with planned exercises,
// one session per plan day, all within a single transaction.
func (r *Repo) Apply(ctx context.Context, userID, planID int, startDate time.Time) (_ *ApplyPlanResult, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.plans.apply")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("plan.id", planID),
		attribute.Int("user.id", userID),
	)

	details, err := r.Details(ctx, planID)
	if err != nil {
		return nil, err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	result := &ApplyPlanResult{
		PlanID:    planID,
		UserID:    userID,
		StartDate: startDate,
	}

	for _, day := range details.Days {
		scheduledDate := startDate.AddDate(0, 0, day.DayNumber-1)

		var sessionID int
		err = tx.QueryRow(
			ctx,
			`INSERT INTO workout_session (user_id, type, scheduled_date, completed, notes, created_at)
				VALUES ($1, $2, $3, false, $4, NOW())
			RETURNING id;`,
			userID, day.Name, scheduledDate, fmt.Sprintf("from plan: %s", details.Plan.Name),
		).Scan(&sessionID)
		if err != nil {
			return nil, fmt.Errorf("insert session for plan day %d: %w", day.DayNumber, err)
		}

		for _, planExercise := range day.Exercises {
			if _, err = tx.Exec(
				ctx,
				`INSERT INTO session_detail (session_id, exercise_id, planned_sets, planned_reps)
					VALUES ($1, $2, $3, $4);`,
				sessionID, planExercise.ExerciseID, planExercise.Sets, planExercise.Reps,
			); err != nil {
				return nil, fmt.Errorf("insert detail for plan day %d: %w", day.DayNumber, err)
			}
		}

		result.SessionIDs = append(result.SessionIDs, sessionID)
		result.Scheduled = append(result.Scheduled, scheduledDate)
	}

	return result, nil
}
