package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/ngrujic/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrSessionNotFound = errors.New("workout session not found")
	ErrDetailNotFound  = errors.New("session detail not found")
	ErrLogNotFound     = errors.New("exercise log not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddSession(ctx context.Context, session WorkoutSession) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_session (user_id, type, scheduled_date, completed, notes, created_at)
			VALUES ($1, $2, $3, false, $4, NOW())
		RETURNING id, created_at;`,
		session.UserID, session.Type, session.ScheduledDate, session.Notes,
	).Scan(&session.ID, &session.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert workout session: %w", err)
	}

	span.SetAttributes(attribute.Int("session.id", session.ID))

	return &session, nil
}

func (r *Repo) GetSession(ctx context.Context, userID, id int) (_ *WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var session WorkoutSession
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, type, scheduled_date, completed, COALESCE(notes, ''), created_at
			FROM workout_session WHERE id = $1 AND user_id = $2;`,
		id, userID,
	).Scan(
		&session.ID, &session.UserID, &session.Type,
		&session.ScheduledDate, &session.Completed, &session.Notes, &session.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &session, nil
}

func (r *Repo) ListSessions(ctx context.Context, userID int) (_ []WorkoutSession, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listSessions")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, type, scheduled_date, completed, COALESCE(notes, ''), created_at
			FROM workout_session
			WHERE user_id = $1
			ORDER BY scheduled_date DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []WorkoutSession
	for rows.Next() {
		var session WorkoutSession
		if err := rows.Scan(
			&session.ID, &session.UserID, &session.Type,
			&session.ScheduledDate, &session.Completed, &session.Notes, &session.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}

// AddDetails inserts all planned exercises for a session in one transaction.
func (r *Repo) AddDetails(ctx context.Context, sessionID int, details []SessionDetail) (_ []SessionDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addDetails")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

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

	added := make([]SessionDetail, 0, len(details))
	for _, detail := range details {
		detail.SessionID = sessionID
		err = tx.QueryRow(
			ctx,
			`INSERT INTO session_detail (session_id, exercise_id, planned_sets, planned_reps)
				VALUES ($1, $2, $3, $4)
			RETURNING id;`,
			detail.SessionID, detail.ExerciseID, detail.PlannedSets, detail.PlannedReps,
		).Scan(&detail.ID)
		if err != nil {
			return nil, fmt.Errorf("insert session detail: %w", err)
		}
		added = append(added, detail)
	}

	return added, nil
}

func (r *Repo) SessionDetails(ctx context.Context, sessionID int) (_ []SessionDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessionDetails")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT sd.id, sd.session_id, sd.exercise_id, e.name, COALESCE(sd.planned_sets, 0), COALESCE(sd.planned_reps, 0)
			FROM session_detail sd
			JOIN exercise e ON e.id = sd.exercise_id
			WHERE sd.session_id = $1
			ORDER BY sd.id;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var details []SessionDetail
	for rows.Next() {
		var detail SessionDetail
		if err := rows.Scan(
			&detail.ID, &detail.SessionID, &detail.ExerciseID,
			&detail.ExerciseName, &detail.PlannedSets, &detail.PlannedReps,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		details = append(details, detail)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return details, nil
}

func (r *Repo) AddLog(ctx context.Context, exerciseLog ExerciseLog) (_ *ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO exercise_log (session_id, exercise_id, sets, reps, weight_kg, duration_seconds, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at;`,
		exerciseLog.SessionID, exerciseLog.ExerciseID, exerciseLog.Sets,
		exerciseLog.Reps, exerciseLog.WeightKg, exerciseLog.DurationSeconds,
	).Scan(&exerciseLog.ID, &exerciseLog.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert exercise log: %w", err)
	}

	span.SetAttributes(attribute.Int("log.id", exerciseLog.ID))

	return &exerciseLog, nil
}

func (r *Repo) SessionLogs(ctx context.Context, sessionID int) (_ []ExerciseLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.sessionLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("session.id", sessionID))

	rows, err := r.db.Query(
		ctx,
		`SELECT el.id, el.session_id, el.exercise_id, e.name, el.sets, el.reps, el.weight_kg, el.duration_seconds, el.created_at
			FROM exercise_log el
			JOIN exercise e ON e.id = el.exercise_id
			WHERE el.session_id = $1
			ORDER BY el.id;`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exerciseLogs []ExerciseLog
	for rows.Next() {
		var exerciseLog ExerciseLog
		if err := rows.Scan(
			&exerciseLog.ID, &exerciseLog.SessionID, &exerciseLog.ExerciseID, &exerciseLog.ExerciseName,
			&exerciseLog.Sets, &exerciseLog.Reps, &exerciseLog.WeightKg,
			&exerciseLog.DurationSeconds, &exerciseLog.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		exerciseLogs = append(exerciseLogs, exerciseLog)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return exerciseLogs, nil
}

func (r *Repo) CompleteSession(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.completeSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE workout_session SET completed = true WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// DeleteSession removes a session and everything hanging off it, atomically.
func (r *Repo) DeleteSession(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteSession")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
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

	if _, err = tx.Exec(ctx, `DELETE FROM exercise_log WHERE session_id = $1;`, id); err != nil {
		return fmt.Errorf("delete exercise logs: %w", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM session_detail WHERE session_id = $1;`, id); err != nil {
		return fmt.Errorf("delete session details: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM workout_session WHERE id = $1 AND user_id = $2;`, id, userID)
	if err != nil {
		return fmt.Errorf("delete workout session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *Repo) DeleteDetail(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteDetail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM session_detail WHERE id = $1;`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrDetailNotFound
	}

	return nil
}

func (r *Repo) DeleteLog(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.deleteLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM exercise_log WHERE id = $1;`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}

	return nil
}
