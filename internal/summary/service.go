package summary

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ngrujic/fittrack/internal/telemetry/metrics"
	"github.com/ngrujic/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=summary_test

type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type summaryRepo interface {
	MealLogs(ctx context.Context, q Querier, userID int, start, end time.Time) ([]MealLogRow, error)
	CompletedWorkouts(ctx context.Context, q Querier, userID int, start, end time.Time) ([]WorkoutRow, error)
	Upsert(ctx context.Context, q Querier, userID int, period Period, s Summary) error
}

// Service generates periodic summaries: it aggregates the meal and workout
// logs of one user over one period, persists the scalar rollup, and returns
// the rollup together with the zero-filled daily series.
type Service struct {
	db             txBeginner
	repo           summaryRepo
	metricsManager *metrics.Manager
}

func NewService(db txBeginner, repo summaryRepo, metricsManager *metrics.Manager) *Service {
	return &Service{
		db:             db,
		repo:           repo,
		metricsManager: metricsManager,
	}
}

// Generate computes and persists the summary of one (user, period type,
// period start) key. The reads and the rollup upsert run inside a single
// transaction so concurrent log writes cannot be partially reflected; the
// daily series is built afterwards from the already fetched rows. Invalid
// input fails with ErrInvalidPeriodType or ErrInvalidDate before any
// transaction is opened.
func (s *Service) Generate(ctx context.Context, userID int, periodType PeriodType, periodStart string) (_ *Response, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.summary.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.String("period.type", string(periodType)),
	)

	startedAt := time.Now()

	period, err := ResolvePeriod(periodType, periodStart)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		}
	}()

	mealLogs, err := s.repo.MealLogs(ctx, tx, userID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("get meal logs: %w", err)
	}

	workoutRows, err := s.repo.CompletedWorkouts(ctx, tx, userID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("get completed workouts: %w", err)
	}

	nutrition := aggregateNutrition(mealLogs, period.DayCount)
	workouts := aggregateWorkouts(workoutRows)
	scoresPerDay, totalScore, avgScore := aggregateScores(workouts.exercisesPerDay)

	rollup := Summary{
		TotalWorkouts:        workouts.totalWorkouts,
		TotalDurationMinutes: workouts.totalDurationMinutes,
		TotalCaloriesIntake:  nutrition.totalCalories,
		AvgProtein:           nutrition.avgProtein,
		AvgCarbs:             nutrition.avgCarbs,
		AvgFat:               nutrition.avgFat,
		TotalGRScore:         totalScore,
		AvgGRScore:           avgScore,
	}

	if err = s.repo.Upsert(ctx, tx, userID, period, rollup); err != nil {
		return nil, fmt.Errorf("upsert summary: %w", err)
	}

	// the rollup must be durable before the series is built
	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	dailyData := buildDailySeries(period, nutrition, workouts, scoresPerDay)

	s.metricsManager.CounterSummariesGenerated.Inc()
	s.metricsManager.HistSummaryGenDuration.Observe(time.Since(startedAt).Seconds())

	return &Response{
		Summary:   rollup,
		DailyData: dailyData,
	}, nil
}

// buildDailySeries overlays the per-day aggregates onto a zero-filled series
// of exactly one entry per date of the period.
func buildDailySeries(
	period Period,
	nutrition nutritionAggregate,
	workouts workoutAggregate,
	scoresPerDay map[string]float64,
) []DailyDatum {
	dailyData := make([]DailyDatum, 0, period.DayCount)
	for _, day := range period.Days() {
		key := dayKey(day)
		datum := DailyDatum{Date: key}
		if daily, ok := nutrition.perDay[key]; ok {
			datum.Calories = roundToInt(daily.calories)
			datum.Protein = roundToInt(daily.protein)
			datum.Carbs = roundToInt(daily.carbs)
			datum.Fat = roundToInt(daily.fat)
		}
		datum.Workouts = workouts.sessionsPerDay[key]
		datum.GRScore = scoresPerDay[key]
		dailyData = append(dailyData, datum)
	}
	return dailyData
}
