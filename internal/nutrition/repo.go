package nutrition

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

var (
	ErrFoodNotFound    = errors.New("food not found")
	ErrMealLogNotFound = errors.New("meal log not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddFood(ctx context.Context, food Food) (_ *Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO food (name, calories, protein, carbs, fat, created_at)
			VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at;`,
		food.Name, food.Calories, food.Protein, food.Carbs, food.Fat,
	).Scan(&food.ID, &food.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert food: %w", err)
	}

	span.SetAttributes(attribute.Int("food.id", food.ID))

	return &food, nil
}

func (r *Repo) GetFood(ctx context.Context, id int) (_ *Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.getFood")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var food Food
	err = r.db.QueryRow(
		ctx,
		`SELECT id, name, calories, protein, carbs, fat, created_at FROM food WHERE id = $1;`,
		id,
	).Scan(&food.ID, &food.Name, &food.Calories, &food.Protein, &food.Carbs, &food.Fat, &food.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFoodNotFound
		}
		return nil, err
	}

	return &food, nil
}

func (r *Repo) ListFoods(ctx context.Context) (_ []Food, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.listFoods")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`SELECT id, name, calories, protein, carbs, fat, created_at FROM food ORDER BY name;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var foods []Food
	for rows.Next() {
		var food Food
		if err := rows.Scan(
			&food.ID, &food.Name, &food.Calories, &food.Protein, &food.Carbs, &food.Fat, &food.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		foods = append(foods, food)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return foods, nil
}

func (r *Repo) AddMealLog(ctx context.Context, mealLog MealLog) (_ *MealLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.addMealLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO food_log (user_id, food_id, meal_type, amount, log_date)
			VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`,
		mealLog.UserID, mealLog.FoodID, mealLog.MealType, mealLog.Amount, mealLog.LogDate,
	).Scan(&mealLog.ID)
	if err != nil {
		return nil, fmt.Errorf("insert meal log: %w", err)
	}

	span.SetAttributes(attribute.Int("mealLog.id", mealLog.ID))

	return &mealLog, nil
}

func (r *Repo) UpdateMealLog(ctx context.Context, userID, id int, amount float64, mealType string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.updateMealLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE food_log SET amount = $1, meal_type = $2 WHERE id = $3 AND user_id = $4;`,
		amount, mealType, id, userID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrMealLogNotFound
	}

	return nil
}

func (r *Repo) DeleteMealLog(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.deleteMealLog")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM food_log WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrMealLogNotFound
	}

	return nil
}

// ListMealLogs returns the meal logs of a user, together with the food names.
// When logDate is set, only the logs of that calendar day are returned.
func (r *Repo) ListMealLogs(ctx context.Context, userID int, logDate *time.Time) (_ []MealLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.nutrition.listMealLogs")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	query := `
		SELECT fl.id, fl.user_id, fl.food_id, f.name, fl.meal_type, fl.amount, fl.log_date
		FROM food_log fl
		JOIN food f ON f.id = fl.food_id
		WHERE fl.user_id = $1`
	args := []interface{}{userID}
	if logDate != nil {
		query += ` AND fl.log_date = $2`
		args = append(args, *logDate)
	}
	query += ` ORDER BY fl.log_date, fl.id;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mealLogs []MealLog
	for rows.Next() {
		var mealLog MealLog
		if err := rows.Scan(
			&mealLog.ID, &mealLog.UserID, &mealLog.FoodID, &mealLog.FoodName,
			&mealLog.MealType, &mealLog.Amount, &mealLog.LogDate,
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
