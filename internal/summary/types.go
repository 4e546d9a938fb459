package summary

import "time"

// MealLogRow is one meal log joined with the per-serving macros of its food.
type MealLogRow struct {
	LogDate  time.Time
	Amount   float64
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}

// WorkoutRow is one row of the completed sessions query: a qualifying session
// left-joined with its exercise logs. The log columns are nil for sessions
// that have no logged performance.
type WorkoutRow struct {
	SessionID       int
	ScheduledDate   time.Time
	ExerciseName    *string
	Category        *string
	Sets            *int
	Reps            *int
	WeightKg        *float64
	DurationSeconds *int
}

// ExercisePerformance is one logged exercise of a workout day, the input to
// the readiness score.
type ExercisePerformance struct {
	ExerciseName    string
	Category        string
	Sets            int
	Reps            int
	WeightKg        float64
	DurationSeconds int
}

// Summary holds the persisted scalar aggregates of one period.
type Summary struct {
	TotalWorkouts        int     `json:"total_workouts"`
	TotalDurationMinutes int     `json:"total_duration_minutes"`
	TotalCaloriesIntake  int     `json:"total_calories_intake"`
	AvgProtein           int     `json:"avg_protein"`
	AvgCarbs             int     `json:"avg_carbs"`
	AvgFat               int     `json:"avg_fat"`
	TotalGRScore         float64 `json:"total_gr_score"`
	AvgGRScore           float64 `json:"avg_gr_score"`
}

// DailyDatum is one chartable day of the period. Days without any logged
// activity are zero valued, never omitted.
type DailyDatum struct {
	Date     string  `json:"date"`
	Calories int     `json:"calories"`
	Protein  int     `json:"protein"`
	Carbs    int     `json:"carbs"`
	Fat      int     `json:"fat"`
	Workouts int     `json:"workouts"`
	GRScore  float64 `json:"gr_score"`
}

// Response is the composed summary returned to the client: the scalar
// aggregates plus the date-ordered daily series.
type Response struct {
	Summary
	DailyData []DailyDatum `json:"dailyData"`
}
