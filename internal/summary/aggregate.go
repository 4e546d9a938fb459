package summary

import (
	"math"
	"time"
)

type dailyNutrition struct {
	calories float64
	protein  float64
	carbs    float64
	fat      float64
}

type nutritionAggregate struct {
	totalCalories int
	avgProtein    int
	avgCarbs      int
	avgFat        int
	perDay        map[string]dailyNutrition
}

// aggregateNutrition folds the meal logs of a period into intake totals and a
// per-day breakdown. Macro values are amount (servings) times the per-serving
// value of the food. Averages are per day of period, not per meal.
func aggregateNutrition(mealLogs []MealLogRow, dayCount int) nutritionAggregate {
	var totalCalories, totalProtein, totalCarbs, totalFat float64
	perDay := make(map[string]dailyNutrition)

	for _, mealLog := range mealLogs {
		calories := mealLog.Calories * mealLog.Amount
		protein := mealLog.Protein * mealLog.Amount
		carbs := mealLog.Carbs * mealLog.Amount
		fat := mealLog.Fat * mealLog.Amount

		totalCalories += calories
		totalProtein += protein
		totalCarbs += carbs
		totalFat += fat

		day := dayKey(mealLog.LogDate)
		daily := perDay[day]
		daily.calories += calories
		daily.protein += protein
		daily.carbs += carbs
		daily.fat += fat
		perDay[day] = daily
	}

	return nutritionAggregate{
		totalCalories: roundToInt(totalCalories),
		avgProtein:    roundToInt(totalProtein / float64(dayCount)),
		avgCarbs:      roundToInt(totalCarbs / float64(dayCount)),
		avgFat:        roundToInt(totalFat / float64(dayCount)),
		perDay:        perDay,
	}
}

type workoutAggregate struct {
	totalWorkouts        int
	totalDurationMinutes int
	sessionsPerDay       map[string]int
	exercisesPerDay      map[string][]ExercisePerformance
}

// aggregateWorkouts folds the completed session rows of a period into workout
// totals and per-day exercise groups. A session may carry zero or many logged
// exercises; sessions without logs count as workouts but contribute nothing
// to duration or to the per-day groups.
func aggregateWorkouts(workoutRows []WorkoutRow) workoutAggregate {
	seenSessions := make(map[int]bool)
	sessionsPerDay := make(map[string]int)
	exercisesPerDay := make(map[string][]ExercisePerformance)
	var totalDurationSeconds int

	for _, row := range workoutRows {
		day := dayKey(row.ScheduledDate)
		if !seenSessions[row.SessionID] {
			seenSessions[row.SessionID] = true
			sessionsPerDay[day]++
		}

		if row.ExerciseName == nil {
			continue
		}

		performance := ExercisePerformance{
			ExerciseName: *row.ExerciseName,
		}
		if row.Category != nil {
			performance.Category = *row.Category
		}
		if row.Sets != nil {
			performance.Sets = *row.Sets
		}
		if row.Reps != nil {
			performance.Reps = *row.Reps
		}
		if row.WeightKg != nil {
			performance.WeightKg = *row.WeightKg
		}
		if row.DurationSeconds != nil {
			performance.DurationSeconds = *row.DurationSeconds
			totalDurationSeconds += *row.DurationSeconds
		}

		exercisesPerDay[day] = append(exercisesPerDay[day], performance)
	}

	return workoutAggregate{
		totalWorkouts:        len(seenSessions),
		totalDurationMinutes: totalDurationSeconds / 60,
		sessionsPerDay:       sessionsPerDay,
		exercisesPerDay:      exercisesPerDay,
	}
}

// aggregateScores runs the readiness score over every workout day group. The
// average is taken over days with a positive score only, 0 when there are
// no such days.
func aggregateScores(exercisesPerDay map[string][]ExercisePerformance) (perDay map[string]float64, total, avg float64) {
	perDay = make(map[string]float64)
	var scoredDays int
	for day, exercises := range exercisesPerDay {
		score := GRScore(exercises)
		perDay[day] = score
		total += score
		if score > 0 {
			scoredDays++
		}
	}
	if scoredDays > 0 {
		avg = total / float64(scoredDays)
	}
	return perDay, total, avg
}

func dayKey(t time.Time) string {
	return t.Format(dateLayout)
}

func roundToInt(val float64) int {
	return int(math.Round(val))
}
