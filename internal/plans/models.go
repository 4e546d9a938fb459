package plans

import "time"

type Plan struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DaysPerWeek int    `json:"daysPerWeek"`
}

type PlanDay struct {
	ID        int            `json:"id"`
	PlanID    int            `json:"planId"`
	DayNumber int            `json:"dayNumber"`
	Name      string         `json:"name"`
	Exercises []PlanExercise `json:"exercises"`
}

type PlanExercise struct {
	ID           int    `json:"id"`
	PlanDayID    int    `json:"planDayId"`
	ExerciseID   int    `json:"exerciseId"`
	ExerciseName string `json:"exerciseName,omitempty"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
}

type PlanDetails struct {
	Plan Plan      `json:"plan"`
	Days []PlanDay `json:"days"`
}

// ApplyPlanResult reports the sessions scheduled by applying a plan.
type ApplyPlanResult struct {
	PlanID     int         `json:"planId"`
	UserID     int         `json:"userId"`
	StartDate  time.Time   `json:"startDate"`
	SessionIDs []int       `json:"sessionIds"`
	Scheduled  []time.Time `json:"scheduled"`
}
