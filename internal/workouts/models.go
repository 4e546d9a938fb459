package workouts

import "time"

type WorkoutSession struct {
	ID            int       `json:"id"`
	UserID        int       `json:"userId"`
	Type          string    `json:"type"`
	ScheduledDate time.Time `json:"scheduledDate"`
	Completed     bool      `json:"completed"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// SessionDetail is one planned exercise within a session.
type SessionDetail struct {
	ID           int    `json:"id"`
	SessionID    int    `json:"sessionId"`
	ExerciseID   int    `json:"exerciseId"`
	ExerciseName string `json:"exerciseName,omitempty"`
	PlannedSets  int    `json:"plannedSets"`
	PlannedReps  int    `json:"plannedReps"`
}

// ExerciseLog is the actual performance recorded against a session detail.
type ExerciseLog struct {
	ID              int       `json:"id"`
	SessionID       int       `json:"sessionId"`
	ExerciseID      int       `json:"exerciseId"`
	ExerciseName    string    `json:"exerciseName,omitempty"`
	Sets            int       `json:"sets"`
	Reps            int       `json:"reps"`
	WeightKg        float64   `json:"weightKg"`
	DurationSeconds int       `json:"durationSeconds"`
	CreatedAt       time.Time `json:"createdAt"`
}
