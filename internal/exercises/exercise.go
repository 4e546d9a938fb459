package exercises

import "time"

// Exercise is a catalog entry, shared by workout sessions and training plans.
type Exercise struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	DefaultSets int       `json:"defaultSets,omitempty"`
	DefaultReps int       `json:"defaultReps,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
