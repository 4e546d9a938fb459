package nutrition

import "time"

// Food macros are per single serving; a meal log stores the number of
// servings consumed, so totals are amount * per-serving value.
type Food struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Calories  float64   `json:"calories"`
	Protein   float64   `json:"protein"`
	Carbs     float64   `json:"carbs"`
	Fat       float64   `json:"fat"`
	CreatedAt time.Time `json:"createdAt"`
}

type MealLog struct {
	ID       int       `json:"id"`
	UserID   int       `json:"userId"`
	FoodID   int       `json:"foodId"`
	FoodName string    `json:"foodName,omitempty"`
	MealType string    `json:"mealType"`
	Amount   float64   `json:"amount"`
	LogDate  time.Time `json:"logDate"`
}
