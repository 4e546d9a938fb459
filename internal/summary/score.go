package summary

// GRScore derives the growth/readiness score of one workout day from the
// exercises performed that day. Deterministic, no exercises means score 0.
//
// Each exercise contributes its volume (sets x reps x weight, scaled down by
// 100) plus its duration in minutes.
func GRScore(exercises []ExercisePerformance) float64 {
	var score float64
	for _, ex := range exercises {
		score += float64(ex.Sets*ex.Reps)*ex.WeightKg/100 + float64(ex.DurationSeconds)/60
	}
	return score
}
