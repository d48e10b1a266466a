package services

import "github.com/ahmetcoskunkizilkaya/daily-diet/internal/dto"

// ComputeMetrics reduces a sequence of on-diet flags, in listing order, to
// the adherence summary. The best sequence is the longest run of consecutive
// on-diet meals.
func ComputeMetrics(onDiet []bool) dto.MetricsResponse {
	var m dto.MetricsResponse
	current := 0

	for _, ok := range onDiet {
		m.TotalMeals++
		if !ok {
			m.NumberOfMealsOutOfDiet++
			current = 0
			continue
		}

		m.NumberOfMealsInDiet++
		current++
		if current > m.MealsInDietBestSequence {
			m.MealsInDietBestSequence = current
		}
	}
	return m
}
