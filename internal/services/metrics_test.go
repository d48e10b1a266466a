package services

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/dto"
	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics(t *testing.T) {
	tests := []struct {
		name  string
		flags []bool
		want  dto.MetricsResponse
	}{
		{
			name: "empty",
			want: dto.MetricsResponse{},
		},
		{
			name:  "worked example",
			flags: []bool{true, true, true, false, false},
			want:  dto.MetricsResponse{TotalMeals: 5, NumberOfMealsInDiet: 3, NumberOfMealsOutOfDiet: 2, MealsInDietBestSequence: 3},
		},
		{
			name:  "all on diet",
			flags: []bool{true, true, true, true},
			want:  dto.MetricsResponse{TotalMeals: 4, NumberOfMealsInDiet: 4, MealsInDietBestSequence: 4},
		},
		{
			name:  "none on diet",
			flags: []bool{false, false},
			want:  dto.MetricsResponse{TotalMeals: 2, NumberOfMealsOutOfDiet: 2},
		},
		{
			name:  "later run is longer",
			flags: []bool{true, false, true, true, false, true, true, true},
			want:  dto.MetricsResponse{TotalMeals: 8, NumberOfMealsInDiet: 6, NumberOfMealsOutOfDiet: 2, MealsInDietBestSequence: 3},
		},
		{
			name:  "earlier run is longer",
			flags: []bool{true, true, false, true},
			want:  dto.MetricsResponse{TotalMeals: 4, NumberOfMealsInDiet: 3, NumberOfMealsOutOfDiet: 1, MealsInDietBestSequence: 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeMetrics(tt.flags))
		})
	}
}

func TestComputeMetricsAllSequences(t *testing.T) {
	// Every flag sequence of length 0..8.
	for n := 0; n <= 8; n++ {
		for mask := 0; mask < 1<<n; mask++ {
			flags := make([]bool, n)
			allOn := true
			for i := range flags {
				flags[i] = mask&(1<<i) != 0
				allOn = allOn && flags[i]
			}

			m := ComputeMetrics(flags)
			assert.Equal(t, m.TotalMeals, m.NumberOfMealsInDiet+m.NumberOfMealsOutOfDiet)
			assert.LessOrEqual(t, m.MealsInDietBestSequence, m.TotalMeals)
			if n > 0 {
				assert.Equal(t, allOn, m.MealsInDietBestSequence == m.TotalMeals, "flags %v", flags)
			}
		}
	}
}
