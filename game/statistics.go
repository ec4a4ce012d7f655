package game

import (
	"math"
	"slices"
)

// Sum ...
func Sum(data []float64) (result float64) {
	for _, v := range data {
		result += v
	}
	return result
}

// Mean ...
func Mean(data []float64) float64 {
	count := float64(len(data))
	if count == 0 {
		return 0
	}
	return Sum(data) / count
}

// Median returns the median of data without reordering it.
func Median(data []float64) float64 {
	count := len(data)
	if count == 0 {
		return 0
	}

	sorted := slices.Clone(data)
	slices.Sort(sorted)
	if count%2 != 0 {
		return sorted[count/2]
	}
	return (sorted[count/2-1] + sorted[count/2]) * 0.5
}

// Variance ...
func Variance(data []float64) (variance float64) {
	count := float64(len(data))
	if count == 0 {
		return 0.0
	}
	mean := Sum(data) / count

	for _, number := range data {
		variance += math.Pow(number-mean, 2)
	}
	return variance / count
}

// StandardDeviation ...
func StandardDeviation(data []float64) float64 {
	return math.Sqrt(Variance(data))
}
