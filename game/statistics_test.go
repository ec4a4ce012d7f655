package game

import (
	"math"
	"testing"
)

func TestStatistics(t *testing.T) {
	data := []float64{4, 1, 3, 2}
	if Mean(data) != 2.5 {
		t.Fatalf("expected mean 2.5, got %v", Mean(data))
	}
	if Median(data) != 2.5 {
		t.Fatalf("expected median 2.5, got %v", Median(data))
	}
	if data[0] != 4 {
		t.Fatalf("expected Median not to reorder its input, got %v", data)
	}
	if Median([]float64{5, 1, 3}) != 3 {
		t.Fatalf("expected median 3")
	}
	if math.Abs(StandardDeviation(data)-math.Sqrt(1.25)) > 1e-12 {
		t.Fatalf("expected standard deviation sqrt(1.25), got %v", StandardDeviation(data))
	}
	if Mean(nil) != 0 || Median(nil) != 0 || Variance(nil) != 0 {
		t.Fatalf("expected empty data to give zeros")
	}
}
