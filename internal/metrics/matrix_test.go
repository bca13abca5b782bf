// internal/metrics/matrix_test.go
package metrics

import (
	"math"
	"testing"
)

func TestBuildMatrix(t *testing.T) {
	records := []LongRecord{
		{"m1", "p01", MetricQuality, 4},
		{"m1", "p02", MetricQuality, 3},
		{"m2", "p01", MetricQuality, 2},
		{"m2", "p01", MetricLatency, 9},
	}

	matrix := BuildMatrix(records, MetricQuality, []string{"m1", "m2"}, []string{"p01", "p02"})
	if len(matrix) != 2 || len(matrix[0]) != 2 {
		t.Fatalf("unexpected matrix shape: %v", matrix)
	}
	if matrix[0][0] != 4 || matrix[0][1] != 3 || matrix[1][0] != 2 {
		t.Fatalf("unexpected matrix values: %v", matrix)
	}
	if !math.IsNaN(matrix[1][1]) {
		t.Fatalf("missing cell must be NaN, got %v", matrix[1][1])
	}
}

func TestBuildMatrixDuplicateTakesFirst(t *testing.T) {
	records := []LongRecord{
		{"m1", "p01", MetricQuality, 4},
		{"m1", "p01", MetricQuality, 9},
	}
	matrix := BuildMatrix(records, MetricQuality, []string{"m1"}, []string{"p01"})
	if matrix[0][0] != 4 {
		t.Fatalf("duplicate triple must resolve to the first match, got %v", matrix[0][0])
	}
}

func TestMinMax(t *testing.T) {
	matrix := [][]float64{
		{1, math.NaN(), 5},
		{-2, 3, math.NaN()},
	}
	min, max := MinMax(matrix)
	if min != -2 || max != 5 {
		t.Fatalf("MinMax = (%v, %v), want (-2, 5)", min, max)
	}
}

func TestMinMaxAllNaN(t *testing.T) {
	matrix := [][]float64{
		{math.NaN(), math.NaN()},
	}
	min, max := MinMax(matrix)
	if min != 0 || max != 1 {
		t.Fatalf("all-NaN matrix must default to (0, 1), got (%v, %v)", min, max)
	}

	min, max = MinMax(nil)
	if min != 0 || max != 1 {
		t.Fatalf("empty matrix must default to (0, 1), got (%v, %v)", min, max)
	}
}
