package testutil

import (
	"math"
	"testing"
)

// RequireAllEqual fails t unless every element of data equals want
// exactly. Used for kernels whose results are exact in float64.
func RequireAllEqual(t *testing.T, data []float64, want float64) {
	t.Helper()
	for i, v := range data {
		if v != want {
			t.Fatalf("index %d: got %v, want %v", i, v, want)
		}
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}
