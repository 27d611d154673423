package boundary

import (
	"reflect"
	"testing"
)

func TestNormalizeBounds(t *testing.T) {
	tests := []struct {
		name      string
		lower     []float64
		upper     []float64
		wantLower []float64
		wantUpper []float64
	}{
		{"neither", nil, nil, nil, nil},
		{"both", Bound(-1.0), Bound(1.0), Bound(-1.0), Bound(1.0)},
		{"upper only", nil, Bound(20000.0), Bound(-InfBound), Bound(20000.0)},
		{"lower only", Bound(-1.5), nil, Bound(-1.5), Bound(InfBound)},
		{"array lower only", []float64{100, 200, 300}, nil, []float64{100, 200, 300}, Bound(InfBound)},
		{"array upper only", nil, []float64{1, 2, 3}, Bound(-InfBound), []float64{1, 2, 3}},
		{"both arrays", []float64{0, 0}, []float64{1, 2}, []float64{0, 0}, []float64{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lower, upper := NormalizeBounds(tt.lower, tt.upper)
			if !reflect.DeepEqual(lower, tt.wantLower) {
				t.Errorf("lower = %v, want %v", lower, tt.wantLower)
			}
			if !reflect.DeepEqual(upper, tt.wantUpper) {
				t.Errorf("upper = %v, want %v", upper, tt.wantUpper)
			}
		})
	}
}

func TestNormalizeBounds_Idempotent(t *testing.T) {
	lower, upper := NormalizeBounds(Bound(-1.5), nil)
	lower2, upper2 := NormalizeBounds(lower, upper)

	if !reflect.DeepEqual(lower2, lower) || !reflect.DeepEqual(upper2, upper) {
		t.Errorf("second normalization changed bounds: (%v, %v) -> (%v, %v)",
			lower, upper, lower2, upper2)
	}
}

func TestNormalizeBounds_SentinelFinite(t *testing.T) {
	_, upper := NormalizeBounds(Bound(0.0), nil)
	if upper[0] != InfBound {
		t.Errorf("upper = %v, want %v", upper[0], InfBound)
	}
	if upper[0]*2 == upper[0] {
		t.Error("sentinel must remain finite under arithmetic")
	}
}
