package boundary

// InfBound stands in for a missing one-sided bound. It is large enough
// never to bind yet finite, so downstream consumers that distinguish
// "one-sided" from "unconstrained" see a concrete value on the open side.
const InfBound = 1.0e30

// Scalar returns a pointer to v, for the optional scaling fields of
// ConstraintSpec.
func Scalar(v float64) *float64 {
	return &v
}

// Bound wraps a scalar bound value as a one-element array. Bounds are
// []float64 so a vector constraint can carry one entry per element; a
// single entry applies to every element.
func Bound(v float64) []float64 {
	return []float64{v}
}

// NormalizeBounds completes a one-sided bound pair with the sentinel:
// a lone upper gains lower = -InfBound, a lone lower gains upper =
// +InfBound. The substituted side is always a scalar, even when the given
// side is an array. Two nils stay nil (no inequality constraint) and two
// values pass through untouched.
func NormalizeBounds(lower, upper []float64) ([]float64, []float64) {
	if upper != nil && lower == nil {
		lower = Bound(-InfBound)
	}
	if lower != nil && upper == nil {
		upper = Bound(InfBound)
	}
	return lower, upper
}
