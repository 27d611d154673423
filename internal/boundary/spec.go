package boundary

import "fmt"

// Loc places a boundary constraint at one end of a phase.
type Loc string

const (
	Initial Loc = "initial"
	Final   Loc = "final"
)

func (l Loc) Valid() bool {
	return l == Initial || l == Final
}

// InputName is the deterministic name of the pass-through input for a
// constraint at this location. External code may compute it without
// querying a registry.
func (l Loc) InputName(name string) string {
	return fmt.Sprintf("%s_value_in:%s", l, name)
}

// OutputName is the deterministic name of the constrained pass-through
// output for a constraint at this location.
func (l Loc) OutputName(name string) string {
	return fmt.Sprintf("%s_value:%s", l, name)
}

// ConstraintSpec declares one boundary constraint. Every recognized option
// is an explicit field; build DefaultSpec first and override what you need.
//
// Lower, Upper and Equals are nil when absent; a one-element slice applies
// to every element of the constraint, and a slice of the constraint's full
// size bounds each element individually. Exactly one of Equals or the
// Lower/Upper pair may be populated.
type ConstraintSpec struct {
	Name  string
	Shape []int // nil or empty means scalar
	Units string
	Desc  string

	Lower  []float64
	Upper  []float64
	Equals []float64

	Scaler *float64
	Adder  *float64
	Ref    float64
	Ref0   float64

	Linear      bool
	ResRef      float64
	Distributed bool

	// Indices restricts the constraint to a subset of the output's
	// entries; nil constrains all of them.
	Indices []int
}

// DefaultSpec returns a spec for name with the documented defaults:
// shape (1,), ref 1, ref0 0, res_ref 1, nonlinear, not distributed.
func DefaultSpec(name string) ConstraintSpec {
	return ConstraintSpec{
		Name:   name,
		Shape:  []int{1},
		Ref:    1.0,
		ResRef: 1.0,
	}
}

// Size is the flat element count of a shape; the empty shape is a scalar
// of size 1.
func Size(shape []int) int {
	size := 1
	for _, dim := range shape {
		size *= dim
	}
	return size
}

func validShape(shape []int) bool {
	for _, dim := range shape {
		if dim <= 0 {
			return false
		}
	}
	return true
}
