package boundary

import "fmt"

// ConstraintMeta is the constraint metadata attached to a pass-through
// output, in the form the enclosing optimization framework consumes.
// Bound slices carry either one entry for all elements or one per element.
type ConstraintMeta struct {
	Lower   []float64
	Upper   []float64
	Equals  []float64
	Scaler  *float64
	Adder   *float64
	Ref     float64
	Ref0    float64
	Indices []int
	Linear  bool
}

// Structure is the model-building surface of the enclosing optimization
// framework: named variable creation, sparse partial declarations and
// constraint registration.
type Structure interface {
	AddInput(name string, shape []int, units, desc string) error
	AddOutput(name string, shape []int, units, desc string) error
	DeclarePartials(of, wrt string, rows, cols []int, vals []float64) error
	AddConstraint(name string, meta ConstraintMeta) error
}

// SparseIdentity is the derivative of a pass-through output with respect
// to its input: ones on the diagonal, held as parallel triplet arrays so a
// large vector never allocates a dense size×size block.
type SparseIdentity struct {
	Rows []int
	Cols []int
	Vals []float64
}

// NewSparseIdentity builds the triplet form of the size×size identity.
func NewSparseIdentity(size int) SparseIdentity {
	rows := make([]int, size)
	cols := make([]int, size)
	vals := make([]float64, size)
	for i := 0; i < size; i++ {
		rows[i] = i
		cols[i] = i
		vals[i] = 1.0
	}
	return SparseIdentity{Rows: rows, Cols: cols, Vals: vals}
}

// Var is one built pass-through pair. Names are deterministic functions of
// the location and the constraint name.
type Var struct {
	Name       string
	Loc        Loc
	InputName  string
	OutputName string
	Shape      []int
	Size       int
	Jac        SparseIdentity
}

// Build materializes every spec declared in reg as model structure on s:
// one input/output pair per constraint, constraint metadata on the output,
// and an identity partial between the pair. It runs exactly once per
// registry; a second call fails with ErrAlreadyBuilt.
func Build(reg *Registry, s Structure) (*Comp, error) {
	if reg.built {
		return nil, ErrAlreadyBuilt
	}
	reg.built = true

	comp := &Comp{loc: reg.loc, vars: make([]Var, 0, len(reg.specs))}
	seen := make(map[string]struct{}, len(reg.specs))

	for _, spec := range reg.specs {
		if !validShape(spec.Shape) {
			return nil, fmt.Errorf("%w: %q has shape %v", ErrBadShape, spec.Name, spec.Shape)
		}
		v := Var{
			Name:       spec.Name,
			Loc:        reg.loc,
			InputName:  reg.loc.InputName(spec.Name),
			OutputName: reg.loc.OutputName(spec.Name),
			Shape:      spec.Shape,
			Size:       Size(spec.Shape),
		}
		if _, ok := seen[v.OutputName]; ok {
			return nil, fmt.Errorf("boundary: duplicate output name %q", v.OutputName)
		}
		seen[v.OutputName] = struct{}{}

		if err := s.AddInput(v.InputName, v.Shape, spec.Units, spec.Desc); err != nil {
			return nil, fmt.Errorf("boundary: add input %q: %w", v.InputName, err)
		}
		if err := s.AddOutput(v.OutputName, v.Shape, spec.Units, spec.Desc); err != nil {
			return nil, fmt.Errorf("boundary: add output %q: %w", v.OutputName, err)
		}

		meta := ConstraintMeta{
			Lower:   spec.Lower,
			Upper:   spec.Upper,
			Equals:  spec.Equals,
			Scaler:  spec.Scaler,
			Adder:   spec.Adder,
			Ref:     spec.Ref,
			Ref0:    spec.Ref0,
			Indices: spec.Indices,
			Linear:  spec.Linear,
		}
		if err := s.AddConstraint(v.OutputName, meta); err != nil {
			return nil, fmt.Errorf("boundary: constrain %q: %w", v.OutputName, err)
		}

		// Triplets are allocated here, once, and reused every iteration.
		v.Jac = NewSparseIdentity(v.Size)
		if err := s.DeclarePartials(v.OutputName, v.InputName, v.Jac.Rows, v.Jac.Cols, v.Jac.Vals); err != nil {
			return nil, fmt.Errorf("boundary: partials of %q wrt %q: %w", v.OutputName, v.InputName, err)
		}

		comp.vars = append(comp.vars, v)
	}

	return comp, nil
}
