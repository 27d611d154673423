package model

import (
	"fmt"
	"sort"

	"github.com/san-kum/trajopt/internal/boundary"
)

// Variable is a named flat array with shape metadata. Data is the live
// buffer handed out by Value.
type Variable struct {
	Name  string
	Shape []int
	Units string
	Desc  string
	Input bool
	Data  []float64
}

// Partials is one declared sparse derivative block in triplet form.
type Partials struct {
	Of   string
	Wrt  string
	Rows []int
	Cols []int
	Vals []float64
}

// Constraint ties registered constraint metadata to an output.
type Constraint struct {
	Output string
	Meta   boundary.ConstraintMeta
}

// Model is a minimal stand-in for the enclosing optimization framework:
// it owns named variables with value buffers, sparse partial declarations
// and the constraint set. It satisfies boundary.Structure and
// boundary.Values.
type Model struct {
	vars        map[string]*Variable
	order       []string
	partials    []Partials
	constraints []Constraint
	byOutput    map[string]int
}

func New() *Model {
	return &Model{
		vars:     make(map[string]*Variable),
		byOutput: make(map[string]int),
	}
}

func (m *Model) add(name string, shape []int, units, desc string, input bool) error {
	if name == "" {
		return fmt.Errorf("model: variable name must not be empty")
	}
	if _, ok := m.vars[name]; ok {
		return fmt.Errorf("model: variable %q already exists", name)
	}
	size := 1
	for _, dim := range shape {
		if dim <= 0 {
			return fmt.Errorf("model: variable %q has non-positive dimension in shape %v", name, shape)
		}
		size *= dim
	}
	m.vars[name] = &Variable{
		Name:  name,
		Shape: shape,
		Units: units,
		Desc:  desc,
		Input: input,
		Data:  make([]float64, size),
	}
	m.order = append(m.order, name)
	return nil
}

func (m *Model) AddInput(name string, shape []int, units, desc string) error {
	return m.add(name, shape, units, desc, true)
}

func (m *Model) AddOutput(name string, shape []int, units, desc string) error {
	return m.add(name, shape, units, desc, false)
}

// DeclarePartials records a sparse derivative block of output `of` with
// respect to input `wrt`. The triplet slices are kept by reference; the
// caller owns their lifetime.
func (m *Model) DeclarePartials(of, wrt string, rows, cols []int, vals []float64) error {
	ov, ok := m.vars[of]
	if !ok || ov.Input {
		return fmt.Errorf("model: partials of unknown output %q", of)
	}
	wv, ok := m.vars[wrt]
	if !ok || !wv.Input {
		return fmt.Errorf("model: partials wrt unknown input %q", wrt)
	}
	if len(rows) != len(cols) || len(rows) != len(vals) {
		return fmt.Errorf("model: partials of %q wrt %q: triplet lengths differ (%d rows, %d cols, %d vals)",
			of, wrt, len(rows), len(cols), len(vals))
	}
	m.partials = append(m.partials, Partials{Of: of, Wrt: wrt, Rows: rows, Cols: cols, Vals: vals})
	return nil
}

// AddConstraint registers constraint metadata against an output, at most
// once per output.
func (m *Model) AddConstraint(name string, meta boundary.ConstraintMeta) error {
	v, ok := m.vars[name]
	if !ok || v.Input {
		return fmt.Errorf("model: constraint on unknown output %q", name)
	}
	if _, ok := m.byOutput[name]; ok {
		return fmt.Errorf("model: output %q already constrained", name)
	}
	m.byOutput[name] = len(m.constraints)
	m.constraints = append(m.constraints, Constraint{Output: name, Meta: meta})
	return nil
}

// Value returns the live buffer of a variable, or nil if it does not
// exist. Writes through the returned slice are visible to every reader.
func (m *Model) Value(name string) []float64 {
	v, ok := m.vars[name]
	if !ok {
		return nil
	}
	return v.Data
}

// SetValue copies vals into the variable's buffer; the lengths must match.
func (m *Model) SetValue(name string, vals []float64) error {
	v, ok := m.vars[name]
	if !ok {
		return fmt.Errorf("model: unknown variable %q", name)
	}
	if len(vals) != len(v.Data) {
		return fmt.Errorf("model: variable %q has size %d, got %d values", name, len(v.Data), len(vals))
	}
	copy(v.Data, vals)
	return nil
}

// Variable looks up a variable by name.
func (m *Model) Variable(name string) (*Variable, bool) {
	v, ok := m.vars[name]
	return v, ok
}

// Inputs returns the input names in creation order.
func (m *Model) Inputs() []string {
	return m.names(true)
}

// Outputs returns the output names in creation order.
func (m *Model) Outputs() []string {
	return m.names(false)
}

func (m *Model) names(input bool) []string {
	out := make([]string, 0, len(m.order))
	for _, name := range m.order {
		if m.vars[name].Input == input {
			out = append(out, name)
		}
	}
	return out
}

// Partials returns every declared derivative block.
func (m *Model) Partials() []Partials {
	out := make([]Partials, len(m.partials))
	copy(out, m.partials)
	return out
}

// Constraints returns the registered constraints in registration order.
func (m *Model) Constraints() []Constraint {
	out := make([]Constraint, len(m.constraints))
	copy(out, m.constraints)
	return out
}

// ConstraintOn returns the metadata registered against an output.
func (m *Model) ConstraintOn(output string) (boundary.ConstraintMeta, bool) {
	i, ok := m.byOutput[output]
	if !ok {
		return boundary.ConstraintMeta{}, false
	}
	return m.constraints[i].Meta, true
}

// ConstrainedOutputs returns the constrained output names, sorted.
func (m *Model) ConstrainedOutputs() []string {
	out := make([]string, 0, len(m.byOutput))
	for name := range m.byOutput {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
