package phase

import (
	"fmt"

	"github.com/san-kum/trajopt/internal/boundary"
	"github.com/san-kum/trajopt/internal/model"
)

// VarOptions describes a trajectory variable the phase knows about, so a
// boundary constraint on it can inherit shape and units without repeating
// them at the call site.
type VarOptions struct {
	Shape []int
	Units string
	Desc  string
}

// Phase assembles the boundary-constraint layer for one optimization
// phase: two registries (initial and final), filled during configuration,
// then built exactly once by Setup.
type Phase struct {
	name     string
	states   map[string]VarOptions
	controls map[string]VarOptions
	initial  *boundary.Registry
	final    *boundary.Registry
	built    bool
}

func New(name string) *Phase {
	initial, _ := boundary.NewRegistry(boundary.Initial)
	final, _ := boundary.NewRegistry(boundary.Final)
	return &Phase{
		name:     name,
		states:   make(map[string]VarOptions),
		controls: make(map[string]VarOptions),
		initial:  initial,
		final:    final,
	}
}

func (p *Phase) Name() string { return p.name }

// SetStateOptions records shape/units for a state variable.
func (p *Phase) SetStateOptions(name string, opts VarOptions) {
	p.states[name] = opts
}

// AddControl records shape/units for a control variable.
func (p *Phase) AddControl(name string, opts VarOptions) {
	p.controls[name] = opts
}

// AddBoundaryConstraint declares a constraint on the value of a variable
// at one end of the phase. Names that match a declared state or control
// inherit its shape and units when the spec leaves them unset; unknown
// names are accepted as-is, since constraints may target ODE outputs the
// phase never declares.
func (p *Phase) AddBoundaryConstraint(loc boundary.Loc, spec boundary.ConstraintSpec) error {
	if p.built {
		return fmt.Errorf("phase %q: boundary constraint %q declared after setup", p.name, spec.Name)
	}
	if opts, ok := p.lookup(spec.Name); ok {
		if spec.Shape == nil && opts.Shape != nil {
			spec.Shape = opts.Shape
		}
		if spec.Units == "" {
			spec.Units = opts.Units
		}
	}
	switch loc {
	case boundary.Initial:
		return p.initial.Declare(spec)
	case boundary.Final:
		return p.final.Declare(spec)
	default:
		return fmt.Errorf("%w: got %q", boundary.ErrBadLoc, loc)
	}
}

func (p *Phase) lookup(name string) (VarOptions, bool) {
	if opts, ok := p.states[name]; ok {
		return opts, true
	}
	opts, ok := p.controls[name]
	return opts, ok
}

// Registry exposes the accumulated declarations for one location.
func (p *Phase) Registry(loc boundary.Loc) *boundary.Registry {
	if loc == boundary.Initial {
		return p.initial
	}
	return p.final
}

// Setup builds both boundary comps into m. It runs once; a second call
// fails.
func (p *Phase) Setup(m *model.Model) (*System, error) {
	if p.built {
		return nil, fmt.Errorf("phase %q: setup already ran", p.name)
	}
	p.built = true

	sys := &System{model: m}
	for _, reg := range []*boundary.Registry{p.initial, p.final} {
		if reg.Len() == 0 {
			continue
		}
		comp, err := boundary.Build(reg, m)
		if err != nil {
			return nil, fmt.Errorf("phase %q: %w", p.name, err)
		}
		sys.comps = append(sys.comps, comp)
	}
	return sys, nil
}

// System is a built phase: the host model plus the boundary comps that
// evaluate against it.
type System struct {
	model *model.Model
	comps []*boundary.Comp
}

func (s *System) Model() *model.Model { return s.model }

// Comps returns the built boundary comps, initial before final.
func (s *System) Comps() []*boundary.Comp { return s.comps }

// Evaluate refreshes every pass-through output from its input; called once
// per solver iteration.
func (s *System) Evaluate() {
	for _, c := range s.comps {
		c.Compute(s.model, s.model)
	}
}

// Vars returns every built pass-through pair across both locations.
func (s *System) Vars() []boundary.Var {
	var out []boundary.Var
	for _, c := range s.comps {
		out = append(out, c.Vars()...)
	}
	return out
}
