package boundary

import "fmt"

// Registry accumulates boundary constraint declarations for one phase
// location ahead of structural build. It is write-once: there is no
// removal, and Build consumes it exactly once.
type Registry struct {
	loc   Loc
	specs []ConstraintSpec
	names map[string]struct{}
	built bool
}

func NewRegistry(loc Loc) (*Registry, error) {
	if !loc.Valid() {
		return nil, fmt.Errorf("%w: got %q", ErrBadLoc, loc)
	}
	return &Registry{
		loc:   loc,
		specs: make([]ConstraintSpec, 0),
		names: make(map[string]struct{}),
	}, nil
}

// Declare validates spec, normalizes its bounds and appends it. No model
// structure is created here; that happens once, in Build.
func (r *Registry) Declare(spec ConstraintSpec) error {
	if spec.Name == "" {
		return ErrEmptyName
	}
	if _, ok := r.names[spec.Name]; ok {
		return fmt.Errorf("%w: %q at loc %q", ErrDuplicateName, spec.Name, r.loc)
	}
	if !validShape(spec.Shape) {
		return fmt.Errorf("%w: %q has shape %v", ErrBadShape, spec.Name, spec.Shape)
	}
	if spec.Equals != nil && (spec.Lower != nil || spec.Upper != nil) {
		return fmt.Errorf("%w: %q", ErrConflictingBounds, spec.Name)
	}
	size := Size(spec.Shape)
	for side, b := range map[string][]float64{"lower": spec.Lower, "upper": spec.Upper, "equals": spec.Equals} {
		if b != nil && len(b) != 1 && len(b) != size {
			return fmt.Errorf("%w: %q %s has %d entries for size %d", ErrBoundSize, spec.Name, side, len(b), size)
		}
	}

	spec.Lower, spec.Upper = NormalizeBounds(spec.Lower, spec.Upper)

	r.names[spec.Name] = struct{}{}
	r.specs = append(r.specs, spec)
	return nil
}

// Loc reports the phase location this registry declares constraints for.
func (r *Registry) Loc() Loc { return r.loc }

// Len reports the number of declared constraints.
func (r *Registry) Len() int { return len(r.specs) }

// Specs returns the declared constraints in declaration order.
func (r *Registry) Specs() []ConstraintSpec {
	out := make([]ConstraintSpec, len(r.specs))
	copy(out, r.specs)
	return out
}
