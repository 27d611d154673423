package boundary

// Values exposes the live numeric buffer of a named variable: read for
// inputs, write for outputs.
type Values interface {
	Value(name string) []float64
}

// Comp is the evaluation-stage half of the layer: the built set of
// pass-through pairs for one phase location.
type Comp struct {
	loc  Loc
	vars []Var
}

// Loc reports the phase location this comp was built for.
func (c *Comp) Loc() Loc { return c.loc }

// Vars returns the built pass-through pairs in declaration order.
func (c *Comp) Vars() []Var { return c.vars }

// Compute copies every pair's input buffer into its output buffer
// verbatim. No conversion, clipping or rounding; pairs are independent so
// declaration order is as good as any.
func (c *Comp) Compute(inputs, outputs Values) {
	for _, v := range c.vars {
		copy(outputs.Value(v.OutputName), inputs.Value(v.InputName))
	}
}
