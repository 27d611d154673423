// Package boundary registers boundary-value constraints for a trajectory
// optimization phase and exposes each constrained value through a
// pass-through variable pair.
//
// The layer has two lifecycle stages:
//
//   - Declaration: a [Registry] accumulates [ConstraintSpec] entries; no
//     model structure exists yet.
//   - Build: [Build] turns every spec into a named input/output pair on
//     the host model, attaches the constraint metadata to the output and
//     declares an identity sparse partial between the two.
//
// After build, [Comp.Compute] refreshes every output from its input on
// each solver iteration.
//
// One-sided bounds are completed with [InfBound] by [NormalizeBounds] at
// declaration time, so consumers that need both bounds present can tell a
// one-sided constraint apart from no constraint:
//
//	reg, _ := boundary.NewRegistry(boundary.Final)
//	spec := boundary.DefaultSpec("h")
//	spec.Equals = boundary.Bound(20000)
//	spec.Units = "m"
//	reg.Declare(spec)
//	comp, err := boundary.Build(reg, m)
//
// Names follow "{loc}_value_in:{name}" / "{loc}_value:{name}", so wiring
// code can address the pairs without querying the registry.
package boundary
