package boundary

import "errors"

// Configuration errors. All of them are programming mistakes surfaced at
// declaration or build time; nothing in this package fails during
// evaluation.
var (
	// ErrDuplicateName indicates a constraint name declared twice in one registry.
	ErrDuplicateName = errors.New("boundary: constraint name already declared")

	// ErrBadShape indicates a shape with a non-positive dimension.
	ErrBadShape = errors.New("boundary: shape dimensions must be positive")

	// ErrBadLoc indicates a location other than initial or final.
	ErrBadLoc = errors.New("boundary: loc must be 'initial' or 'final'")

	// ErrConflictingBounds indicates equals set together with lower or upper.
	ErrConflictingBounds = errors.New("boundary: equals cannot be combined with lower or upper")

	// ErrBoundSize indicates a bound array that is neither a scalar nor
	// the constraint's full size.
	ErrBoundSize = errors.New("boundary: bound length must be 1 or the constraint size")

	// ErrAlreadyBuilt indicates a second Build on the same registry.
	ErrAlreadyBuilt = errors.New("boundary: registry already built")

	// ErrEmptyName indicates a constraint declared without a name.
	ErrEmptyName = errors.New("boundary: constraint name must not be empty")
)
