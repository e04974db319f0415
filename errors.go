package treematch

import errors "gopkg.in/src-d/go-errors.v1"

// Build-time error kinds: malformed combinator arguments, references
// to undeclared names, and the like. These are raised at build time,
// never by the VM -- a match failure is never an error. Compile returns
// them, except ErrNilExpr for a nil argument, which the combinator
// constructors and Compile panic with. A Ref to a group declared later
// in the pattern fails with ErrUnknownGroupName; Compile never returns
// ErrForwardReference.
var (
	ErrEmptyName        = errors.NewKind("named group has an empty name")
	ErrUnknownGroupName = errors.NewKind("reference to unknown group %q")
	ErrForwardReference = errors.NewKind("reference to group %q declared later in the pattern")
	ErrNilPredicate     = errors.NewKind("check predicate is nil")
	ErrNilExpr          = errors.NewKind("nil expression in combinator arguments")

	// ErrDepthExceeded and ErrStepsExceeded are resource-exhaustion
	// failures from the VM, exported so callers that drive the VM
	// directly (via Run) can tell a legitimate dismatch from a runaway
	// pattern.
	ErrDepthExceeded = errors.NewKind("backtracking depth limit exceeded")
	ErrStepsExceeded = errors.NewKind("step limit exceeded")
)
