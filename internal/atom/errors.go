package atom

import "errors"

// Failure kinds shared across the whole pipeline. Callers wrap these with
// fmt.Errorf("...: %w", err) for context and match them with errors.Is.
var (
	// ErrInvalidConfiguration covers every malformed or unsupported input:
	// unparsable shell strings, empty configuration lists, unknown solver
	// methods, unregistered process tags.
	ErrInvalidConfiguration = errors.New("ionflow: invalid configuration")

	// ErrMixingAmbiguity is returned when no single configuration state
	// function dominates an eigenvector strongly enough to label it.
	ErrMixingAmbiguity = errors.New("ionflow: ambiguous leading mixing weight")

	// ErrUnimplemented is returned for requested simulation outputs the
	// code deliberately does not compute. It is always fatal, never skipped.
	ErrUnimplemented = errors.New("ionflow: property not implemented")
)
