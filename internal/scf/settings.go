package scf

import (
	"fmt"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/radial"
)

// StartStrategy selects how the orbital set is seeded.
type StartStrategy int

const (
	// StartHydrogenic seeds every subshell with the closed-form Coulomb
	// orbital for the bare nuclear charge.
	StartHydrogenic StartStrategy = iota

	// StartFromOrbitals seeds from a caller-supplied orbital map, with a
	// hydrogenic fallback for subshells the map misses.
	StartFromOrbitals
)

// ParseStartStrategy maps a configuration string to a StartStrategy.
func ParseStartStrategy(s string) (StartStrategy, error) {
	switch s {
	case "hydrogenic":
		return StartHydrogenic, nil
	case "from-orbitals":
		return StartFromOrbitals, nil
	}
	return 0, fmt.Errorf("unknown start strategy %q: %w", s, atom.ErrInvalidConfiguration)
}

func (s StartStrategy) String() string {
	switch s {
	case StartHydrogenic:
		return "hydrogenic"
	case StartFromOrbitals:
		return "from-orbitals"
	}
	return fmt.Sprintf("StartStrategy(%d)", int(s))
}

// Method selects the field model driving the iteration.
type Method int

const (
	// MethodMeanFieldDFS iterates a Dirac-Fock-Slater style potential
	// with the Kohn-Sham exchange factor 2/3.
	MethodMeanFieldDFS Method = iota

	// MethodMeanFieldHS iterates a Herman-Skillman style potential:
	// full Slater exchange with a Latter tail.
	MethodMeanFieldHS

	// MethodOptimizedLevel runs the mean-field loop but converges on the
	// occupation-weighted total energy instead of individual orbitals.
	MethodOptimizedLevel

	// MethodPureNuclear skips iteration entirely and keeps the seed
	// orbitals.
	MethodPureNuclear
)

// ParseMethod maps a configuration string to a Method.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "meanfield-dfs":
		return MethodMeanFieldDFS, nil
	case "meanfield-hs":
		return MethodMeanFieldHS, nil
	case "optimized-level":
		return MethodOptimizedLevel, nil
	case "pure-nuclear":
		return MethodPureNuclear, nil
	}
	return 0, fmt.Errorf("unknown field method %q: %w", s, atom.ErrInvalidConfiguration)
}

func (m Method) String() string {
	switch m {
	case MethodMeanFieldDFS:
		return "meanfield-dfs"
	case MethodMeanFieldHS:
		return "meanfield-hs"
	case MethodOptimizedLevel:
		return "optimized-level"
	case MethodPureNuclear:
		return "pure-nuclear"
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Settings steers one field computation.
type Settings struct {
	Start  StartStrategy
	Method Method

	// MaxIterations caps the field loop; reaching it without meeting
	// Accuracy is recorded on the basis, not an error.
	MaxIterations int

	// Accuracy is the relative energy change below which the iteration
	// stops.
	Accuracy float64

	// Orbitals seeds StartFromOrbitals. Ignored otherwise.
	Orbitals map[atom.Subshell]*radial.Orbital
}

// DefaultSettings returns the hydrogenic-start mean-field configuration
// used when a request does not override the field stage.
func DefaultSettings() Settings {
	return Settings{
		Start:         StartHydrogenic,
		Method:        MethodMeanFieldDFS,
		MaxIterations: 40,
		Accuracy:      1e-6,
	}
}
