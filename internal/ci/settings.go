package ci

import (
	"fmt"

	"github.com/akrivova/ionflow/internal/atom"
)

// Default thresholds for assigning a level to its leading CSF. The
// values are conventional cutoffs with no deeper rationale, which is why
// they are named and overridable rather than buried as literals.
const (
	// DominantWeight is the squared mixing coefficient at or above which
	// a CSF counts as the leading one.
	DominantWeight = 0.99

	// NegligibleWeight is the squared mixing coefficient at or below
	// which a CSF is ignored entirely.
	NegligibleWeight = 0.01
)

// Diagonalization selects how symmetry blocks are solved.
type Diagonalization int

const (
	// DiagonalizeFull solves the real symmetric eigenproblem per block.
	DiagonalizeFull Diagonalization = iota

	// DiagonalizeNone suppresses mixing: one level per CSF, energy taken
	// from the diagonal Hamiltonian element.
	DiagonalizeNone
)

// ParseDiagonalization maps a configuration string to a
// Diagonalization.
func ParseDiagonalization(s string) (Diagonalization, error) {
	switch s {
	case "full":
		return DiagonalizeFull, nil
	case "none":
		return DiagonalizeNone, nil
	}
	return 0, fmt.Errorf("unknown diagonalization %q: %w", s, atom.ErrInvalidConfiguration)
}

func (d Diagonalization) String() string {
	switch d {
	case DiagonalizeFull:
		return "full"
	case DiagonalizeNone:
		return "none"
	}
	return fmt.Sprintf("Diagonalization(%d)", int(d))
}

// PlasmaSettings screens the interaction for an ion embedded in a
// plasma. Both the nuclear attraction and the electron-electron kernel
// pick up the exponential Debye-Hueckel damping.
type PlasmaSettings struct {
	// DebyeLength is the screening length in Bohr.
	DebyeLength float64
}

// Settings steers one configuration-interaction computation.
type Settings struct {
	// IncludeCoulomb enables the two-electron Coulomb contributions.
	IncludeCoulomb bool

	// IncludeBreit adds the magnetic pair strengths.
	IncludeBreit bool

	Diagonalization Diagonalization

	// Dominant and Negligible override the package-level weight
	// thresholds when positive.
	Dominant   float64
	Negligible float64

	// Plasma, when set, screens the interaction kernels.
	Plasma *PlasmaSettings

	// Library supplies angular coefficients; nil selects the built-in
	// configuration-average library.
	Library AngularLibrary
}

// DefaultSettings returns the full-diagonalization Coulomb-only setup.
func DefaultSettings() Settings {
	return Settings{
		IncludeCoulomb:  true,
		Diagonalization: DiagonalizeFull,
		Dominant:        DominantWeight,
		Negligible:      NegligibleWeight,
	}
}

func (s *Settings) dominant() float64 {
	if s.Dominant > 0 {
		return s.Dominant
	}
	return DominantWeight
}

func (s *Settings) negligible() float64 {
	if s.Negligible > 0 {
		return s.Negligible
	}
	return NegligibleWeight
}
