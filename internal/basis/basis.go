package basis

import (
	"fmt"
	"strings"

	"github.com/akrivova/ionflow/internal/angular"
	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/radial"
)

// SCFStatus records how the self-consistent-field stage left the basis.
type SCFStatus struct {
	// Converged is false when the iteration cap was reached before the
	// accuracy target.
	Converged bool

	// Iterations is the number of field iterations performed.
	Iterations int

	// Residual is the convergence measure at the last iteration.
	Residual float64
}

// Basis is the assembled many-electron basis of one structure
// calculation. Subshells, CSFs, Core and ElectronCount are fixed at
// build time; Orbitals and SCF are attached by the field solver.
type Basis struct {
	// Subshells is the ordered, deduplicated global subshell list.
	Subshells []atom.Subshell

	// CSFs holds every configuration state function, grouped by the
	// relativistic configuration it was enumerated from.
	CSFs []CSF

	// Core lists the subshells filled to maximum occupancy in every CSF.
	Core []atom.Subshell

	// ElectronCount is the common electron count of all CSFs.
	ElectronCount int

	// Orbitals maps each subshell to its radial solution.
	Orbitals map[atom.Subshell]*radial.Orbital

	// SCF reports the outcome of the orbital generation.
	SCF SCFStatus
}

// Size returns the number of configuration state functions.
func (b *Basis) Size() int { return len(b.CSFs) }

// SubshellIndex returns the position of sub in the global list, or -1.
func (b *Basis) SubshellIndex(sub atom.Subshell) int {
	for i, s := range b.Subshells {
		if s == sub {
			return i
		}
	}
	return -1
}

// IsCore reports whether sub is filled in every CSF.
func (b *Basis) IsCore(sub atom.Subshell) bool {
	for _, s := range b.Core {
		if s == sub {
			return true
		}
	}
	return false
}

// Orbital returns the radial solution for sub, or nil before the field
// stage ran.
func (b *Basis) Orbital(sub atom.Subshell) *radial.Orbital {
	if b.Orbitals == nil {
		return nil
	}
	return b.Orbitals[sub]
}

// Label renders CSF i with subshell names and total symmetry, e.g.
// "1s_1/2^2 2p_3/2^3 J=3/2 odd".
func (b *Basis) Label(i int) string {
	c := &b.CSFs[i]
	var sb strings.Builder
	for k, q := range c.Occupation {
		if q == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s^%d", b.Subshells[k], q)
	}
	parity := "even"
	if c.Parity == atom.Odd {
		parity = "odd"
	}
	fmt.Fprintf(&sb, " J=%s %s", angular.JLabel(c.TwoJ), parity)
	return sb.String()
}
