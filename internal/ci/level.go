package ci

import (
	"fmt"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/basis"
	"github.com/akrivova/ionflow/internal/radial"
)

// Level is one eigenstate of a symmetry block, expanded to the full CSF
// list of its basis.
type Level struct {
	TwoJ   int
	Parity atom.Parity

	// Energy in Hartree.
	Energy float64

	// Mixing holds the eigenvector over the complete CSF list; entries
	// outside the level's symmetry block are zero.
	Mixing []float64

	// Index is the position in the energy-sorted multiplet.
	Index int

	// Basis points back to the basis the mixing refers to.
	Basis *basis.Basis
}

// Symmetry returns the block key of the level.
func (l *Level) Symmetry() Symmetry {
	return Symmetry{TwoJ: l.TwoJ, Parity: l.Parity}
}

// EnergyEV returns the level energy in electron-volts.
func (l *Level) EnergyEV() float64 { return l.Energy * radial.HartreeEV }

// LeadingCSF returns the index of the CSF whose squared mixing
// coefficient reaches the dominant threshold. Weights at or below the
// negligible cutoff are ignored; a leading weight caught strictly
// between the two cutoffs has no defensible assignment and wraps
// atom.ErrMixingAmbiguity.
func (l *Level) LeadingCSF(dominant, negligible float64) (int, error) {
	best, bestW := -1, 0.0
	for i, c := range l.Mixing {
		w := c * c
		if w <= negligible {
			continue
		}
		if w > bestW {
			best, bestW = i, w
		}
	}
	if best < 0 {
		return 0, fmt.Errorf("no mixing weight above the negligible cutoff %.2f: %w",
			negligible, atom.ErrMixingAmbiguity)
	}
	if bestW >= dominant {
		return best, nil
	}
	return 0, fmt.Errorf("leading squared weight %.4f of CSF %d lies between the cutoffs %.2f and %.2f: %w",
		bestW, best, negligible, dominant, atom.ErrMixingAmbiguity)
}

// Multiplet is the energy-sorted set of all levels of one computation.
type Multiplet struct {
	// Name labels the multiplet in reports, usually by its originating
	// configurations.
	Name string

	// Levels is sorted by ascending energy; its length always equals the
	// CSF count of the basis.
	Levels []Level

	Basis *basis.Basis
}

// Lowest returns the ground level.
func (m *Multiplet) Lowest() *Level { return &m.Levels[0] }

// Size returns the number of levels.
func (m *Multiplet) Size() int { return len(m.Levels) }
