package process

import (
	"fmt"
	"strconv"

	"github.com/akrivova/ionflow/internal/angular"
	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/ci"
)

// Multipole identifies one radiative field component, e.g. E1 or M2.
type Multipole struct {
	// L is the photon angular momentum, at least 1.
	L int

	// Electric distinguishes electric from magnetic multipoles.
	Electric bool
}

// Conventional low multipoles.
var (
	E1 = Multipole{L: 1, Electric: true}
	M1 = Multipole{L: 1, Electric: false}
	E2 = Multipole{L: 2, Electric: true}
	M2 = Multipole{L: 2, Electric: false}
)

func (m Multipole) String() string {
	kind := "M"
	if m.Electric {
		kind = "E"
	}
	return kind + strconv.Itoa(m.L)
}

// ParseMultipole reads the conventional label, e.g. "E1".
func ParseMultipole(s string) (Multipole, error) {
	if len(s) >= 2 && (s[0] == 'E' || s[0] == 'M') {
		if l, err := strconv.Atoi(s[1:]); err == nil && l >= 1 {
			return Multipole{L: l, Electric: s[0] == 'E'}, nil
		}
	}
	return Multipole{}, fmt.Errorf("unknown multipole %q: %w", s, atom.ErrInvalidConfiguration)
}

// Allows reports whether a one-photon transition between the two
// symmetries can proceed through this multipole: the photon momentum
// must close the triangle and the parity change must match the field
// component. Electric multipoles of odd L and magnetic ones of even L
// flip parity.
func (m Multipole) Allows(a, b ci.Symmetry) bool {
	if m.L < 1 {
		return false
	}
	if !angular.Triangle(a.TwoJ, 2*m.L, b.TwoJ) {
		return false
	}
	flips := m.Electric == (m.L%2 == 1)
	return flips == (a.Parity != b.Parity)
}

// Waves lists the continuum partial waves, by relativistic kappa, that
// couple the two symmetries through one emitted electron with
// |kappa| <= maxKappa. The parity rule follows the wave's orbital
// momentum.
func Waves(from, to ci.Symmetry, maxKappa int) []int {
	var out []int
	for kappa := -maxKappa; kappa <= maxKappa; kappa++ {
		if kappa == 0 {
			continue
		}
		wave := atom.Subshell{Kappa: kappa}
		if !angular.Triangle(from.TwoJ, wave.TwoJ(), to.TwoJ) {
			continue
		}
		sameParity := wave.L()%2 == 0
		if sameParity != (from.Parity == to.Parity) {
			continue
		}
		out = append(out, kappa)
	}
	return out
}
