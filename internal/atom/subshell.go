package atom

import (
	"fmt"
	"strconv"
	"strings"
)

// spectroscopic holds the orbital letters in conventional order. The letter
// "j" is skipped by convention.
const spectroscopic = "spdfghiklmnoq"

// Parity of a configuration or state, +1 (even) or -1 (odd).
type Parity int

const (
	Even Parity = +1
	Odd  Parity = -1
)

// String renders the conventional sign, "+" for even and "-" for odd.
func (p Parity) String() string {
	if p == Odd {
		return "-"
	}
	return "+"
}

// ParityForL returns the parity contribution (-1)^l of a single electron
// with orbital angular momentum l.
func ParityForL(l int) Parity {
	if l%2 == 1 {
		return Odd
	}
	return Even
}

// Shell is a non-relativistic shell label (principal quantum number n and
// orbital angular momentum l), e.g. 2p.
type Shell struct {
	N int
	L int
}

// ParseShell parses a bare shell label such as "2p" or "10d". Occupation
// suffixes are not accepted here; see ParseConfiguration for those.
func ParseShell(s string) (Shell, error) {
	t := strings.TrimSpace(s)
	if len(t) < 2 {
		return Shell{}, fmt.Errorf("cannot parse shell label %q: %w", s, ErrInvalidConfiguration)
	}
	n, err := strconv.Atoi(t[:len(t)-1])
	if err != nil || n < 1 {
		return Shell{}, fmt.Errorf("bad principal number in shell label %q: %w", s, ErrInvalidConfiguration)
	}
	l, ok := letterToL(t[len(t)-1])
	if !ok {
		return Shell{}, fmt.Errorf("unknown orbital letter in shell label %q: %w", s, ErrInvalidConfiguration)
	}
	if l >= n {
		return Shell{}, fmt.Errorf("shell label %q has l >= n: %w", s, ErrInvalidConfiguration)
	}
	return Shell{N: n, L: l}, nil
}

// MaxOccupancy returns the Pauli limit 2(2l+1) of the shell.
func (s Shell) MaxOccupancy() int { return 2 * (2*s.L + 1) }

// String renders the conventional label, e.g. "3d".
func (s Shell) String() string {
	if s.L < 0 || s.L >= len(spectroscopic) {
		return fmt.Sprintf("%d[l=%d]", s.N, s.L)
	}
	return fmt.Sprintf("%d%c", s.N, spectroscopic[s.L])
}

// Subshells returns the one or two relativistic subshells the shell splits
// into, ordered j = l-1/2 before j = l+1/2.
func (s Shell) Subshells() []Subshell {
	if s.L == 0 {
		return []Subshell{{N: s.N, Kappa: -1}}
	}
	return []Subshell{
		{N: s.N, Kappa: s.L},        // j = l - 1/2
		{N: s.N, Kappa: -(s.L + 1)}, // j = l + 1/2
	}
}

// Subshell is a relativistic subshell label. Kappa is the relativistic
// angular quantum number: kappa = l for j = l-1/2 and kappa = -(l+1) for
// j = l+1/2. Kappa is never zero.
type Subshell struct {
	N     int
	Kappa int
}

// L returns the orbital angular momentum of the subshell.
func (s Subshell) L() int {
	if s.Kappa > 0 {
		return s.Kappa
	}
	return -s.Kappa - 1
}

// TwoJ returns twice the total angular momentum j of the subshell.
// Half-integer momenta are carried as doubled integers throughout the code.
func (s Subshell) TwoJ() int {
	if s.Kappa > 0 {
		return 2*s.Kappa - 1
	}
	return -2*s.Kappa - 1
}

// MaxOccupancy returns the Pauli limit 2j+1 of the subshell.
func (s Subshell) MaxOccupancy() int { return s.TwoJ() + 1 }

// Parity returns (-1)^l for one electron in the subshell.
func (s Subshell) Parity() Parity { return ParityForL(s.L()) }

// Shell returns the non-relativistic shell the subshell belongs to.
func (s Subshell) Shell() Shell { return Shell{N: s.N, L: s.L()} }

// String renders the conventional label, e.g. "2p_1/2" or "3d_5/2".
func (s Subshell) String() string {
	return fmt.Sprintf("%s_%d/2", s.Shell(), s.TwoJ())
}

// Compare orders subshells by principal number, then orbital momentum, then
// total momentum. It returns -1, 0 or +1 and induces the stable global
// ordering used for bases.
func (s Subshell) Compare(t Subshell) int {
	switch {
	case s.N != t.N:
		return sign(s.N - t.N)
	case s.L() != t.L():
		return sign(s.L() - t.L())
	default:
		return sign(s.TwoJ() - t.TwoJ())
	}
}

func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return +1
	default:
		return 0
	}
}

// letterToL resolves a spectroscopic letter to its orbital momentum.
func letterToL(c byte) (int, bool) {
	idx := strings.IndexByte(spectroscopic, c)
	if idx < 0 {
		return 0, false
	}
	return idx, true
}
