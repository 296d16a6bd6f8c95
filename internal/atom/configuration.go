package atom

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ShellOccupation pairs a shell with its number of electrons.
type ShellOccupation struct {
	Shell      Shell
	Occupation int
}

// Configuration is a symbolic, non-relativistic electron configuration,
// e.g. 1s^2 2s^2 2p^5. Shells is sorted by (n, l) and contains no
// duplicates and no empty shells. Treat a Configuration as read-only once
// constructed.
type Configuration struct {
	Shells []ShellOccupation
}

// shellPattern matches one shell token such as "1s", "2p^5" or "10d^3".
var shellPattern = regexp.MustCompile(`^(\d+)([a-z])(?:\^(\d+))?$`)

// superscripts maps Unicode superscript digits onto their ASCII form so
// that "2p⁵" and "2p^5" parse identically.
var superscripts = strings.NewReplacer(
	"⁰", "^0", "¹", "^1", "²", "^2", "³", "^3", "⁴", "^4",
	"⁵", "^5", "⁶", "^6", "⁷", "^7", "⁸", "^8", "⁹", "^9",
)

// ParseConfiguration parses a whitespace-separated shell list. Occupation
// defaults to one electron; superscript digits are accepted. An empty
// string, duplicate shell, or occupation above the Pauli limit yields
// ErrInvalidConfiguration.
func ParseConfiguration(s string) (Configuration, error) {
	normalized := superscripts.Replace(strings.TrimSpace(s))
	// A superscript directly after a letter leaves forms like "2p^5"; a
	// caret can also end up doubled when the input already had one.
	normalized = strings.ReplaceAll(normalized, "^^", "^")
	fields := strings.Fields(normalized)
	if len(fields) == 0 {
		return Configuration{}, fmt.Errorf("empty configuration string: %w", ErrInvalidConfiguration)
	}

	occ := make(map[Shell]int, len(fields))
	for _, field := range fields {
		m := shellPattern.FindStringSubmatch(field)
		if m == nil {
			return Configuration{}, fmt.Errorf("cannot parse shell token %q: %w", field, ErrInvalidConfiguration)
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			return Configuration{}, fmt.Errorf("bad principal number in %q: %w", field, ErrInvalidConfiguration)
		}
		l, ok := letterToL(m[2][0])
		if !ok {
			return Configuration{}, fmt.Errorf("unknown orbital letter in %q: %w", field, ErrInvalidConfiguration)
		}
		if l >= n {
			return Configuration{}, fmt.Errorf("shell %q has l >= n: %w", field, ErrInvalidConfiguration)
		}
		q := 1
		if m[3] != "" {
			if q, err = strconv.Atoi(m[3]); err != nil {
				return Configuration{}, fmt.Errorf("bad occupation in %q: %w", field, ErrInvalidConfiguration)
			}
		}
		sh := Shell{N: n, L: l}
		if q < 1 || q > sh.MaxOccupancy() {
			return Configuration{}, fmt.Errorf("occupation %d outside 1..%d for shell %s: %w",
				q, sh.MaxOccupancy(), sh, ErrInvalidConfiguration)
		}
		if _, dup := occ[sh]; dup {
			return Configuration{}, fmt.Errorf("shell %s listed twice: %w", sh, ErrInvalidConfiguration)
		}
		occ[sh] = q
	}
	return newConfiguration(occ), nil
}

// MustParseConfiguration is ParseConfiguration that panics on error. It is
// meant for fixtures and package-level defaults.
func MustParseConfiguration(s string) Configuration {
	cfg, err := ParseConfiguration(s)
	if err != nil {
		panic(err)
	}
	return cfg
}

// newConfiguration builds a normalized Configuration from a shell
// occupation map, dropping empty shells.
func newConfiguration(occ map[Shell]int) Configuration {
	shells := make([]ShellOccupation, 0, len(occ))
	for sh, q := range occ {
		if q > 0 {
			shells = append(shells, ShellOccupation{Shell: sh, Occupation: q})
		}
	}
	sort.Slice(shells, func(i, j int) bool {
		a, b := shells[i].Shell, shells[j].Shell
		if a.N != b.N {
			return a.N < b.N
		}
		return a.L < b.L
	})
	return Configuration{Shells: shells}
}

// ElectronCount returns the total number of electrons.
func (c Configuration) ElectronCount() int {
	total := 0
	for _, so := range c.Shells {
		total += so.Occupation
	}
	return total
}

// Parity returns the product of single-electron parities.
func (c Configuration) Parity() Parity {
	sum := 0
	for _, so := range c.Shells {
		sum += so.Shell.L * so.Occupation
	}
	return ParityForL(sum)
}

// Occupation returns the number of electrons in the given shell, zero if
// the shell is absent.
func (c Configuration) Occupation(sh Shell) int {
	for _, so := range c.Shells {
		if so.Shell == sh {
			return so.Occupation
		}
	}
	return 0
}

// String renders the canonical form, e.g. "1s^2 2s^2 2p^5". It is stable
// and usable as a map key.
func (c Configuration) String() string {
	parts := make([]string, len(c.Shells))
	for i, so := range c.Shells {
		parts[i] = fmt.Sprintf("%s^%d", so.Shell, so.Occupation)
	}
	return strings.Join(parts, " ")
}

// occupationMap copies the configuration into a mutable map.
func (c Configuration) occupationMap() map[Shell]int {
	occ := make(map[Shell]int, len(c.Shells))
	for _, so := range c.Shells {
		occ[so.Shell] = so.Occupation
	}
	return occ
}

// RemoveElectron returns a new configuration with one electron taken out of
// the given shell. The second return value is false when the shell holds no
// electron to remove.
func (c Configuration) RemoveElectron(sh Shell) (Configuration, bool) {
	occ := c.occupationMap()
	if occ[sh] == 0 {
		return Configuration{}, false
	}
	occ[sh]--
	return newConfiguration(occ), true
}

// Displace returns a new configuration with one electron moved from one
// shell into another. It reports false when the source is empty, the
// destination is full, or source and destination coincide.
func (c Configuration) Displace(from, to Shell) (Configuration, bool) {
	if from == to {
		return Configuration{}, false
	}
	occ := c.occupationMap()
	if occ[from] == 0 || occ[to] >= to.MaxOccupancy() {
		return Configuration{}, false
	}
	occ[from]--
	occ[to]++
	return newConfiguration(occ), true
}
