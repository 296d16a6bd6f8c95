package atom

import (
	"fmt"
	"sort"
)

// SubshellOccupation pairs a relativistic subshell with its electron count.
type SubshellOccupation struct {
	Subshell   Subshell
	Occupation int
}

// RelConfiguration is one concrete assignment of a configuration's
// electrons to relativistic subshells. Subshells is ordered by
// Subshell.Compare and lists occupied subshells only.
type RelConfiguration struct {
	Subshells []SubshellOccupation
}

// ElectronCount returns the total number of electrons.
func (rc RelConfiguration) ElectronCount() int {
	total := 0
	for _, so := range rc.Subshells {
		total += so.Occupation
	}
	return total
}

// Parity returns the product of single-electron parities.
func (rc RelConfiguration) Parity() Parity {
	sum := 0
	for _, so := range rc.Subshells {
		sum += so.Subshell.L() * so.Occupation
	}
	return ParityForL(sum)
}

// Occupation returns the electron count of the given subshell, zero if
// absent.
func (rc RelConfiguration) Occupation(s Subshell) int {
	for _, so := range rc.Subshells {
		if so.Subshell == s {
			return so.Occupation
		}
	}
	return 0
}

// String renders the canonical form, e.g. "1s_1/2^2 2p_1/2^1 2p_3/2^4".
func (rc RelConfiguration) String() string {
	out := ""
	for i, so := range rc.Subshells {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s^%d", so.Subshell, so.Occupation)
	}
	return out
}

// Expand lists every relativistic configuration consistent with the given
// symbolic configuration. For each shell with l > 0 the electrons are split
// over the j = l-1/2 and j = l+1/2 subshells in all ways the Pauli limits
// allow; the splits of different shells combine as a cartesian product.
// The enumeration order is deterministic: within one shell the occupation
// of the j = l-1/2 subshell ascends, and shells vary slowest to fastest in
// configuration order.
func Expand(cfg Configuration) []RelConfiguration {
	type split []SubshellOccupation

	perShell := make([][]split, 0, len(cfg.Shells))
	for _, so := range cfg.Shells {
		subs := so.Shell.Subshells()
		if len(subs) == 1 {
			perShell = append(perShell, []split{{{Subshell: subs[0], Occupation: so.Occupation}}})
			continue
		}
		minus, plus := subs[0], subs[1]
		lo := so.Occupation - plus.MaxOccupancy()
		if lo < 0 {
			lo = 0
		}
		hi := so.Occupation
		if m := minus.MaxOccupancy(); hi > m {
			hi = m
		}
		var splits []split
		for q := lo; q <= hi; q++ {
			var sp split
			if q > 0 {
				sp = append(sp, SubshellOccupation{Subshell: minus, Occupation: q})
			}
			if rest := so.Occupation - q; rest > 0 {
				sp = append(sp, SubshellOccupation{Subshell: plus, Occupation: rest})
			}
			splits = append(splits, sp)
		}
		perShell = append(perShell, splits)
	}

	results := []RelConfiguration{{}}
	for _, splits := range perShell {
		next := make([]RelConfiguration, 0, len(results)*len(splits))
		for _, rc := range results {
			for _, sp := range splits {
				merged := make([]SubshellOccupation, 0, len(rc.Subshells)+len(sp))
				merged = append(merged, rc.Subshells...)
				merged = append(merged, sp...)
				next = append(next, RelConfiguration{Subshells: merged})
			}
		}
		results = next
	}
	for i := range results {
		sortSubshellOccupations(results[i].Subshells)
	}
	return results
}

// ExpandAll expands a list of configurations and concatenates the results
// in input order. An empty input list is rejected.
func ExpandAll(cfgs []Configuration) ([]RelConfiguration, error) {
	if len(cfgs) == 0 {
		return nil, fmt.Errorf("no configurations given: %w", ErrInvalidConfiguration)
	}
	var all []RelConfiguration
	for _, cfg := range cfgs {
		all = append(all, Expand(cfg)...)
	}
	return all, nil
}

// sortSubshellOccupations orders a subshell occupation list in place by the
// global subshell ordering.
func sortSubshellOccupations(s []SubshellOccupation) {
	sort.Slice(s, func(i, j int) bool {
		return s[i].Subshell.Compare(s[j].Subshell) < 0
	})
}
