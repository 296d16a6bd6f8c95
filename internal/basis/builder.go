package basis

import (
	"fmt"
	"sort"

	"github.com/akrivova/ionflow/internal/angular"
	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/radial"
)

// Build expands the symbolic configurations, derives the global subshell
// list and enumerates every configuration state function. The returned
// basis carries no orbitals yet.
//
// All configurations must describe the same electron count; a mismatch,
// like an empty input list, wraps atom.ErrInvalidConfiguration.
func Build(cfgs []atom.Configuration) (*Basis, error) {
	relconfs, err := atom.ExpandAll(cfgs)
	if err != nil {
		return nil, err
	}

	seen := make(map[atom.Subshell]bool)
	var subs []atom.Subshell
	for _, rc := range relconfs {
		for _, so := range rc.Subshells {
			if !seen[so.Subshell] {
				seen[so.Subshell] = true
				subs = append(subs, so.Subshell)
			}
		}
	}
	sort.Slice(subs, func(i, j int) bool { return subs[i].Compare(subs[j]) < 0 })

	b := &Basis{
		Subshells: subs,
		Orbitals:  make(map[atom.Subshell]*radial.Orbital),
	}
	for _, rc := range relconfs {
		csfs, err := enumerate(subs, rc)
		if err != nil {
			return nil, err
		}
		b.CSFs = append(b.CSFs, csfs...)
	}

	b.ElectronCount = b.CSFs[0].ElectronCount()
	for i := range b.CSFs {
		if n := b.CSFs[i].ElectronCount(); n != b.ElectronCount {
			return nil, fmt.Errorf("basis: electron count %d of state %d differs from %d: %w",
				n, i, b.ElectronCount, atom.ErrInvalidConfiguration)
		}
	}

	for _, sub := range subs {
		k := b.SubshellIndex(sub)
		full := true
		for i := range b.CSFs {
			if b.CSFs[i].Occupation[k] != sub.MaxOccupancy() {
				full = false
				break
			}
		}
		if full {
			b.Core = append(b.Core, sub)
		}
	}
	return b, nil
}

// enumerate couples the subshell occupations of one relativistic
// configuration, in global subshell order, into every reachable total
// momentum. Each distinct path of subshell terms and intermediate sums
// yields one CSF.
func enumerate(subs []atom.Subshell, rc atom.RelConfiguration) ([]CSF, error) {
	n := len(subs)
	occ := make([]int, n)
	for _, so := range rc.Subshells {
		k := -1
		for i, s := range subs {
			if s == so.Subshell {
				k = i
				break
			}
		}
		if k < 0 {
			return nil, fmt.Errorf("basis: subshell %s missing from the global list", so.Subshell)
		}
		occ[k] = so.Occupation
	}
	parity := rc.Parity()

	type path struct {
		termTwoJ []int
		stateIdx []int
		coupling []int
		twoJ     int
	}
	paths := []path{{}}
	for k, sub := range subs {
		if occ[k] == 0 {
			for i := range paths {
				paths[i].termTwoJ = append(paths[i].termTwoJ, 0)
				paths[i].stateIdx = append(paths[i].stateIdx, 0)
				paths[i].coupling = append(paths[i].coupling, paths[i].twoJ)
			}
			continue
		}
		terms, err := angular.SubshellTerms(sub.TwoJ(), occ[k])
		if err != nil {
			return nil, err
		}
		next := make([]path, 0, len(paths)*len(terms))
		for _, p := range paths {
			for _, t := range terms {
				for _, total := range angular.CoupleRange(p.twoJ, t.TwoJ) {
					np := path{
						termTwoJ: append(append([]int(nil), p.termTwoJ...), t.TwoJ),
						stateIdx: append(append([]int(nil), p.stateIdx...), t.Index),
						coupling: append(append([]int(nil), p.coupling...), total),
						twoJ:     total,
					}
					next = append(next, np)
				}
			}
		}
		paths = next
	}

	csfs := make([]CSF, 0, len(paths))
	for _, p := range paths {
		csfs = append(csfs, CSF{
			Occupation:   append([]int(nil), occ...),
			SubshellTwoJ: p.termTwoJ,
			StateIndex:   p.stateIdx,
			CouplingTwoJ: p.coupling,
			TwoJ:         p.twoJ,
			Parity:       parity,
		})
	}
	return csfs, nil
}
