package angular

import "fmt"

// Term is one antisymmetric many-electron state of a single subshell:
// q equivalent electrons in a j-subshell coupled to total momentum J.
// Index distinguishes repeated J values of the same (j, q); it is an
// ordinal surrogate for the seniority quantum number, which only a full
// recoupling library can assign.
type Term struct {
	TwoJ  int
	Index int
}

// SubshellTerms returns the allowed total momenta of occ equivalent
// electrons in a subshell with momentum twoJ, each J repeated according to
// its multiplicity. The result is ordered by ascending J, then Index.
//
// The multiplicities follow from counting Slater determinants per total
// magnetic number M: the number of states with momentum J equals the
// number of determinants with M = J minus the number with M = J+1.
func SubshellTerms(twoJ, occ int) ([]Term, error) {
	if twoJ < 1 || twoJ%2 == 0 {
		return nil, fmt.Errorf("angular: subshell momentum 2j=%d is not a positive odd integer", twoJ)
	}
	slots := twoJ + 1
	if occ < 0 || occ > slots {
		return nil, fmt.Errorf("angular: occupation %d outside 0..%d for 2j=%d", occ, slots, twoJ)
	}
	if occ == 0 || occ == slots {
		return []Term{{TwoJ: 0, Index: 1}}, nil
	}

	// countByTwoM[s] counts determinants with doubled total M equal to
	// s - offset; offset shifts the (negative) minimum sum to index zero.
	offset := occ * twoJ
	counts := make([]int, 2*offset+1)
	counts[offset] = 1 // zero electrons placed so far, M = 0

	// Walk the magnetic substates -j..j and either skip or occupy each,
	// tracking how many electrons were placed. The per-count slices avoid
	// double counting: chosen[k] holds distributions of k electrons.
	chosen := make([][]int, occ+1)
	chosen[0] = counts
	for k := 1; k <= occ; k++ {
		chosen[k] = make([]int, 2*offset+1)
	}
	for twoM := -twoJ; twoM <= twoJ; twoM += 2 {
		for k := min(occ, 1+(twoM+twoJ)/2); k >= 1; k-- {
			for s, c := range chosen[k-1] {
				if c == 0 {
					continue
				}
				chosen[k][s+twoM] += c
			}
		}
	}

	final := chosen[occ]
	var terms []Term
	for twoTotal := offset % 2; twoTotal <= offset; twoTotal += 2 {
		n := final[offset+twoTotal]
		if twoTotal+2 <= offset {
			n -= final[offset+twoTotal+2]
		}
		for i := 1; i <= n; i++ {
			terms = append(terms, Term{TwoJ: twoTotal, Index: i})
		}
	}
	return terms, nil
}
