package ci

import (
	"github.com/akrivova/ionflow/internal/angular"
	"github.com/akrivova/ionflow/internal/basis"
)

// OneBodyCoefficient weights the one-electron radial integral I(a,b) in
// a Hamiltonian element. A and B index the basis subshell list.
type OneBodyCoefficient struct {
	A, B  int
	Value float64
}

// TwoBodyCoefficient weights the generalized Slater integral
// R^k(ab,cd): the pair (A,C) sits on the inner coordinate, (B,D) on the
// outer one.
type TwoBodyCoefficient struct {
	K          int
	A, B, C, D int
	Value      float64
}

// BreitCoefficient weights the magnetic pair strength of multipole K
// between subshells A and B.
type BreitCoefficient struct {
	K, A, B int
	Value   float64
}

// AngularLibrary supplies the recoupling coefficients for one CSF pair.
// r and s index the basis CSF list; implementations must be symmetric in
// (r, s).
type AngularLibrary interface {
	OneBody(b *basis.Basis, r, s int) []OneBodyCoefficient
	TwoBody(b *basis.Basis, r, s int) []TwoBodyCoefficient
	Breit(b *basis.Basis, r, s int) []BreitCoefficient
}

// AverageEnergyLibrary is the built-in coefficient source: exact
// configuration-average expressions on the diagonal and no off-diagonal
// mixing. Intra-subshell and exchange multipoles carry the squared 3j
// weights of the average-energy formula.
type AverageEnergyLibrary struct{}

func (AverageEnergyLibrary) OneBody(b *basis.Basis, r, s int) []OneBodyCoefficient {
	if r != s {
		return nil
	}
	var out []OneBodyCoefficient
	for k, q := range b.CSFs[r].Occupation {
		if q > 0 {
			out = append(out, OneBodyCoefficient{A: k, B: k, Value: float64(q)})
		}
	}
	return out
}

func (AverageEnergyLibrary) TwoBody(b *basis.Basis, r, s int) []TwoBodyCoefficient {
	if r != s {
		return nil
	}
	occ := b.CSFs[r].Occupation
	var out []TwoBodyCoefficient

	for a, qa := range occ {
		if qa == 0 {
			continue
		}
		ja2 := b.Subshells[a].TwoJ()

		if qa >= 2 {
			pairs := float64(qa*(qa-1)) / 2
			out = append(out, TwoBodyCoefficient{K: 0, A: a, B: a, C: a, D: a, Value: pairs})
			// Equivalent-electron multipoles k = 2, 4, ..., weighted by
			// (2j+1)/2j times the squared 3j symbol.
			scale := float64(ja2+1) / float64(ja2)
			for k := 2; k <= ja2; k += 2 {
				w := angular.Wigner3j(ja2, 2*k, ja2, 1, 0, -1)
				if w == 0 {
					continue
				}
				out = append(out, TwoBodyCoefficient{
					K: k, A: a, B: a, C: a, D: a,
					Value: -pairs * scale * w * w,
				})
			}
		}

		for bIdx := a + 1; bIdx < len(occ); bIdx++ {
			qb := occ[bIdx]
			if qb == 0 {
				continue
			}
			jb2 := b.Subshells[bIdx].TwoJ()
			mixed := float64(qa * qb)
			out = append(out, TwoBodyCoefficient{K: 0, A: a, B: bIdx, C: a, D: bIdx, Value: mixed})

			la, lb := b.Subshells[a].L(), b.Subshells[bIdx].L()
			for twoK := abs(ja2 - jb2); twoK <= ja2+jb2; twoK += 2 {
				k := twoK / 2
				if (la+lb+k)%2 != 0 {
					continue
				}
				w := angular.Wigner3j(ja2, twoK, jb2, 1, 0, -1)
				if w == 0 {
					continue
				}
				out = append(out, TwoBodyCoefficient{
					K: k, A: a, B: bIdx, C: bIdx, D: a,
					Value: -mixed * w * w,
				})
			}
		}
	}
	return out
}

// Breit mirrors the exchange multipole structure with positive sign; the
// radial strength carries the alpha-squared magnetic scale.
func (AverageEnergyLibrary) Breit(b *basis.Basis, r, s int) []BreitCoefficient {
	if r != s {
		return nil
	}
	occ := b.CSFs[r].Occupation
	var out []BreitCoefficient
	for a, qa := range occ {
		if qa == 0 {
			continue
		}
		ja2 := b.Subshells[a].TwoJ()
		for bIdx := a; bIdx < len(occ); bIdx++ {
			qb := occ[bIdx]
			if qb == 0 {
				continue
			}
			pairs := float64(qa * qb)
			if bIdx == a {
				if qa < 2 {
					continue
				}
				pairs = float64(qa*(qa-1)) / 2
			}
			jb2 := b.Subshells[bIdx].TwoJ()
			for twoK := abs(ja2 - jb2); twoK <= ja2+jb2; twoK += 2 {
				if twoK == 0 {
					continue
				}
				w := angular.Wigner3j(ja2, twoK, jb2, 1, 0, -1)
				if w == 0 {
					continue
				}
				out = append(out, BreitCoefficient{K: twoK / 2, A: a, B: bIdx, Value: pairs * w * w})
			}
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
