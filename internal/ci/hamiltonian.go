package ci

import (
	"github.com/akrivova/ionflow/internal/basis"
	"github.com/akrivova/ionflow/internal/radial"
)

// assembler computes Hamiltonian elements for one basis, caching the
// radial integrals shared between CSF pairs.
type assembler struct {
	b   *basis.Basis
	nm  radial.NuclearModel
	g   *radial.Grid
	set *Settings
	lib AngularLibrary

	lambda float64 // two-electron screening length, 0 = bare

	one   map[[2]int]float64
	two   map[[5]int]float64
	breit map[[3]int]float64
}

func newAssembler(b *basis.Basis, nm radial.NuclearModel, g *radial.Grid, set *Settings) *assembler {
	a := &assembler{
		b:     b,
		nm:    nm,
		g:     g,
		set:   set,
		lib:   set.Library,
		one:   make(map[[2]int]float64),
		two:   make(map[[5]int]float64),
		breit: make(map[[3]int]float64),
	}
	if a.lib == nil {
		a.lib = AverageEnergyLibrary{}
	}
	if set.Plasma != nil {
		a.lambda = set.Plasma.DebyeLength
		a.nm = radial.DebyeScreened{Model: nm, Lambda: a.lambda}
	}
	return a
}

// element returns H(r,s), the Hamiltonian element between CSFs r and s.
func (a *assembler) element(r, s int) float64 {
	h := 0.0
	for _, c := range a.lib.OneBody(a.b, r, s) {
		h += c.Value * a.oneElectron(c.A, c.B)
	}
	if a.set.IncludeCoulomb {
		for _, c := range a.lib.TwoBody(a.b, r, s) {
			h += c.Value * a.slater(c.K, c.A, c.B, c.C, c.D)
		}
	}
	if a.set.IncludeBreit {
		for _, c := range a.lib.Breit(a.b, r, s) {
			h += c.Value * a.breitStrength(c.K, c.A, c.B)
		}
	}
	return h
}

// oneElectron returns I(a,b). The diagonal case is the full one-body
// integral; the off-diagonal one keeps only the nuclear potential term,
// since the kinetic cross term vanishes between shape-orthogonal
// solutions of the same potential.
func (a *assembler) oneElectron(ai, bi int) float64 {
	key := [2]int{ai, bi}
	if ai > bi {
		key = [2]int{bi, ai}
	}
	if v, ok := a.one[key]; ok {
		return v
	}

	oa := a.orbital(ai)
	var v float64
	if ai == bi {
		v = radial.OneElectron(a.g, a.nm, oa)
	} else {
		ob := a.orbital(bi)
		vnuc := a.nm.Potential(a.g)
		f := make([]float64, a.g.Len())
		for i := range f {
			f[i] = oa.P[i] * ob.P[i] * vnuc[i]
		}
		v = a.g.Integrate(f)
	}
	a.one[key] = v
	return v
}

func (a *assembler) slater(k, ai, bi, ci, di int) float64 {
	key := [5]int{k, ai, bi, ci, di}
	if v, ok := a.two[key]; ok {
		return v
	}
	v := radial.ScreenedSlaterRk(a.g, k,
		a.orbital(ai), a.orbital(bi), a.orbital(ci), a.orbital(di), a.lambda)
	a.two[key] = v
	return v
}

func (a *assembler) breitStrength(k, ai, bi int) float64 {
	key := [3]int{k, ai, bi}
	if v, ok := a.breit[key]; ok {
		return v
	}
	v := radial.BreitStrength(a.g, k, a.orbital(ai), a.orbital(bi))
	a.breit[key] = v
	return v
}

func (a *assembler) orbital(i int) *radial.Orbital {
	return a.b.Orbitals[a.b.Subshells[i]]
}
