package ci

import (
	"context"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/basis"
	"github.com/akrivova/ionflow/internal/ctxlog"
	"github.com/akrivova/ionflow/internal/radial"
)

// Solve partitions the basis into symmetry blocks, diagonalizes each and
// returns the energy-sorted multiplet. The basis must already carry an
// orbital for every subshell.
//
// The returned multiplet always holds exactly one level per CSF.
func Solve(ctx context.Context, b *basis.Basis, nm radial.NuclearModel, g *radial.Grid, set Settings) (*Multiplet, error) {
	logger := ctxlog.FromContext(ctx)

	for _, sub := range b.Subshells {
		if b.Orbital(sub) == nil {
			return nil, fmt.Errorf("subshell %s has no orbital, run the field stage first: %w",
				sub, atom.ErrInvalidConfiguration)
		}
	}

	asm := newAssembler(b, nm, g, &set)
	levels := make([]Level, 0, b.Size())

	for _, blk := range partition(b) {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if set.Diagonalization == DiagonalizeNone {
			diag, err := diagonalLevels(asm, b, blk, &set)
			if err != nil {
				return nil, err
			}
			levels = append(levels, diag...)
			continue
		}

		n := len(blk.Indices)
		m := mat.NewSymDense(n, nil)
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				m.SetSym(i, j, asm.element(blk.Indices[i], blk.Indices[j]))
			}
		}

		var es mat.EigenSym
		if !es.Factorize(m, true) {
			return nil, fmt.Errorf("eigendecomposition failed for block %s", blk.Sym)
		}
		vals := es.Values(nil)
		var vecs mat.Dense
		es.VectorsTo(&vecs)

		for j := 0; j < n; j++ {
			mix := make([]float64, b.Size())
			for i := 0; i < n; i++ {
				mix[blk.Indices[i]] = vecs.At(i, j)
			}
			levels = append(levels, Level{
				TwoJ:   blk.Sym.TwoJ,
				Parity: blk.Sym.Parity,
				Energy: vals[j],
				Mixing: mix,
				Basis:  b,
			})
		}
		logger.Debug("Diagonalized symmetry block.", "symmetry", blk.Sym.String(), "size", n)
	}

	sort.SliceStable(levels, func(i, j int) bool { return levels[i].Energy < levels[j].Energy })
	for i := range levels {
		levels[i].Index = i
	}
	return &Multiplet{Levels: levels, Basis: b}, nil
}

// diagonalLevels builds one level per CSF of the block straight from the
// diagonal elements, skipping the eigenproblem. Each level still goes
// through the leading-CSF assignment so threshold violations surface
// here rather than downstream.
func diagonalLevels(asm *assembler, b *basis.Basis, blk block, set *Settings) ([]Level, error) {
	out := make([]Level, 0, len(blk.Indices))
	for _, idx := range blk.Indices {
		mix := make([]float64, b.Size())
		mix[idx] = 1
		lv := Level{
			TwoJ:   blk.Sym.TwoJ,
			Parity: blk.Sym.Parity,
			Energy: asm.element(idx, idx),
			Mixing: mix,
			Basis:  b,
		}
		if _, err := lv.LeadingCSF(set.dominant(), set.negligible()); err != nil {
			return nil, fmt.Errorf("level from CSF %d: %w", idx, err)
		}
		out = append(out, lv)
	}
	return out, nil
}
