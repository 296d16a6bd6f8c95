package ci

import (
	"fmt"

	"github.com/akrivova/ionflow/internal/angular"
	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/basis"
)

// Symmetry is the (J, parity) pair keying one CI block.
type Symmetry struct {
	TwoJ   int
	Parity atom.Parity
}

func (s Symmetry) String() string {
	return fmt.Sprintf("J=%s %s", angular.JLabel(s.TwoJ), s.Parity)
}

// block is one symmetry partition: the CSF indices belonging to it, in
// their original basis order.
type block struct {
	Sym     Symmetry
	Indices []int
}

// partition groups the CSF list into disjoint symmetry blocks ordered by
// first appearance. Every CSF lands in exactly one block and in-block
// order follows the basis order.
func partition(b *basis.Basis) []block {
	byKey := make(map[Symmetry]int)
	var blocks []block
	for i := range b.CSFs {
		key := Symmetry{TwoJ: b.CSFs[i].TwoJ, Parity: b.CSFs[i].Parity}
		at, ok := byKey[key]
		if !ok {
			at = len(blocks)
			byKey[key] = at
			blocks = append(blocks, block{Sym: key})
		}
		blocks[at].Indices = append(blocks[at].Indices, i)
	}
	return blocks
}
