package report

import (
	"github.com/akrivova/ionflow/internal/cascade"
	"github.com/akrivova/ionflow/internal/ci"
)

// Reporter receives computation results as they become available. All
// methods are fire-and-forget; implementations must not fail the run.
type Reporter interface {
	// Multiplet reports the level structure of one solved block.
	Multiplet(m *ci.Multiplet)

	// Blocks reports the electronic states of a cascade graph.
	Blocks(blocks []*cascade.Block)

	// Steps reports the executed transitions of a cascade graph,
	// including their computed lines and pathways.
	Steps(steps []*cascade.Step)

	// Distribution reports the outcome of a simulation.
	Distribution(o *cascade.Outcome)
}

// Discard drops everything it receives.
type Discard struct{}

var _ Reporter = Discard{}

func (Discard) Multiplet(*ci.Multiplet) {}
func (Discard) Blocks([]*cascade.Block) {}
func (Discard) Steps([]*cascade.Step) {}
func (Discard) Distribution(*cascade.Outcome) {}
