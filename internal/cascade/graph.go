package cascade

import (
	"context"
	"fmt"
	"sort"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/ctxlog"
	"github.com/akrivova/ionflow/internal/process"
)

// ProcessRule states when a process connects two blocks. The catalog is
// plain data, so callers extend it without touching the builder.
type ProcessRule struct {
	// Tag names the registered kernel handling steps of this rule.
	Tag string

	// LostElectrons is the electron-count drop from the initial to the
	// final block.
	LostElectrons int

	// Downhill restricts steps to pairs where the initial block sits
	// above the final one in the bare hydrogenic binding measure. Decay
	// rules need it to keep same-count edges acyclic.
	Downhill bool

	// Resonant routes the step through an intermediate block of the
	// initial electron count. Resonant steps dispatch to pathway kernels
	// instead of line kernels and require LostElectrons >= 1.
	Resonant bool
}

// DefaultProcesses connects radiative decay inside one charge state with
// Auger decay and photoionization into the next one.
func DefaultProcesses() []ProcessRule {
	return []ProcessRule{
		{Tag: "radiative", LostElectrons: 0, Downhill: true},
		{Tag: "auger", LostElectrons: 1, Downhill: true},
		{Tag: "photo", LostElectrons: 1},
	}
}

// Step is one process-labeled edge of the cascade graph. The executor
// attaches the computed transition data.
type Step struct {
	Process string

	Initial *Block

	// Intermediate is set only on resonant steps.
	Intermediate *Block

	Final *Block

	// Lines is filled for line-kernel steps, Pathways for resonant ones.
	Lines    []process.Line
	Pathways []process.Pathway
}

func (s *Step) String() string {
	if s.Intermediate != nil {
		return fmt.Sprintf("%s: %s -> %s -> %s", s.Process, s.Initial, s.Intermediate, s.Final)
	}
	return fmt.Sprintf("%s: %s -> %s", s.Process, s.Initial, s.Final)
}

// Graph is the directed acyclic multigraph of blocks and steps.
type Graph struct {
	// Blocks in descending electron count, then by configuration key.
	Blocks []*Block

	// Steps in catalog order, then block order; reproducible for
	// identical inputs.
	Steps []*Step
}

// InitialBlocks returns the blocks seeded by the request.
func (g *Graph) InitialBlocks() []*Block {
	var out []*Block
	for _, b := range g.Blocks {
		if b.Initial {
			out = append(out, b)
		}
	}
	return out
}

// Block returns the block with the given key, or nil.
func (g *Graph) Block(key string) *Block {
	for _, b := range g.Blocks {
		if b.Key() == key {
			return b
		}
	}
	return nil
}

// GraphBuilder derives descendant configurations and assembles the
// cascade graph.
type GraphBuilder struct {
	// Z is the nuclear charge used by the binding estimates.
	Z float64

	// MaxElectronLoss bounds how many electrons a descendant may lose.
	MaxElectronLoss int

	// MaxDisplacements bounds how many single-electron rearrangements
	// are composed on top of the removals.
	MaxDisplacements int

	// Shells restricts electron removal to the listed shells; empty
	// means every occupied shell.
	Shells []atom.Shell

	// DisplacementShells adds rearrangement targets beyond the shells
	// already present in the configurations.
	DisplacementShells []atom.Shell

	// Processes is the step catalog; nil selects DefaultProcesses.
	Processes []ProcessRule

	// CombineBlocks merges configurations sharing an electron count into
	// one block instead of one block per configuration.
	CombineBlocks bool
}

// Build enumerates descendants of the initial configurations, groups
// them into blocks, and connects the blocks by the process catalog.
func (gb GraphBuilder) Build(ctx context.Context, initial []atom.Configuration) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	if len(initial) == 0 {
		return nil, fmt.Errorf("no initial configurations: %w", atom.ErrInvalidConfiguration)
	}
	if gb.MaxElectronLoss < 0 || gb.MaxDisplacements < 0 {
		return nil, fmt.Errorf("negative descendant bounds: %w", atom.ErrInvalidConfiguration)
	}

	seen := make(map[string]atom.Configuration, len(initial))
	isInitial := make(map[string]bool, len(initial))
	for _, cfg := range initial {
		seen[cfg.String()] = cfg
		isInitial[cfg.String()] = true
	}

	// Removals first: breadth-first up to MaxElectronLoss electrons.
	frontier := sortedConfigurations(seen)
	for loss := 0; loss < gb.MaxElectronLoss; loss++ {
		var next []atom.Configuration
		for _, cfg := range frontier {
			for _, so := range cfg.Shells {
				if !gb.removable(so.Shell) {
					continue
				}
				out, ok := cfg.RemoveElectron(so.Shell)
				if !ok || out.ElectronCount() == 0 {
					continue
				}
				if _, dup := seen[out.String()]; dup {
					continue
				}
				seen[out.String()] = out
				next = append(next, out)
			}
		}
		frontier = next
	}

	// Then single-electron displacements composed on every configuration
	// reached so far. Targets are the union of occupied shells plus any
	// configured extras.
	targets := gb.displacementTargets(seen)
	frontier = sortedConfigurations(seen)
	for d := 0; d < gb.MaxDisplacements; d++ {
		var next []atom.Configuration
		for _, cfg := range frontier {
			for _, so := range cfg.Shells {
				for _, to := range targets {
					out, ok := cfg.Displace(so.Shell, to)
					if !ok {
						continue
					}
					if _, dup := seen[out.String()]; dup {
						continue
					}
					seen[out.String()] = out
					next = append(next, out)
				}
			}
		}
		frontier = next
	}

	blocks := gb.groupBlocks(seen, isInitial)
	steps, err := gb.connect(blocks)
	if err != nil {
		return nil, err
	}
	if err := assignGenerations(blocks, steps); err != nil {
		return nil, err
	}

	logger.Debug("Built cascade graph.", "blocks", len(blocks), "steps", len(steps))
	return &Graph{Blocks: blocks, Steps: steps}, nil
}

func (gb GraphBuilder) removable(sh atom.Shell) bool {
	if len(gb.Shells) == 0 {
		return true
	}
	for _, s := range gb.Shells {
		if s == sh {
			return true
		}
	}
	return false
}

func (gb GraphBuilder) displacementTargets(seen map[string]atom.Configuration) []atom.Shell {
	set := map[atom.Shell]bool{}
	for _, cfg := range seen {
		for _, so := range cfg.Shells {
			set[so.Shell] = true
		}
	}
	for _, sh := range gb.DisplacementShells {
		set[sh] = true
	}
	out := make([]atom.Shell, 0, len(set))
	for sh := range set {
		out = append(out, sh)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].N != out[j].N {
			return out[i].N < out[j].N
		}
		return out[i].L < out[j].L
	})
	return out
}

func (gb GraphBuilder) groupBlocks(seen map[string]atom.Configuration, isInitial map[string]bool) []*Block {
	var blocks []*Block
	if gb.CombineBlocks {
		byCount := map[int][]atom.Configuration{}
		for _, cfg := range sortedConfigurations(seen) {
			byCount[cfg.ElectronCount()] = append(byCount[cfg.ElectronCount()], cfg)
		}
		for count, cfgs := range byCount {
			blocks = append(blocks, &Block{Configurations: cfgs, ElectronCount: count})
		}
	} else {
		for _, cfg := range sortedConfigurations(seen) {
			blocks = append(blocks, &Block{
				Configurations: []atom.Configuration{cfg},
				ElectronCount:  cfg.ElectronCount(),
			})
		}
	}

	for _, b := range blocks {
		b.MeanBinding = blockBinding(gb.Z, b)
		for _, cfg := range b.Configurations {
			if isInitial[cfg.String()] {
				b.Initial = true
			}
		}
	}
	sort.Slice(blocks, func(i, j int) bool {
		if blocks[i].ElectronCount != blocks[j].ElectronCount {
			return blocks[i].ElectronCount > blocks[j].ElectronCount
		}
		return blocks[i].Key() < blocks[j].Key()
	})
	return blocks
}

// connect enumerates steps from the process catalog. A block with less
// total binding sits higher in energy, so downhill rules require the
// initial block's ordering measure to be strictly smaller.
func (gb GraphBuilder) connect(blocks []*Block) ([]*Step, error) {
	rules := gb.Processes
	if rules == nil {
		rules = DefaultProcesses()
	}

	var steps []*Step
	for _, rule := range rules {
		if rule.Tag == "" {
			return nil, fmt.Errorf("process rule without tag: %w", atom.ErrInvalidConfiguration)
		}
		if rule.Resonant && rule.LostElectrons < 1 {
			return nil, fmt.Errorf("resonant rule %q must lose at least one electron: %w",
				rule.Tag, atom.ErrInvalidConfiguration)
		}
		for _, bi := range blocks {
			for _, bf := range blocks {
				if bf.ElectronCount != bi.ElectronCount-rule.LostElectrons || bf == bi {
					continue
				}
				if rule.Downhill && orderingBinding(gb.Z, bi) >= orderingBinding(gb.Z, bf) {
					continue
				}
				if !rule.Resonant {
					steps = append(steps, &Step{Process: rule.Tag, Initial: bi, Final: bf})
					continue
				}
				for _, bm := range blocks {
					if bm.ElectronCount != bi.ElectronCount || bm == bi {
						continue
					}
					// The resonance must lie above the state it is
					// excited from.
					if orderingBinding(gb.Z, bm) >= orderingBinding(gb.Z, bi) {
						continue
					}
					steps = append(steps, &Step{Process: rule.Tag, Initial: bi, Intermediate: bm, Final: bf})
				}
			}
		}
	}
	return steps, nil
}

// assignGenerations computes longest-path depths from the initial
// blocks by relaxation. A catalog that produces a cycle never settles
// and is rejected.
func assignGenerations(blocks []*Block, steps []*Step) error {
	for pass := 0; ; pass++ {
		changed := false
		for _, st := range steps {
			if g := st.Initial.Generation + 1; g > st.Final.Generation {
				st.Final.Generation = g
				changed = true
			}
		}
		if !changed {
			return nil
		}
		if pass >= len(blocks) {
			return fmt.Errorf("process catalog produces a cyclic step graph: %w", atom.ErrInvalidConfiguration)
		}
	}
}

func sortedConfigurations(m map[string]atom.Configuration) []atom.Configuration {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]atom.Configuration, len(keys))
	for i, k := range keys {
		out[i] = m[k]
	}
	return out
}
