package cascade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/process"
	"github.com/akrivova/ionflow/kernels/photo"
)

// decayGraph wires three lithium-like blocks into a hand-built chain so
// the branching arithmetic is exact.
func decayGraph(t *testing.T, withSecondHop bool) *Graph {
	t.Helper()
	b0 := &Block{Configurations: configs(t, "1s^1 2s^2"), ElectronCount: 3, Initial: true}
	b1 := &Block{Configurations: configs(t, "1s^2 2p^1"), ElectronCount: 3, Generation: 1}
	b2 := &Block{Configurations: configs(t, "1s^2 2s^1"), ElectronCount: 3, Generation: 2}

	first := &Step{Process: "radiative", Initial: b0, Final: b1, Lines: []process.Line{
		{Process: "radiative", InitialIndex: 0, FinalIndex: 0, Energy: 1, Rate: 3},
		{Process: "radiative", InitialIndex: 0, FinalIndex: 1, Energy: 1, Rate: 1},
	}}
	g := &Graph{Blocks: []*Block{b0, b1, b2}, Steps: []*Step{first}}
	if withSecondHop {
		g.Steps = append(g.Steps, &Step{Process: "radiative", Initial: b1, Final: b2, Lines: []process.Line{
			{Process: "radiative", InitialIndex: 0, FinalIndex: 0, Energy: 1, Rate: 2},
			{Process: "radiative", InitialIndex: 1, FinalIndex: 0, Energy: 1, Rate: 7},
		}})
	}
	return g
}

func TestRunSplitsByBranchingFractions(t *testing.T) {
	g := decayGraph(t, false)
	sim := &Simulator{Resolver: testResolver(4)}

	out, err := sim.Run(context.Background(), g, Settings{
		Initial: []float64{1},
		Outputs: []string{OutputLevelDistribution},
	})
	require.NoError(t, err)

	require.Len(t, out.Levels["1s^2 2p^1"], 2)
	assert.InDelta(t, 0.75, out.Levels["1s^2 2p^1"][0], 1e-12)
	assert.InDelta(t, 0.25, out.Levels["1s^2 2p^1"][1], 1e-12)
	assert.InDelta(t, 0.0, out.Levels["1s^1 2s^2"][0], 1e-12)
}

func TestRunPropagatesAcrossGenerations(t *testing.T) {
	g := decayGraph(t, true)
	sim := &Simulator{Resolver: testResolver(4)}

	out, err := sim.Run(context.Background(), g, Settings{
		Initial: []float64{1},
		Outputs: []string{OutputIonDistribution, OutputLevelDistribution},
	})
	require.NoError(t, err)

	// Everything funnels into the last block; nothing is lost on the way.
	assert.InDelta(t, 1.0, out.Levels["1s^2 2s^1"][0], 1e-9)
	assert.InDelta(t, 0.0, out.Levels["1s^2 2p^1"][0]+out.Levels["1s^2 2p^1"][1], 1e-12)
	assert.InDelta(t, 1.0, out.Ion[3], 1e-9)
}

func TestRunPhotoionizationChain(t *testing.T) {
	gb := GraphBuilder{Z: 2, MaxElectronLoss: 1}
	g, err := gb.Build(context.Background(), configs(t, "1s^2"))
	require.NoError(t, err)
	require.Len(t, g.Steps, 1)

	reg := process.NewRegistry()
	(&photo.Module{}).Register(reg)

	resolver := testResolver(2)
	pset := process.DefaultSettings()
	pset.PhotonEnergies = []float64{1.0}
	exec := &StepExecutor{Registry: reg, Resolver: resolver, Settings: pset}
	require.NoError(t, exec.ExecuteAll(context.Background(), g))
	require.NotEmpty(t, g.Steps[0].Lines)

	sim := &Simulator{Resolver: resolver}
	out, err := sim.Run(context.Background(), g, Settings{
		Initial:       []float64{1},
		PhotonFluence: 10,
		Outputs:       []string{OutputIonDistribution},
	})
	require.NoError(t, err)

	assert.Nil(t, out.Levels)
	assert.Greater(t, out.Ion[1], 0.01)
	assert.InDelta(t, 1.0, out.Ion[1]+out.Ion[2], 1e-9)
}

func TestRunRequiresFluenceForIonizingSteps(t *testing.T) {
	gb := GraphBuilder{Z: 2, MaxElectronLoss: 1}
	g, err := gb.Build(context.Background(), configs(t, "1s^2"))
	require.NoError(t, err)

	reg := process.NewRegistry()
	(&photo.Module{}).Register(reg)

	resolver := testResolver(2)
	pset := process.DefaultSettings()
	pset.PhotonEnergies = []float64{1.0}
	exec := &StepExecutor{Registry: reg, Resolver: resolver, Settings: pset}
	require.NoError(t, exec.ExecuteAll(context.Background(), g))

	sim := &Simulator{Resolver: resolver}
	_, err = sim.Run(context.Background(), g, Settings{
		Initial: []float64{1},
		Outputs: []string{OutputIonDistribution},
	})
	assert.ErrorIs(t, err, atom.ErrInvalidConfiguration)

	// A fluence absorbing more than the whole population is as wrong as
	// no fluence at all.
	_, err = sim.Run(context.Background(), g, Settings{
		Initial:       []float64{1},
		PhotonFluence: 1e6,
		Outputs:       []string{OutputIonDistribution},
	})
	assert.ErrorIs(t, err, atom.ErrInvalidConfiguration)
}

func TestRunRejectsBadRequests(t *testing.T) {
	g := decayGraph(t, false)
	sim := &Simulator{Resolver: testResolver(4)}

	t.Run("no outputs", func(t *testing.T) {
		_, err := sim.Run(context.Background(), g, Settings{Initial: []float64{1}})
		assert.ErrorIs(t, err, atom.ErrInvalidConfiguration)
	})

	t.Run("unimplemented output kind", func(t *testing.T) {
		_, err := sim.Run(context.Background(), g, Settings{
			Initial: []float64{1},
			Outputs: []string{"photon-intensities"},
		})
		assert.ErrorIs(t, err, atom.ErrUnimplemented)
	})

	t.Run("distribution length mismatch", func(t *testing.T) {
		_, err := sim.Run(context.Background(), g, Settings{
			Initial: []float64{0.5, 0.5},
			Outputs: []string{OutputIonDistribution},
		})
		assert.ErrorIs(t, err, atom.ErrInvalidConfiguration)
	})

	t.Run("ambiguous initial block", func(t *testing.T) {
		gb := GraphBuilder{Z: 2}
		multi, err := gb.Build(context.Background(), configs(t, "1s^2", "2s^2"))
		require.NoError(t, err)
		_, err = sim.Run(context.Background(), multi, Settings{
			Initial: []float64{1},
			Outputs: []string{OutputIonDistribution},
		})
		assert.ErrorIs(t, err, atom.ErrInvalidConfiguration)
	})
}
