package cascade

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akrivova/ionflow/internal/atom"
)

func configs(t *testing.T, strs ...string) []atom.Configuration {
	t.Helper()
	out := make([]atom.Configuration, len(strs))
	for i, s := range strs {
		out[i] = atom.MustParseConfiguration(s)
	}
	return out
}

func TestBuildFluorinelikePhotoFixture(t *testing.T) {
	gb := GraphBuilder{
		Z:               10,
		MaxElectronLoss: 1,
		Shells:          []atom.Shell{{N: 2, L: 0}, {N: 2, L: 1}},
	}
	g, err := gb.Build(context.Background(), configs(t, "1s^2 2s^2 2p^5"))
	require.NoError(t, err)

	require.Len(t, g.Blocks, 3)
	assert.Equal(t, "1s^2 2s^2 2p^5", g.Blocks[0].Key())
	assert.True(t, g.Blocks[0].Initial)
	assert.Equal(t, 9, g.Blocks[0].ElectronCount)
	assert.Equal(t, 0, g.Blocks[0].Generation)

	assert.Equal(t, "1s^2 2s^1 2p^5", g.Blocks[1].Key())
	assert.Equal(t, "1s^2 2s^2 2p^4", g.Blocks[2].Key())
	for _, b := range g.Blocks[1:] {
		assert.False(t, b.Initial)
		assert.Equal(t, 8, b.ElectronCount)
		assert.Equal(t, 1, b.Generation)
	}

	// Ground-state fluorine-like neon only photoionizes: nothing lies
	// below it, so no radiative or Auger edges appear.
	require.Len(t, g.Steps, 2)
	finals := map[string]bool{}
	for _, st := range g.Steps {
		assert.Equal(t, "photo", st.Process)
		assert.Same(t, g.Blocks[0], st.Initial)
		assert.Nil(t, st.Intermediate)
		finals[st.Final.Key()] = true
	}
	assert.True(t, finals["1s^2 2s^1 2p^5"])
	assert.True(t, finals["1s^2 2s^2 2p^4"])
}

func TestBuildDescendantBounds(t *testing.T) {
	gb := GraphBuilder{Z: 10, MaxElectronLoss: 1}
	g, err := gb.Build(context.Background(), configs(t, "1s^2 2s^2 2p^6"))
	require.NoError(t, err)

	// One hole in each shell plus the initial configuration.
	require.Len(t, g.Blocks, 4)
	for _, b := range g.Blocks {
		assert.Contains(t, []int{10, 9}, b.ElectronCount)
	}

	gb.MaxElectronLoss = 2
	g, err = gb.Build(context.Background(), configs(t, "1s^2 2s^2 2p^6"))
	require.NoError(t, err)

	// Two-hole states add the six shell pairs.
	require.Len(t, g.Blocks, 10)
	counts := map[int]int{}
	for _, b := range g.Blocks {
		counts[b.ElectronCount]++
	}
	assert.Equal(t, map[int]int{10: 1, 9: 3, 8: 6}, counts)
}

func TestBuildCoreHoleEdges(t *testing.T) {
	gb := GraphBuilder{Z: 10, MaxElectronLoss: 2}
	g, err := gb.Build(context.Background(), configs(t, "1s^2 2s^2 2p^6"))
	require.NoError(t, err)

	edges := map[string]int{}
	for _, st := range g.Steps {
		edges[st.Process]++
	}
	assert.Greater(t, edges["photo"], 0)
	assert.Greater(t, edges["auger"], 0)
	assert.Greater(t, edges["radiative"], 0)

	// The K hole decays radiatively into both single L-hole states and
	// by KLL Auger into the states that refill it.
	var kll, kRadiative int
	for _, st := range g.Steps {
		if st.Initial.Key() != "1s^1 2s^2 2p^6" {
			continue
		}
		switch st.Process {
		case "auger":
			assert.Equal(t, 2, st.Final.Configurations[0].Occupation(atom.Shell{N: 1, L: 0}))
			kll++
		case "radiative":
			kRadiative++
		}
	}
	assert.Equal(t, 3, kll)
	assert.Equal(t, 2, kRadiative)

	// Longest-path generations: the L-hole reached both directly and
	// through the K hole sits two generations deep.
	assert.Equal(t, 2, g.Block("1s^2 2s^1 2p^6").Generation)
	assert.Equal(t, 0, g.Block("1s^2 2s^2 2p^6").Generation)
}

func TestBuildDisplacements(t *testing.T) {
	gb := GraphBuilder{
		Z:                  4,
		MaxDisplacements:   1,
		DisplacementShells: []atom.Shell{{N: 2, L: 1}},
	}
	g, err := gb.Build(context.Background(), configs(t, "1s^2 2s^2"))
	require.NoError(t, err)

	keys := make([]string, len(g.Blocks))
	for i, b := range g.Blocks {
		keys[i] = b.Key()
		assert.Equal(t, 4, b.ElectronCount)
	}
	assert.ElementsMatch(t, []string{"1s^2 2s^2", "1s^1 2s^2 2p^1", "1s^2 2s^1 2p^1"}, keys)
}

func TestBuildCombineBlocks(t *testing.T) {
	gb := GraphBuilder{Z: 10, MaxElectronLoss: 1, CombineBlocks: true}
	g, err := gb.Build(context.Background(), configs(t, "1s^2 2s^2 2p^5"))
	require.NoError(t, err)

	require.Len(t, g.Blocks, 2)
	assert.Equal(t, "1s^2 2s^2 2p^5", g.Blocks[0].Key())
	assert.Equal(t, "1s^1 2s^2 2p^5 + 1s^2 2s^1 2p^5 + 1s^2 2s^2 2p^4", g.Blocks[1].Key())
	require.Len(t, g.Blocks[1].Configurations, 3)
}

func TestBuildRejectsEmptyInput(t *testing.T) {
	_, err := GraphBuilder{Z: 10}.Build(context.Background(), nil)
	assert.ErrorIs(t, err, atom.ErrInvalidConfiguration)
}

func TestBuildRejectsCyclicCatalog(t *testing.T) {
	gb := GraphBuilder{
		Z:         4,
		Processes: []ProcessRule{{Tag: "shuffle", LostElectrons: 0}},
	}
	_, err := gb.Build(context.Background(), configs(t, "1s^2 2s^2", "1s^2 2p^2"))
	assert.ErrorIs(t, err, atom.ErrInvalidConfiguration)
}

func TestBuildRejectsResonantRuleWithoutLoss(t *testing.T) {
	gb := GraphBuilder{
		Z:         4,
		Processes: []ProcessRule{{Tag: "dielectronic", Resonant: true}},
	}
	_, err := gb.Build(context.Background(), configs(t, "1s^2"))
	assert.ErrorIs(t, err, atom.ErrInvalidConfiguration)
}

func TestBuildResonantSteps(t *testing.T) {
	gb := GraphBuilder{
		Z:               2,
		MaxElectronLoss: 1,
		Processes:       []ProcessRule{{Tag: "dielectronic", LostElectrons: 1, Resonant: true}},
	}
	g, err := gb.Build(context.Background(), configs(t, "1s^2", "2s^2"))
	require.NoError(t, err)

	// Only the ground pair excites into the higher-lying resonance.
	require.Len(t, g.Steps, 2)
	for _, st := range g.Steps {
		assert.Equal(t, "1s^2", st.Initial.Key())
		require.NotNil(t, st.Intermediate)
		assert.Equal(t, "2s^2", st.Intermediate.Key())
		assert.Equal(t, 1, st.Final.ElectronCount)
	}
}
