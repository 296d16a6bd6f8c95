package process

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/ci"
)

func levelSet(levels ...ci.Level) *ci.Multiplet {
	return &ci.Multiplet{Levels: levels}
}

func pathwayFixture() (ini, mid, fin *ci.Multiplet) {
	ini = levelSet(ci.Level{TwoJ: 0, Parity: atom.Even, Energy: 0})
	mid = levelSet(
		ci.Level{TwoJ: 2, Parity: atom.Odd, Energy: 1.0},
		ci.Level{TwoJ: 2, Parity: atom.Odd, Energy: -0.5},
	)
	fin = levelSet(
		ci.Level{TwoJ: 1, Parity: atom.Even, Energy: 0.2},
		ci.Level{TwoJ: 1, Parity: atom.Even, Energy: 2.0},
	)
	return ini, mid, fin
}

func fixtureConfig() PathwayConfig {
	return PathwayConfig{
		Process:  "capture",
		Settings: DefaultSettings(),
		Excite:   func(_, _ *ci.Level, _ Multipole, _ Gauge) float64 { return 2 },
		Decay:    func(_, _ *ci.Level, _ int) float64 { return 3 },
	}
}

func TestEnumeratePathways(t *testing.T) {
	ini, mid, fin := pathwayFixture()

	paths, err := EnumeratePathways(context.Background(), ini, mid, fin, fixtureConfig())
	require.NoError(t, err)
	require.Len(t, paths, 1, "below-initial intermediates and above-intermediate finals are dropped")

	p := paths[0]
	assert.Equal(t, "capture", p.Process)
	assert.Equal(t, [3]int{0, 0, 0}, [3]int{p.InitialIndex, p.IntermediateIndex, p.FinalIndex})
	assert.InDelta(t, 1.0, p.ExcitationEnergy, 1e-15)
	assert.InDelta(t, 0.8, p.SecondaryEnergy, 1e-15)

	require.Len(t, p.Excitation, 2, "one E1 channel per gauge")
	require.Len(t, p.Decay, 2, "two p waves")
	assert.Equal(t, []int{-2, 1}, []int{p.Decay[0].Kappa, p.Decay[1].Kappa})

	// Cross section per gauge: |2|^2 * (|3|^2 + |3|^2) = 72.
	require.Len(t, p.CrossSection, 2)
	assert.InDelta(t, 72.0, p.CrossSection[GaugeCoulomb], 1e-12)
	assert.InDelta(t, 72.0, p.CrossSection[GaugeBabushkin], 1e-12)
}

func TestEnumeratePathwaysAllowList(t *testing.T) {
	ini, mid, fin := pathwayFixture()

	cfg := fixtureConfig()
	cfg.Settings.Allow = [][3]int{{0, 0, 1}}
	paths, err := EnumeratePathways(context.Background(), ini, mid, fin, cfg)
	require.NoError(t, err)
	assert.Empty(t, paths, "allow-listing an energy-forbidden triple yields nothing")

	cfg.Settings.Allow = [][3]int{{0, 0, 0}}
	paths, err = EnumeratePathways(context.Background(), ini, mid, fin, cfg)
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestEnumeratePathwaysNoChannels(t *testing.T) {
	// Same parity on both sides leaves E1 with nothing to do.
	ini := levelSet(ci.Level{TwoJ: 0, Parity: atom.Even, Energy: 0})
	mid := levelSet(ci.Level{TwoJ: 2, Parity: atom.Even, Energy: 1})
	fin := levelSet(ci.Level{TwoJ: 1, Parity: atom.Even, Energy: 0})

	paths, err := EnumeratePathways(context.Background(), ini, mid, fin, fixtureConfig())
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestEnumeratePathwaysHonorsCancellation(t *testing.T) {
	ini, mid, fin := pathwayFixture()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := EnumeratePathways(ctx, ini, mid, fin, fixtureConfig())
	assert.ErrorIs(t, err, context.Canceled)
}
