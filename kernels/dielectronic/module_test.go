package dielectronic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/basis"
	"github.com/akrivova/ionflow/internal/ci"
	"github.com/akrivova/ionflow/internal/process"
	"github.com/akrivova/ionflow/internal/radial"
	"github.com/akrivova/ionflow/internal/scf"
)

func solved(t *testing.T, nm radial.NuclearModel, g *radial.Grid, cfg string) *ci.Multiplet {
	t.Helper()
	b, err := basis.Build([]atom.Configuration{atom.MustParseConfiguration(cfg)})
	require.NoError(t, err)

	set := scf.DefaultSettings()
	set.Method = scf.MethodPureNuclear
	require.NoError(t, scf.Solve(context.Background(), b, nm, g, set))

	m, err := ci.Solve(context.Background(), b, nm, g, ci.DefaultSettings())
	require.NoError(t, err)
	return m
}

func TestComputePathwaysThroughDoublyExcitedResonance(t *testing.T) {
	g, err := radial.NewDefaultGrid(4)
	require.NoError(t, err)
	nm := radial.PointNucleus{Z: 4}

	// Photoexcitation of helium-like ground into the autoionizing 2s2p
	// resonance, which then ejects one electron.
	ini := solved(t, nm, g, "1s^2")
	mid := solved(t, nm, g, "2s^1 2p^1")
	fin := solved(t, nm, g, "1s^1")
	require.Equal(t, 1, ini.Size())
	require.Equal(t, 4, mid.Size())
	require.Equal(t, 1, fin.Size())

	paths, err := Kernel{}.ComputePathways(context.Background(), ini, mid, fin, nm, g, process.DefaultSettings())
	require.NoError(t, err)

	// Only the two J=1 resonance levels connect 0+ to 1/2+ by E1.
	require.Len(t, paths, 2)
	mids := map[int]bool{}
	for _, p := range paths {
		assert.Equal(t, "dielectronic", p.Process)
		assert.Equal(t, 0, p.InitialIndex)
		assert.Equal(t, 0, p.FinalIndex)
		mids[p.IntermediateIndex] = true

		assert.Greater(t, p.ExcitationEnergy, 8.0)
		assert.Less(t, p.ExcitationEnergy, 12.0)
		assert.Greater(t, p.SecondaryEnergy, 3.0)
		assert.Less(t, p.SecondaryEnergy, 6.0)

		require.Len(t, p.Excitation, 2)
		for _, ch := range p.Excitation {
			assert.Equal(t, process.E1, ch.Multipole)
			assert.Greater(t, ch.Amplitude, 0.0)
		}
		require.Len(t, p.Decay, 2)
		assert.Equal(t, -2, p.Decay[0].Kappa)
		assert.Equal(t, 1, p.Decay[1].Kappa)

		require.Contains(t, p.CrossSection, process.GaugeCoulomb)
		require.Contains(t, p.CrossSection, process.GaugeBabushkin)
		assert.Greater(t, p.CrossSection[process.GaugeCoulomb], 0.0)
		assert.InDelta(t, p.CrossSection[process.GaugeCoulomb], p.CrossSection[process.GaugeBabushkin], 1e-15)
	}
	assert.Len(t, mids, 2)
}

func TestComputePathwaysAllowList(t *testing.T) {
	g, err := radial.NewDefaultGrid(4)
	require.NoError(t, err)
	nm := radial.PointNucleus{Z: 4}

	ini := solved(t, nm, g, "1s^2")
	mid := solved(t, nm, g, "2s^1 2p^1")
	fin := solved(t, nm, g, "1s^1")

	all, err := Kernel{}.ComputePathways(context.Background(), ini, mid, fin, nm, g, process.DefaultSettings())
	require.NoError(t, err)
	require.NotEmpty(t, all)
	pick := all[0]

	set := process.DefaultSettings()
	set.Allow = [][3]int{{pick.InitialIndex, pick.IntermediateIndex, pick.FinalIndex}}

	paths, err := Kernel{}.ComputePathways(context.Background(), ini, mid, fin, nm, g, set)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	assert.Equal(t, pick.IntermediateIndex, paths[0].IntermediateIndex)
}

func TestComputePathwaysHonorsCancellation(t *testing.T) {
	g, err := radial.NewDefaultGrid(4)
	require.NoError(t, err)
	nm := radial.PointNucleus{Z: 4}

	ini := solved(t, nm, g, "1s^2")
	mid := solved(t, nm, g, "2s^1 2p^1")
	fin := solved(t, nm, g, "1s^1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = Kernel{}.ComputePathways(ctx, ini, mid, fin, nm, g, process.DefaultSettings())
	assert.ErrorIs(t, err, context.Canceled)
}
