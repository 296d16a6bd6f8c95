package radial

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(1e-4, 0.05, 300)
	require.NoError(t, err)
	assert.Equal(t, 300, g.Len())
	assert.Greater(t, g.R[0], 0.0, "mesh must exclude the origin")
	for i := 1; i < g.Len(); i++ {
		assert.Greater(t, g.R[i], g.R[i-1], "node %d", i)
	}
}

func TestNewGridRejectsBadParameters(t *testing.T) {
	for name, build := range map[string]func() (*Grid, error){
		"zero scale":      func() (*Grid, error) { return NewGrid(0, 0.05, 300) },
		"negative step":   func() (*Grid, error) { return NewGrid(1e-4, -0.05, 300) },
		"single point":    func() (*Grid, error) { return NewGrid(1e-4, 0.05, 1) },
		"zero charge":     func() (*Grid, error) { return NewDefaultGrid(0) },
		"negative charge": func() (*Grid, error) { return NewDefaultGrid(-3) },
	} {
		t.Run(name, func(t *testing.T) {
			_, err := build()
			assert.Error(t, err)
		})
	}
}

func TestGridIntegrate(t *testing.T) {
	g, err := NewDefaultGrid(1)
	require.NoError(t, err)

	ones := make([]float64, g.Len())
	for i := range ones {
		ones[i] = 1
	}
	assert.InDelta(t, g.Rmax()-g.R[0], g.Integrate(ones), 1e-12)

	assert.Panics(t, func() { g.Integrate(make([]float64, 3)) })
}

func TestGridCumulative(t *testing.T) {
	g, err := NewDefaultGrid(2)
	require.NoError(t, err)

	f := make([]float64, g.Len())
	for i, r := range g.R {
		f[i] = r
	}
	total := g.Integrate(f)

	in := make([]float64, g.Len())
	out := make([]float64, g.Len())
	g.CumulativeInward(f, in)
	g.CumulativeOutward(f, out)

	assert.InDelta(t, total, in[g.Len()-1], 1e-10*total)
	for _, i := range []int{0, 17, 200, g.Len() - 1} {
		assert.InDelta(t, total, in[i]+out[i], 1e-10*total, "node %d", i)
	}
}

func TestPointNucleusPotential(t *testing.T) {
	g, err := NewDefaultGrid(26)
	require.NoError(t, err)

	v := PointNucleus{Z: 26}.Potential(g)
	for _, i := range []int{0, 100, g.Len() - 1} {
		assert.InDelta(t, -26, v[i]*g.R[i], 1e-12, "node %d", i)
	}
}

func TestUniformNucleusPotential(t *testing.T) {
	g, err := NewDefaultGrid(26)
	require.NoError(t, err)

	nm := NewUniformNucleus(26, 56)
	require.Greater(t, nm.R0, g.R[0], "innermost node must fall inside the sphere")

	v := nm.Potential(g)

	// Inside: finite, approaching -1.5 Z / R0 at the center.
	center := -1.5 * 26 / nm.R0
	assert.InDelta(t, center, v[0], 1e-3*(-center))

	// Outside: indistinguishable from the point form.
	last := g.Len() - 1
	assert.InDelta(t, -26/g.R[last], v[last], 1e-12)
}

func TestDebyeScreenedPotential(t *testing.T) {
	g, err := NewDefaultGrid(10)
	require.NoError(t, err)

	lambda := 5.0
	bare := PointNucleus{Z: 10}.Potential(g)
	scr := DebyeScreened{Model: PointNucleus{Z: 10}, Lambda: lambda}.Potential(g)

	for _, i := range []int{0, 150, 300} {
		assert.Less(t, bare[i], scr[i], "screening must weaken the attraction at node %d", i)
	}
	// Screening factor is exactly exp(-r/lambda) for a point charge.
	i := 200
	assert.InDelta(t, math.Exp(-g.R[i]/lambda), scr[i]/bare[i], 1e-12)
}
