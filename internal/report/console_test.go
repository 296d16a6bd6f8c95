package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/cascade"
	"github.com/akrivova/ionflow/internal/ci"
	"github.com/akrivova/ionflow/internal/process"
)

func block(t *testing.T, initial bool, gen int, cfgs ...string) *cascade.Block {
	t.Helper()
	b := &cascade.Block{Generation: gen, Initial: initial}
	for _, s := range cfgs {
		cfg := atom.MustParseConfiguration(s)
		b.Configurations = append(b.Configurations, cfg)
		b.ElectronCount = cfg.ElectronCount()
	}
	return b
}

func TestConsoleMultiplet(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Multiplet(&ci.Multiplet{
		Name: "1s^2 2s^2 2p^5",
		Levels: []ci.Level{
			{Index: 0, TwoJ: 3, Parity: atom.Odd, Energy: -2.75},
			{Index: 1, TwoJ: 1, Parity: atom.Odd, Energy: -2.5},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Levels of 1s^2 2s^2 2p^5")
	assert.Contains(t, out, "Energy [Ha]")
	assert.Contains(t, out, "Energy [eV]")
	assert.Contains(t, out, "-2.75000000")
	assert.Contains(t, out, "-74.831312")
	assert.Less(t, strings.Index(out, "-2.75000000"), strings.Index(out, "-2.50000000"),
		"levels print in multiplet order")
}

func TestConsoleMultipletWithoutName(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Multiplet(&ci.Multiplet{})
	assert.Contains(t, buf.String(), "Levels of multiplet")
}

func TestConsoleBlocks(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	b0 := block(t, true, 0, "1s^2 2s^2 2p^5")
	b0.MeanBinding = 114.0
	b1 := block(t, false, 1, "1s^2 2s^2 2p^4")

	c.Blocks([]*cascade.Block{b0, b1})

	out := buf.String()
	assert.Contains(t, out, "Cascade blocks (2)")
	assert.Contains(t, out, "Binding [eV]")
	assert.Contains(t, out, "1s^2 2s^2 2p^5")
	assert.Contains(t, out, "1s^2 2s^2 2p^4")
	assert.Contains(t, out, "114.0000")

	lines := strings.Split(out, "\n")
	var initialRow string
	for _, ln := range lines {
		if strings.Contains(ln, "1s^2 2s^2 2p^5") && !strings.Contains(ln, "+") {
			initialRow = ln
		}
	}
	require.NotEmpty(t, initialRow)
	assert.True(t, strings.HasPrefix(strings.TrimLeft(initialRow, " "), "*"),
		"initial block row starts with a star")
}

func TestConsoleSteps(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	ini := block(t, true, 0, "1s^1 2s^2 2p^6")
	fin := block(t, false, 1, "1s^2 2s^2 2p^5")
	deep := block(t, false, 2, "1s^2 2s^2 2p^4")

	decay := &cascade.Step{
		Process: "radiative",
		Initial: ini,
		Final:   fin,
		Lines: []process.Line{
			{Process: "radiative", InitialIndex: 0, FinalIndex: 1, Energy: 26.9, Rate: 1.2e-4},
		},
	}
	photo := &cascade.Step{
		Process: "photo",
		Initial: fin,
		Final:   deep,
		Lines: []process.Line{
			{Process: "photo", Energy: 0.75, PhotonEnergy: 1.0, CrossSection: 3.1e-2},
		},
	}
	resonant := &cascade.Step{
		Process:      "dielectronic",
		Initial:      ini,
		Intermediate: fin,
		Final:        deep,
		Pathways: []process.Pathway{
			{
				Process:           "dielectronic",
				IntermediateIndex: 1,
				ExcitationEnergy:  10.1,
				SecondaryEnergy:   4.6,
				CrossSection: map[process.Gauge]float64{
					process.GaugeBabushkin: 2.0e-3,
					process.GaugeCoulomb:   1.0e-3,
				},
			},
		},
	}

	c.Steps([]*cascade.Step{decay, photo, resonant})

	out := buf.String()
	assert.Contains(t, out, "Cascade steps (3)")
	assert.Contains(t, out, "radiative: 1s^1 2s^2 2p^6 -> 1s^2 2s^2 2p^5")
	assert.Contains(t, out, "rate 1.2000e-04")
	assert.Contains(t, out, "sigma 3.1000e-02 at 1.0000 Ha")
	assert.Contains(t, out, "excite")
	assert.Contains(t, out, "sigma[coulomb] 1.0000e-03")
	assert.Contains(t, out, "sigma[babushkin] 2.0000e-03")
	assert.Less(t, strings.Index(out, "sigma[coulomb]"), strings.Index(out, "sigma[babushkin]"),
		"gauges print in a stable order")
}

func TestConsoleDistribution(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf)

	c.Distribution(&cascade.Outcome{
		Ion: map[int]float64{9: 0.25, 10: 0.75},
		Levels: map[string][]float64{
			"1s^2 2s^2 2p^5": {0.2, 0.05},
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Ion distribution")
	assert.Contains(t, out, "0.750000")
	assert.Contains(t, out, "0.250000")
	assert.Less(t, strings.Index(out, "0.750000"), strings.Index(out, "0.250000"),
		"electron counts print descending")
	assert.Contains(t, out, "Level populations")
	assert.Contains(t, out, "1s^2 2s^2 2p^5")
	assert.Contains(t, out, "0.050000")
}

func TestConsoleDistributionIonOnly(t *testing.T) {
	var buf bytes.Buffer
	NewConsole(&buf).Distribution(&cascade.Outcome{Ion: map[int]float64{1: 1}})
	assert.NotContains(t, buf.String(), "Level populations")
}
