package process

import (
	"fmt"

	"github.com/akrivova/ionflow/internal/atom"
)

// Gauge labels the electromagnetic gauge of a radiative amplitude.
type Gauge int

const (
	// GaugeNone marks channels without a gauge degree of freedom, such
	// as continuum partial waves.
	GaugeNone Gauge = iota
	GaugeCoulomb
	GaugeBabushkin
)

func (g Gauge) String() string {
	switch g {
	case GaugeCoulomb:
		return "coulomb"
	case GaugeBabushkin:
		return "babushkin"
	case GaugeNone:
		return "none"
	}
	return fmt.Sprintf("Gauge(%d)", int(g))
}

// ParseGauge maps a configuration string to a Gauge.
func ParseGauge(s string) (Gauge, error) {
	switch s {
	case "coulomb":
		return GaugeCoulomb, nil
	case "babushkin":
		return GaugeBabushkin, nil
	}
	return 0, fmt.Errorf("unknown gauge %q: %w", s, atom.ErrInvalidConfiguration)
}

// Channel is one contribution to a line or pathway: either a radiative
// multipole in a gauge, or a continuum partial wave labeled by kappa.
type Channel struct {
	Multipole Multipole
	Kappa     int
	Gauge     Gauge
	Amplitude float64
}

// Line is one computed transition between a level of the initial
// multiplet and a level of the final one. Decay processes fill Rate;
// photoionization fills CrossSection and PhotonEnergy instead.
type Line struct {
	// Process is the kernel tag that produced the line.
	Process string

	// InitialIndex and FinalIndex address levels in the two multiplets.
	InitialIndex int
	FinalIndex   int

	// Energy is the transition energy in Hartree: the released energy
	// for decay lines, the ionization threshold for ionizing ones.
	Energy float64

	// Rate is the decay rate in atomic units; zero for ionizing lines.
	Rate float64

	// CrossSection is the photoionization cross section in atomic area
	// units at PhotonEnergy; zero for decay lines.
	CrossSection float64

	// PhotonEnergy is the photon energy the cross section refers to.
	PhotonEnergy float64

	Channels []Channel
}

// Pathway is one resonant three-level route: excitation from an initial
// to an intermediate level followed by a secondary decay to a final one.
type Pathway struct {
	Process string

	InitialIndex      int
	IntermediateIndex int
	FinalIndex        int

	// ExcitationEnergy is intermediate minus initial, SecondaryEnergy is
	// intermediate minus final; both are non-negative by construction.
	ExcitationEnergy float64
	SecondaryEnergy  float64

	// Excitation holds the radiative channels of the upward step, Decay
	// the partial waves of the downward one.
	Excitation []Channel
	Decay      []Channel

	// CrossSection is resolved per gauge of the excitation step.
	CrossSection map[Gauge]float64
}
