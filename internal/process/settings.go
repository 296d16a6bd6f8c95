package process

// Settings steers the kernels of one cascade computation. The zero value
// is not useful; start from DefaultSettings.
type Settings struct {
	// Multipoles restricts radiative channels.
	Multipoles []Multipole

	// Gauges lists the gauges amplitudes are evaluated in.
	Gauges []Gauge

	// MaxKappa bounds the continuum partial waves by |kappa|.
	MaxKappa int

	// PhotonEnergies lists the photon energies, in Hartree, at which
	// ionizing cross sections are evaluated.
	PhotonEnergies []float64

	// Allow, when non-empty, restricts three-level pathways to the
	// listed (initial, intermediate, final) level index triples.
	Allow [][3]int
}

// DefaultSettings enables the dominant dipole channel in both gauges and
// s/p/d continuum waves.
func DefaultSettings() Settings {
	return Settings{
		Multipoles: []Multipole{E1},
		Gauges:     []Gauge{GaugeCoulomb, GaugeBabushkin},
		MaxKappa:   2,
	}
}
