package config

import "github.com/hashicorp/hcl/v2"

// fileRoot decodes every top-level block any request file may carry.
// Files are merged, so nuclear and grid may live beside the requests or
// in a file of their own.
type fileRoot struct {
	Nuclear     *nuclearBlock      `hcl:"nuclear,block"`
	Grid        *gridBlock         `hcl:"grid,block"`
	Structures  []*structureBlock  `hcl:"structure,block"`
	Cascades    []*cascadeBlock    `hcl:"cascade,block"`
	Simulations []*simulationBlock `hcl:"simulation,block"`
	Remain      hcl.Body           `hcl:",remain"`
}

type nuclearBlock struct {
	Charge float64 `hcl:"charge"`
	Model  string  `hcl:"model,optional"`
	Mass   float64 `hcl:"mass,optional"`
}

type gridBlock struct {
	R0     float64 `hcl:"r0,optional"`
	Step   float64 `hcl:"step,optional"`
	Points int     `hcl:"points,optional"`
}

type fieldBlock struct {
	Start         string  `hcl:"start,optional"`
	Method        string  `hcl:"method,optional"`
	MaxIterations int     `hcl:"max_iterations,optional"`
	Accuracy      float64 `hcl:"accuracy,optional"`
}

type interactionBlock struct {
	Coulomb         *bool  `hcl:"coulomb,optional"`
	Breit           bool   `hcl:"breit,optional"`
	Diagonalization string `hcl:"diagonalization,optional"`
}

type plasmaBlock struct {
	DebyeLength float64 `hcl:"debye_length"`
}

type structureBlock struct {
	Name           string   `hcl:"name,label"`
	Configurations []string `hcl:"configurations"`

	Field       *fieldBlock       `hcl:"field,block"`
	Interaction *interactionBlock `hcl:"interaction,block"`
	Plasma      *plasmaBlock      `hcl:"plasma,block"`
}

type processBlock struct {
	Tag           string `hcl:"tag,label"`
	LostElectrons int    `hcl:"lost_electrons,optional"`
	Downhill      bool   `hcl:"downhill,optional"`
	Resonant      bool   `hcl:"resonant,optional"`
}

type linesBlock struct {
	Multipoles []string `hcl:"multipoles,optional"`
	Gauges     []string `hcl:"gauges,optional"`
	MaxKappa   int      `hcl:"max_kappa,optional"`

	// PhotonEnergies stays an expression so files can write unit math
	// like [870 * eV]; the loader evaluates it.
	PhotonEnergies hcl.Expression `hcl:"photon_energies,optional"`
}

type cascadeBlock struct {
	Name           string   `hcl:"name,label"`
	Configurations []string `hcl:"configurations"`

	MaxElectronLoss    int      `hcl:"max_electron_loss,optional"`
	MaxDisplacements   int      `hcl:"max_displacements,optional"`
	Shells             []string `hcl:"shells,optional"`
	DisplacementShells []string `hcl:"displacement_shells,optional"`
	CombineBlocks      bool     `hcl:"combine_blocks,optional"`

	Processes []*processBlock `hcl:"process,block"`

	Field       *fieldBlock       `hcl:"field,block"`
	Interaction *interactionBlock `hcl:"interaction,block"`
	Plasma      *plasmaBlock      `hcl:"plasma,block"`
	Lines       *linesBlock       `hcl:"lines,block"`
}

type simulationBlock struct {
	Name    string `hcl:"name,label"`
	Cascade string `hcl:"cascade,optional"`

	Initial       hcl.Expression `hcl:"initial"`
	PhotonFluence float64        `hcl:"photon_fluence,optional"`
	Outputs       []string       `hcl:"outputs"`
}
