package config

// Document is the merged, format-agnostic content of every loaded file:
// one nuclear model, an optional grid override, and the named requests.
// All strings are still symbolic; the engine decodes them into domain
// types when a request is executed.
type Document struct {
	Nuclear NuclearSpec

	// Grid overrides the default mesh when non-nil.
	Grid *GridSpec

	Structures  []*StructureRequest
	Cascades    []*CascadeRequest
	Simulations []*SimulationRequest
}

// Structure returns the structure request with the given name, or nil.
func (d *Document) Structure(name string) *StructureRequest {
	for _, r := range d.Structures {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Cascade returns the cascade request with the given name, or nil.
func (d *Document) Cascade(name string) *CascadeRequest {
	for _, r := range d.Cascades {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// Simulation returns the simulation request with the given name, or nil.
func (d *Document) Simulation(name string) *SimulationRequest {
	for _, r := range d.Simulations {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// NuclearSpec selects the nuclear charge-density model.
type NuclearSpec struct {
	// Charge is the nuclear charge Z.
	Charge float64

	// Model is "point" or "uniform"; empty means point.
	Model string

	// Mass is the mass number of the uniform-sphere model.
	Mass float64
}

// GridSpec overrides the radial mesh parameters. Zero fields keep the
// default derived from the nuclear charge.
type GridSpec struct {
	R0     float64
	Step   float64
	Points int
}

// FieldSpec steers the self-consistent-field stage of one request.
type FieldSpec struct {
	// Start is "hydrogenic" or "from-orbitals"; empty means hydrogenic.
	Start string

	// Method is "meanfield-dfs", "meanfield-hs", "optimized-level" or
	// "pure-nuclear"; empty picks the engine default.
	Method string

	MaxIterations int
	Accuracy      float64
}

// InteractionSpec steers the configuration-interaction stage.
type InteractionSpec struct {
	// Coulomb is nil when the file does not mention the attribute, so
	// the engine default survives an absent interaction block.
	Coulomb *bool

	Breit bool

	// Diagonalization is "full" or "none"; empty means full.
	Diagonalization string
}

// PlasmaSpec screens the interaction for an embedded ion.
type PlasmaSpec struct {
	// DebyeLength is the screening length in Bohr.
	DebyeLength float64
}

// LinesSpec steers the process kernels of a cascade.
type LinesSpec struct {
	// Multipoles by conventional label, e.g. "E1", "M2".
	Multipoles []string

	// Gauges is "coulomb" and/or "babushkin".
	Gauges []string

	// MaxKappa bounds the continuum partial waves.
	MaxKappa int

	// PhotonEnergies in Hartree, already unit-evaluated by the loader.
	PhotonEnergies []float64
}

// ProcessSpec is one entry of a cascade's process catalog.
type ProcessSpec struct {
	Tag           string
	LostElectrons int
	Downhill      bool
	Resonant      bool
}

// StructureRequest asks for one multiplet computation.
type StructureRequest struct {
	Name           string
	Configurations []string

	Field       *FieldSpec
	Interaction *InteractionSpec
	Plasma      *PlasmaSpec
}

// CascadeRequest asks for a descendant graph with computed transition
// data.
type CascadeRequest struct {
	Name           string
	Configurations []string

	MaxElectronLoss  int
	MaxDisplacements int

	// Shells restricts electron removal; empty means every shell.
	Shells []string

	// DisplacementShells adds rearrangement targets.
	DisplacementShells []string

	CombineBlocks bool

	// Processes is the step catalog; empty picks the engine default.
	Processes []ProcessSpec

	Field       *FieldSpec
	Interaction *InteractionSpec
	Plasma      *PlasmaSpec
	Lines       *LinesSpec
}

// SimulationRequest asks for population propagation over an executed
// cascade.
type SimulationRequest struct {
	Name string

	// Cascade names the cascade request this simulation follows; it
	// defaults to the simulation's own name.
	Cascade string

	// Initial is the explicit population of the initial block's levels.
	Initial []float64

	// PhotonFluence converts ionizing cross sections into population
	// flow; required when the executed graph carries any.
	PhotonFluence float64

	// Outputs lists the requested distribution kinds.
	Outputs []string
}
