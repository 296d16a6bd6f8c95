package engine

import (
	"fmt"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/cascade"
	"github.com/akrivova/ionflow/internal/ci"
	"github.com/akrivova/ionflow/internal/config"
	"github.com/akrivova/ionflow/internal/process"
	"github.com/akrivova/ionflow/internal/radial"
	"github.com/akrivova/ionflow/internal/scf"
)

// DecodeStructure translates a loaded structure request into solver
// terms, applying the document-wide nuclear model and mesh.
func DecodeStructure(doc *config.Document, req *config.StructureRequest) (StructureSpec, error) {
	spec := StructureSpec{Name: req.Name}

	var err error
	if spec.Configurations, err = parseConfigurations(req.Configurations); err != nil {
		return StructureSpec{}, fmt.Errorf("structure %q: %w", req.Name, err)
	}
	if spec.Nuclear, err = decodeNuclear(doc.Nuclear); err != nil {
		return StructureSpec{}, fmt.Errorf("structure %q: %w", req.Name, err)
	}
	if spec.Grid, err = decodeGrid(doc.Nuclear.Charge, doc.Grid); err != nil {
		return StructureSpec{}, fmt.Errorf("structure %q: %w", req.Name, err)
	}
	if spec.Field, err = decodeField(req.Field); err != nil {
		return StructureSpec{}, fmt.Errorf("structure %q: %w", req.Name, err)
	}
	if spec.Interaction, err = decodeInteraction(req.Interaction, req.Plasma); err != nil {
		return StructureSpec{}, fmt.Errorf("structure %q: %w", req.Name, err)
	}
	return spec, nil
}

// DecodeCascade translates a loaded cascade request into solver terms.
func DecodeCascade(doc *config.Document, req *config.CascadeRequest) (CascadeSpec, error) {
	spec := CascadeSpec{Name: req.Name}

	var err error
	if spec.Initial, err = parseConfigurations(req.Configurations); err != nil {
		return CascadeSpec{}, fmt.Errorf("cascade %q: %w", req.Name, err)
	}
	if spec.Nuclear, err = decodeNuclear(doc.Nuclear); err != nil {
		return CascadeSpec{}, fmt.Errorf("cascade %q: %w", req.Name, err)
	}
	if spec.Grid, err = decodeGrid(doc.Nuclear.Charge, doc.Grid); err != nil {
		return CascadeSpec{}, fmt.Errorf("cascade %q: %w", req.Name, err)
	}
	if spec.Field, err = decodeField(req.Field); err != nil {
		return CascadeSpec{}, fmt.Errorf("cascade %q: %w", req.Name, err)
	}
	if spec.Interaction, err = decodeInteraction(req.Interaction, req.Plasma); err != nil {
		return CascadeSpec{}, fmt.Errorf("cascade %q: %w", req.Name, err)
	}
	if spec.Kernels, err = decodeLines(req.Lines); err != nil {
		return CascadeSpec{}, fmt.Errorf("cascade %q: %w", req.Name, err)
	}

	spec.Builder = cascade.GraphBuilder{
		Z:                doc.Nuclear.Charge,
		MaxElectronLoss:  req.MaxElectronLoss,
		MaxDisplacements: req.MaxDisplacements,
		CombineBlocks:    req.CombineBlocks,
	}
	if spec.Builder.Shells, err = parseShells(req.Shells); err != nil {
		return CascadeSpec{}, fmt.Errorf("cascade %q: %w", req.Name, err)
	}
	if spec.Builder.DisplacementShells, err = parseShells(req.DisplacementShells); err != nil {
		return CascadeSpec{}, fmt.Errorf("cascade %q: %w", req.Name, err)
	}
	for _, p := range req.Processes {
		spec.Builder.Processes = append(spec.Builder.Processes, cascade.ProcessRule{
			Tag:           p.Tag,
			LostElectrons: p.LostElectrons,
			Downhill:      p.Downhill,
			Resonant:      p.Resonant,
		})
	}
	return spec, nil
}

// DecodeSimulation translates a loaded simulation request.
func DecodeSimulation(req *config.SimulationRequest) SimulationSpec {
	return SimulationSpec{
		Name:    req.Name,
		Cascade: req.Cascade,
		Settings: cascade.Settings{
			Initial:       req.Initial,
			PhotonFluence: req.PhotonFluence,
			Outputs:       req.Outputs,
		},
	}
}

func parseConfigurations(strs []string) ([]atom.Configuration, error) {
	out := make([]atom.Configuration, len(strs))
	for i, s := range strs {
		cfg, err := atom.ParseConfiguration(s)
		if err != nil {
			return nil, err
		}
		out[i] = cfg
	}
	return out, nil
}

func parseShells(strs []string) ([]atom.Shell, error) {
	if len(strs) == 0 {
		return nil, nil
	}
	out := make([]atom.Shell, len(strs))
	for i, s := range strs {
		sh, err := atom.ParseShell(s)
		if err != nil {
			return nil, err
		}
		out[i] = sh
	}
	return out, nil
}

func decodeNuclear(spec config.NuclearSpec) (radial.NuclearModel, error) {
	switch spec.Model {
	case "", "point":
		return radial.PointNucleus{Z: spec.Charge}, nil
	case "uniform":
		if spec.Mass <= 0 {
			return nil, fmt.Errorf("uniform nuclear model needs a mass number: %w", atom.ErrInvalidConfiguration)
		}
		return radial.NewUniformNucleus(spec.Charge, spec.Mass), nil
	}
	return nil, fmt.Errorf("unknown nuclear model %q: %w", spec.Model, atom.ErrInvalidConfiguration)
}

// decodeGrid fills unset mesh parameters from the charge-derived
// defaults, so a grid block may override a single knob.
func decodeGrid(z float64, spec *config.GridSpec) (*radial.Grid, error) {
	if spec == nil {
		return radial.NewDefaultGrid(z)
	}
	r0, h, n := spec.R0, spec.Step, spec.Points
	if r0 <= 0 {
		r0 = radial.DefaultScale(z)
	}
	if h <= 0 {
		h = radial.DefaultStep
	}
	if n <= 0 {
		n = radial.DefaultPoints
	}
	return radial.NewGrid(r0, h, n)
}

func decodeField(spec *config.FieldSpec) (scf.Settings, error) {
	set := scf.DefaultSettings()
	if spec == nil {
		return set, nil
	}
	var err error
	if spec.Start != "" {
		if set.Start, err = scf.ParseStartStrategy(spec.Start); err != nil {
			return scf.Settings{}, err
		}
	}
	if spec.Method != "" {
		if set.Method, err = scf.ParseMethod(spec.Method); err != nil {
			return scf.Settings{}, err
		}
	}
	if spec.MaxIterations > 0 {
		set.MaxIterations = spec.MaxIterations
	}
	if spec.Accuracy > 0 {
		set.Accuracy = spec.Accuracy
	}
	return set, nil
}

func decodeInteraction(spec *config.InteractionSpec, plasma *config.PlasmaSpec) (ci.Settings, error) {
	set := ci.DefaultSettings()
	if spec != nil {
		if spec.Coulomb != nil {
			set.IncludeCoulomb = *spec.Coulomb
		}
		set.IncludeBreit = spec.Breit
		if spec.Diagonalization != "" {
			var err error
			if set.Diagonalization, err = ci.ParseDiagonalization(spec.Diagonalization); err != nil {
				return ci.Settings{}, err
			}
		}
	}
	if plasma != nil {
		if plasma.DebyeLength <= 0 {
			return ci.Settings{}, fmt.Errorf("debye length %g must be positive: %w",
				plasma.DebyeLength, atom.ErrInvalidConfiguration)
		}
		set.Plasma = &ci.PlasmaSettings{DebyeLength: plasma.DebyeLength}
	}
	return set, nil
}

func decodeLines(spec *config.LinesSpec) (process.Settings, error) {
	set := process.DefaultSettings()
	if spec == nil {
		return set, nil
	}
	if len(spec.Multipoles) > 0 {
		set.Multipoles = set.Multipoles[:0]
		for _, s := range spec.Multipoles {
			m, err := process.ParseMultipole(s)
			if err != nil {
				return process.Settings{}, err
			}
			set.Multipoles = append(set.Multipoles, m)
		}
	}
	if len(spec.Gauges) > 0 {
		set.Gauges = set.Gauges[:0]
		for _, s := range spec.Gauges {
			g, err := process.ParseGauge(s)
			if err != nil {
				return process.Settings{}, err
			}
			set.Gauges = append(set.Gauges, g)
		}
	}
	if spec.MaxKappa > 0 {
		set.MaxKappa = spec.MaxKappa
	}
	if len(spec.PhotonEnergies) > 0 {
		set.PhotonEnergies = spec.PhotonEnergies
	}
	return set, nil
}
