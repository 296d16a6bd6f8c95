package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/akrivova/ionflow/internal/atom"
	"github.com/akrivova/ionflow/internal/ctxlog"
)

// Load parses every .hcl file reachable from the given paths and merges
// the blocks into one Document. Directories are walked recursively.
// Parse and decode failures surface the HCL diagnostics with their
// source positions; structural problems (no nuclear block, duplicate
// names, dangling simulation references) wrap
// atom.ErrInvalidConfiguration.
func Load(ctx context.Context, paths ...string) (*Document, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := findHCLFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl files found under %v: %w", paths, atom.ErrInvalidConfiguration)
	}
	logger.Debug("Discovered request files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := unitContext()

	doc := &Document{}
	var nuclearFrom, gridFrom string
	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parse %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("decode %s: %w", file, diags)
		}

		if root.Nuclear != nil {
			if nuclearFrom != "" {
				return nil, fmt.Errorf("nuclear block in %s already given in %s: %w",
					file, nuclearFrom, atom.ErrInvalidConfiguration)
			}
			nuclearFrom = file
			doc.Nuclear = NuclearSpec{
				Charge: root.Nuclear.Charge,
				Model:  root.Nuclear.Model,
				Mass:   root.Nuclear.Mass,
			}
			if doc.Nuclear.Model == "" {
				doc.Nuclear.Model = "point"
			}
		}
		if root.Grid != nil {
			if gridFrom != "" {
				return nil, fmt.Errorf("grid block in %s already given in %s: %w",
					file, gridFrom, atom.ErrInvalidConfiguration)
			}
			gridFrom = file
			doc.Grid = &GridSpec{
				R0:     root.Grid.R0,
				Step:   root.Grid.Step,
				Points: root.Grid.Points,
			}
		}

		for _, blk := range root.Structures {
			doc.Structures = append(doc.Structures, translateStructure(blk))
		}
		for _, blk := range root.Cascades {
			req, diags := translateCascade(blk, evalCtx)
			if diags.HasErrors() {
				return nil, fmt.Errorf("cascade %q in %s: %w", blk.Name, file, diags)
			}
			doc.Cascades = append(doc.Cascades, req)
		}
		for _, blk := range root.Simulations {
			req, diags := translateSimulation(blk, evalCtx)
			if diags.HasErrors() {
				return nil, fmt.Errorf("simulation %q in %s: %w", blk.Name, file, diags)
			}
			doc.Simulations = append(doc.Simulations, req)
		}
	}

	if err := validate(doc, nuclearFrom); err != nil {
		return nil, err
	}
	logger.Debug("Request files loaded.",
		"structures", len(doc.Structures), "cascades", len(doc.Cascades), "simulations", len(doc.Simulations))
	return doc, nil
}

// findHCLFiles walks the paths and returns every .hcl file exactly once,
// in walk order. A missing path is an error here: requests are explicit
// inputs, not an optional search space.
func findHCLFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})

	appendFile := func(p string) {
		if _, dup := seen[p]; !dup {
			seen[p] = struct{}{}
			files = append(files, p)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("request path %s: %w", path, err)
		}
		if !info.IsDir() {
			if filepath.Ext(path) == ".hcl" {
				appendFile(path)
			}
			continue
		}
		err = filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !info.IsDir() && filepath.Ext(p) == ".hcl" {
				appendFile(p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

func translateStructure(blk *structureBlock) *StructureRequest {
	return &StructureRequest{
		Name:           blk.Name,
		Configurations: blk.Configurations,
		Field:          translateField(blk.Field),
		Interaction:    translateInteraction(blk.Interaction),
		Plasma:         translatePlasma(blk.Plasma),
	}
}

func translateCascade(blk *cascadeBlock, evalCtx *hcl.EvalContext) (*CascadeRequest, hcl.Diagnostics) {
	req := &CascadeRequest{
		Name:               blk.Name,
		Configurations:     blk.Configurations,
		MaxElectronLoss:    blk.MaxElectronLoss,
		MaxDisplacements:   blk.MaxDisplacements,
		Shells:             blk.Shells,
		DisplacementShells: blk.DisplacementShells,
		CombineBlocks:      blk.CombineBlocks,
		Field:              translateField(blk.Field),
		Interaction:        translateInteraction(blk.Interaction),
		Plasma:             translatePlasma(blk.Plasma),
	}
	for _, p := range blk.Processes {
		req.Processes = append(req.Processes, ProcessSpec{
			Tag:           p.Tag,
			LostElectrons: p.LostElectrons,
			Downhill:      p.Downhill,
			Resonant:      p.Resonant,
		})
	}
	if blk.Lines != nil {
		energies, diags := floatList(blk.Lines.PhotonEnergies, evalCtx)
		if diags.HasErrors() {
			return nil, diags
		}
		req.Lines = &LinesSpec{
			Multipoles:     blk.Lines.Multipoles,
			Gauges:         blk.Lines.Gauges,
			MaxKappa:       blk.Lines.MaxKappa,
			PhotonEnergies: energies,
		}
	}
	return req, nil
}

func translateSimulation(blk *simulationBlock, evalCtx *hcl.EvalContext) (*SimulationRequest, hcl.Diagnostics) {
	initial, diags := floatList(blk.Initial, evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	cascadeName := blk.Cascade
	if cascadeName == "" {
		cascadeName = blk.Name
	}
	return &SimulationRequest{
		Name:          blk.Name,
		Cascade:       cascadeName,
		Initial:       initial,
		PhotonFluence: blk.PhotonFluence,
		Outputs:       blk.Outputs,
	}, nil
}

func translateField(blk *fieldBlock) *FieldSpec {
	if blk == nil {
		return nil
	}
	return &FieldSpec{
		Start:         blk.Start,
		Method:        blk.Method,
		MaxIterations: blk.MaxIterations,
		Accuracy:      blk.Accuracy,
	}
}

func translateInteraction(blk *interactionBlock) *InteractionSpec {
	if blk == nil {
		return nil
	}
	return &InteractionSpec{
		Coulomb:         blk.Coulomb,
		Breit:           blk.Breit,
		Diagonalization: blk.Diagonalization,
	}
}

func translatePlasma(blk *plasmaBlock) *PlasmaSpec {
	if blk == nil {
		return nil
	}
	return &PlasmaSpec{DebyeLength: blk.DebyeLength}
}

// validate checks the merged document for structural consistency.
func validate(doc *Document, nuclearFrom string) error {
	if nuclearFrom == "" {
		return fmt.Errorf("no nuclear block in any request file: %w", atom.ErrInvalidConfiguration)
	}
	if doc.Nuclear.Charge <= 0 {
		return fmt.Errorf("nuclear charge %g must be positive: %w",
			doc.Nuclear.Charge, atom.ErrInvalidConfiguration)
	}

	names := make(map[string]string)
	unique := func(kind, name string) error {
		key := kind + " " + name
		if _, dup := names[key]; dup {
			return fmt.Errorf("%s %q defined twice: %w", kind, name, atom.ErrInvalidConfiguration)
		}
		names[key] = key
		return nil
	}

	for _, r := range doc.Structures {
		if err := unique("structure", r.Name); err != nil {
			return err
		}
		if len(r.Configurations) == 0 {
			return fmt.Errorf("structure %q lists no configurations: %w", r.Name, atom.ErrInvalidConfiguration)
		}
	}
	for _, r := range doc.Cascades {
		if err := unique("cascade", r.Name); err != nil {
			return err
		}
		if len(r.Configurations) == 0 {
			return fmt.Errorf("cascade %q lists no configurations: %w", r.Name, atom.ErrInvalidConfiguration)
		}
	}
	for _, r := range doc.Simulations {
		if err := unique("simulation", r.Name); err != nil {
			return err
		}
		if doc.Cascade(r.Cascade) == nil {
			return fmt.Errorf("simulation %q follows unknown cascade %q: %w",
				r.Name, r.Cascade, atom.ErrInvalidConfiguration)
		}
		if len(r.Initial) == 0 {
			return fmt.Errorf("simulation %q has an empty initial distribution: %w",
				r.Name, atom.ErrInvalidConfiguration)
		}
		if len(r.Outputs) == 0 {
			return fmt.Errorf("simulation %q requests no outputs: %w", r.Name, atom.ErrInvalidConfiguration)
		}
	}
	return nil
}
