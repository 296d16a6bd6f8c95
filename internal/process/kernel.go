package process

import (
	"context"

	"github.com/akrivova/ionflow/internal/ci"
	"github.com/akrivova/ionflow/internal/radial"
)

// LineKernel computes the two-level transition data of one process tag.
type LineKernel interface {
	// Tag is the process identifier steps are labeled with.
	Tag() string

	// ComputeLines evaluates every transition between levels of the two
	// multiplets. Energy-forbidden pairs are filtered, not errors.
	ComputeLines(ctx context.Context, ini, fin *ci.Multiplet,
		nm radial.NuclearModel, g *radial.Grid, set Settings) ([]Line, error)
}

// PathwayKernel computes three-level resonance routes.
type PathwayKernel interface {
	Tag() string

	ComputePathways(ctx context.Context, ini, mid, fin *ci.Multiplet,
		nm radial.NuclearModel, g *radial.Grid, set Settings) ([]Pathway, error)
}
