package app

import (
	"github.com/akrivova/ionflow/internal/process"
	"github.com/akrivova/ionflow/kernels/auger"
	"github.com/akrivova/ionflow/kernels/dielectronic"
	"github.com/akrivova/ionflow/kernels/photo"
	"github.com/akrivova/ionflow/kernels/radiative"
)

// CoreModules is the definitive list of process kernels compiled into
// the ionflow binary.
func CoreModules() []process.Module {
	return []process.Module{
		&radiative.Module{},
		&auger.Module{},
		&photo.Module{},
		&dielectronic.Module{},
	}
}
