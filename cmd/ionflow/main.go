/*
ionflow computes relativistic atomic structure and drives ionization
cascades.

Requests are declared in HCL files: a nuclear block, an optional radial
mesh override, and named structure, cascade and simulation requests.

Usage:

	ionflow <command> [arguments]

Common commands:

	ionflow structure requests/   Compute multiplets
	ionflow cascade requests/     Build and execute cascade graphs
	ionflow simulate requests/    Propagate level populations
	ionflow runs                  Inspect stored snapshots

See 'ionflow help <command>' for more information on a specific command.
*/
package main

import (
	"os"

	"github.com/akrivova/ionflow/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
