package cmd

import (
	"github.com/spf13/cobra"
)

var structureNames []string

var structureCmd = &cobra.Command{
	Use:   "structure <file or directory>...",
	Short: "Compute multiplets for the structure requests",
	Long: `Compute one multiplet per structure request: the configurations
expand into a CSF basis, the orbitals are refined in the requested
field, and the symmetry blocks are diagonalized into levels.

All structure requests found in the given files run unless --name
restricts the selection.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStructure,
}

func init() {
	structureCmd.Flags().StringSliceVar(&structureNames, "name", nil, "run only the named requests")
	rootCmd.AddCommand(structureCmd)
}

func runStructure(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.RunStructures(cmd.Context(), args, structureNames...)
}
