package cmd

import (
	"github.com/spf13/cobra"
)

var simulateNames []string

var simulateCmd = &cobra.Command{
	Use:   "simulate <file or directory>...",
	Short: "Propagate populations for the simulation requests",
	Long: `Execute the cascade behind each simulation request, then
propagate the initial level populations through the graph in generation
order. Simulations sharing a cascade share its executed graph.

All simulation requests found in the given files run unless --name
restricts the selection.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringSliceVar(&simulateNames, "name", nil, "run only the named requests")
	rootCmd.AddCommand(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.RunSimulations(cmd.Context(), args, simulateNames...)
}
