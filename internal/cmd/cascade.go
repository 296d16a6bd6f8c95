package cmd

import (
	"github.com/spf13/cobra"
)

var cascadeNames []string

var cascadeCmd = &cobra.Command{
	Use:   "cascade <file or directory>...",
	Short: "Build and execute the cascade requests",
	Long: `Execute one cascade per request: enumerate the descendant
configurations, group them into blocks, connect the blocks by the
process catalog, and compute every step's transition data. Each block's
structure is computed at most once per run.

All cascade requests found in the given files run unless --name
restricts the selection.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCascade,
}

func init() {
	cascadeCmd.Flags().StringSliceVar(&cascadeNames, "name", nil, "run only the named requests")
	rootCmd.AddCommand(cascadeCmd)
}

func runCascade(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()
	return a.RunCascades(cmd.Context(), args, cascadeNames...)
}
