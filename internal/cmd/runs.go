package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/akrivova/ionflow/internal/persist"
)

var runsCmd = &cobra.Command{
	Use:   "runs [run id]",
	Short: "Inspect stored run snapshots",
	Long: `List the runs stored in the snapshot database, newest first, or
print the stored results of one run as JSON when a run id is given.

The database path comes from --snapshot-db or IONFLOW_SNAPSHOT_DB.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRuns,
}

func init() {
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	settings, err := commandSettings(cmd)
	if err != nil {
		return err
	}
	if settings.SnapshotDB == "" {
		return fmt.Errorf("no snapshot database configured; set --snapshot-db or IONFLOW_SNAPSHOT_DB")
	}

	store, err := persist.OpenSQLite(settings.SnapshotDB)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 1 {
		results, err := store.LoadResults(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if len(results) == 0 {
			return fmt.Errorf("no stored results for run %q", args[0])
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	runs, err := store.Runs(cmd.Context())
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "no stored runs")
		return nil
	}
	fmt.Fprintf(out, "%-36s  %-10s  %-20s  %s\n", "ID", "Kind", "Started", "Label")
	for _, meta := range runs {
		fmt.Fprintf(out, "%-36s  %-10s  %-20s  %s\n",
			meta.ID, meta.Kind, meta.StartedAt.Format(time.RFC3339), meta.Label)
	}
	return nil
}
