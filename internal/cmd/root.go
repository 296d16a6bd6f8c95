// Package cmd provides the ionflow CLI commands.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/akrivova/ionflow/internal/app"
)

// version is overridable at link time.
var version = "dev"

var (
	flagLogLevel   string
	flagLogFormat  string
	flagSnapshotDB string
	flagQuiet      bool
)

var rootCmd = &cobra.Command{
	Use:     "ionflow",
	Short:   "Relativistic atomic structure and ionization cascades",
	Version: version,
	Long: `ionflow computes relativistic atomic structure and drives
ionization cascades from HCL request files.

A request file declares the nuclear model plus named structure, cascade
and simulation requests; the matching subcommand executes them:

  ionflow structure requests/   Compute multiplets
  ionflow cascade requests/     Build and execute cascade graphs
  ionflow simulate requests/    Propagate level populations
  ionflow runs                  Inspect stored snapshots`,
	SilenceUsage: true,
}

// Execute runs the root command and returns an exit code for main. An
// interrupt cancels the computation through the command context.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format: text or json")
	rootCmd.PersistentFlags().StringVar(&flagSnapshotDB, "snapshot-db", "", "path of the run-snapshot database")
	rootCmd.PersistentFlags().BoolVar(&flagQuiet, "quiet", false, "suppress the console report")
}

// commandSettings loads the environment settings and applies any flags
// the user set explicitly.
func commandSettings(cmd *cobra.Command) (app.Settings, error) {
	settings, err := app.ParseSettings()
	if err != nil {
		return app.Settings{}, err
	}
	if cmd.Flags().Changed("log-level") {
		settings.LogLevel = flagLogLevel
	}
	if cmd.Flags().Changed("log-format") {
		settings.LogFormat = flagLogFormat
	}
	if cmd.Flags().Changed("snapshot-db") {
		settings.SnapshotDB = flagSnapshotDB
	}
	if cmd.Flags().Changed("quiet") {
		settings.Quiet = flagQuiet
	}
	return settings, nil
}

// newApp builds an App writing to the command's output stream.
func newApp(cmd *cobra.Command) (*app.App, error) {
	settings, err := commandSettings(cmd)
	if err != nil {
		return nil, err
	}
	return app.New(cmd.OutOrStdout(), settings)
}
