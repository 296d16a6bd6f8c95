package app

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds the process-level knobs shared by every command. CLI
// flags may override individual fields after parsing.
type Settings struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `env:"IONFLOW_LOG_LEVEL" envDefault:"info"`

	// LogFormat is text or json.
	LogFormat string `env:"IONFLOW_LOG_FORMAT" envDefault:"text"`

	// SnapshotDB is the path of the run-snapshot database; empty
	// disables persistence.
	SnapshotDB string `env:"IONFLOW_SNAPSHOT_DB"`

	// Quiet suppresses the console report, leaving only logs.
	Quiet bool `env:"IONFLOW_QUIET"`
}

// ParseSettings loads the settings from environment variables.
func ParseSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse environment settings: %w", err)
	}
	return s, nil
}
