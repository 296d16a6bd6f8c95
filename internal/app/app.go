package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/akrivova/ionflow/internal/engine"
	"github.com/akrivova/ionflow/internal/persist"
	"github.com/akrivova/ionflow/internal/process"
	"github.com/akrivova/ionflow/internal/report"
)

// App encapsulates the application's dependencies and lifecycle.
type App struct {
	Logger *slog.Logger
	Engine *engine.Engine

	out   io.Writer
	store *persist.SQLite
}

// New assembles an application instance with its own isolated logger
// and kernel registry. An empty modules list selects CoreModules.
func New(out io.Writer, settings Settings, modules ...process.Module) (*App, error) {
	logger := newLogger(settings.LogLevel, settings.LogFormat, out)

	reg := process.NewRegistry()
	if len(modules) == 0 {
		modules = CoreModules()
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("Process kernels registered.", "tags", reg.Tags())

	var reporter report.Reporter = report.NewConsole(out)
	if settings.Quiet {
		reporter = report.Discard{}
	}

	var store persist.Store = persist.Discard{}
	var snapshots *persist.SQLite
	if settings.SnapshotDB != "" {
		var err error
		snapshots, err = persist.OpenSQLite(settings.SnapshotDB)
		if err != nil {
			return nil, fmt.Errorf("open snapshot store: %w", err)
		}
		store = snapshots
		logger.Debug("Snapshot store ready.", "path", settings.SnapshotDB)
	}

	return &App{
		Logger: logger,
		Engine: engine.New(reg, reporter, store),
		out:    out,
		store:  snapshots,
	}, nil
}

// Close releases the snapshot store, if one was opened.
func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

// newLogger creates an isolated slog.Logger; it never touches the
// process-global default.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}
	return slog.New(handler)
}
