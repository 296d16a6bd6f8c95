// Package app wires the application together: settings from the
// environment, the logger, the process-kernel registry, the reporter
// and the optional snapshot store. The CLI commands stay thin by
// delegating whole runs to the App methods.
package app
