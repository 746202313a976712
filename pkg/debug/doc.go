// Package debug provides the process-wide zap logger used by the layout
// engine and the boxlayout CLI.
//
// Before Initialize or Init is called, Logger returns a nop logger and Log is
// a no-op. When the BOXLAYOUT_DEBUG environment variable is set to a file
// path, the CLI sends debug entries to that file.
package debug
