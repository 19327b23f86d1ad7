// Package cli turns the temples command line into an app.Config: the
// pipeline to run, the configuration root (defaulting to $TEMPLE_CONFIG)
// and its document format, and the logging options. Invalid input is
// reported as an ExitError carrying the process exit code.
package cli
