// Package app contains the core application logic. It wires the logger,
// the configuration store and the pipeline registry together and runs a
// named pipeline, decoupled from any specific entrypoint like a CLI.
package app
