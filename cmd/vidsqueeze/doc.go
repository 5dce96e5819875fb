// Package main hosts the vidsqueeze CLI entrypoint and command graph.
//
// The Cobra-based command tree wires terminal invocations to the internal
// packages: compress orchestrates the probe → build → transcode → report
// pipeline, probe and history expose the supporting data, doctor checks the
// external binaries, and config manages the TOML file. Configuration
// resolution and logger construction are centralized in commandContext so
// subcommands stay declarative.
package main
