// Package history records every transcode run in a local SQLite database so
// past results stay inspectable from the CLI.
package history
