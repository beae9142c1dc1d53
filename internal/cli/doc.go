// Package cli resolves the command line and environment into an app.Config
// and maps errors to process exit codes.
package cli
