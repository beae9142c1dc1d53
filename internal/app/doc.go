// Package app contains the lookup pipeline: it takes a validated Config,
// fetches current conditions once and hands them to the report printer. It
// knows nothing about flags or exit codes; the cli package and the entrypoint
// own those.
package app
