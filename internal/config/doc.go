// Package config loads application configuration for the timesheet
// processor. Settings come from three layers with increasing precedence:
// built-in defaults, an optional config.yaml, and TSCLI_* environment
// variables processed with envconfig.
package config
