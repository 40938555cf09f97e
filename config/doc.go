// Package config loads reddish configuration from YAML, .env files and the
// environment.
//
// Files are resolved by name: ./cmd/<name>/config.yml, ./config/config.yml,
// ./config.yml, then <user config dir>/<name>/config.yml. Environment
// variables prefixed with REDDISH_ override file values, with underscores
// mapping to nesting (REDDISH_LOGGING_LEVEL sets logging.level).
//
// # Usage
//
//	cfg, err := config.LoadCLIConfig("reddish")
package config
