// Package logger provides structured logging for reddish using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. Logs go to stderr by
// default so they never mix with command results on stdout.
//
// # Configuration
//
//	logging:
//	  level: "warn"
//	  format: "console"
//
// # Usage
//
//	log := logger.Get("crypto")
//	log.Debug("decoded input", logger.Fields("bytes", n))
package logger
