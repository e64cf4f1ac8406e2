// Package logger provides structured logging on top of zerolog.
//
// Loggers are component scoped and carry structured fields. The observe
// package uses them to report failures and exhaustion of result sequences.
//
// # Configuration
//
//	logging:
//	  level: "debug"
//	  format: "json"
//	  output: "stderr"
//
// # Usage
//
//	log := logger.Get("ingest")
//	log.Warn("element failed", logger.Fields(logger.FieldIndex, 3))
package logger
