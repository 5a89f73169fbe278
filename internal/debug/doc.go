// Package debug builds the structured logger used by the tablelayout CLI.
//
// Console output goes to the writer supplied by the caller. When a log file
// is configured, or the TABLELAYOUT_DEBUG environment variable names one,
// entries are also written as JSON to that file with size-based rotation.
// TABLELAYOUT_DEBUG additionally forces debug level.
package debug
