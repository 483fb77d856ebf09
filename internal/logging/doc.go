// Package logging constructs slog loggers for the CLI.
//
// Two formats exist: a console handler that renders flat
// "TIME LEVEL component: msg key=value" lines, and a JSON handler for
// machine consumption. NewFromConfig tees output to stderr and the vault
// log file.
package logging
