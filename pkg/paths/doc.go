// Package paths provides centralized path handling for sharprinter.
// It follows the XDG Base Directory specification for the user
// configuration file and the state directory that holds the log file.
package paths
