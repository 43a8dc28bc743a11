// Package export writes transformation results as plain text, CSV, YAML or
// into a SQLite database.
package export
