// Package locale renders float64 values the way a given culture writes them.
// The culture is an explicit value instead of ambient process state, so every
// rendering is reproducible and testable.
package locale
