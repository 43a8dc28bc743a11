// Package batch reads the numbers to transform from batch files and from
// command line arguments.
package batch
