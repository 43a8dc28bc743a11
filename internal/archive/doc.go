// Package archive keeps earlier output files around by moving them into a
// timestamped archive before they are overwritten.
package archive
