// Package processor contains the core business logic of numwords. It reads
// numbers from arguments or batch files, runs them through the transformer
// in the configured culture and hands the results to the exporter. This
// package serves as the main coordinator between all other components.
package processor
