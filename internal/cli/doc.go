// Package cli provides command-line interface setup and configuration
// for the numwords application. It handles flag parsing, command
// creation, logger construction and configuration management using
// cobra, viper and zap.
package cli
