package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/numwords/internal/cli"
	"codeberg.org/snonux/numwords/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Cancel batch reading on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute command
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Pick up values from the config file and environment
	cli.ResolveFlags(flags)

	logger, err := cli.NewLogger(flags.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	proc, err := processor.NewProcessor(flags, logger)
	if err != nil {
		return err
	}
	proc.SetOutput(cmd.OutOrStdout())

	return proc.Run(cmd.Context(), args)
}
