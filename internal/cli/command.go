package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/numwords/internal"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "numwords [number...]",
		Short: "Spell numbers out word by word",
		Long: `numwords converts numbers into their literal word form, one word per
rendered character: "2.345" becomes "Two point three four five".

NaN, the infinities and the smallest positive double (epsilon) are
written as fixed phrases. Numbers are rendered in the selected culture
before spelling, so "--locale de" reads the decimal comma as "point".

Examples:
  numwords 2.345 0.1              # Spell numbers from the command line
  numwords -- -0.0                # Negative numbers go after --
  numwords --batch numbers.txt    # Process numbers from file (one per line)
  numwords -b a.txt -b b.txt -f csv -o out.csv`,
		Version:       internal.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.numwords.yaml)")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")

	// Local flags
	cmd.Flags().StringArrayVarP(&flags.BatchFiles, "batch", "b", nil, "Process numbers from file (one per line, repeatable)")
	cmd.Flags().StringVarP(&flags.Locale, "locale", "l", flags.Locale, "Culture used to render numbers (BCP 47 tag, e.g. en-US, de)")
	cmd.Flags().StringVarP(&flags.Format, "format", "f", flags.Format, "Output format: text, csv, yaml or sqlite")
	cmd.Flags().StringVarP(&flags.OutputFile, "output", "o", "", "Output file (default is stdout; required for sqlite)")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move an existing output file into an archive directory first")
	cmd.Flags().IntVarP(&flags.Jobs, "jobs", "j", flags.Jobs, "Number of batch files read in parallel")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("locale", cmd.Flags().Lookup("locale"))
	viper.BindPFlag("output.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("output.file", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.archive", cmd.Flags().Lookup("archive"))
	viper.BindPFlag("batch.jobs", cmd.Flags().Lookup("jobs"))
	viper.BindPFlag("log.verbose", cmd.PersistentFlags().Lookup("verbose"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".numwords" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".numwords")
	}

	// Environment variables
	viper.SetEnvPrefix("NUMWORDS")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ResolveFlags copies the effective settings (flag, config file or
// environment, in that order of precedence) back into flags.
func ResolveFlags(flags *Flags) {
	flags.Locale = viper.GetString("locale")
	flags.Format = viper.GetString("output.format")
	flags.OutputFile = viper.GetString("output.file")
	flags.Archive = viper.GetBool("output.archive")
	flags.Jobs = viper.GetInt("batch.jobs")
	flags.Verbose = viper.GetBool("log.verbose")
}
