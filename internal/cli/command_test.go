package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

func TestCreateRootCommand(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	// Test basic command properties
	if cmd.Use != "numwords [number...]" {
		t.Errorf("Expected Use to be 'numwords [number...]', got %s", cmd.Use)
	}

	if !strings.Contains(cmd.Short, "Spell numbers") {
		t.Errorf("Expected Short description to contain 'Spell numbers'")
	}

	// Test that flags are set up
	flagTests := []struct {
		name       string
		persistent bool
	}{
		{"config", true},
		{"verbose", true},
		{"batch", false},
		{"locale", false},
		{"format", false},
		{"output", false},
		{"archive", false},
		{"jobs", false},
	}

	for _, tt := range flagTests {
		t.Run("flag_"+tt.name, func(t *testing.T) {
			var flag *pflag.Flag
			if tt.persistent {
				flag = cmd.PersistentFlags().Lookup(tt.name)
			} else {
				flag = cmd.Flags().Lookup(tt.name)
			}
			if flag == nil {
				t.Errorf("Expected flag %s to exist", tt.name)
			}
		})
	}
}

func TestSetupFlags(t *testing.T) {
	cmd := &cobra.Command{}
	flags := NewFlags()

	setupFlags(cmd, flags)

	tests := []struct {
		name string
		want string
	}{
		{"locale", "invariant"},
		{"format", "text"},
		{"output", ""},
		{"jobs", "4"},
		{"archive", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := cmd.Flags().Lookup(tt.name)
			if flag == nil {
				t.Fatalf("%s flag not found", tt.name)
			}
			if flag.DefValue != tt.want {
				t.Errorf("Expected default %s to be %q, got %q", tt.name, tt.want, flag.DefValue)
			}
		})
	}
}

func TestBatchFlagRepeatable(t *testing.T) {
	flags := NewFlags()
	cmd := CreateRootCommand(flags)

	if err := cmd.ParseFlags([]string{"-b", "a.txt", "--batch", "b.txt"}); err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if len(flags.BatchFiles) != 2 || flags.BatchFiles[0] != "a.txt" || flags.BatchFiles[1] != "b.txt" {
		t.Errorf("Expected [a.txt b.txt], got %v", flags.BatchFiles)
	}
}

func TestInitConfig(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) string
		check     func(t *testing.T)
	}{
		{
			name: "with config file",
			setupFunc: func(t *testing.T) string {
				cfgPath := filepath.Join(t.TempDir(), "test-config.yaml")
				content := `locale: de
output:
  format: csv
batch:
  jobs: 2`
				if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
					t.Fatalf("Failed to create test config: %v", err)
				}
				return cfgPath
			},
			check: func(t *testing.T) {
				if viper.GetString("locale") != "de" {
					t.Errorf("Expected locale de, got %s", viper.GetString("locale"))
				}
				if viper.GetString("output.format") != "csv" {
					t.Errorf("Expected output.format csv, got %s", viper.GetString("output.format"))
				}
				if viper.GetInt("batch.jobs") != 2 {
					t.Errorf("Expected batch.jobs 2, got %d", viper.GetInt("batch.jobs"))
				}
			},
		},
		{
			name: "without config file",
			setupFunc: func(t *testing.T) string {
				return ""
			},
			check: func(t *testing.T) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Reset viper for each test
			viper.Reset()

			InitConfig(tt.setupFunc(t))

			// Test environment variable prefix
			t.Setenv("NUMWORDS_TEST_VAR", "test-value")

			if viper.GetString("test_var") != "test-value" {
				t.Error("Environment variable not properly loaded")
			}

			tt.check(t)
		})
	}
}

func TestBindFlagsToViper(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Set some flag values
	cmd.Flags().Set("locale", "en-US")
	cmd.Flags().Set("format", "yaml")
	cmd.Flags().Set("output", "/test/out.yaml")
	cmd.Flags().Set("jobs", "8")

	if viper.GetString("locale") != "en-US" {
		t.Errorf("Expected locale to be en-US, got %s", viper.GetString("locale"))
	}

	if viper.GetString("output.format") != "yaml" {
		t.Errorf("Expected output.format to be yaml, got %s", viper.GetString("output.format"))
	}

	if viper.GetString("output.file") != "/test/out.yaml" {
		t.Errorf("Expected output.file to be /test/out.yaml, got %s", viper.GetString("output.file"))
	}

	if viper.GetInt("batch.jobs") != 8 {
		t.Errorf("Expected batch.jobs to be 8, got %d", viper.GetInt("batch.jobs"))
	}
}

func TestResolveFlags(t *testing.T) {
	// Save original viper state
	originalConfig := viper.New()
	*originalConfig = *viper.GetViper()
	defer func() {
		*viper.GetViper() = *originalConfig
	}()

	viper.Reset()

	cmd := &cobra.Command{}
	flags := NewFlags()
	setupFlags(cmd, flags)

	// Config values apply where the flag was not changed
	viper.SetConfigType("yaml")
	if err := viper.ReadConfig(strings.NewReader("locale: fr\noutput:\n  format: csv\n")); err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	cmd.Flags().Set("locale", "de")

	ResolveFlags(flags)

	if flags.Locale != "de" {
		t.Errorf("Expected locale de, got %s", flags.Locale)
	}
	if flags.Format != "csv" {
		t.Errorf("Expected format csv, got %s", flags.Format)
	}
	if flags.Jobs != 4 {
		t.Errorf("Expected default jobs 4, got %d", flags.Jobs)
	}
}

func TestNewLogger(t *testing.T) {
	for _, verbose := range []bool{false, true} {
		logger, err := NewLogger(verbose)
		if err != nil {
			t.Fatalf("NewLogger(%v) error = %v", verbose, err)
		}
		if logger == nil {
			t.Fatalf("NewLogger(%v) returned nil", verbose)
		}
		if got := logger.Core().Enabled(zapcore.DebugLevel); got != verbose {
			t.Errorf("NewLogger(%v) debug enabled = %v", verbose, got)
		}
	}
}
