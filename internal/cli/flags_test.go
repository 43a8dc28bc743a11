package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	// Test default values
	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"Locale", flags.Locale, "invariant"},
		{"Format", flags.Format, "text"},
		{"Jobs", flags.Jobs, 4},
		{"OutputFile", flags.OutputFile, ""},
		{"CfgFile", flags.CfgFile, ""},
		{"Archive", flags.Archive, false},
		{"Verbose", flags.Verbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}

	if len(flags.BatchFiles) != 0 {
		t.Errorf("BatchFiles = %v, want empty", flags.BatchFiles)
	}
}

func TestFlagsStructure(t *testing.T) {
	// Test that Flags struct has all expected fields
	flagsType := reflect.TypeOf(Flags{})

	expectedFields := []string{
		"CfgFile", "BatchFiles", "Locale", "Format", "OutputFile",
		"Archive", "Jobs", "Verbose",
	}

	for _, fieldName := range expectedFields {
		t.Run("has_field_"+fieldName, func(t *testing.T) {
			if _, ok := flagsType.FieldByName(fieldName); !ok {
				t.Errorf("Flags struct missing field: %s", fieldName)
			}
		})
	}
}
