package batch

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// EpsilonKeyword names the smallest positive double in batch input.
const EpsilonKeyword = "epsilon"

// ErrInvalidNumber is returned for input that does not parse as a number.
var ErrInvalidNumber = errors.New("batch: invalid number")

// Entry is a single number read from a batch file or argument list
type Entry struct {
	Line  int    // 1-based line (or argument position)
	Raw   string // Input as written, trimmed
	Value float64
}

// ReadBatchFile reads numbers from a file, one per line.
// Supported forms:
// - Plain or scientific numbers: "2.345", "-0.0", "1e15"
// - Special values: "NaN", "Inf", "+Inf", "-Inf", "Infinity", "epsilon"
// - Blank lines and lines starting with '#' are skipped
func ReadBatchFile(filename string) ([]Entry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var entries []Entry
	for i, line := range splitLines(string(content)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		value, err := ParseNumber(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", filename, i+1, err)
		}
		entries = append(entries, Entry{Line: i + 1, Raw: line, Value: value})
	}

	return entries, nil
}

// ParseArgs parses command line arguments with the same rules as batch files.
func ParseArgs(args []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(args))
	for i, arg := range args {
		raw := strings.TrimSpace(arg)
		value, err := ParseNumber(raw)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		entries = append(entries, Entry{Line: i + 1, Raw: raw, Value: value})
	}
	return entries, nil
}

// ParseNumber parses s in the invariant culture.
func ParseNumber(s string) (float64, error) {
	if strings.EqualFold(s, EpsilonKeyword) {
		return math.SmallestNonzeroFloat64, nil
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			// Out of range values are still usable (±Inf or ±0)
			return value, nil
		}
		return 0, fmt.Errorf("%w %q", ErrInvalidNumber, s)
	}

	return value, nil
}

// Values returns the numeric values of entries in order. The result is never
// nil, so an empty entry list is reported as empty input downstream.
func Values(entries []Entry) []float64 {
	values := make([]float64, 0, len(entries))
	for _, e := range entries {
		values = append(values, e.Value)
	}
	return values
}

// splitLines splits a string by newlines, dropping carriage returns
func splitLines(s string) []string {
	var lines []string
	current := strings.Builder{}
	for _, r := range s {
		if r == '\n' {
			lines = append(lines, current.String())
			current.Reset()
		} else if r != '\r' {
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
