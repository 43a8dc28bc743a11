package locale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestInvariant(t *testing.T) {
	c := Invariant()

	assert.Equal(t, ".", c.DecimalSeparator)
	assert.Equal(t, "-", c.NegativeSign)
	assert.Equal(t, language.Und, c.Tag)
	assert.Equal(t, InvariantName, c.Name())
}

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		separator string
		sign      string
	}{
		{"empty is invariant", "", ".", "-"},
		{"invariant keyword", "Invariant", ".", "-"},
		{"english", "en-US", ".", "-"},
		{"german", "de", ",", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.separator, c.DecimalSeparator)
			assert.Equal(t, tt.sign, c.NegativeSign)
		})
	}
}

func TestParse_Unknown(t *testing.T) {
	_, err := Parse("!!")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCulture)
}

func TestFormat_Invariant(t *testing.T) {
	c := Invariant()

	tests := []struct {
		name  string
		input float64
		want  string
	}{
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "-0"},
		{"fraction", 2.345, "2.345"},
		{"below one", 0.1, "0.1"},
		{"integer", 100, "100"},
		{"negative", -12.5, "-12.5"},
		{"small positional", 0.0001, "0.0001"},
		{"small scientific", 0.00001, "1E-05"},
		{"small scientific with digits", 0.000015, "1.5E-05"},
		{"large positional", 1e14, "100000000000000"},
		{"large scientific", 1e15, "1E+15"},
		{"large scientific with digits", 1.2345678901234568e17, "1.2345678901234568E+17"},
		{"max", math.MaxFloat64, "1.7976931348623157E+308"},
		{"epsilon", math.SmallestNonzeroFloat64, "5E-324"},
		{"negative scientific", -2.5e-7, "-2.5E-07"},
		{"nan", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "∞"},
		{"negative infinity", math.Inf(-1), "-∞"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Format(tt.input))
		})
	}
}

func TestFormat_CommaCulture(t *testing.T) {
	c := Culture{Tag: language.German, DecimalSeparator: ",", NegativeSign: "-"}

	assert.Equal(t, "2,345", c.Format(2.345))
	assert.Equal(t, "-0,1", c.Format(-0.1))
	assert.Equal(t, "1,5E+20", c.Format(1.5e20))
}
