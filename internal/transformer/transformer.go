package transformer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"

	"codeberg.org/snonux/numwords/internal/locale"
)

var words = map[rune]string{
	'-': "minus",
	'+': "plus",
	'E': "E",
	'0': "zero",
	'1': "one",
	'2': "two",
	'3': "three",
	'4': "four",
	'5': "five",
	'6': "six",
	'7': "seven",
	'8': "eight",
	'9': "nine",
	'.': "point",
	',': "point",
}

// Transformer converts numbers into their word format
type Transformer struct {
	culture locale.Culture
}

// Option configures a Transformer
type Option func(*Transformer)

// WithCulture sets the culture used to render numbers before spelling them.
func WithCulture(c locale.Culture) Option {
	return func(t *Transformer) {
		t.culture = c
	}
}

// New creates a Transformer. Without options the invariant culture is used.
func New(opts ...Option) *Transformer {
	t := &Transformer{culture: locale.Invariant()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Culture returns the culture numbers are rendered with
func (t *Transformer) Culture() locale.Culture {
	return t.culture
}

// Transform returns the word format of every element of source, in order.
// Example: {2.345, -0.0, 0.0, 0.1} => {"Two point three four five",
// "Minus zero", "Zero", "Zero point one"}.
func (t *Transformer) Transform(source []float64) ([]string, error) {
	if source == nil {
		return nil, ErrNullInput
	}
	if len(source) == 0 {
		return nil, ErrEmptyInput
	}

	result := make([]string, 0, len(source))
	for _, number := range source {
		if phrase, ok := CheckNumber(number); ok {
			result = append(result, phrase)
			continue
		}
		result = append(result, Trans(number, t.culture))
	}

	return result, nil
}

// Trans renders number in culture and spells the rendering character by
// character. Characters without a word are skipped. The first letter of the
// result is upper-cased; if nothing could be spelled the result is "".
func Trans(number float64, culture locale.Culture) string {
	return Spell(culture.Format(number), culture)
}

// Spell converts an already rendered number into words.
func Spell(rendered string, culture locale.Culture) string {
	parts := make([]string, 0, len(rendered))
	for _, r := range rendered {
		if w, ok := words[r]; ok {
			parts = append(parts, w)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	result := strings.Join(parts, " ")
	_, size := utf8.DecodeRuneInString(result)
	return cases.Upper(culture.Tag).String(result[:size]) + result[size:]
}
