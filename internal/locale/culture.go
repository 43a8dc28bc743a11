package locale

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// InvariantName selects the invariant culture in Parse.
const InvariantName = "invariant"

// Positional notation is used for decimal exponents in
// [scientificLower, scientificUpper); everything else is scientific.
const (
	scientificLower = -4
	scientificUpper = 15
)

// ErrUnknownCulture is returned when a culture name is not a valid BCP 47 tag.
var ErrUnknownCulture = errors.New("locale: unknown culture")

// Culture holds the numeric formatting conventions used for rendering.
type Culture struct {
	Tag              language.Tag
	DecimalSeparator string
	NegativeSign     string
}

// Invariant returns the culture-neutral conventions: "." and "-".
func Invariant() Culture {
	return Culture{
		Tag:              language.Und,
		DecimalSeparator: ".",
		NegativeSign:     "-",
	}
}

// Parse resolves a culture by BCP 47 name, e.g. "en-US" or "de".
// An empty name or "invariant" yields Invariant().
func Parse(name string) (Culture, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, InvariantName) {
		return Invariant(), nil
	}

	tag, err := language.Parse(name)
	if err != nil {
		return Culture{}, fmt.Errorf("%w %q: %v", ErrUnknownCulture, name, err)
	}

	return ForTag(tag), nil
}

// ForTag derives the decimal separator and negative sign for tag from CLDR
// data by formatting probe values.
func ForTag(tag language.Tag) Culture {
	c := Invariant()
	c.Tag = tag

	p := message.NewPrinter(tag)

	// "1<sep>5": the separator is whatever sits between the two digits
	half := []rune(p.Sprintf("%v", number.Decimal(1.5)))
	if len(half) >= 3 {
		c.DecimalSeparator = string(half[1 : len(half)-1])
	}

	// "<sign>1": the sign is everything before the digit
	neg := []rune(p.Sprintf("%v", number.Decimal(-1)))
	if len(neg) >= 2 {
		c.NegativeSign = string(neg[:len(neg)-1])
	}

	return c
}

// Name returns the BCP 47 name of the culture, or "invariant".
func (c Culture) Name() string {
	if c.Tag == language.Und {
		return InvariantName
	}
	return c.Tag.String()
}

// Format renders f with the shortest digit string that round-trips.
// Decimal exponents outside [-4, 15) switch to scientific notation with an
// explicit exponent sign and at least two exponent digits ("1E+15", "5E-324").
// No digit grouping is applied.
func (c Culture) Format(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "∞"
	case math.IsInf(f, -1):
		return c.NegativeSign + "∞"
	}

	var b strings.Builder
	if math.Signbit(f) {
		b.WriteString(c.NegativeSign)
		f = -f
	}
	if f == 0 {
		b.WriteByte('0')
		return b.String()
	}

	mantissa, expPart, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	exp, _ := strconv.Atoi(expPart)
	digits := strings.Replace(mantissa, ".", "", 1)

	switch {
	case exp >= scientificUpper || exp < scientificLower:
		b.WriteString(digits[:1])
		if len(digits) > 1 {
			b.WriteString(c.DecimalSeparator)
			b.WriteString(digits[1:])
		}
		b.WriteByte('E')
		if exp < 0 {
			b.WriteString(c.NegativeSign)
			exp = -exp
		} else {
			b.WriteByte('+')
		}
		fmt.Fprintf(&b, "%02d", exp)
	case exp >= 0:
		if len(digits) <= exp+1 {
			b.WriteString(digits)
			b.WriteString(strings.Repeat("0", exp+1-len(digits)))
		} else {
			b.WriteString(digits[:exp+1])
			b.WriteString(c.DecimalSeparator)
			b.WriteString(digits[exp+1:])
		}
	default:
		b.WriteByte('0')
		b.WriteString(c.DecimalSeparator)
		b.WriteString(strings.Repeat("0", -exp-1))
		b.WriteString(digits)
	}

	return b.String()
}
