package transformer

import "math"

// Phrases substituted for sentinel values.
const (
	PhraseNaN              = "Not a Number"
	PhraseEpsilon          = "Double Epsilon"
	PhraseNegativeInfinity = "Negative Infinity"
	PhrasePositiveInfinity = "Positive Infinity"
)

// Epsilon is the smallest positive representable float64.
const Epsilon = math.SmallestNonzeroFloat64

type sentinel struct {
	name   string
	phrase string
	match  func(float64) bool
}

// sentinels are checked in order; the first match wins.
var sentinels = []sentinel{
	{name: "isNaN", phrase: PhraseNaN, match: isNaN},
	{name: "equalsMinPositiveValue", phrase: PhraseEpsilon, match: equalsMinPositiveValue},
	{name: "isNegativeInfinity", phrase: PhraseNegativeInfinity, match: isNegativeInfinity},
	{name: "isPositiveInfinity", phrase: PhrasePositiveInfinity, match: isPositiveInfinity},
}

func isNaN(f float64) bool { return math.IsNaN(f) }

func equalsMinPositiveValue(f float64) bool { return f == Epsilon }

func isNegativeInfinity(f float64) bool { return math.IsInf(f, -1) }

func isPositiveInfinity(f float64) bool { return math.IsInf(f, 1) }

// CheckNumber reports whether number is one of the sentinel values and, if
// so, returns its phrase.
func CheckNumber(number float64) (string, bool) {
	for _, s := range sentinels {
		if s.match(number) {
			return s.phrase, true
		}
	}
	return "", false
}
