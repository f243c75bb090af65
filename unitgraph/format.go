package unitgraph

import (
	"math"
	"strconv"
	"strings"
)

// fracGlyphs maps the common denominators 2, 3, 4, 8 to their Unicode
// vulgar fraction glyph, per spec.md §4.7.
var fracGlyphs = []struct {
	value float64
	glyph string
}{
	{1.0 / 8, "⅛"}, {1.0 / 4, "¼"}, {3.0 / 8, "⅜"}, {1.0 / 3, "⅓"},
	{1.0 / 2, "½"}, {2.0 / 3, "⅔"}, {5.0 / 8, "⅝"}, {3.0 / 4, "¾"}, {7.0 / 8, "⅞"},
}

const fracEpsilon = 1e-6

// FormatNumber renders value the way the parser's own number grammar
// would accept it back: a bare integer when exact, a Unicode fraction
// glyph (bare or attached to a whole-number part) for the common
// denominators, otherwise a trimmed decimal.
func FormatNumber(value float64) string {
	whole := math.Floor(value)
	frac := value - whole
	for _, fg := range fracGlyphs {
		if math.Abs(frac-fg.value) < fracEpsilon {
			if whole == 0 {
				return fg.glyph
			}
			return strconv.FormatFloat(whole, 'f', -1, 64) + fg.glyph
		}
	}
	if frac < fracEpsilon {
		return strconv.FormatFloat(whole, 'f', -1, 64)
	}
	s := strconv.FormatFloat(value, 'f', -1, 64)
	return s
}

// FormatUnit chooses singular or plural spelling of canonical by value,
// following the common English rule: exactly one is singular.
func FormatUnit(canonical, plural string, value float64) string {
	if math.Abs(value-1) < fracEpsilon {
		return canonical
	}
	return plural
}

// FormatAmount renders a single (value, unit) pair, preferring the
// caller-supplied unit text for the unit name and the vocabulary's plural
// form when value != 1. upperValue, when non-nil, renders a dash range.
func (g *Graph) FormatAmount(value float64, upperValue *float64, canonical, plural string) string {
	var sb strings.Builder
	sb.WriteString(FormatNumber(value))
	if upperValue != nil {
		sb.WriteString("-")
		sb.WriteString(FormatNumber(*upperValue))
	}
	unitValue := value
	if upperValue != nil {
		unitValue = *upperValue
	}
	if canonical != "" {
		sb.WriteString(" ")
		sb.WriteString(FormatUnit(canonical, plural, unitValue))
	}
	return sb.String()
}
