// Package number implements L1: the number grammar. It recognizes mixed
// numerals, Unicode vulgar fractions, ASCII fractions, decimals, and
// spelled-out cardinals, always returning a non-negative real. A leading
// '-' is never consumed as a sign, per spec.
package number

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/cookline/ingparse/internal/cursor"
)

// unicodeFractions maps the closed set of vulgar fraction runes to their
// exact decimal value.
var unicodeFractions = map[rune]float64{
	'¼': 1.0 / 4, '½': 1.0 / 2, '¾': 3.0 / 4,
	'⅓': 1.0 / 3, '⅔': 2.0 / 3,
	'⅕': 1.0 / 5, '⅖': 2.0 / 5, '⅗': 3.0 / 5, '⅘': 4.0 / 5,
	'⅙': 1.0 / 6, '⅚': 5.0 / 6,
	'⅐': 1.0 / 7,
	'⅛': 1.0 / 8, '⅜': 3.0 / 8, '⅝': 5.0 / 8, '⅞': 7.0 / 8,
	'⅑': 1.0 / 9,
	'⅒': 1.0 / 10,
}

// cardinalWords maps spelled-out number words to their value. "hundred" is
// a multiplier, handled specially in parseCardinal.
var cardinalWords = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14, "fifteen": 15,
	"sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19, "twenty": 20,
	"thirty": 30, "forty": 40, "fifty": 50, "sixty": 60, "seventy": 70,
	"eighty": 80, "ninety": 90,
}

// cardinalOrder lists the words longest-first so MatchFold never stops on
// a short prefix of a longer word (e.g. "seven" before "seventeen").
var cardinalOrder = sortedByLengthDesc(cardinalWords, "hundred")

func sortedByLengthDesc(m map[string]float64, extra ...string) []string {
	words := make([]string, 0, len(m)+len(extra))
	for w := range m {
		words = append(words, w)
	}
	words = append(words, extra...)
	for i := 1; i < len(words); i++ {
		for j := i; j > 0 && len(words[j-1]) < len(words[j]); j-- {
			words[j-1], words[j] = words[j], words[j-1]
		}
	}
	return words
}

// Parse recognizes, in priority order, a mixed numeral, a bare Unicode
// fraction, an ASCII fraction, or a decimal. Spelled-out cardinals are
// deliberately not attempted here: they require a following unit or
// adjective to disambiguate against ordinary prose, a decision only the
// amount grammar (L3) can make — see ParseCardinal.
func Parse(c cursor.Cursor) (cursor.Cursor, float64, bool) {
	if c2, v, ok := parseMixed(c); ok {
		return c2, v, true
	}
	if c2, v, ok := parseUnicodeFraction(c); ok {
		return c2, v, true
	}
	if c2, v, ok := parseASCIIFraction(c); ok {
		return c2, v, true
	}
	// "n/0" is an invalid fraction as a whole; its numerator is not read
	// back as a plain decimal.
	if c2, _, ok := parseUnsignedInt(c); ok {
		if c3, ok := c2.MatchLiteral("/"); ok {
			if _, den, ok := parseUnsignedInt(c3); ok && den == 0 {
				return c, 0, false
			}
		}
	}
	if c2, v, ok := parseDecimal(c); ok {
		return c2, v, true
	}
	return c, 0, false
}

// ParseCardinal recognizes a spelled-out cardinal (e.g. "twenty one", "one
// hundred"). Callers must independently confirm the cardinal is followed
// by whitespace and a unit or adjective before accepting the match.
func ParseCardinal(c cursor.Cursor) (cursor.Cursor, float64, bool) {
	cur := c
	var total, current float64
	matchedAny := false
	for {
		word, matched := matchCardinalWord(cur)
		if !matched {
			break
		}
		c2, ok := cur.MatchFold(word)
		if !ok || !c2.AtWordBoundary() {
			break
		}
		if word == "hundred" {
			if current == 0 {
				current = 1
			}
			current *= 100
		} else {
			current += cardinalWords[word]
		}
		matchedAny = true
		cur = c2
		// a single space may separate consecutive number words.
		save := cur
		spaced := cur.SkipSpace()
		if spaced.Pos == cur.Pos {
			break
		}
		if _, ok := matchCardinalWord(spaced); !ok {
			cur = save
			break
		}
		cur = spaced
	}
	if !matchedAny {
		return c, 0, false
	}
	total += current
	return cur, total, true
}

func matchCardinalWord(c cursor.Cursor) (string, bool) {
	for _, w := range cardinalOrder {
		if c2, ok := c.MatchFold(w); ok && c2.AtWordBoundary() {
			return w, true
		}
	}
	return "", false
}

func parseMixed(c cursor.Cursor) (cursor.Cursor, float64, bool) {
	c2, intPart, ok := parseUnsignedInt(c)
	if !ok {
		return c, 0, false
	}
	// tolerate a single optional ASCII space, or none, before the fraction.
	c3 := c2
	if r, w := c3.PeekRune(); w > 0 && r == ' ' {
		c3 = c3.Advance(w)
	}
	if c4, frac, ok := parseUnicodeFraction(c3); ok {
		return c4, float64(intPart) + frac, true
	}
	if c4, frac, ok := parseASCIIFraction(c3); ok {
		return c4, float64(intPart) + frac, true
	}
	return c, 0, false
}

func parseUnicodeFraction(c cursor.Cursor) (cursor.Cursor, float64, bool) {
	r, w := c.PeekRune()
	if w == 0 {
		return c, 0, false
	}
	if v, ok := unicodeFractions[r]; ok {
		return c.Advance(w), v, true
	}
	return c, 0, false
}

func parseASCIIFraction(c cursor.Cursor) (cursor.Cursor, float64, bool) {
	c2, num, ok := parseUnsignedInt(c)
	if !ok {
		return c, 0, false
	}
	c3, ok := c2.MatchLiteral("/")
	if !ok {
		return c, 0, false
	}
	c4, den, ok := parseUnsignedInt(c3)
	if !ok || den == 0 {
		return c, 0, false
	}
	return c4, float64(num) / float64(den), true
}

func parseDecimal(c cursor.Cursor) (cursor.Cursor, float64, bool) {
	c2, intDigits := c.TakeWhile(unicode.IsDigit)
	hasInt := intDigits != ""
	c3 := c2
	hasFrac := false
	var fracDigits string
	if dot, ok := c2.MatchLiteral("."); ok {
		c4, digits := dot.TakeWhile(unicode.IsDigit)
		if digits != "" {
			c3 = c4
			fracDigits = digits
			hasFrac = true
		}
	}
	if !hasInt && !hasFrac {
		return c, 0, false
	}
	text := "0"
	if hasInt {
		text = intDigits
	}
	if hasFrac {
		text += "." + fracDigits
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return c, 0, false
	}
	return c3, v, true
}

func parseUnsignedInt(c cursor.Cursor) (cursor.Cursor, int, bool) {
	c2, digits := c.TakeWhile(unicode.IsDigit)
	if digits == "" {
		return c, 0, false
	}
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil {
		return c, 0, false
	}
	return c2, v, true
}
