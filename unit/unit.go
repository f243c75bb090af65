// Package unit implements L2: the unit grammar. It recognizes a unit
// token from a configurable vocabulary, classifies it by Kind, and
// separately recognizes adjectives (size-words like "large") that behave
// like units syntactically but get reclassified by the caller.
package unit

import (
	"sort"
	"unicode"

	"github.com/cookline/ingparse/internal/cursor"
)

// Kind is the closed tag set a recognized unit belongs to.
type Kind int

const (
	Other Kind = iota
	Volume
	Mass
	Count
	Length
	Temperature
	Time
	Currency
	Energy
	SizeWord
)

func (k Kind) String() string {
	switch k {
	case Volume:
		return "volume"
	case Mass:
		return "mass"
	case Count:
		return "count"
	case Length:
		return "length"
	case Temperature:
		return "temperature"
	case Time:
		return "time"
	case Currency:
		return "currency"
	case Energy:
		return "energy"
	case SizeWord:
		return "size-word"
	default:
		return "other"
	}
}

// Entry is one recognized unit: its canonical spelling and Kind.
type Entry struct {
	Canonical string
	Plural    string
	Kind      Kind
}

type alias struct {
	text         string
	entry        Entry
	abbreviation bool
}

// Vocab is an immutable, merged unit/adjective vocabulary. Build one with
// NewVocab and AddUnit/AddAdjective, then Freeze it before use; Freeze
// sorts aliases longest-first exactly once so every Match call is a
// straight linear scan.
type Vocab struct {
	unitAliases []alias
	adjectives  []string
	seenCanon   map[string]bool
}

// NewVocab returns an empty vocabulary (no defaults); see DefaultVocab.
func NewVocab() *Vocab {
	return &Vocab{seenCanon: map[string]bool{}}
}

// AddUnit registers canonical (optionally with a distinct plural spelling)
// under the given Kind, reachable through any of aliases. Abbreviated
// aliases (len(alias) <= 3 runes, by convention) additionally accept a
// digit boundary, per spec.md §4.1's "g, ml" example; word aliases must be
// followed by whitespace, punctuation, or end of input. Only the rune after
// an alias is checked.
func (v *Vocab) AddUnit(canonical, plural string, kind Kind, aliases ...string) error {
	if canonical == "" {
		return errEmptyCanonical
	}
	if v.seenCanon[canonical] {
		return &DuplicateUnitError{Canonical: canonical}
	}
	v.seenCanon[canonical] = true
	entry := Entry{Canonical: canonical, Plural: plural, Kind: kind}
	if entry.Plural == "" {
		entry.Plural = canonical
	}
	for _, a := range aliases {
		v.unitAliases = append(v.unitAliases, alias{
			text:         a,
			entry:        entry,
			abbreviation: isAbbreviation(a),
		})
	}
	return nil
}

// AddAdjective registers a size/descriptor word matched like a unit but
// surfaced to the caller as plain text (see spec.md §4.3).
func (v *Vocab) AddAdjective(word string) {
	v.adjectives = append(v.adjectives, word)
}

// Freeze sorts the alias tables so MatchUnit/MatchAdjective perform
// longest-match-wins with a single linear scan, preserving insertion order
// among same-length aliases so user additions extend, never reorder, the
// default priority (spec.md §9).
func (v *Vocab) Freeze() {
	sort.SliceStable(v.unitAliases, func(i, j int) bool {
		return runeLen(v.unitAliases[i].text) > runeLen(v.unitAliases[j].text)
	})
	sort.SliceStable(v.adjectives, func(i, j int) bool {
		return runeLen(v.adjectives[i]) > runeLen(v.adjectives[j])
	})
}

func runeLen(s string) int {
	return len([]rune(s))
}

func isAbbreviation(a string) bool {
	return runeLen(a) <= 3
}

// MatchUnit attempts to consume a known unit at c, longest-match-wins.
func (v *Vocab) MatchUnit(c cursor.Cursor) (cursor.Cursor, Entry, bool) {
	for _, a := range v.unitAliases {
		c2, ok := c.MatchFold(a.text)
		if !ok {
			continue
		}
		if boundaryOK(c2, a.abbreviation) {
			return c2, a.entry, true
		}
	}
	return c, Entry{}, false
}

// MatchAdjective attempts to consume an adjective (size-word/descriptor)
// at c, longest-match-wins, returning the matched word as the vocabulary
// spells it (not the input's casing).
func (v *Vocab) MatchAdjective(c cursor.Cursor) (cursor.Cursor, string, bool) {
	for _, w := range v.adjectives {
		c2, ok := c.MatchFold(w)
		if !ok {
			continue
		}
		if c2.AtWordBoundary() {
			return c2, w, true
		}
	}
	return c, "", false
}

func boundaryOK(after cursor.Cursor, abbreviation bool) bool {
	r, w := after.PeekRune()
	if w == 0 {
		return true
	}
	if unicode.IsSpace(r) || unicode.IsPunct(r) {
		return true
	}
	if abbreviation && unicode.IsDigit(r) {
		return true
	}
	return false
}

// DuplicateUnitError reports a config building a vocabulary with the same
// canonical unit registered twice.
type DuplicateUnitError struct {
	Canonical string
}

func (e *DuplicateUnitError) Error() string {
	return "unit: duplicate canonical unit " + e.Canonical
}

var errEmptyCanonical = &DuplicateUnitError{Canonical: "(empty)"}

// CanonicalEntry looks up the Entry registered under a canonical unit
// name (as returned in a parsed Amount.Unit), used by formatting to
// recover the plural spelling.
func (v *Vocab) CanonicalEntry(canonical string) (Entry, bool) {
	for _, a := range v.unitAliases {
		if a.entry.Canonical == canonical {
			return a.entry, true
		}
	}
	return Entry{}, false
}

// Canonicals returns one Entry per distinct canonical unit registered,
// in registration order, letting other layers (e.g. unitgraph) learn the
// full set of known units without depending on Vocab's internal alias
// table layout.
func (v *Vocab) Canonicals() []Entry {
	seen := map[string]bool{}
	var out []Entry
	for _, a := range v.unitAliases {
		if seen[a.entry.Canonical] {
			continue
		}
		seen[a.entry.Canonical] = true
		out = append(out, a.entry)
	}
	return out
}

// DefaultVocab returns the vocabulary described in spec.md §4.1: the
// built-in volume/mass/count/length/temperature/time/currency/energy
// units plus the size-word adjectives. Single-letter "T"/"t" are
// deliberately absent — see SPEC_FULL.md's Open Question resolution —
// requiring the unambiguous "tbsp"/"tsp" abbreviations instead.
func DefaultVocab() *Vocab {
	v := NewVocab()
	add := func(canon, plural string, kind Kind, aliases ...string) {
		_ = v.AddUnit(canon, plural, kind, aliases...)
	}
	add("teaspoon", "teaspoons", Volume, "teaspoon", "teaspoons", "tsp")
	add("tablespoon", "tablespoons", Volume, "tablespoon", "tablespoons", "tbsp", "tbs")
	add("cup", "cups", Volume, "cup", "cups", "c")
	add("pint", "pints", Volume, "pint", "pints", "pt")
	add("quart", "quarts", Volume, "quart", "quarts", "qt")
	add("gallon", "gallons", Volume, "gallon", "gallons", "gal")
	add("fluid ounce", "fluid ounces", Volume, "fluid ounce", "fluid ounces", "fl oz")
	add("ounce", "ounces", Mass, "ounce", "ounces", "oz")
	add("pound", "pounds", Mass, "pound", "pounds", "lb", "lbs", "#")
	add("gram", "grams", Mass, "gram", "grams", "g")
	add("kilogram", "kilograms", Mass, "kilogram", "kilograms", "kg")
	add("milliliter", "milliliters", Volume, "milliliter", "milliliters", "ml")
	add("liter", "liters", Volume, "liter", "liters", "l")
	add("inch", "inches", Length, "inch", "inches", "in")
	add("celsius", "celsius", Temperature, "celsius", "°C", "°c")
	add("fahrenheit", "fahrenheit", Temperature, "fahrenheit", "°F", "°f")
	add("minute", "minutes", Time, "minute", "minutes", "min")
	add("hour", "hours", Time, "hour", "hours", "hr")
	add("second", "seconds", Time, "second", "seconds", "sec")
	add("whole", "whole", Count, "whole")
	add("$", "$", Currency, "$")
	add("kcal", "kcal", Energy, "kcal")
	add("large", "large", SizeWord, "large")
	add("medium", "medium", SizeWord, "medium")
	add("small", "small", SizeWord, "small")
	for _, w := range []string{"large", "medium", "small", "whole", "extra-large", "jumbo", "cloves", "heads", "pieces"} {
		v.AddAdjective(w)
	}
	v.Freeze()
	return v
}
