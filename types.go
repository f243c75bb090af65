package ingparse

import (
	"github.com/cookline/ingparse/trace"
	"github.com/cookline/ingparse/unit"
)

// UnitKind is the closed tag set a recognized unit belongs to: volume,
// mass, count, length, temperature, time, currency, energy, size-word, or
// other. It is a re-export of unit.Kind so callers never need to import
// the unit package directly.
type UnitKind = unit.Kind

// The UnitKind values, named to match spec.md §3's closed set.
const (
	KindOther       = unit.Other
	KindVolume      = unit.Volume
	KindMass        = unit.Mass
	KindCount       = unit.Count
	KindLength      = unit.Length
	KindTemperature = unit.Temperature
	KindTime        = unit.Time
	KindCurrency    = unit.Currency
	KindEnergy      = unit.Energy
	KindSizeWord    = unit.SizeWord
)

// Amount is a single quantified measurement. UpperValue is non-nil iff
// this Amount came from a range ("A-B unit"), in which case Value <=
// *UpperValue always holds.
type Amount struct {
	Unit       string
	Value      float64
	UpperValue *float64
}

// IsRange reports whether this Amount carries an upper bound.
func (a Amount) IsRange() bool {
	return a.UpperValue != nil
}

// Ingredient is the result of parsing one ingredient line. Name is always
// non-empty and trimmed. Modifier is the empty string when absent.
type Ingredient struct {
	Name     string
	Amounts  []Amount
	Modifier string
}

// RichItemKind tags which variant a RichItem carries.
type RichItemKind int

const (
	RichText RichItemKind = iota
	RichAmount
	RichIngredientMention
)

// RichItem is one element of a rich-text parse: plain text, a run of
// amounts recognized inline, or a recognized ingredient-name mention.
// Text is always the exact original substring this item covers — for
// RichAmount it is kept alongside the parsed Amounts — so concatenating
// every item's Text, in order, always reconstructs the input byte for
// byte (spec.md §8's rich-text coverage property).
type RichItem struct {
	Kind    RichItemKind
	Text    string
	Amounts []Amount // set only for RichAmount
}

// ParseTrace is the optional parse-time production tree, re-exported from
// the trace package so callers never import it directly.
type ParseTrace = trace.Node
