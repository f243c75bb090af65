package ingparse

import (
	"strings"
	"unicode"

	"github.com/cookline/ingparse/unit"
	"github.com/cookline/ingparse/unitgraph"
)

// Config is the immutable-once-built vocabulary bundle described in
// spec.md §4.1. It is populated through a configure callback passed to
// NewParser, in the functional-builder style tef-ez's Grammar uses
// (Define/Choice/... accumulating into a single Check() pass) — here,
// AddUnit/AddAdjective/SetIngredientNames accumulate into a single
// end-of-build validation.
type Config struct {
	vocab        *unit.Vocab
	isIngredient func(string) bool
	err          error
}

func newDefaultConfig() *Config {
	return &Config{vocab: unit.DefaultVocab()}
}

// UseEmptyBaseline discards the default unit/adjective vocabulary. Call
// it before any AddUnit/AddAdjective calls to build a vocabulary from
// scratch instead of merging with defaults.
func (c *Config) UseEmptyBaseline() {
	c.vocab = unit.NewVocab()
}

// AddUnit registers an additional unit. Errors (a duplicate canonical
// unit) are accumulated and surfaced as ConfigInvalid from NewParser.
func (c *Config) AddUnit(canonical, plural string, kind UnitKind, aliases ...string) {
	if err := c.vocab.AddUnit(canonical, plural, kind, aliases...); err != nil && c.err == nil {
		c.err = err
	}
}

// AddAdjective registers an additional size-word/descriptor recognized
// adjacent to a bare number (spec.md §4.1).
func (c *Config) AddAdjective(word string) {
	c.vocab.AddAdjective(word)
}

// SetIsIngredient installs a custom predicate used only by the rich-text
// parser (L5) to recognize ingredient mentions.
func (c *Config) SetIsIngredient(f func(string) bool) {
	c.isIngredient = f
}

// SetIngredientNames builds an is_ingredient predicate (spec.md §4.1's
// "adapter ... from a finite list of names") doing case-insensitive exact
// match on word boundaries.
func (c *Config) SetIngredientNames(names []string) {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[strings.ToLower(strings.TrimSpace(n))] = true
	}
	c.isIngredient = func(word string) bool {
		return set[strings.ToLower(word)]
	}
}

// Err returns the first configuration error encountered, or nil.
func (c *Config) Err() error {
	return c.err
}

// Parser is an immutable, concurrency-safe handle produced by NewParser.
// All exported methods are safe to call from many goroutines.
type Parser struct {
	vocab        *unit.Vocab
	graph        *unitgraph.Graph
	isIngredient func(string) bool
}

// NewParser builds a Parser from a configuration callback. A nil
// configure uses the default vocabulary unmodified. NewParser returns a
// *ConfigError wrapping ErrConfigInvalid when the resulting vocabulary is
// inconsistent (duplicate canonical unit) or empty.
func NewParser(configure func(*Config)) (*Parser, error) {
	c := newDefaultConfig()
	if configure != nil {
		configure(c)
	}
	if c.err != nil {
		return nil, &ConfigError{Detail: c.err.Error(), Err: ErrConfigInvalid}
	}
	c.vocab.Freeze()
	if len(c.vocab.Canonicals()) == 0 {
		return nil, &ConfigError{Detail: "vocabulary has no units", Err: ErrConfigInvalid}
	}
	isIng := c.isIngredient
	if isIng == nil {
		isIng = func(string) bool { return false }
	}
	return &Parser{
		vocab:        c.vocab,
		graph:        unitgraph.Build(c.vocab),
		isIngredient: isIng,
	}, nil
}

// isAdjacentIngredientWord reports whether word is a non-empty token made
// only of letters (of any case), used by the default amount-disambiguation rule
// ("a bare number followed immediately by an ingredient word").
func isAdjacentIngredientWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
