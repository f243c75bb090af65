package ingparse

import (
	"errors"
	"testing"
)

func TestNewParserDefaultNeverErrors(t *testing.T) {
	if _, err := NewParser(nil); err != nil {
		t.Fatalf("NewParser(nil): %v", err)
	}
}

func TestNewParserEmptyBaselineWithNoUnitsIsInvalid(t *testing.T) {
	_, err := NewParser(func(c *Config) {
		c.UseEmptyBaseline()
	})
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected a *ConfigError wrapping ErrConfigInvalid, got %v", err)
	}
}

func TestNewParserDuplicateCanonicalUnitIsInvalid(t *testing.T) {
	_, err := NewParser(func(c *Config) {
		c.AddUnit("cup", "cups", KindVolume, "cup")
	})
	if !errors.Is(err, ErrConfigInvalid) {
		t.Fatalf("expected ErrConfigInvalid for a duplicate canonical unit, got %v", err)
	}
}

func TestNewParserCustomEmptyBaselineVocabulary(t *testing.T) {
	p, err := NewParser(func(c *Config) {
		c.UseEmptyBaseline()
		c.AddUnit("smidge", "smidges", KindVolume, "smidge", "smidges")
	})
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	got, err := p.ParseAmount("2 smidges")
	if err != nil {
		t.Fatalf("ParseAmount: %v", err)
	}
	if len(got) != 1 || got[0].Unit != "smidge" || got[0].Value != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestNewParserSetIngredientNamesFeedsRichText(t *testing.T) {
	p, err := NewParser(func(c *Config) {
		c.SetIngredientNames([]string{"vanilla"})
	})
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	// No names argument: only the configured predicate can produce a
	// mention here, proving SetIngredientNames actually feeds ParseRichText.
	items := p.ParseRichText("stir in the vanilla now", nil)
	found := false
	for _, it := range items {
		if it.Kind == RichIngredientMention && it.Text == "vanilla" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a vanilla mention from the configured predicate, got %+v", items)
	}
}

func TestNewParserSetIsIngredientCustomPredicate(t *testing.T) {
	p, err := NewParser(func(c *Config) {
		c.SetIsIngredient(func(word string) bool { return word == "saffron" })
	})
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	items := p.ParseRichText("a pinch of saffron", nil)
	found := false
	for _, it := range items {
		if it.Kind == RichIngredientMention && it.Text == "saffron" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a saffron mention from the custom predicate, got %+v", items)
	}
}

func TestIsPseudoUnit(t *testing.T) {
	p := mustParser(t)
	if !p.IsPseudoUnit("$") || !p.IsPseudoUnit("kcal") {
		t.Errorf("expected $ and kcal to be pseudo-units")
	}
	if p.IsPseudoUnit("cup") {
		t.Errorf("expected cup to not be a pseudo-unit")
	}
}

func TestSameKindAndConvert(t *testing.T) {
	p := mustParser(t)
	if !p.SameKind("cup", "tablespoon") {
		t.Errorf("expected cup and tablespoon to share a kind")
	}
	if p.SameKind("cup", "gram") {
		t.Errorf("expected cup and gram to not share a kind")
	}

	v, err := p.Convert(1, "cup", "tablespoon")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if v != 16 {
		t.Errorf("1 cup = %v tablespoons, want 16", v)
	}

	if _, err := p.Convert(1, "cup", "gram"); !errors.Is(err, ErrUnconvertible) {
		t.Fatalf("expected ErrUnconvertible, got %v", err)
	}
}

func TestFormatAmountRoundTripsThroughParseAmount(t *testing.T) {
	p := mustParser(t)
	cases := []string{"2 cups", "1 cup"}
	for _, in := range cases {
		got, err := p.ParseAmount(in)
		if err != nil {
			t.Fatalf("ParseAmount(%q): %v", in, err)
		}
		formatted := p.FormatAmount(got[0])
		reparsed, err := p.ParseAmount(formatted)
		if err != nil {
			t.Fatalf("ParseAmount(FormatAmount(%q)=%q): %v", in, formatted, err)
		}
		if reparsed[0].Unit != got[0].Unit || reparsed[0].Value != got[0].Value {
			t.Errorf("round trip %q -> %q -> %+v, want %+v", in, formatted, reparsed[0], got[0])
		}
	}
}

func TestFormatAmountSingularPlural(t *testing.T) {
	p := mustParser(t)
	if got := p.FormatAmount(Amount{Unit: "cup", Value: 1}); got != "1 cup" {
		t.Errorf("FormatAmount(1 cup) = %q, want %q", got, "1 cup")
	}
	if got := p.FormatAmount(Amount{Unit: "cup", Value: 2}); got != "2 cups" {
		t.Errorf("FormatAmount(2 cups) = %q, want %q", got, "2 cups")
	}
}
