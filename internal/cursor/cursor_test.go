package cursor

import "testing"

func TestSkipSpace(t *testing.T) {
	c := New("   \tcups")
	c = c.SkipSpace()
	if c.Rest() != "cups" {
		t.Errorf("SkipSpace left %q, want %q", c.Rest(), "cups")
	}
}

func TestMatchLiteral(t *testing.T) {
	c := New("cups of flour")
	c2, ok := c.MatchLiteral("cups")
	if !ok || c2.Rest() != " of flour" {
		t.Errorf("MatchLiteral failed: ok=%v rest=%q", ok, c2.Rest())
	}
	if _, ok := c.MatchLiteral("tbsp"); ok {
		t.Errorf("MatchLiteral matched a literal not present")
	}
}

func TestMatchFold(t *testing.T) {
	cases := []struct {
		input, lit string
		want       bool
	}{
		{"TBSP flour", "tbsp", true},
		{"Tablespoon", "tablespoon", true},
		{"tablespoons", "tablespoon", false}, // extra rune, not a full match
		{"cup", "tbsp", false},
	}
	for _, tc := range cases {
		c := New(tc.input)
		_, ok := c.MatchFold(tc.lit)
		if ok != tc.want {
			t.Errorf("MatchFold(%q, %q) = %v, want %v", tc.input, tc.lit, ok, tc.want)
		}
	}
}

func TestAtWordBoundary(t *testing.T) {
	c := New("3 cups")
	if !c.AtWordBoundary() {
		t.Errorf("start of input should be a word boundary")
	}
	mid := c.Advance(1) // after '3', before ' '
	if !mid.AtWordBoundary() {
		t.Errorf("digit-to-space transition should be a word boundary")
	}
}

func TestTakeWord(t *testing.T) {
	c := New("cups/oz")
	c2, word := c.TakeWord()
	if word != "cups" {
		t.Errorf("TakeWord = %q, want %q", word, "cups")
	}
	if c2.Rest() != "/oz" {
		t.Errorf("TakeWord left %q, want %q", c2.Rest(), "/oz")
	}
}
