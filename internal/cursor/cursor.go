// Package cursor provides the lexical primitives shared by every grammar
// layer: a backtracking position in a UTF-8 string, whitespace skipping,
// and literal/fold matching. It plays the role tef-ez's parserState plays
// for the ez grammar DSL, generalized so every layer above it (number,
// unit, amount, line, rich text) can clone a cursor, attempt a production,
// and restore on failure without ever consuming a byte twice.
package cursor

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

var fold = cases.Fold()

// Cursor is an immutable-by-convention position into Src. Callers pass it
// by value; Clone is just a plain copy, and a failed production simply
// discards its local copy and keeps the caller's original.
type Cursor struct {
	Src string
	Pos int
}

// New returns a cursor positioned at the start of s.
func New(s string) Cursor {
	return Cursor{Src: s}
}

// Clone returns an independent copy positioned at the same offset.
func (c Cursor) Clone() Cursor {
	return Cursor{Src: c.Src, Pos: c.Pos}
}

// EOF reports whether the cursor has consumed the entire input.
func (c Cursor) EOF() bool {
	return c.Pos >= len(c.Src)
}

// Rest returns the unconsumed suffix.
func (c Cursor) Rest() string {
	return c.Src[c.Pos:]
}

// PeekRune returns the rune at the cursor without consuming it.
func (c Cursor) PeekRune() (rune, int) {
	if c.EOF() {
		return 0, 0
	}
	return utf8.DecodeRuneInString(c.Rest())
}

// Advance moves the cursor forward n bytes and returns the new cursor.
func (c Cursor) Advance(n int) Cursor {
	c.Pos += n
	return c
}

// SkipSpace consumes a run of Unicode whitespace, including the
// non-breaking space U+00A0 which unicode.IsSpace already classifies as
// space, and returns the cursor positioned after it.
func (c Cursor) SkipSpace() Cursor {
	for !c.EOF() {
		r, w := c.PeekRune()
		if !unicode.IsSpace(r) {
			break
		}
		c = c.Advance(w)
	}
	return c
}

// AtWordBoundary reports whether the cursor sits on a word boundary: start
// or end of input, or a transition to/from a non-letter/non-digit rune.
func (c Cursor) AtWordBoundary() bool {
	if c.Pos == 0 || c.EOF() {
		return true
	}
	before, _ := utf8.DecodeLastRuneInString(c.Src[:c.Pos])
	after, _ := c.PeekRune()
	return !isWordRune(before) || !isWordRune(after)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// MatchLiteral consumes lit verbatim (byte-exact) if Rest starts with it,
// returning the advanced cursor and true on success.
func (c Cursor) MatchLiteral(lit string) (Cursor, bool) {
	if len(lit) == 0 {
		return c, false
	}
	rest := c.Rest()
	if len(rest) < len(lit) || rest[:len(lit)] != lit {
		return c, false
	}
	return c.Advance(len(lit)), true
}

// MatchFold consumes lit using Unicode case folding (not byte-exact),
// requiring exactly len([]rune(lit)) runes of input to match. This is used
// for keyword/unit matching, where "Tbsp", "TBSP", "tbsp" must all match.
func (c Cursor) MatchFold(lit string) (Cursor, bool) {
	litRunes := []rune(lit)
	cur := c
	var got []rune
	for range litRunes {
		r, w := cur.PeekRune()
		if w == 0 {
			return c, false
		}
		got = append(got, r)
		cur = cur.Advance(w)
	}
	if fold.String(string(got)) != fold.String(lit) {
		return c, false
	}
	return cur, true
}

// TakeWhile consumes the maximal run of runes satisfying pred and returns
// the advanced cursor plus the consumed text.
func (c Cursor) TakeWhile(pred func(rune) bool) (Cursor, string) {
	start := c.Pos
	for !c.EOF() {
		r, w := c.PeekRune()
		if !pred(r) {
			break
		}
		c = c.Advance(w)
	}
	return c, c.Src[start:c.Pos]
}

// TakeWord consumes a maximal run of letters and the punctuation unit
// tokens use ('.', '%', '°'); digits, '/' and '-' end the word. It is used to lift a
// candidate unit/adjective word out of the input before fold-comparing it
// against a vocabulary table.
func (c Cursor) TakeWord() (Cursor, string) {
	return c.TakeWhile(func(r rune) bool {
		return unicode.IsLetter(r) || r == '.' || r == '%' || r == '°'
	})
}
