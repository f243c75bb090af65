package ingparse

import (
	"sort"
	"strings"

	"github.com/cookline/ingparse/internal/cursor"
)

// ParseRichText implements L5: it segments text into an ordered stream of
// plain text, recognized amounts, and ingredient mentions drawn from
// names. It is infallible — unrecognized spans simply become RichText
// (spec.md §7) — and a failed amount/mention attempt rewinds the cursor
// exactly to where it started, so no byte is ever consumed twice.
func (p *Parser) ParseRichText(text string, names []string) []RichItem {
	byLengthDesc := append([]string(nil), names...)
	sort.SliceStable(byLengthDesc, func(i, j int) bool {
		return len([]rune(byLengthDesc[i])) > len([]rune(byLengthDesc[j]))
	})

	c := cursor.New(text)
	var items []RichItem
	var buf strings.Builder

	flush := func() {
		if buf.Len() > 0 {
			items = append(items, RichItem{Kind: RichText, Text: buf.String()})
			buf.Reset()
		}
	}

	for !c.EOF() {
		if c.AtWordBoundary() {
			if c2, amounts, _, ok, _ := p.parseAmounts(c, nil); ok && c2.Pos > c.Pos {
				flush()
				items = append(items, RichItem{Kind: RichAmount, Text: c.Src[c.Pos:c2.Pos], Amounts: amounts})
				c = c2
				continue
			}
		}

		if c.AtWordBoundary() {
			if name, c2, ok := matchLongestName(c, byLengthDesc); ok {
				flush()
				items = append(items, RichItem{Kind: RichIngredientMention, Text: name})
				c = c2
				continue
			}
			if word, c2, ok := matchPredicateWord(c, p.isIngredient); ok {
				flush()
				items = append(items, RichItem{Kind: RichIngredientMention, Text: word})
				c = c2
				continue
			}
		}

		_, w := c.PeekRune()
		if w == 0 {
			break
		}
		buf.WriteString(c.Src[c.Pos : c.Pos+w])
		c = c.Advance(w)
	}
	flush()
	return items
}

func matchLongestName(c cursor.Cursor, namesByLengthDesc []string) (string, cursor.Cursor, bool) {
	for _, name := range namesByLengthDesc {
		if name == "" {
			continue
		}
		if c2, ok := c.MatchFold(name); ok && c2.AtWordBoundary() {
			return c.Src[c.Pos:c2.Pos], c2, true
		}
	}
	return "", c, false
}

// matchPredicateWord implements spec.md §4.6's second mention mechanism:
// "parse a word and ask the predicate", distinct from matchLongestName's
// multi-word exact-match lookup. isIngredient may be nil, in which case
// this never matches.
func matchPredicateWord(c cursor.Cursor, isIngredient func(string) bool) (string, cursor.Cursor, bool) {
	if isIngredient == nil {
		return "", c, false
	}
	c2, word := c.TakeWord()
	if word == "" || !isIngredient(word) {
		return "", c, false
	}
	return word, c2, true
}
