package ingparse

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/cookline/ingparse/internal/cursor"
	"github.com/cookline/ingparse/trace"
)

// TryParseIngredient implements the L4 ingredient-line grammar:
//
//	line     := amounts? ws name (',' ws modifier)?
//	name     := run of characters excluding ',' that is not consumed by amounts
//	modifier := remainder of line after the first ','
//
// It never panics on any UTF-8 input (spec.md §8 Totality); malformed
// input is reported as a *ParseError, never as a panic.
func (p *Parser) TryParseIngredient(text string) (Ingredient, error) {
	return p.parseIngredient(text, nil)
}

// ParseIngredient is the long-form name for TryParseIngredient; both
// return the error as a value (spec.md §7 — Go has no panicking variant
// to distinguish from).
func (p *Parser) ParseIngredient(text string) (Ingredient, error) {
	return p.TryParseIngredient(text)
}

// ParseWithTrace parses text exactly like TryParseIngredient, additionally
// returning the completed production-attempt tree rooted at "line",
// nesting every sub-production ("amounts", "amount", "number", "cardinal",
// "unit", "range", "adjective", "paren_alt", "name", "modifier") it attempted
// along the way. Tracing never changes the parse result (spec.md §4.8).
func (p *Parser) ParseWithTrace(text string) (Ingredient, *ParseTrace, error) {
	sink := trace.New()
	ing, err := p.parseIngredient(text, sink)
	return ing, sink.Root(), err
}

func (p *Parser) parseIngredient(text string, sink *trace.Sink) (Ingredient, error) {
	exit := sink.Enter("line", 0)
	normalized := norm.NFC.String(text)

	trimmed, leadingTrim := trimWithOffset(normalized)
	if trimmed == "" {
		exit(len(normalized), trace.Err, "empty input")
		return Ingredient{}, newParseError(0, ErrInputEmpty, "", "")
	}

	c := cursor.New(trimmed)
	var amounts []Amount
	var sizeNotes []string
	c2, a, notes, ok, issue := p.parseAmounts(c, sink)
	if issue.err != nil {
		exit(len(normalized), trace.Err, issue.err.Error())
		return Ingredient{}, newParseError(leadingTrim+issue.offset, issue.err, "", trimmed[issue.offset:])
	}
	if ok {
		c = c2.SkipSpace()
		amounts = a
		sizeNotes = notes
	}

	nameExit := sink.Enter("name", c.Pos)
	rest := c.Rest()
	if strings.TrimSpace(rest) == "" {
		nameExit(c.Pos, trace.Err, "no name remains")
		exit(len(normalized), trace.Err, "no name remains")
		return Ingredient{}, newParseError(leadingTrim+c.Pos, ErrNameMissing, "ingredient name", "")
	}

	namePart, modifierPart, hasComma := splitOnFirstComma(rest)
	namePart = strings.TrimSpace(namePart)
	if hasComma {
		modifierPart = strings.TrimSpace(modifierPart)
	}

	if hoistedName, hoisted, hoistedNotes, ok := p.hoistTrailingParenAmounts(namePart, sink); ok {
		namePart = hoistedName
		amounts = append(amounts, hoisted...)
		sizeNotes = append(sizeNotes, hoistedNotes...)
	}

	var toTaste bool
	namePart, toTaste = extractToTaste(namePart)
	namePart = strings.TrimSpace(namePart)

	if namePart == "" {
		nameExit(c.Pos+len(rest), trace.Err, "no name remains")
		exit(len(normalized), trace.Err, "no name remains")
		return Ingredient{}, newParseError(leadingTrim+c.Pos, ErrNameMissing, "ingredient name", "")
	}
	nameExit(c.Pos+len(namePart), trace.Ok, "")

	modExit := sink.Enter("modifier", c.Pos)
	var modParts []string
	if len(sizeNotes) > 0 {
		modParts = append(modParts, strings.Join(sizeNotes, ", "))
	}
	if modifierPart != "" {
		modParts = append(modParts, modifierPart)
	}
	if toTaste {
		modParts = append(modParts, "to taste")
	}
	modifier := strings.Join(modParts, ", ")
	modExit(len(normalized), trace.Ok, modifier)

	ing := Ingredient{
		Name:     namePart,
		Amounts:  amounts,
		Modifier: modifier,
	}
	exit(len(normalized), trace.Ok, "")
	return ing, nil
}

// ParseAmount implements the public parse_amount(text) operation: it runs
// just the amounts production over the whole (trimmed, NFC-normalized)
// input and requires the entire input to be consumed.
func (p *Parser) ParseAmount(text string) ([]Amount, error) {
	normalized := norm.NFC.String(text)
	trimmed, leadingTrim := trimWithOffset(normalized)
	if trimmed == "" {
		return nil, newParseError(0, ErrInputEmpty, "", "")
	}
	c := cursor.New(trimmed)
	c2, amounts, _, ok, issue := p.parseAmounts(c, nil)
	if !ok {
		if issue.err != nil {
			return nil, newParseError(leadingTrim+issue.offset, issue.err, "", trimmed[issue.offset:])
		}
		return nil, newParseError(leadingTrim, ErrInvalidNumber, "a number", trimmed)
	}
	c2 = c2.SkipSpace()
	if !c2.EOF() {
		if issue.err != nil {
			return nil, newParseError(leadingTrim+issue.offset, issue.err, "", trimmed[issue.offset:])
		}
		return nil, newParseError(leadingTrim+c2.Pos, ErrInvalidNumber, "end of input", c2.Rest())
	}
	return amounts, nil
}

func trimWithOffset(s string) (string, int) {
	trimmedLeft := strings.TrimLeftFunc(s, unicode.IsSpace)
	offset := len(s) - len(trimmedLeft)
	return strings.TrimRightFunc(trimmedLeft, unicode.IsSpace), offset
}

func splitOnFirstComma(s string) (before, after string, found bool) {
	idx := strings.IndexByte(s, ',')
	if idx < 0 {
		return s, "", false
	}
	return s[:idx], s[idx+1:], true
}

// hoistTrailingParenAmounts implements spec.md §4.5's hoisting rule: a
// trailing parenthesized clause on the name that is itself a complete
// amounts production is pulled out into the line's amounts list.
func (p *Parser) hoistTrailingParenAmounts(name string, sink *trace.Sink) (string, []Amount, []string, bool) {
	trimmed := strings.TrimSpace(name)
	if !strings.HasSuffix(trimmed, ")") {
		return name, nil, nil, false
	}
	open := strings.LastIndex(trimmed, "(")
	if open < 0 {
		return name, nil, nil, false
	}
	inner := trimmed[open+1 : len(trimmed)-1]
	c := cursor.New(inner).SkipSpace()
	endCur, amounts, notes, ok, _ := p.parseAmounts(c, sink)
	if !ok {
		return name, nil, nil, false
	}
	endCur = endCur.SkipSpace()
	if !endCur.EOF() {
		return name, nil, nil, false
	}
	return strings.TrimSpace(trimmed[:open]), amounts, notes, true
}

// extractToTaste implements spec.md §4.5: if the name contains "to
// taste", it is removed from the name; the caller folds the removed
// phrase into the modifier.
func extractToTaste(name string) (string, bool) {
	lower := strings.ToLower(name)
	idx := strings.Index(lower, "to taste")
	if idx < 0 {
		return name, false
	}
	before := strings.TrimRight(name[:idx], " \t,")
	after := strings.TrimLeft(name[idx+len("to taste"):], " \t,")
	combined := strings.TrimSpace(before)
	if after != "" {
		if combined != "" {
			combined += " " + after
		} else {
			combined = after
		}
	}
	return combined, true
}
