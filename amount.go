package ingparse

import (
	"unicode"

	"github.com/cookline/ingparse/internal/cursor"
	"github.com/cookline/ingparse/number"
	"github.com/cookline/ingparse/trace"
)

// amountResult pairs a parsed Amount with the surface size-word (if any)
// that supplied its unit, so the caller can fold it into the line's
// modifier (spec.md §4.3).
type amountResult struct {
	amount   Amount
	sizeNote string
}

// amountIssue records a structural problem noticed while attempting an
// amount/amounts production that does not, by itself, fail the
// production — the amount layer degrades gracefully per spec.md §7. A
// caller that requires a full, unambiguous parse (ParseAmount, the
// ingredient line grammar) inspects Issue to report ErrRangeReversed or
// ErrUnterminatedParen precisely instead of a generic parse failure. A
// caller happy to degrade (rich text, later members of a composite)
// simply ignores it. Err is nil when nothing noteworthy was seen.
type amountIssue struct {
	err    error
	offset int
}

// parseAmount implements the single-amount production of L3:
//
//	amount := number (dash number)? unit?
//
// A bare number with no unit is only accepted when immediately followed
// by an adjective (handled by the unit/adjective match below) or by what
// looks like an ingredient word; otherwise the whole production fails and
// the caller must not treat the number as an amount. sink may be nil.
func (p *Parser) parseAmount(c cursor.Cursor, sink *trace.Sink) (cursor.Cursor, amountResult, bool, amountIssue) {
	exit := sink.Enter("amount", c.Pos)

	numExit := sink.Enter("number", c.Pos)
	cur, val, ok := number.Parse(c)
	if ok {
		numExit(cur.Pos, trace.Ok, "")
	} else {
		numExit(c.Pos, trace.Err, "no number")
		cardExit := sink.Enter("cardinal", c.Pos)
		cardCur, cardVal, cardOK := number.ParseCardinal(c)
		if !cardOK {
			cardExit(c.Pos, trace.Err, "no cardinal word")
			exit(c.Pos, trace.Err, "no number or cardinal")
			return c, amountResult{}, false, amountIssue{}
		}
		cardExit(cardCur.Pos, trace.Ok, "")
		afterWS := cardCur.SkipSpace()
		unitExit := sink.Enter("unit", afterWS.Pos)
		if _, _, unitOK := p.vocab.MatchUnit(afterWS); unitOK {
			unitExit(afterWS.Pos, trace.Ok, "")
		} else {
			unitExit(afterWS.Pos, trace.Err, "")
			adjExit := sink.Enter("adjective", afterWS.Pos)
			if _, _, adjOK := p.vocab.MatchAdjective(afterWS); !adjOK {
				adjExit(afterWS.Pos, trace.Err, "")
				exit(afterWS.Pos, trace.Err, "cardinal not followed by a unit or adjective")
				return c, amountResult{}, false, amountIssue{}
			}
			adjExit(afterWS.Pos, trace.Ok, "")
		}
		cur, val = cardCur, cardVal
	}

	var upper *float64
	var issue amountIssue
	save := cur
	afterWS := cur.SkipSpace()
	rangeExit := sink.Enter("range", afterWS.Pos)
	if dashCur, ok := matchDash(afterWS); ok {
		dashCur = dashCur.SkipSpace()
		upperNumExit := sink.Enter("number", dashCur.Pos)
		if afterNum, upperVal, ok := number.Parse(dashCur); ok {
			upperNumExit(afterNum.Pos, trace.Ok, "")
			if upperVal >= val {
				u := upperVal
				upper = &u
				cur = afterNum
				rangeExit(afterNum.Pos, trace.Ok, "")
			} else {
				cur = save // reject the range, fall back to a single amount reading.
				issue = amountIssue{err: ErrRangeReversed, offset: afterWS.Pos}
				rangeExit(afterNum.Pos, trace.Err, "reversed range")
			}
		} else {
			upperNumExit(dashCur.Pos, trace.Err, "no upper bound")
			cur = save
			rangeExit(dashCur.Pos, trace.Err, "no upper bound")
		}
	} else {
		cur = save
		rangeExit(afterWS.Pos, trace.Err, "no dash")
	}

	cur = cur.SkipSpace()
	unitStr := ""
	sizeNote := ""
	unitExit := sink.Enter("unit", cur.Pos)
	if afterUnit, entry, ok := p.vocab.MatchUnit(cur); ok {
		unitExit(afterUnit.Pos, trace.Ok, "")
		if entry.Kind == KindSizeWord {
			unitStr = "whole"
			sizeNote = entry.Canonical
		} else {
			unitStr = entry.Canonical
		}
		cur = afterUnit
	} else {
		unitExit(cur.Pos, trace.Err, "")
		adjExit := sink.Enter("adjective", cur.Pos)
		if afterAdj, word, ok := p.vocab.MatchAdjective(cur); ok {
			adjExit(afterAdj.Pos, trace.Ok, "")
			unitStr = "whole"
			sizeNote = word
			cur = afterAdj
		} else {
			adjExit(cur.Pos, trace.Err, "")
			peek := cur.SkipSpace()
			_, word := peek.TakeWord()
			if !isAdjacentIngredientWord(word) {
				exit(c.Pos, trace.Err, "no unit, adjective, or adjacent ingredient word")
				return c, amountResult{}, false, issue
			}
			unitStr = "whole"
		}
	}

	exit(cur.Pos, trace.Ok, "")
	return cur, amountResult{amount: Amount{Unit: unitStr, Value: val, UpperValue: upper}, sizeNote: sizeNote}, true, amountIssue{}
}

// parseAmounts implements L3's composite production:
//
//	amounts   := amount ((slash | "plus" | "+") amount)* paren_alt?
//	paren_alt := '(' amounts ')'
//
// It never fails on its own malformed-tail input (spec.md §7): once at
// least one amount has matched, a trailing separator with nothing
// parseable after it is simply not consumed. The returned amountIssue
// reports a rejected range or an unterminated parenthesized alternate
// noticed along the way, for callers that want to report it precisely
// instead of degrading gracefully; sink may be nil.
func (p *Parser) parseAmounts(c cursor.Cursor, sink *trace.Sink) (cursor.Cursor, []Amount, []string, bool, amountIssue) {
	exit := sink.Enter("amounts", c.Pos)
	cur, first, ok, issue := p.parseAmount(c, sink)
	if !ok {
		exit(c.Pos, trace.Err, "no leading amount")
		return c, nil, nil, false, issue
	}
	amounts := []Amount{first.amount}
	var notes []string
	if first.sizeNote != "" {
		notes = append(notes, first.sizeNote)
	}

	for {
		save := cur
		sep := cur.SkipSpace()

		if afterSlash, ok := sep.MatchLiteral("/"); ok {
			afterSlash = afterSlash.SkipSpace()
			if c3, r, ok, _ := p.parseAmount(afterSlash, sink); ok {
				amounts = append(amounts, r.amount)
				if r.sizeNote != "" {
					notes = append(notes, r.sizeNote)
				}
				cur = c3
				continue
			}
			// A bare number after '/' with no unit of its own, and no
			// later token that could plausibly be a unit, inherits the
			// preceding amount's unit (spec.md §4.4).
			if c3, val, ok := number.Parse(afterSlash); ok {
				if _, _, unitAhead := p.vocab.MatchUnit(c3.SkipSpace()); !unitAhead {
					prevUnit := amounts[len(amounts)-1].Unit
					amounts = append(amounts, Amount{Unit: prevUnit, Value: val})
					cur = c3
					continue
				}
			}
			cur = save
			break
		}

		if afterPlus, ok := matchPlus(sep); ok {
			afterPlus = afterPlus.SkipSpace()
			if c3, r, ok, _ := p.parseAmount(afterPlus, sink); ok {
				amounts = append(amounts, r.amount)
				if r.sizeNote != "" {
					notes = append(notes, r.sizeNote)
				}
				cur = c3
				continue
			}
			cur = save
			break
		}

		break
	}

	save := cur
	afterWS := cur.SkipSpace()
	parenExit := sink.Enter("paren_alt", afterWS.Pos)
	if afterParen, ok := afterWS.MatchLiteral("("); ok {
		if c3, innerAmounts, innerNotes, ok, _ := p.parseAmounts(afterParen, sink); ok {
			if c4, ok := c3.MatchLiteral(")"); ok {
				amounts = append(amounts, innerAmounts...)
				notes = append(notes, innerNotes...)
				cur = c4
				parenExit(c4.Pos, trace.Ok, "")
			} else {
				cur = save // unterminated: leave the '(' unconsumed and report the issue.
				issue = amountIssue{err: ErrUnterminatedParen, offset: afterWS.Pos}
				parenExit(c3.Pos, trace.Err, "unterminated parenthesized alternate")
			}
		} else {
			cur = save
			parenExit(afterParen.Pos, trace.Err, "")
		}
	} else {
		parenExit(afterWS.Pos, trace.Err, "no paren")
	}

	exit(cur.Pos, trace.Ok, "")
	return cur, amounts, notes, true, issue
}

func matchDash(c cursor.Cursor) (cursor.Cursor, bool) {
	for _, lit := range []string{"-", "–", "—"} {
		if c2, ok := c.MatchLiteral(lit); ok {
			return c2, true
		}
	}
	if c2, ok := c.MatchFold("to"); ok {
		if r, w := c2.PeekRune(); w > 0 && unicode.IsSpace(r) {
			return c2, true
		}
	}
	return c, false
}

func matchPlus(c cursor.Cursor) (cursor.Cursor, bool) {
	if c2, ok := c.MatchLiteral("+"); ok {
		return c2, true
	}
	if c2, ok := c.MatchFold("plus"); ok && c2.AtWordBoundary() {
		return c2, true
	}
	return c, false
}
