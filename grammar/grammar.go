/*
Package grammar implements the numeral grammar engine: an incremental,
single-pass accumulator that consumes a stream of normalized word tokens and
builds integer values from them.

The grammar has no nesting — numbers compose linearly, in descending scale
order ("two hundred thousand", never "thousand two hundred" as a multiplier
of what follows). The engine therefore is a constrained shift-reduce machine
over two registers: the value of the group currently under construction, and
the total of all groups closed so far. A set of adjacency rules decides for
every token whether it may extend the number being built; a token that may
not marks a boundary between two independent numbers sitting next to each
other in the stream, and forces the value built so far to be emitted.

Skip words (like English "and") are buffered while a number is being built.
If the number continues past them they are dropped; if a boundary is
declared they are replayed verbatim, so no input word is ever lost.

Output is an ordered sequence of Segments, each either a resolved integer or
a preserved skip-word literal.

Accumulators hold no shared state; any number of them may run concurrently
over the same (immutable) Lexicon.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package grammar

import (
	"strconv"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/numerals/lexicon"
)

// tracer traces to numerals.grammar .
func tracer() tracing.Trace {
	return tracing.Select("numerals.grammar")
}

// A Segment is one unit of accumulator output: either a resolved integer
// value or a skip word preserved verbatim.
type Segment struct {
	Value   int64
	Literal string // non-empty for a preserved skip word
}

// IsNumber reports whether the segment carries an integer value.
func (seg Segment) IsNumber() bool {
	return seg.Literal == ""
}

// String returns the decimal value or the literal.
func (seg Segment) String() string {
	if seg.IsNumber() {
		return strconv.FormatInt(seg.Value, 10)
	}
	return seg.Literal
}

// An Accumulator incrementally builds numbers from a stream of normalized
// tokens. Clients feed tokens with Consume and collect the resulting
// segments with Finish. Accumulators are not safe for concurrent use;
// they are cheap to create and may be pooled (see BorrowAccumulator).
type Accumulator struct {
	lex          *lexicon.Lexicon
	total        int64           // committed sum across closed groups
	group        int64           // sum within the group still open
	prevClass    lexicon.Class   // class of the previous numeral token
	hasPrev      bool            // has a previous token been recorded?
	prevPower    int64           // scale of the last group-closing power word, 0 = none
	pendingSkips *arraylist.List // skip words seen since the last numeral token
	segments     []Segment
}

// NewAccumulator creates an accumulator for one lexicon.
func NewAccumulator(lex *lexicon.Lexicon) *Accumulator {
	acc := &Accumulator{pendingSkips: arraylist.New()}
	acc.Reset(lex)
	return acc
}

// Reset prepares the accumulator for a fresh run over a (possibly different)
// lexicon.
func (acc *Accumulator) Reset(lex *lexicon.Lexicon) {
	acc.lex = lex
	acc.total = 0
	acc.group = 0
	acc.prevClass = lexicon.Other
	acc.hasPrev = false
	acc.prevPower = 0
	if acc.pendingSkips == nil {
		acc.pendingSkips = arraylist.New()
	} else {
		acc.pendingSkips.Clear()
	}
	acc.segments = acc.segments[:0]
}

// Consume feeds the next token, in normal form, into the accumulator.
// Whitespace and empty tokens are ignored. Tokens unknown to the lexicon
// are ignored for accumulation but still recorded as the previous token,
// so they disturb adjacency like any stray word would.
func (acc *Accumulator) Consume(token string) {
	if token == "" || isSpace(token) {
		return
	}
	class, value := acc.lex.Classify(token)
	if class == lexicon.Skip {
		acc.pendingSkips.Add(token)
		return
	}
	if class == lexicon.BigPower && acc.isLargeMultiplier(value) {
		// Multiplicative closure: the power word scales the entire value
		// built so far, as in "two hundred | thousand".
		acc.total = (acc.total + acc.group) * value
		acc.group = 0
		acc.pendingSkips.Clear()
		acc.prevPower = value
		acc.record(class)
		tracer().Debugf("large multiplier %d, total now %d", value, acc.total)
		return
	}
	if !acc.valid(class, value) {
		acc.declareBoundary()
	}
	switch class {
	case lexicon.Unit, lexicon.Direct, lexicon.Ten, lexicon.Hundred:
		acc.group += value
	case lexicon.BigPower:
		if acc.group == 0 {
			acc.group = 1
		}
		acc.group *= value
		if value > acc.lex.MaxGroupValue() {
			// The power word is too large for in-group composition and
			// closes the group instead.
			acc.total += acc.group
			acc.group = 0
			acc.prevPower = value
		}
	}
	acc.record(class)
	acc.pendingSkips.Clear()
}

// Finish closes the run and returns the ordered segments. The returned
// slice is owned by the accumulator and valid until the next Reset.
func (acc *Accumulator) Finish() []Segment {
	acc.total += acc.group
	acc.group = 0
	acc.segments = append(acc.segments, Segment{Value: acc.total})
	acc.total = 0
	return acc.segments
}

// isLargeMultiplier checks whether a power-of-ten word multiplies the entire
// value built so far rather than starting a new group. The hundred word is
// exempt: it always composes within its group.
func (acc *Accumulator) isLargeMultiplier(power int64) bool {
	combined := acc.total + acc.group
	return combined != 0 && power > combined && power != 100
}

// valid applies the adjacency rules: may a token of the given class continue
// the number under construction? A false return marks a boundary between two
// independent numbers.
func (acc *Accumulator) valid(class lexicon.Class, value int64) bool {
	prevUnitish := acc.hasPrev &&
		(acc.prevClass == lexicon.Unit || acc.prevClass == lexicon.Direct)
	switch class {
	case lexicon.Unit:
		return !prevUnitish
	case lexicon.Direct:
		return !prevUnitish && acc.prevClass != lexicon.Ten
	case lexicon.Ten:
		return !prevUnitish && acc.prevClass != lexicon.Ten
	case lexicon.Hundred:
		return !acc.hasPrev || acc.prevClass == lexicon.BigPower
	case lexicon.BigPower:
		if value < acc.group {
			return false
		}
		// Scale words must appear in strictly descending order.
		if acc.total != 0 && acc.prevPower != 0 && value >= acc.prevPower {
			return false
		}
	}
	return true
}

// declareBoundary closes out the number built so far: its value becomes a
// segment, buffered skip words are replayed verbatim, and the registers are
// reset so the current token starts a fresh number.
func (acc *Accumulator) declareBoundary() {
	acc.total += acc.group
	acc.segments = append(acc.segments, Segment{Value: acc.total})
	tracer().Debugf("boundary declared, emitting %d", acc.total)
	acc.total = 0
	acc.group = 0
	for _, skip := range acc.pendingSkips.Values() {
		acc.segments = append(acc.segments, Segment{Literal: skip.(string)})
	}
	acc.pendingSkips.Clear()
	acc.prevPower = 0
}

func (acc *Accumulator) record(class lexicon.Class) {
	acc.prevClass = class
	acc.hasPrev = true
}

// Build runs a complete token sequence through a pooled accumulator and
// returns the resulting segments.
func Build(tokens []string, lex *lexicon.Lexicon) []Segment {
	acc := BorrowAccumulator(lex)
	defer acc.Release()
	for _, token := range tokens {
		acc.Consume(token)
	}
	segments := acc.Finish()
	out := make([]Segment, len(segments))
	copy(out, segments)
	return out
}

// isSpace reports whether the token consists of whitespace only.
func isSpace(token string) bool {
	for _, r := range token {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return token != ""
}
