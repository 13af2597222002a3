/*
Package lexicon holds the per-language word tables for numeral parsing.

A Lexicon maps number words onto their values, grouped into five disjoint
categories: unit words ("seven"), direct words ("eleven"), ten words
("forty"), hundred words (additive hundreds as in Russian "двести") and big
powers of ten ("hundred", "thousand", "million"). It also carries a set of
skip words — filler words like "and" that may appear inside a number phrase
without changing its value — and a scale mode, short or long, which decides
how large a group may grow before a power-of-ten word closes it.

Lexicons are constructed once, at package initialization, and are immutable
afterwards. A single Lexicon may be shared by any number of concurrent
parses.

All word keys are stored in normal form (lower-cased, accent-stripped), and
all lookup methods expect their argument in normal form as well; see package
internal/normalize.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package lexicon

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/language"

	"github.com/npillmayer/numerals/internal/normalize"
)

// tracer traces to numerals.lexicon .
func tracer() tracing.Trace {
	return tracing.Select("numerals.lexicon")
}

// Class is the category of a word with respect to a Lexicon.
type Class int8

// Word categories. Other denotes a word not present in the lexicon at all.
const (
	Other    Class = iota // not a numeral word
	Unit                  // "one" … "nine", "zero"
	Direct                // alternate unit words: "ten" … "nineteen"
	Ten                   // "twenty" … "ninety"
	Hundred               // additive hundred words ("двести" = 200)
	BigPower              // multiplying powers of ten ("hundred", "thousand", …)
	Skip                  // filler word, e.g. "and"
)

// String returns the name of a word class.
func (c Class) String() string {
	switch c {
	case Unit:
		return "Unit"
	case Direct:
		return "Direct"
	case Ten:
		return "Ten"
	case Hundred:
		return "Hundred"
	case BigPower:
		return "BigPower"
	case Skip:
		return "Skip"
	}
	return "Other"
}

// Scale is the numbering system of a language: short scale groups numbers in
// chunks of up to 999, long scale in chunks of up to 9999.
type Scale int8

// Scale modes.
const (
	ShortScale Scale = iota
	LongScale
)

// Group limits by scale mode. A power-of-ten word whose value exceeds the
// limit closes the currently open group.
const (
	shortScaleGroupMax = 100
	longScaleGroupMax  = 10000
)

// UnsupportedLanguageError is returned when a language code outside the
// supported set is requested.
type UnsupportedLanguageError struct {
	Code string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("%q is not a supported language", e.Code)
}

// suffixRule is one ordinal-to-cardinal suffix substitution, applied to the
// tail of a word ("…ieth" → "…y").
type suffixRule struct {
	suffix      string
	replacement string
}

// definition is the raw, human-maintained table set for one language.
// Word keys may be written in their natural spelling; they are normalized
// during construction.
type definition struct {
	code              string
	scale             Scale
	spaceDelimited    bool // tokenize on whitespace only (see package scan)
	units             map[string]int64
	directs           map[string]int64
	tens              map[string]int64
	hundreds          map[string]int64
	bigPowers         map[string]int64
	skipWords         []string
	ordinalIrregulars map[string]string // irregular ordinal → cardinal word
	ordinalSuffixes   []suffixRule
}

// Lexicon is the immutable table set for one language.
type Lexicon struct {
	code            string
	scale           Scale
	spaceDelimited  bool
	units           map[string]int64
	directs         map[string]int64
	tens            map[string]int64
	hundreds        map[string]int64
	bigPowers       map[string]int64
	unitAndDirect   map[string]int64
	all             map[string]int64
	skips           *hashset.Set
	ordinalReplacer *strings.Replacer
	ordinalSuffixes []suffixRule
}

var registry = map[string]*Lexicon{}

// register builds a Lexicon from a definition and files it under its code.
// Called from the per-language init functions.
func register(def definition) {
	lex := &Lexicon{
		code:            def.code,
		scale:           def.scale,
		spaceDelimited:  def.spaceDelimited,
		units:           normalizeTable(def.units),
		directs:         normalizeTable(def.directs),
		tens:            normalizeTable(def.tens),
		hundreds:        normalizeTable(def.hundreds),
		bigPowers:       normalizeTable(def.bigPowers),
		skips:           hashset.New(),
		ordinalSuffixes: def.ordinalSuffixes,
	}
	lex.unitAndDirect = merge(lex.units, lex.directs)
	lex.all = merge(lex.unitAndDirect, lex.tens, lex.hundreds, lex.bigPowers)
	for _, w := range def.skipWords {
		lex.skips.Add(normalize.Token(w))
	}
	if len(def.ordinalIrregulars) > 0 {
		pairs := make([]string, 0, 2*len(def.ordinalIrregulars))
		for ordinal, cardinal := range def.ordinalIrregulars {
			pairs = append(pairs, normalize.Token(ordinal), normalize.Token(cardinal))
		}
		lex.ordinalReplacer = strings.NewReplacer(pairs...)
	}
	registry[def.code] = lex
}

func normalizeTable(table map[string]int64) map[string]int64 {
	normalized := make(map[string]int64, len(table))
	for word, value := range table {
		normalized[normalize.Token(word)] = value
	}
	return normalized
}

func merge(tables ...map[string]int64) map[string]int64 {
	merged := map[string]int64{}
	for _, table := range tables {
		for word, value := range table {
			merged[word] = value
		}
	}
	return merged
}

// For returns the Lexicon for a language code. Besides the plain codes of
// the supported set ("en", "es", "hi", "ru"), BCP 47 tags resolving to a
// supported base language are accepted ("en-US"). Any other code yields an
// UnsupportedLanguageError.
func For(code string) (*Lexicon, error) {
	key := strings.ToLower(strings.TrimSpace(code))
	if lex, ok := registry[key]; ok {
		return lex, nil
	}
	if tag, err := language.Parse(key); err == nil {
		base, confidence := tag.Base()
		if confidence >= language.High {
			if lex, ok := registry[base.String()]; ok {
				tracer().Debugf("language %q resolved to lexicon %q", code, lex.code)
				return lex, nil
			}
		}
	}
	return nil, &UnsupportedLanguageError{Code: code}
}

// Supported lists the supported language codes in lexical order.
func Supported() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Code returns the language code of the lexicon.
func (lex *Lexicon) Code() string {
	return lex.code
}

// Scale returns the lexicon's numbering scale mode.
func (lex *Lexicon) Scale() Scale {
	return lex.scale
}

// SpaceDelimited signals that tokenization for this language has to split on
// whitespace only. This is a per-language tokenizer strategy; see package scan.
func (lex *Lexicon) SpaceDelimited() bool {
	return lex.spaceDelimited
}

// MaxGroupValue is the largest value of a power-of-ten word that still
// extends the open group: 100 for short-scale languages, 10000 for
// long-scale ones.
func (lex *Lexicon) MaxGroupValue() int64 {
	if lex.scale == LongScale {
		return longScaleGroupMax
	}
	return shortScaleGroupMax
}

// Classify determines the category of a word, together with its numeric
// value. For Skip and Other words the value is 0.
func (lex *Lexicon) Classify(word string) (Class, int64) {
	if value, ok := lex.units[word]; ok {
		return Unit, value
	}
	if value, ok := lex.directs[word]; ok {
		return Direct, value
	}
	if value, ok := lex.tens[word]; ok {
		return Ten, value
	}
	if value, ok := lex.hundreds[word]; ok {
		return Hundred, value
	}
	if value, ok := lex.bigPowers[word]; ok {
		return BigPower, value
	}
	if lex.skips.Contains(word) {
		return Skip, 0
	}
	return Other, 0
}

// IsUnitOrDirect reports whether word is a unit or a direct number word.
func (lex *Lexicon) IsUnitOrDirect(word string) bool {
	_, ok := lex.unitAndDirect[word]
	return ok
}

// IsBigPower reports whether word is a power-of-ten word.
func (lex *Lexicon) IsBigPower(word string) bool {
	_, ok := lex.bigPowers[word]
	return ok
}

// IsSkip reports whether word is a skip word of this language.
func (lex *Lexicon) IsSkip(word string) bool {
	return lex.skips.Contains(word)
}

// IsCardinal reports whether word is a cardinal numeral word.
func (lex *Lexicon) IsCardinal(word string) bool {
	_, ok := lex.all[word]
	return ok
}

// IsOrdinal reports whether word is an ordinal numeral word, i.e. whether
// its cardinal surface form is a cardinal numeral word.
func (lex *Lexicon) IsOrdinal(word string) bool {
	return lex.IsCardinal(lex.CardinalForm(word))
}

// CardinalForm rewrites ordinal surface forms into cardinal ones: first the
// language's irregular substitutions ("first" → "one"), then its suffix
// rules ("…ieth" → "…y", strip a trailing "th"). Input not in normal form is
// normalized first. For languages without ordinal rules this is the identity
// on the normal form.
func (lex *Lexicon) CardinalForm(s string) string {
	s = normalize.Token(s)
	if lex.ordinalReplacer != nil {
		s = lex.ordinalReplacer.Replace(s)
	}
	for _, rule := range lex.ordinalSuffixes {
		if strings.HasSuffix(s, rule.suffix) {
			s = s[:len(s)-len(rule.suffix)] + rule.replacement
		}
	}
	return s
}
