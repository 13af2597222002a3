package numerals

import (
	"errors"
	"strconv"
	"unicode"

	"github.com/npillmayer/numerals/grammar"
	"github.com/npillmayer/numerals/internal/normalize"
	"github.com/npillmayer/numerals/lexicon"
	"github.com/npillmayer/numerals/scan"
)

// ErrNoMatch is returned by ParseNumber and ParseOrdinal when the input does
// not resolve to exactly one number: it contains unrecognized words, or it
// denotes several independent numbers. It signals an absent result, not a
// failure of the parser; zero is a valid result and is never reported as
// ErrNoMatch.
var ErrNoMatch = errors.New("text does not resolve to a single number")

// ParseNumber converts a single number written in natural language to its
// integer value.
//
// lang is a supported language code (see SupportedLanguages) or a BCP 47 tag
// resolving to one; the empty string selects DefaultLanguage. An unsupported
// language yields an UnsupportedLanguageError, input that does not denote
// exactly one number yields ErrNoMatch.
//
// A string of decimal digits is returned as its integer value directly.
func ParseNumber(text string, lang string) (int64, error) {
	lex, err := lexiconFor(lang)
	if err != nil {
		return 0, err
	}
	return parseNumber(text, lex)
}

// ParseOrdinal converts a single ordinal number written in natural language
// ("twenty third") to its integer value. It applies the language's
// ordinal-to-cardinal surface transform and otherwise behaves like
// ParseNumber.
func ParseOrdinal(text string, lang string) (int64, error) {
	lex, err := lexiconFor(lang)
	if err != nil {
		return 0, err
	}
	return parseOrdinal(text, lex)
}

// Parse returns text with every resolvable number phrase replaced by its
// decimal digit string; all other text, including whitespace and
// punctuation, is preserved verbatim. Number runs are resolved as cardinals
// first, then as ordinals; runs resolving to neither are left unchanged.
//
// The only error condition is an unsupported language.
func Parse(text string, lang string) (string, error) {
	lex, err := lexiconFor(lang)
	if err != nil {
		return "", err
	}
	resolve := func(run string) (int64, bool) {
		if value, err := parseNumber(run, lex); err == nil {
			return value, true
		}
		if value, err := parseOrdinal(run, lex); err == nil {
			return value, true
		}
		return 0, false
	}
	return scan.Replace(text, lex, resolve), nil
}

// parseNumber is the single-number resolver: it accepts the input only if
// every token is covered by the lexicon and the grammar builds exactly one
// number from it.
func parseNumber(text string, lex *lexicon.Lexicon) (int64, error) {
	if isDigits(text) {
		value, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return 0, ErrNoMatch // digit literal out of range
		}
		return value, nil
	}
	tokens := normalize.Tokens(scan.Tokens(text, scan.SpaceDelimited(lex.SpaceDelimited())))
	sawNumeral := false
	for i, token := range tokens {
		if token == "" || isSpace(token) {
			continue
		}
		if lex.IsCardinal(token) {
			sawNumeral = true
			continue
		}
		if lex.IsSkip(token) && i != 0 {
			continue
		}
		// A word outside the lexicon: this is not a pure number phrase.
		return 0, ErrNoMatch
	}
	if !sawNumeral {
		return 0, ErrNoMatch
	}
	segments := grammar.Build(tokens, lex)
	if len(segments) != 1 || !segments[0].IsNumber() {
		tracer().Debugf("%q resolves to %d segments, no match", text, len(segments))
		return 0, ErrNoMatch
	}
	return segments[0].Value, nil
}

func parseOrdinal(text string, lex *lexicon.Lexicon) (int64, error) {
	return parseNumber(lex.CardinalForm(text), lex)
}

// isDigits reports whether text is a non-empty string of decimal digits.
func isDigits(text string) bool {
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return text != ""
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
