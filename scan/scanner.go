/*
Package scan provides raw tokenization of free text and the sentence-level
replacer which substitutes number phrases by their decimal digit strings.

The scanner splits input on word/non-word boundaries: runs of word
characters form one token, every other character stands alone (whitespace
runs are kept together). Concatenating all token lexemes reconstructs the
input exactly — nothing is ever dropped.

Some scripts do not survive word/non-word splitting (combining characters
tear words apart); for lexicons flagged as space-delimited the scanner
falls back to splitting on whitespace runs only.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scan

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to numerals.scan .
func tracer() tracing.Trace {
	return tracing.Select("numerals.scan")
}

// Token classes returned by the scanner.
const (
	WordToken  int = iota + 1 // run of word characters
	SpaceToken                // run of whitespace
	PunctToken                // single non-word, non-space character
)

// Scanner reads tokens from a text. It implements the scanner.Tokenizer
// interface of gorgo, so it may drive parsers expecting that contract;
// the replacer in this package is one such client.
type Scanner struct {
	runeScanner *bufio.Scanner // we're using an embedded rune reader
	buffer      []byte         // character buffer for token lexeme
	lookahead   []byte         // lookahead rune
	laClass     int            // token class of the lookahead rune
	currClass   int            // token class of the buffer
	pos         uint64         // position of current lexeme in input
	ahead       uint64         // position ahead of current lexeme
	spaceOnly   bool           // split on whitespace runs only
}

const buflen = 512

// NewScanner creates a scanner for number-phrase detection.
//
// Clients provide a reader and zero or more scanner options. Runes are read
// from the reader and concatenated to tokens (see NextToken).
func NewScanner(input io.Reader, opts ...ScannerOption) *Scanner {
	sc := &Scanner{}
	if input == nil {
		input = strings.NewReader("")
	}
	sc.runeScanner = bufio.NewScanner(input)
	sc.runeScanner.Split(bufio.ScanRunes)
	sc.buffer = make([]byte, 0, buflen)
	sc.lookahead = make([]byte, 0, utf8.UTFMax)
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// NextToken reads the next token, returning its class, its lexeme as a
// string, its byte position and its byte length. At the end of input it
// returns scanner.EOF.
//
// The expected-token hint of the Tokenizer contract is ignored; use
// scanner.AnyToken.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	sc.prepareNewRun()
	for sc.runeScanner.Scan() {
		b := sc.runeScanner.Bytes()
		r, sz := utf8.DecodeRune(b)
		class := sc.classify(r)
		if len(sc.buffer) > 0 && !sc.groups(class) {
			sc.lookahead = append(sc.lookahead[:0], b...)
			sc.laClass = class
			tracer().Debugf("scanned token %q of class %d", string(sc.buffer), sc.currClass)
			return sc.currClass, string(sc.buffer), sc.pos, uint64(len(sc.buffer))
		}
		sc.buffer = append(sc.buffer, b...)
		sc.currClass = class
		sc.ahead += uint64(sz)
	}
	if len(sc.buffer) > 0 { // process left-over buffer
		tracer().Debugf("final token %q of class %d", string(sc.buffer), sc.currClass)
		token := string(sc.buffer)
		sc.buffer = sc.buffer[:0]
		return sc.currClass, token, sc.pos, uint64(len(token))
	}
	return scanner.EOF, "", sc.pos, 0
}

// SetErrorHandler sets an error handler function. Part of the Tokenizer
// contract; the scanner cannot fail on in-memory input, so the handler is
// never called.
func (sc *Scanner) SetErrorHandler(h func(error)) {
}

func (sc *Scanner) prepareNewRun() {
	sc.pos = sc.ahead
	sc.buffer = sc.buffer[:0]
	if len(sc.lookahead) > 0 { // move LA to buffer
		sc.buffer = append(sc.buffer, sc.lookahead...)
		sc.currClass = sc.laClass
		sc.ahead += uint64(len(sc.lookahead))
		sc.lookahead = sc.lookahead[:0]
	}
}

// groups decides whether a rune of the given class extends the current
// buffer: word runes group with word runes, whitespace with whitespace,
// anything else stands alone.
func (sc *Scanner) groups(class int) bool {
	return class == sc.currClass && class != PunctToken
}

// classify assigns the token class of a single rune. In space-delimited
// mode everything except whitespace counts as a word character.
func (sc *Scanner) classify(r rune) int {
	if unicode.IsSpace(r) {
		return SpaceToken
	}
	if sc.spaceOnly || isWordRune(r) {
		return WordToken
	}
	return PunctToken
}

// isWordRune reports whether r may be part of a word: letters, digits,
// underscore, and combining marks (which scripts like Devanagari use as
// integral parts of words).
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}

// --- Scanner options -------------------------------------------------------

// ScannerOption configures a scanner.
type ScannerOption func(sc *Scanner)

// SpaceDelimited sets the scanner to split on whitespace runs only. Used for
// languages where word/non-word splitting would tear words apart.
func SpaceDelimited(b bool) ScannerOption {
	return func(sc *Scanner) {
		sc.spaceOnly = b
	}
}

// Tokens splits a text into raw tokens, preserving every input byte:
// concatenating the returned tokens reconstructs text exactly.
func Tokens(text string, opts ...ScannerOption) []string {
	sc := NewScanner(strings.NewReader(text), opts...)
	var tokens []string
	for {
		tokval, token, _, _ := sc.NextToken(scanner.AnyToken)
		if tokval == scanner.EOF {
			break
		}
		tokens = append(tokens, token.(string))
	}
	return tokens
}
