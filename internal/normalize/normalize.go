// Package normalize produces the normal form used for all lexicon lookups:
// lower-cased and accent-stripped.
//
// Accent stripping decomposes the input (NFD) and drops all non-spacing
// marks (Unicode category Mn). Spacing combining marks are kept, so scripts
// like Devanagari, where vowel signs are spacing marks, survive intact.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMn decomposes and removes non-spacing marks. The transformer chain is
// stateless apart from its internal buffers and is re-created per call;
// transform.Chain values are not safe for concurrent use.
func stripMn() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
}

// Token returns the normal form of a single token: lower-cased, then
// accent-stripped. If the transformation fails (malformed UTF-8), the
// lower-cased input is returned unchanged.
func Token(token string) string {
	lowered := strings.ToLower(token)
	stripped, _, err := transform.String(stripMn(), lowered)
	if err != nil {
		return lowered
	}
	return stripped
}

// Tokens normalizes a list of tokens, preserving order and length.
func Tokens(tokens []string) []string {
	normalized := make([]string, len(tokens))
	for i, t := range tokens {
		normalized[i] = Token(t)
	}
	return normalized
}
