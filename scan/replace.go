package scan

import (
	"strconv"
	"strings"

	"github.com/npillmayer/gorgo/lr/scanner"

	"github.com/npillmayer/numerals/internal/normalize"
	"github.com/npillmayer/numerals/lexicon"
)

// A NumberResolver turns the text of one number run into its value.
// The replacer calls it whenever a run of number-bearing tokens is
// complete; a false return leaves the run as literal text.
type NumberResolver func(text string) (int64, bool)

// replacer states
const (
	idle         = iota // copying tokens verbatim
	accumulating        // buffering a number-bearing token run
)

// Replace walks the text and substitutes every resolvable number phrase by
// its decimal digit string, leaving all other text — including whitespace
// and punctuation — unchanged. Runs the resolver on every maximal run of
// numeral, whitespace and skip-word tokens; runs that do not resolve are
// emitted verbatim. Replace never fails: worst case it returns the input
// unchanged.
func Replace(text string, lex *lexicon.Lexicon, resolve NumberResolver) string {
	sc := NewScanner(strings.NewReader(text), SpaceDelimited(lex.SpaceDelimited()))
	var out strings.Builder
	out.Grow(len(text))
	var run []bufferedToken
	state := idle
	for {
		tokval, lexeme, _, _ := sc.NextToken(scanner.AnyToken)
		if tokval == scanner.EOF {
			break
		}
		token := bufferedToken{text: lexeme.(string), class: tokval}
		switch state {
		case idle:
			if token.isNumberWord(lex) {
				run = append(run[:0], token)
				state = accumulating
			} else {
				out.WriteString(token.text)
			}
		case accumulating:
			if token.extendsRun(lex) {
				run = append(run, token)
			} else {
				flushRun(&out, run, resolve)
				out.WriteString(token.text)
				state = idle
			}
		}
	}
	if state == accumulating {
		flushRun(&out, run, resolve)
	}
	return out.String()
}

type bufferedToken struct {
	text  string
	class int
}

// isNumberWord reports whether the token starts or continues a number: a
// word token whose normal form is a cardinal or ordinal numeral word.
func (t bufferedToken) isNumberWord(lex *lexicon.Lexicon) bool {
	if t.class != WordToken {
		return false
	}
	word := normalize.Token(t.text)
	return lex.IsCardinal(word) || lex.IsOrdinal(word)
}

// extendsRun reports whether the token may extend a number run without
// forcing its resolution: numeral words, whitespace and skip words do.
func (t bufferedToken) extendsRun(lex *lexicon.Lexicon) bool {
	if t.class == SpaceToken || t.text == "" {
		return true
	}
	if t.isNumberWord(lex) {
		return true
	}
	return t.class == WordToken && lex.IsSkip(normalize.Token(t.text))
}

// flushRun resolves a completed number run. On success the decimal string
// is emitted, followed by the run's trailing whitespace token if there was
// one; on failure the run's original text is emitted unchanged.
func flushRun(out *strings.Builder, run []bufferedToken, resolve NumberResolver) {
	var normalized strings.Builder
	for _, t := range run {
		normalized.WriteString(normalize.Token(t.text))
	}
	if value, ok := resolve(normalized.String()); ok {
		out.WriteString(strconv.FormatInt(value, 10))
		if last := run[len(run)-1]; last.class == SpaceToken {
			out.WriteString(last.text)
		}
		return
	}
	tracer().Debugf("number run %q did not resolve, kept verbatim", normalized.String())
	for _, t := range run {
		out.WriteString(t.text)
	}
}
