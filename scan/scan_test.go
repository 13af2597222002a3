package scan_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/testconfig"

	"github.com/npillmayer/numerals/lexicon"
	"github.com/npillmayer/numerals/scan"
)

func ExampleTokens() {
	tokens := scan.Tokens("forty-two!")
	fmt.Printf("%q\n", tokens)
	// Output: ["forty" "-" "two" "!"]
}

func TestTokensReconstruct(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []string{
		"I have 23 apples, really!",
		"  leading and trailing  ",
		"twenty-three",
		"tabs\tand\nnewlines",
		"",
	}
	for _, input := range inputs {
		tokens := scan.Tokens(input)
		if got := strings.Join(tokens, ""); got != input {
			t.Errorf("tokens of %q reassemble to %q", input, got)
		}
	}
}

func TestTokensSpaceDelimited(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	input := "तेईस सेब"
	tokens := scan.Tokens(input, scan.SpaceDelimited(true))
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens %q, want 3", len(tokens), tokens)
	}
	if tokens[0] != "तेईस" || tokens[1] != " " || tokens[2] != "सेब" {
		t.Errorf("unexpected tokens %q", tokens)
	}
	if got := strings.Join(tokens, ""); got != input {
		t.Errorf("tokens reassemble to %q", got)
	}
}

func TestTokenClasses(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sc := scan.NewScanner(strings.NewReader("one, two"))
	want := []struct {
		class  int
		lexeme string
	}{
		{scan.WordToken, "one"},
		{scan.PunctToken, ","},
		{scan.SpaceToken, " "},
		{scan.WordToken, "two"},
	}
	for i, w := range want {
		class, lexeme, _, _ := sc.NextToken(scanner.AnyToken)
		if class != w.class || lexeme.(string) != w.lexeme {
			t.Errorf("token %d: got (%d, %q), want (%d, %q)", i, class, lexeme, w.class, w.lexeme)
		}
	}
	if class, _, _, _ := sc.NextToken(scanner.AnyToken); class != scanner.EOF {
		t.Errorf("expected EOF, got class %d", class)
	}
}

func TestTokenPositions(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	sc := scan.NewScanner(strings.NewReader("ab cd"))
	want := []struct {
		pos    uint64
		length uint64
	}{
		{0, 2},
		{2, 1},
		{3, 2},
	}
	for i, w := range want {
		_, lexeme, pos, length := sc.NextToken(scanner.AnyToken)
		if pos != w.pos || length != w.length {
			t.Errorf("token %d (%q): got pos %d len %d, want pos %d len %d",
				i, lexeme, pos, length, w.pos, w.length)
		}
	}
}

func TestReplace(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	lex, err := lexicon.For("en")
	if err != nil {
		t.Fatal(err)
	}
	values := map[string]int64{
		"twenty three": 23,
		"one":          1,
	}
	resolve := func(text string) (int64, bool) {
		value, ok := values[strings.TrimSpace(text)]
		return value, ok
	}
	input := "I have twenty three apples and one orange."
	want := "I have 23 apples and 1 orange."
	if got := scan.Replace(input, lex, resolve); got != want {
		t.Errorf("Replace = %q, want %q", got, want)
	}
}

func TestReplaceUnresolvedRunKeptVerbatim(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	lex, err := lexicon.For("en")
	if err != nil {
		t.Fatal(err)
	}
	resolve := func(string) (int64, bool) { return 0, false }
	input := "twenty apples and one orange"
	if got := scan.Replace(input, lex, resolve); got != input {
		t.Errorf("Replace = %q, want input unchanged", got)
	}
}
