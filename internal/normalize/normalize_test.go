package normalize_test

import (
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/npillmayer/numerals/internal/normalize"
)

func TestToken(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		input string
		want  string
	}{
		{"TWENTY", "twenty"},
		{"Veintidós", "veintidos"},
		{"dieciséis", "dieciseis"},
		{"тысяча", "тысяча"},
		{"पाँच", "पाच"}, // candrabindu is a non-spacing mark and is stripped
		{"तीस", "तीस"},  // spacing vowel signs survive
		{"", ""},
	}
	for _, c := range cases {
		if got := normalize.Token(c.input); got != c.want {
			t.Errorf("Token(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestTokens(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	got := normalize.Tokens([]string{"Twenty", "THREE"})
	if len(got) != 2 || got[0] != "twenty" || got[1] != "three" {
		t.Errorf("Tokens = %v, want [twenty three]", got)
	}
}
