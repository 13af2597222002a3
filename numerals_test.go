package numerals_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/testconfig"

	"github.com/npillmayer/numerals"
)

func ExampleParseNumber() {
	n, _ := numerals.ParseNumber("two hundred thousand", "en")
	fmt.Println(n)
	// Output: 200000
}

func ExampleParseOrdinal() {
	n, _ := numerals.ParseOrdinal("twenty third", "en")
	fmt.Println(n)
	// Output: 23
}

func ExampleParse() {
	s, _ := numerals.Parse("I have twenty three apples and one orange.", "en")
	fmt.Println(s)
	// Output: I have 23 apples and 1 orange.
}

func TestParseNumberEnglish(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		input string
		want  int64
	}{
		{"one", 1},
		{"twenty three", 23},
		{"nine hundred ninety nine", 999},
		{"one hundred and twenty", 120},
		{"one thousand two hundred", 1200},
		{"two hundred thousand", 200000},
		{"one hundred thousand two hundred", 100200},
		{"seven million", 7000000},
		{"zero", 0},
		{"  Forty   Four ", 44},
		{"112", 112},
	}
	for _, c := range cases {
		got, err := numerals.ParseNumber(c.input, "en")
		if err != nil {
			t.Errorf("ParseNumber(%q) failed: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseNumber(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestParseNumberNoMatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []string{
		"",
		"apples",
		"twenty apples",
		"twenty two ten", // two adjacent numbers
		"and",            // a skip word alone is not a number
		"uno",            // wrong language
	}
	for _, input := range inputs {
		_, err := numerals.ParseNumber(input, "en")
		if !errors.Is(err, numerals.ErrNoMatch) {
			t.Errorf("ParseNumber(%q): err = %v, want ErrNoMatch", input, err)
		}
	}
}

func TestParseNumberZeroIsValid(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	got, err := numerals.ParseNumber("zero", "en")
	if err != nil {
		t.Fatalf("ParseNumber(zero) failed: %v", err)
	}
	if got != 0 {
		t.Errorf("ParseNumber(zero) = %d, want 0", got)
	}
}

func TestParseNumberLanguages(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		lang  string
		input string
		want  int64
	}{
		{"es", "veintitrés", 23},
		{"es", "treinta y uno", 31},
		{"es", "doscientos mil", 200000},
		{"ru", "сорок четыре", 44},
		{"ru", "две тысячи сто двадцать", 2120},
		{"hi", "तेईस", 23},
		{"hi", "दो सौ पचास", 250},
		{"hi", "पाँच लाख", 500000},
		{"en-US", "twenty one", 21},
	}
	for _, c := range cases {
		got, err := numerals.ParseNumber(c.input, c.lang)
		if err != nil {
			t.Errorf("[%s] ParseNumber(%q) failed: %v", c.lang, c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("[%s] ParseNumber(%q) = %d, want %d", c.lang, c.input, got, c.want)
		}
	}
}

func TestParseOrdinal(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		input string
		want  int64
	}{
		{"first", 1},
		{"fifth", 5},
		{"twelfth", 12},
		{"twentieth", 20},
		{"twenty third", 23},
		{"seventy seventh", 77},
		{"hundredth", 100},
	}
	for _, c := range cases {
		got, err := numerals.ParseOrdinal(c.input, "en")
		if err != nil {
			t.Errorf("ParseOrdinal(%q) failed: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseOrdinal(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestUnsupportedLanguage(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	_, err := numerals.ParseNumber("uno", "xx")
	var ulerr *numerals.UnsupportedLanguageError
	if !errors.As(err, &ulerr) {
		t.Errorf("ParseNumber with language xx: err = %v, want UnsupportedLanguageError", err)
	}
	if errors.Is(err, numerals.ErrNoMatch) {
		t.Error("unsupported language must not be reported as ErrNoMatch")
	}
	if _, err := numerals.Parse("one apple", "xx"); err == nil {
		t.Error("Parse with language xx: expected error")
	}
}

func TestParseSentences(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	cases := []struct {
		lang  string
		input string
		want  string
	}{
		{"en", "I have twenty three apples and one orange.", "I have 23 apples and 1 orange."},
		{"en", "I bought two hundred thousand shares.", "I bought 200000 shares."},
		{"en", "No numbers here.", "No numbers here."},
		{"en", "the twenty second of June", "the 22 of June"},
		{"en", "first prize", "1 prize"},
		{"en", "zero problems", "0 problems"},
		{"en", "", ""},
		{"es", "tengo veintitrés manzanas", "tengo 23 manzanas"},
		{"ru", "у меня сорок четыре яблока", "у меня 44 яблока"},
		{"hi", "मेरे पास तेईस सेब हैं", "मेरे पास 23 सेब हैं"},
	}
	for _, c := range cases {
		got, err := numerals.Parse(c.input, c.lang)
		if err != nil {
			t.Errorf("[%s] Parse(%q) failed: %v", c.lang, c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("[%s] Parse(%q) = %q, want %q", c.lang, c.input, got, c.want)
		}
	}
}

func TestParseIsIdempotent(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	inputs := []string{
		"I have twenty three apples and one orange.",
		"No numbers here.",
		"the twenty second of June",
	}
	for _, input := range inputs {
		once, err := numerals.Parse(input, "en")
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", input, err)
		}
		twice, err := numerals.Parse(once, "en")
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", once, err)
		}
		if twice != once {
			t.Errorf("Parse not idempotent: %q became %q", once, twice)
		}
	}
}

func TestSupportedLanguages(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	langs := numerals.SupportedLanguages()
	if len(langs) != 4 {
		t.Fatalf("SupportedLanguages() = %v, want 4 languages", langs)
	}
	supported := map[string]bool{}
	for _, lang := range langs {
		supported[lang] = true
	}
	for _, lang := range []string{"en", "es", "hi", "ru"} {
		if !supported[lang] {
			t.Errorf("language %q missing from %v", lang, langs)
		}
	}
	if def := numerals.DefaultLanguage(); !supported[def] {
		t.Errorf("DefaultLanguage() = %q, not a supported language", def)
	}
}
