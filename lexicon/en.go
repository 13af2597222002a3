package lexicon

// English: short scale, "hundred" and above are multiplying powers of ten,
// "and" may be interspersed ("one hundred and twenty"). English is the only
// supported language with ordinal surface rules.
func init() {
	register(definition{
		code:  "en",
		scale: ShortScale,
		units: map[string]int64{
			"zero":  0,
			"one":   1,
			"two":   2,
			"three": 3,
			"four":  4,
			"five":  5,
			"six":   6,
			"seven": 7,
			"eight": 8,
			"nine":  9,
		},
		directs: map[string]int64{
			"ten":       10,
			"eleven":    11,
			"twelve":    12,
			"thirteen":  13,
			"fourteen":  14,
			"fifteen":   15,
			"sixteen":   16,
			"seventeen": 17,
			"eighteen":  18,
			"nineteen":  19,
		},
		tens: map[string]int64{
			"twenty":  20,
			"thirty":  30,
			"forty":   40,
			"fifty":   50,
			"sixty":   60,
			"seventy": 70,
			"eighty":  80,
			"ninety":  90,
		},
		hundreds: map[string]int64{},
		bigPowers: map[string]int64{
			"hundred":  100,
			"thousand": 1_000,
			"million":  1_000_000,
			"billion":  1_000_000_000,
			"trillion": 1_000_000_000_000,
		},
		skipWords: []string{"and"},
		ordinalIrregulars: map[string]string{
			"first":   "one",
			"second":  "two",
			"third":   "three",
			"fifth":   "five",
			"eighth":  "eight",
			"ninth":   "nine",
			"twelfth": "twelve",
		},
		ordinalSuffixes: []suffixRule{
			{suffix: "ieth", replacement: "y"}, // twentieth → twenty
			{suffix: "th", replacement: ""},    // fourth → four
		},
	})
}
