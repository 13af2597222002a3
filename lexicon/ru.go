package lexicon

// Russian: short scale. Hundreds are additive single words ("двести" = 200),
// units and power words carry gender and case variants ("одна", "две",
// "тысяча"/"тысячи"/"тысяч").
func init() {
	register(definition{
		code:  "ru",
		scale: ShortScale,
		units: map[string]int64{
			"ноль":   0,
			"нуль":   0,
			"один":   1,
			"одна":   1,
			"одно":   1,
			"два":    2,
			"две":    2,
			"три":    3,
			"четыре": 4,
			"пять":   5,
			"шесть":  6,
			"семь":   7,
			"восемь": 8,
			"девять": 9,
		},
		directs: map[string]int64{
			"десять":       10,
			"одиннадцать":  11,
			"двенадцать":   12,
			"тринадцать":   13,
			"четырнадцать": 14,
			"пятнадцать":   15,
			"шестнадцать":  16,
			"семнадцать":   17,
			"восемнадцать": 18,
			"девятнадцать": 19,
		},
		tens: map[string]int64{
			"двадцать":    20,
			"тридцать":    30,
			"сорок":       40,
			"пятьдесят":   50,
			"шестьдесят":  60,
			"семьдесят":   70,
			"восемьдесят": 80,
			"девяносто":   90,
		},
		hundreds: map[string]int64{
			"сто":       100,
			"двести":    200,
			"триста":    300,
			"четыреста": 400,
			"пятьсот":   500,
			"шестьсот":  600,
			"семьсот":   700,
			"восемьсот": 800,
			"девятьсот": 900,
		},
		bigPowers: map[string]int64{
			"тысяча":     1_000,
			"тысячи":     1_000,
			"тысяч":      1_000,
			"миллион":    1_000_000,
			"миллиона":   1_000_000,
			"миллионов":  1_000_000,
			"миллиард":   1_000_000_000,
			"миллиарда":  1_000_000_000,
			"миллиардов": 1_000_000_000,
		},
		skipWords: []string{"и"},
	})
}
