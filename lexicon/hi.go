package lexicon

// Hindi: long scale — groups grow up to 9999 before a power word closes
// them, and the power words follow the Indian numbering system (सौ 100,
// हज़ार 1000, लाख 1e5, करोड़ 1e7, अरब 1e9). Tokenization splits on
// whitespace only (spaceDelimited), since word/non-word splitting breaks
// apart Devanagari clusters.
func init() {
	register(definition{
		code:           "hi",
		scale:          LongScale,
		spaceDelimited: true,
		units: map[string]int64{
			"शून्य": 0,
			"एक":    1,
			"दो":    2,
			"तीन":   3,
			"चार":   4,
			"पाँच":  5,
			"पांच":  5,
			"छह":    6,
			"छः":    6,
			"सात":   7,
			"आठ":    8,
			"नौ":    9,
		},
		// Every number from 10 to 99 is an irregular single word.
		directs: map[string]int64{
			"दस":        10,
			"ग्यारह":    11,
			"बारह":      12,
			"तेरह":      13,
			"चौदह":      14,
			"पंद्रह":    15,
			"सोलह":      16,
			"सत्रह":     17,
			"अठारह":     18,
			"उन्नीस":    19,
			"इक्कीस":    21,
			"बाईस":      22,
			"तेईस":      23,
			"चौबीस":     24,
			"पच्चीस":    25,
			"छब्बीस":    26,
			"सत्ताईस":   27,
			"अट्ठाईस":   28,
			"उनतीस":     29,
			"इकतीस":     31,
			"बत्तीस":    32,
			"तैंतीस":    33,
			"चौंतीस":    34,
			"पैंतीस":    35,
			"छत्तीस":    36,
			"सैंतीस":    37,
			"अड़तीस":    38,
			"उनतालीस":   39,
			"इकतालीस":   41,
			"बयालीस":    42,
			"तैंतालीस":  43,
			"चौवालीस":   44,
			"पैंतालीस":  45,
			"छियालीस":   46,
			"सैंतालीस":  47,
			"अड़तालीस":  48,
			"उनचास":     49,
			"इक्यावन":   51,
			"बावन":      52,
			"तिरपन":     53,
			"चौवन":      54,
			"पचपन":      55,
			"छप्पन":     56,
			"सत्तावन":   57,
			"अट्ठावन":   58,
			"उनसठ":      59,
			"इकसठ":      61,
			"बासठ":      62,
			"तिरसठ":     63,
			"चौंसठ":     64,
			"पैंसठ":     65,
			"छियासठ":    66,
			"सड़सठ":     67,
			"अड़सठ":     68,
			"उनहत्तर":   69,
			"इकहत्तर":   71,
			"बहत्तर":    72,
			"तिहत्तर":   73,
			"चौहत्तर":   74,
			"पचहत्तर":   75,
			"छिहत्तर":   76,
			"सतहत्तर":   77,
			"अठहत्तर":   78,
			"उनासी":     79,
			"इक्यासी":   81,
			"बयासी":     82,
			"तिरासी":    83,
			"चौरासी":    84,
			"पचासी":     85,
			"छियासी":    86,
			"सतासी":     87,
			"अट्ठासी":   88,
			"नवासी":     89,
			"इक्यानवे":  91,
			"बानवे":     92,
			"तिरानवे":   93,
			"चौरानवे":   94,
			"पचानवे":    95,
			"छियानवे":   96,
			"सत्तानवे":  97,
			"अट्ठानवे":  98,
			"निन्यानवे": 99,
		},
		tens: map[string]int64{
			"बीस":   20,
			"तीस":   30,
			"चालीस": 40,
			"पचास":  50,
			"साठ":   60,
			"सत्तर": 70,
			"अस्सी": 80,
			"नब्बे": 90,
		},
		hundreds: map[string]int64{},
		bigPowers: map[string]int64{
			"सौ":    100,
			"हज़ार": 1_000,
			"हजार":  1_000,
			"लाख":   100_000,
			"करोड़": 10_000_000,
			"करोड":  10_000_000,
			"अरब":   1_000_000_000,
		},
		skipWords: []string{"और"},
	})
}
