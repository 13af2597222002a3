package lexicon

// Spanish: short scale. Hundreds from 200 upward are additive words with
// masculine and feminine forms ("doscientos"/"doscientas"); the 21–29 range
// is written as single direct words ("veintitrés"). Accented spellings are
// normalized at load time, so "dieciséis" and "dieciseis" both match.
func init() {
	register(definition{
		code:  "es",
		scale: ShortScale,
		units: map[string]int64{
			"cero":   0,
			"un":     1,
			"uno":    1,
			"una":    1,
			"dos":    2,
			"tres":   3,
			"cuatro": 4,
			"cinco":  5,
			"seis":   6,
			"siete":  7,
			"ocho":   8,
			"nueve":  9,
		},
		directs: map[string]int64{
			"diez":         10,
			"once":         11,
			"doce":         12,
			"trece":        13,
			"catorce":      14,
			"quince":       15,
			"dieciséis":    16,
			"diecisiete":   17,
			"dieciocho":    18,
			"diecinueve":   19,
			"veintiuno":    21,
			"veintiuna":    21,
			"veintiún":     21,
			"veintidós":    22,
			"veintitrés":   23,
			"veinticuatro": 24,
			"veinticinco":  25,
			"veintiséis":   26,
			"veintisiete":  27,
			"veintiocho":   28,
			"veintinueve":  29,
		},
		tens: map[string]int64{
			"veinte":    20,
			"treinta":   30,
			"cuarenta":  40,
			"cincuenta": 50,
			"sesenta":   60,
			"setenta":   70,
			"ochenta":   80,
			"noventa":   90,
		},
		hundreds: map[string]int64{
			"cien":          100,
			"ciento":        100,
			"doscientos":    200,
			"doscientas":    200,
			"trescientos":   300,
			"trescientas":   300,
			"cuatrocientos": 400,
			"cuatrocientas": 400,
			"quinientos":    500,
			"quinientas":    500,
			"seiscientos":   600,
			"seiscientas":   600,
			"setecientos":   700,
			"setecientas":   700,
			"ochocientos":   800,
			"ochocientas":   800,
			"novecientos":   900,
			"novecientas":   900,
		},
		bigPowers: map[string]int64{
			"mil":      1_000,
			"millón":   1_000_000,
			"millones": 1_000_000,
			"billón":   1_000_000_000_000,
			"billones": 1_000_000_000_000,
		},
		skipWords: []string{"y"},
	})
}
