/*
Package numerals converts numbers written in natural language into their
integer values, and locates and replaces such phrases inside free text.

Typical Usage

Single numbers are parsed with ParseNumber or — for ranking words like
"third" — ParseOrdinal:

  n, err := numerals.ParseNumber("two hundred thousand", "en")   // n = 200000
  n, err := numerals.ParseOrdinal("twenty third", "en")          // n = 23

Parse rewrites every resolvable number phrase inside a sentence, leaving
everything else untouched:

  s, err := numerals.Parse("I have twenty three apples and one orange.", "en")
  // s = "I have 23 apples and 1 orange."

The empty language code selects a default language derived from the process
environment, falling back to English. Requesting a language outside the
supported set (see SupportedLanguages) fails with an
UnsupportedLanguageError; it is never silently replaced by a default.

How it works

Word tables, token classification and the ordinal-to-cardinal surface
transform live in package lexicon. The numeral grammar itself — the
incremental accumulator that decides, token by token, whether a word extends
the number under construction or marks the boundary to a new one — lives in
package grammar. Package scan provides the raw tokenizer and the
sentence-level replacer. This package ties them together and adds the
single-number resolution semantics: an input resolves only if the grammar
produced exactly one number from it.

All operations are pure, single-pass and free of shared mutable state;
lexicons are immutable after construction, so arbitrary concurrent calls are
safe without locking.

______________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package numerals

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to numerals .
func tracer() tracing.Trace {
	return tracing.Select("numerals")
}
