package numerals

import (
	jj "github.com/cloudfoundry/jibber_jabber"

	"github.com/npillmayer/numerals/lexicon"
)

// UnsupportedLanguageError reports a request for a language code outside the
// supported set.
type UnsupportedLanguageError = lexicon.UnsupportedLanguageError

// SupportedLanguages lists the supported language codes in lexical order.
func SupportedLanguages() []string {
	return lexicon.Supported()
}

// DefaultLanguage determines the language used when the empty language code
// is given: the language of the user's environment locale, if that is a
// supported language, otherwise English.
func DefaultLanguage() string {
	userLanguage, err := jj.DetectLanguage()
	if err != nil {
		tracer().Infof("no user locale detected, default language is en")
		return "en"
	}
	if _, err := lexicon.For(userLanguage); err != nil {
		tracer().Infof("user locale %q is not supported, default language is en", userLanguage)
		return "en"
	}
	tracer().Debugf("detected user language %q", userLanguage)
	return userLanguage
}

// lexiconFor resolves a language code, empty meaning DefaultLanguage.
func lexiconFor(lang string) (*lexicon.Lexicon, error) {
	if lang == "" {
		lang = DefaultLanguage()
	}
	return lexicon.For(lang)
}
