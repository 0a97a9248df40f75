package codetable

import (
	"github.com/gucio32/morsekit/pkg/morseerr"
	"github.com/samber/lo"
)

const (
	Dot            = '.'
	Dash           = '-'
	CharSeparator  = " "
	WordSeparator  = "   "
	alphabetNotice = "Only dots (.), dashes (-), and spaces are allowed."
)

// IsMorseRune reports whether r belongs to the Morse wire alphabet.
func IsMorseRune(r rune) bool {
	return r == Dot || r == Dash || r == ' '
}

// CheckMorse fails with an input error when s is empty or holds runes
// outside the Morse alphabet. what names the argument in the message.
func CheckMorse(what, s string) error {
	if s == "" {
		return morseerr.Input("%s cannot be empty", what)
	}
	invalid := lo.Uniq(lo.Reject([]rune(s), func(r rune, _ int) bool {
		return IsMorseRune(r)
	}))
	if len(invalid) > 0 {
		return morseerr.InvalidChars(what, invalid, alphabetNotice)
	}
	return nil
}
