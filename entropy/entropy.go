package entropy

import (
	"unicode/utf8"

	"github.com/nbutton23/zxcvbn-go"
)

const suspectThreshold = 3.7

// PerCharacter is the zxcvbn entropy estimate of candidate divided by its
// length.
func PerCharacter(candidate string) float64 {
	n := utf8.RuneCountInString(candidate)
	if n == 0 {
		return 0
	}

	match := zxcvbn.PasswordStrength(candidate, []string{})

	return match.Entropy / float64(n)
}

func IsPasswordSuspect(candidate string) bool {
	return PerCharacter(candidate) > suspectThreshold
}
