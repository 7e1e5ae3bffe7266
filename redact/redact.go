// Package redact masks secret material before it is stored or displayed.
//
// A masked value keeps its first and last two characters around a fixed run
// of eight mask characters, so neither the secret nor its length survives.
// Values too short to spare four characters are replaced by the mask alone.
package redact

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pivotal-cf/cred-audit/models"
)

const (
	MaskChar = '*'

	keep       = 2
	maskWidth  = 8
	shortLimit = 8
)

var mask = strings.Repeat(string(MaskChar), maskWidth)

func Mask(value string) string {
	runes := []rune(value)
	if len(runes) <= shortLimit {
		return mask
	}

	return string(runes[:keep]) + mask + string(runes[len(runes)-keep:])
}

// Verify refuses any sample that is not in one of the two shapes Mask
// produces. The empty sample is allowed.
func Verify(field, sample string) error {
	if sample == "" || sample == mask {
		return nil
	}

	if utf8.RuneCountInString(sample) != keep+maskWidth+keep {
		return models.RedactionViolationError{Field: field, Reason: "sample is not masked"}
	}

	runes := []rune(sample)
	for _, r := range runes[keep : keep+maskWidth] {
		if r != MaskChar {
			return models.RedactionViolationError{Field: field, Reason: "sample is not masked"}
		}
	}

	return nil
}

// Contains reports whether text carries any of the given values verbatim.
// Values no longer than the mask only count as whole words, so that a short
// password is caught without every substring of the text matching.
func Contains(text string, values ...string) bool {
	for _, v := range values {
		if v == "" {
			continue
		}

		if utf8.RuneCountInString(v) > shortLimit {
			if strings.Contains(text, v) {
				return true
			}
			continue
		}

		if containsWord(text, v) {
			return true
		}
	}

	return false
}

func containsWord(text, word string) bool {
	for offset := 0; offset < len(text); {
		i := strings.Index(text[offset:], word)
		if i < 0 {
			return false
		}

		start := offset + i
		end := start + len(word)

		before, _ := utf8.DecodeLastRuneInString(text[:start])
		after, _ := utf8.DecodeRuneInString(text[end:])
		if !isWordRune(before) && !isWordRune(after) {
			return true
		}

		_, size := utf8.DecodeRuneInString(text[start:])
		offset = start + size
	}

	return false
}

func isWordRune(r rune) bool {
	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
