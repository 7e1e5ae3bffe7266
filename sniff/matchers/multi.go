package matchers

import "bytes"

// UpcasedMulti matches when any of its matchers match the upcased line.
// Offsets refer to the original line.
func UpcasedMulti(matchers ...Matcher) Matcher {
	return &upcasedMulti{
		matchers: matchers,
	}
}

type upcasedMulti struct {
	matchers []Matcher
}

func (m *upcasedMulti) Match(line []byte) (bool, int, int) {
	upcasedLine := bytes.ToUpper(line)
	for _, matcher := range m.matchers {
		if match, start, end := matcher.Match(upcasedLine); match {
			return true, start, end
		}
	}

	return false, 0, 0
}

// Upcased wraps a single matcher.
func Upcased(matcher Matcher) Matcher {
	return UpcasedMulti(matcher)
}
