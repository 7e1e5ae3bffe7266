package models

import (
	"fmt"
	"sort"
	"time"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Severities lists every severity from most to least severe.
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
}

func ParseSeverity(s string) (Severity, error) {
	for _, severity := range Severities {
		if string(severity) == s {
			return severity, nil
		}
	}

	return "", fmt.Errorf("unknown severity: %q", s)
}

// Rank orders severities so that a lower rank is more severe. Unknown
// values rank below low.
func (s Severity) Rank() int {
	for i, severity := range Severities {
		if severity == s {
			return i
		}
	}

	return len(Severities)
}

func (s Severity) Valid() bool {
	return s.Rank() < len(Severities)
}

// HigherThan is true only when s is strictly more severe than other.
func (s Severity) HigherThan(other Severity) bool {
	return s.Rank() < other.Rank()
}

func MaxSeverity(severities ...Severity) Severity {
	max := SeverityLow
	for _, s := range severities {
		if s.HigherThan(max) {
			max = s
		}
	}
	return max
}

// SeverityCounts buckets a set of findings by severity.
type SeverityCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

func (c *SeverityCounts) Add(s Severity, n int) {
	switch s {
	case SeverityCritical:
		c.Critical += n
	case SeverityHigh:
		c.High += n
	case SeverityMedium:
		c.Medium += n
	case SeverityLow:
		c.Low += n
	}
}

func (c SeverityCounts) Total() int {
	return c.Critical + c.High + c.Medium + c.Low
}

// Ranked is anything that can be placed in severity order.
type Ranked interface {
	RankSeverity() Severity
	RankTime() time.Time
}

// SortBySeverity sorts most severe first; equal severities are ordered by
// detection time, newest first.
func SortBySeverity(items []Ranked) {
	sort.SliceStable(items, func(i, j int) bool {
		return Before(items[i], items[j])
	})
}

func Before(a, b Ranked) bool {
	ra, rb := a.RankSeverity().Rank(), b.RankSeverity().Rank()
	if ra != rb {
		return ra < rb
	}

	return a.RankTime().After(b.RankTime())
}
