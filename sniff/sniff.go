package sniff

import (
	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/sniff/matchers"
)

const bashStringInterpolationPattern = `"$`
const fakePattern = `FAKE`
const changePattern = `CHANGE`
const replacePattern = `REPLACE`
const examplePattern = `EXAMPLE`
const placeholderPattern = `<`

const awsAccessKeyIDPattern = `(^|[^A-Z0-9])AKIA[A-Z0-9]{16}`
const awsSecretAccessKeyPattern = `KEY["']?\s*(?::|=>|=)\s*["']?[A-Z0-9/\+=]{40}["']?`
const privateKeyHeaderPattern = `-----BEGIN(.*)PRIVATE KEY-----`
const jwtPattern = `EYJ[A-Z0-9_-]{8,}\.EYJ[A-Z0-9_-]{8,}\.[A-Z0-9_-]*`
const databaseURLPattern = `(POSTGRES|POSTGRESQL|MYSQL|MONGODB(\+SRV)?|REDIS|AMQP)://[^:/\s@]+:[^@\s]+@`
const stripeSecretKeyPattern = `(SK|RK)_LIVE_[A-Z0-9]{24,}`
const githubTokenPattern = `GH[POUSR]_[A-Z0-9]{36}`
const slackTokenPattern = `XOX[BAPRS]-[A-Z0-9-]{10,}`
const supabaseServiceKeyPattern = `SBP_[A-F0-9]{40}`

// Pattern is a known credential format.
type Pattern struct {
	Name          string
	Severity      models.Severity
	DetectionType models.DetectionType
	Matcher       matchers.Matcher
}

type Violation struct {
	Pattern       string
	Severity      models.Severity
	DetectionType models.DetectionType
	Start         int
	End           int
}

//go:generate counterfeiter . Sniffer

type Sniffer interface {
	Sniff(lager.Logger, []byte) []Violation
}

type sniffer struct {
	patterns         []Pattern
	exclusionMatcher matchers.Matcher
}

func NewSniffer(patterns []Pattern, exclusionMatcher matchers.Matcher) Sniffer {
	return &sniffer{
		patterns:         patterns,
		exclusionMatcher: exclusionMatcher,
	}
}

func DefaultPatterns() []Pattern {
	return []Pattern{
		{
			Name:          "aws-access-key-id",
			Severity:      models.SeverityCritical,
			DetectionType: models.DetectionTypeAPIKeyLeak,
			Matcher:       matchers.Upcased(matchers.Filter(matchers.Format(awsAccessKeyIDPattern), "AKIA")),
		},
		{
			Name:          "aws-secret-access-key",
			Severity:      models.SeverityCritical,
			DetectionType: models.DetectionTypeCredentialLeak,
			Matcher:       matchers.Upcased(matchers.Format(awsSecretAccessKeyPattern)),
		},
		{
			Name:          "private-key",
			Severity:      models.SeverityCritical,
			DetectionType: models.DetectionTypeCredentialLeak,
			Matcher:       matchers.Upcased(matchers.Format(privateKeyHeaderPattern)),
		},
		{
			Name:          "stripe-live-key",
			Severity:      models.SeverityCritical,
			DetectionType: models.DetectionTypeAPIKeyLeak,
			Matcher:       matchers.Upcased(matchers.Filter(matchers.Format(stripeSecretKeyPattern), "_LIVE_")),
		},
		{
			Name:          "database-url-with-password",
			Severity:      models.SeverityHigh,
			DetectionType: models.DetectionTypeCredentialLeak,
			Matcher:       matchers.Upcased(matchers.Filter(matchers.Format(databaseURLPattern), "://")),
		},
		{
			Name:          "json-web-token",
			Severity:      models.SeverityHigh,
			DetectionType: models.DetectionTypeAPIKeyLeak,
			Matcher:       matchers.Upcased(matchers.Filter(matchers.Format(jwtPattern), "EYJ")),
		},
		{
			Name:          "github-token",
			Severity:      models.SeverityHigh,
			DetectionType: models.DetectionTypeAPIKeyLeak,
			Matcher:       matchers.Upcased(matchers.Format(githubTokenPattern)),
		},
		{
			Name:          "slack-token",
			Severity:      models.SeverityHigh,
			DetectionType: models.DetectionTypeAPIKeyLeak,
			Matcher:       matchers.Upcased(matchers.Filter(matchers.Format(slackTokenPattern), "XOX")),
		},
		{
			Name:          "supabase-access-token",
			Severity:      models.SeverityHigh,
			DetectionType: models.DetectionTypeAPIKeyLeak,
			Matcher:       matchers.Upcased(matchers.Filter(matchers.Format(supabaseServiceKeyPattern), "SBP_")),
		},
	}
}

func DefaultExclusions() matchers.Matcher {
	return matchers.UpcasedMulti(
		matchers.Substring(bashStringInterpolationPattern),
		matchers.Substring(fakePattern),
		matchers.Substring(examplePattern),
		matchers.Substring(changePattern),
		matchers.Substring(replacePattern),
		matchers.Substring(placeholderPattern),
	)
}

func NewDefaultSniffer() Sniffer {
	return NewSniffer(DefaultPatterns(), DefaultExclusions())
}

// Sniff returns one violation per pattern that matches value. The value
// itself is never logged.
func (s *sniffer) Sniff(logger lager.Logger, value []byte) []Violation {
	if s.exclusionMatcher != nil {
		if match, _, _ := s.exclusionMatcher.Match(value); match {
			logger.Debug("excluded")
			return nil
		}
	}

	var violations []Violation
	for _, pattern := range s.patterns {
		if match, start, end := pattern.Matcher.Match(value); match {
			violations = append(violations, Violation{
				Pattern:       pattern.Name,
				Severity:      pattern.Severity,
				DetectionType: pattern.DetectionType,
				Start:         start,
				End:           end,
			})
		}
	}

	return violations
}
