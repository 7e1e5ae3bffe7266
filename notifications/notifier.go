package notifications

import (
	"fmt"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/models"
)

//go:generate counterfeiter . Notifier

type Notifier interface {
	Send(lager.Logger, []Notification) error
}

const (
	KindFinding = "finding"
	KindLeak    = "leak"
)

// Notification describes a newly recorded finding or leak. It never carries
// the exposed value.
type Notification struct {
	ProjectID string
	ScanID    string

	Kind     string
	ID       string
	Severity models.Severity
	Category string
	Location string
}

func (n Notification) Summary() string {
	if n.Location == "" {
		return fmt.Sprintf("%s %s", n.Category, n.Kind)
	}

	return fmt.Sprintf("%s %s at %s", n.Category, n.Kind, n.Location)
}

// Urgent reports whether the notification is severe enough to page someone.
func Urgent(n Notification) bool {
	return !models.SeverityHigh.HigherThan(n.Severity)
}
