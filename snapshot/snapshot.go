package snapshot

import (
	"fmt"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/redact"
)

// Snapshot is a read-only view of a project's stored configuration at the
// start of a scan.
type Snapshot struct {
	ProjectID    string
	TakenAt      time.Time
	Environments []Environment

	// RecentActivity is the project's audit trail for the last day, newest
	// first.
	RecentActivity []Activity
}

type Environment struct {
	ID        string
	Name      string
	Variables []Variable
}

type Variable struct {
	Key   string
	Value string
}

func (v Variable) String() string {
	return fmt.Sprintf("%s=%s", v.Key, redact.Mask(v.Value))
}

func (v Variable) GoString() string {
	return v.String()
}

type Activity struct {
	Action       string
	ResourceType string
	Details      string
	At           time.Time
}

// Values lists every variable value, for checking text before it is logged.
func (s Snapshot) Values() []string {
	var values []string
	for _, env := range s.Environments {
		for _, v := range env.Variables {
			values = append(values, v.Value)
		}
	}
	return values
}

func (s Snapshot) VariableCount() int {
	var n int
	for _, env := range s.Environments {
		n += len(env.Variables)
	}
	return n
}

//go:generate counterfeiter . Source

type Source interface {
	Snapshot(logger lager.Logger, projectID string) (Snapshot, error)
}
