package audit

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/db"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 100

	// SystemActor is shown for events without a resolvable user.
	SystemActor = "System"

	actionAll = "all"
)

var ErrInvalidEvent = errors.New("invalid audit event")

type Filter struct {
	Search string
	Action string
}

func (f Filter) action() string {
	action := strings.TrimSpace(f.Action)
	if strings.EqualFold(action, actionAll) {
		return ""
	}
	return action
}

type Page struct {
	Limit  int
	Offset int
}

// Normalize applies the default page size and clamps oversized requests.
func (p Page) Normalize() Page {
	switch {
	case p.Limit <= 0:
		p.Limit = DefaultPageSize
	case p.Limit > MaxPageSize:
		p.Limit = MaxPageSize
	}

	if p.Offset < 0 {
		p.Offset = 0
	}

	return p
}

// Entry is an event together with the display name of its actor.
type Entry struct {
	db.AuditEvent

	User string `json:"user"`
}

//go:generate counterfeiter . Log

type Log interface {
	Record(lager.Logger, db.AuditEvent) (db.AuditEvent, error)
	Query(lager.Logger, string, Filter, Page) ([]Entry, error)
	Export(lager.Logger, io.Writer, string, Filter) error
}

type auditLog struct {
	events   db.AuditEventRepository
	profiles db.ProfileRepository
}

func NewLog(events db.AuditEventRepository, profiles db.ProfileRepository) Log {
	return &auditLog{
		events:   events,
		profiles: profiles,
	}
}

// Record appends a single event outside of any pipeline transaction.
func (l *auditLog) Record(logger lager.Logger, event db.AuditEvent) (db.AuditEvent, error) {
	logger = logger.Session("record", lager.Data{
		"project":  event.ProjectID,
		"action":   event.Action,
		"resource": event.ResourceType,
	})

	if err := validate(event); err != nil {
		logger.Info("rejected", lager.Data{"reason": err.Error()})
		return db.AuditEvent{}, err
	}

	event.ID = ""
	event.CreatedAt = time.Time{}

	if err := l.events.Append(logger, &event); err != nil {
		return db.AuditEvent{}, err
	}

	return event, nil
}

func (l *auditLog) Query(logger lager.Logger, projectID string, filter Filter, page Page) ([]Entry, error) {
	logger = logger.Session("query", lager.Data{"project": projectID})
	logger.Debug("starting")
	defer logger.Debug("done")

	page = page.Normalize()

	query := db.AuditEventQuery{
		ProjectID: projectID,
		Action:    filter.action(),
		Limit:     page.Limit,
		Offset:    page.Offset,
	}
	l.applySearch(logger, &query, filter)

	events, err := l.events.Query(logger, query)
	if err != nil {
		return nil, err
	}

	return l.entries(logger, events), nil
}

func (l *auditLog) applySearch(logger lager.Logger, query *db.AuditEventQuery, filter Filter) {
	query.Search = strings.TrimSpace(filter.Search)
	if query.Search == "" {
		return
	}

	ids, err := l.profiles.Search(logger, query.Search)
	if err != nil {
		logger.Info("actor-search-unavailable")
		return
	}

	query.ActorIDs = ids
}

func (l *auditLog) entries(logger lager.Logger, events []db.AuditEvent) []Entry {
	var ids []string
	seen := map[string]bool{}
	for _, e := range events {
		if e.UserID != nil && !seen[*e.UserID] {
			seen[*e.UserID] = true
			ids = append(ids, *e.UserID)
		}
	}

	profiles, err := l.profiles.FindAll(logger, ids)
	if err != nil {
		logger.Info("actor-lookup-unavailable")
		profiles = nil
	}

	entries := make([]Entry, 0, len(events))
	for _, e := range events {
		entries = append(entries, Entry{
			AuditEvent: e,
			User:       displayName(e.UserID, profiles),
		})
	}

	return entries
}

func displayName(userID *string, profiles map[string]db.Profile) string {
	if userID == nil {
		return SystemActor
	}

	profile, found := profiles[*userID]
	if !found {
		return SystemActor
	}

	if profile.Email != "" {
		return profile.Email
	}

	if profile.FullName != "" {
		return profile.FullName
	}

	return SystemActor
}

func validate(event db.AuditEvent) error {
	var missing []string
	if strings.TrimSpace(event.ProjectID) == "" {
		missing = append(missing, "project_id")
	}
	if strings.TrimSpace(event.Action) == "" {
		missing = append(missing, "action")
	}
	if strings.TrimSpace(event.ResourceType) == "" {
		missing = append(missing, "resource_type")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidEvent, strings.Join(missing, ", "))
	}

	return nil
}
