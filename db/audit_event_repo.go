package db

import (
	"strings"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/jinzhu/gorm"
)

// AuditCursor marks a position in the newest-first ordering of events.
type AuditCursor struct {
	CreatedAt time.Time
	ID        string
}

type AuditEventQuery struct {
	ProjectID string

	// Before restricts the result to events strictly older than the cursor.
	Before *AuditCursor

	// Search is matched case-insensitively against action and resource type.
	// Events by any of ActorIDs match as well.
	Search   string
	ActorIDs []string

	Action string
	Limit  int
	Offset int
}

//go:generate counterfeiter . AuditEventRepository

type AuditEventRepository interface {
	Append(lager.Logger, *AuditEvent) error
	Query(lager.Logger, AuditEventQuery) ([]AuditEvent, error)
	Since(lager.Logger, string, time.Time) ([]AuditEvent, error)
}

type auditEventRepository struct {
	db    *gorm.DB
	clock clock.Clock
}

func NewAuditEventRepository(db *gorm.DB, clock clock.Clock) AuditEventRepository {
	return &auditEventRepository{
		db:    db,
		clock: clock,
	}
}

func (r *auditEventRepository) Append(logger lager.Logger, event *AuditEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = r.clock.Now().UTC()
	}
	if event.Metadata == nil {
		event.Metadata = PropertyMap{}
	}

	if err := r.db.Create(event).Error; err != nil {
		logger.Error("failed-to-append-audit-event", err, lager.Data{
			"project":  event.ProjectID,
			"action":   event.Action,
			"resource": event.ResourceType,
		})
		return err
	}

	return nil
}

// Query returns a page of a project's events, newest first.
func (r *auditEventRepository) Query(logger lager.Logger, q AuditEventQuery) ([]AuditEvent, error) {
	query := r.db.Model(&AuditEvent{}).Where("project_id = ?", q.ProjectID)

	if q.Action != "" {
		query = query.Where("action = ?", q.Action)
	}

	if q.Before != nil {
		at := q.Before.CreatedAt.UTC()
		query = query.Where("(created_at < ? OR (created_at = ? AND id < ?))", at, at, q.Before.ID)
	}

	if search := strings.ToLower(strings.TrimSpace(q.Search)); search != "" {
		pattern := "%" + escapeLike(search) + "%"

		if len(q.ActorIDs) > 0 {
			query = query.Where(
				"(lower(action) LIKE ? ESCAPE '!' OR lower(resource_type) LIKE ? ESCAPE '!' OR user_id IN (?))",
				pattern, pattern, q.ActorIDs,
			)
		} else {
			query = query.Where(
				"(lower(action) LIKE ? ESCAPE '!' OR lower(resource_type) LIKE ? ESCAPE '!')",
				pattern, pattern,
			)
		}
	}

	if q.Limit > 0 {
		query = query.Limit(q.Limit).Offset(q.Offset)
	}

	var events []AuditEvent
	err := query.Order("created_at desc, id desc").Find(&events).Error
	if err != nil {
		logger.Error("failed-to-query-audit-events", err, lager.Data{"project": q.ProjectID})
		return nil, err
	}

	return events, nil
}

func (r *auditEventRepository) Since(logger lager.Logger, projectID string, since time.Time) ([]AuditEvent, error) {
	var events []AuditEvent
	err := r.db.
		Where("project_id = ? AND created_at >= ?", projectID, since.UTC()).
		Order("created_at desc, id desc").
		Find(&events).Error
	if err != nil {
		logger.Error("failed-to-find-recent-audit-events", err, lager.Data{"project": projectID})
		return nil, err
	}

	return events, nil
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
