package audit

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/db"
)

const (
	dateLayout     = "2006-01-02 15:04:05"
	filenameLayout = "20060102T150405Z"
)

var exportHeader = []string{"Date", "User", "Action", "Resource Type", "Details"}

func ExportFilename(projectID string, at time.Time) string {
	return fmt.Sprintf("audit-logs-%s-%s.csv", projectID, at.UTC().Format(filenameLayout))
}

// Export writes every event matching filter as CSV, newest first. Pages are
// walked with a cursor so that events appended during the export do not
// shift later pages.
func (l *auditLog) Export(logger lager.Logger, w io.Writer, projectID string, filter Filter) error {
	logger = logger.Session("export", lager.Data{"project": projectID})
	logger.Debug("starting")
	defer logger.Debug("done")

	out := csv.NewWriter(w)
	if err := out.Write(exportHeader); err != nil {
		return err
	}

	query := db.AuditEventQuery{
		ProjectID: projectID,
		Action:    filter.action(),
		Limit:     MaxPageSize,
	}
	l.applySearch(logger, &query, filter)

	rows := 0
	for {
		events, err := l.events.Query(logger, query)
		if err != nil {
			return err
		}

		for _, entry := range l.entries(logger, events) {
			if err := out.Write(exportRow(entry)); err != nil {
				logger.Error("failed-to-write-row", err)
				return err
			}
			rows++
		}

		if len(events) < query.Limit {
			break
		}

		last := events[len(events)-1]
		query.Before = &db.AuditCursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	out.Flush()
	if err := out.Error(); err != nil {
		logger.Error("failed-to-flush", err)
		return err
	}

	logger.Info("exported", lager.Data{"rows": rows})

	return nil
}

func exportRow(entry Entry) []string {
	metadata := entry.Metadata
	if metadata == nil {
		metadata = db.PropertyMap{}
	}
	details, _ := json.Marshal(metadata)

	return []string{
		entry.CreatedAt.UTC().Format(dateLayout),
		entry.User,
		entry.Action,
		entry.ResourceType,
		string(details),
	}
}
