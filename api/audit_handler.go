package api

import (
	"bytes"
	"fmt"
	"net/http"

	"code.cloudfoundry.org/clock"
	"github.com/go-chi/render"
	"github.com/tedsuo/rata"

	"github.com/pivotal-cf/cred-audit/audit"
	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/lgctx"
)

type auditHandler struct {
	clock clock.Clock
	log   audit.Log
}

type recordEventRequest struct {
	Action       string                 `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   string                 `json:"resource_id"`
	Metadata     map[string]interface{} `json:"metadata"`
}

func filter(r *http.Request) audit.Filter {
	return audit.Filter{
		Search: r.URL.Query().Get("q"),
		Action: r.URL.Query().Get("action"),
	}
}

func (h *auditHandler) query(w http.ResponseWriter, r *http.Request) {
	logger := lgctx.WithSession(r.Context(), "query-audit")

	p, err := page(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	entries, err := h.log.Query(logger, rata.Param(r, "project_id"), filter(r), p)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if entries == nil {
		entries = []audit.Entry{}
	}

	render.JSON(w, r, entries)
}

func (h *auditHandler) record(w http.ResponseWriter, r *http.Request) {
	logger := lgctx.WithSession(r.Context(), "record-audit")

	var req recordEventRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	actor := actorFrom(r)
	event, err := h.log.Record(logger, db.AuditEvent{
		ProjectID:    rata.Param(r, "project_id"),
		UserID:       &actor,
		Action:       req.Action,
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		Metadata:     db.PropertyMap(req.Metadata),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, event)
}

func (h *auditHandler) export(w http.ResponseWriter, r *http.Request) {
	logger := lgctx.WithSession(r.Context(), "export-audit")

	projectID := rata.Param(r, "project_id")

	buf := &bytes.Buffer{}
	if err := h.log.Export(logger, buf, projectID, filter(r)); err != nil {
		writeError(w, r, err)
		return
	}

	filename := audit.ExportFilename(projectID, h.clock.Now())

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
