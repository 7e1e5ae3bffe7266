package api

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/tedsuo/rata"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/lgctx"
	"github.com/pivotal-cf/cred-audit/lifecycle"
	"github.com/pivotal-cf/cred-audit/models"
)

type findingHandler struct {
	manager  lifecycle.Manager
	findings db.FindingRepository
}

type transitionRequest struct {
	Status         string `json:"status"`
	ExpectedStatus string `json:"expected_status"`
	Notes          string `json:"notes"`
}

func (h *findingHandler) list(w http.ResponseWriter, r *http.Request) {
	logger := lgctx.WithSession(r.Context(), "list-findings")

	filter, err := findingFilter(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	findings, err := h.findings.List(logger, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if findings == nil {
		findings = []db.Finding{}
	}

	render.JSON(w, r, findings)
}

func findingFilter(r *http.Request) (db.FindingFilter, error) {
	query := r.URL.Query()

	p, err := page(r)
	if err != nil {
		return db.FindingFilter{}, err
	}

	filter := db.FindingFilter{
		ProjectID: rata.Param(r, "project_id"),
		ScanID:    query.Get("scan_id"),
		Limit:     p.Limit,
		Offset:    p.Offset,
	}

	if raw := query.Get("status"); raw != "" {
		status, err := models.ParseFindingStatus(raw)
		if err != nil {
			return db.FindingFilter{}, badRequest("%s", err)
		}
		filter.Status = status
	}

	if raw := query.Get("severity"); raw != "" {
		severity, err := models.ParseSeverity(raw)
		if err != nil {
			return db.FindingFilter{}, badRequest("%s", err)
		}
		filter.Severity = severity
	}

	return filter, nil
}

func (h *findingHandler) get(w http.ResponseWriter, r *http.Request) {
	logger := lgctx.WithSession(r.Context(), "get-finding")

	finding, err := h.findings.Find(logger, rata.Param(r, "finding_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, finding)
}

func (h *findingHandler) transition(w http.ResponseWriter, r *http.Request) {
	logger := lgctx.WithSession(r.Context(), "transition-finding")

	var req transitionRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	status, err := models.ParseFindingStatus(req.Status)
	if err != nil {
		writeError(w, r, badRequest("%s", err))
		return
	}

	var expected models.FindingStatus
	if req.ExpectedStatus != "" {
		expected, err = models.ParseFindingStatus(req.ExpectedStatus)
		if err != nil {
			writeError(w, r, badRequest("%s", err))
			return
		}
	}

	finding, err := h.manager.Transition(logger, lifecycle.TransitionRequest{
		FindingID:      rata.Param(r, "finding_id"),
		ExpectedStatus: expected,
		Status:         status,
		Actor:          actorFrom(r),
		Notes:          req.Notes,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, finding)
}
