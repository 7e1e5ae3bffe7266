package api

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/tedsuo/rata"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/engine"
	"github.com/pivotal-cf/cred-audit/lgctx"
	"github.com/pivotal-cf/cred-audit/models"
)

type scanHandler struct {
	engine     engine.Engine
	dispatcher engine.Dispatcher
	scans      db.ScanRepository
}

type startScanRequest struct {
	ScanType string `json:"scan_type"`
}

type startScanResponse struct {
	ID     string            `json:"id"`
	Status models.ScanStatus `json:"status"`
}

func (h *scanHandler) start(w http.ResponseWriter, r *http.Request) {
	logger := lgctx.WithSession(r.Context(), "start-scan")

	var req startScanRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if req.ScanType == "" {
		req.ScanType = string(models.ScanTypeManual)
	}

	scanType, err := models.ParseScanType(req.ScanType)
	if err != nil {
		writeError(w, r, badRequest("%s", err))
		return
	}

	actor := actorFrom(r)
	scan, err := h.engine.Start(logger, rata.Param(r, "project_id"), scanType, &actor)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.dispatcher.Dispatch(logger, scan)

	render.Status(r, http.StatusAccepted)
	render.JSON(w, r, startScanResponse{
		ID:     scan.ID,
		Status: scan.Status,
	})
}

func (h *scanHandler) list(w http.ResponseWriter, r *http.Request) {
	logger := lgctx.WithSession(r.Context(), "list-scans")

	p, err := page(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	scans, err := h.scans.ListByProject(logger, rata.Param(r, "project_id"), p.Limit, p.Offset)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if scans == nil {
		scans = []db.Scan{}
	}

	render.JSON(w, r, scans)
}

func (h *scanHandler) get(w http.ResponseWriter, r *http.Request) {
	logger := lgctx.WithSession(r.Context(), "get-scan")

	scan, err := h.scans.Find(logger, rata.Param(r, "scan_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, scan)
}
