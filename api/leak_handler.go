package api

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/tedsuo/rata"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/leaks"
	"github.com/pivotal-cf/cred-audit/lgctx"
	"github.com/pivotal-cf/cred-audit/models"
)

type leakHandler struct {
	registry leaks.Registry
	leaks    db.LeakRepository
}

type resolveLeakRequest struct {
	Notes string `json:"notes"`
}

func (h *leakHandler) list(w http.ResponseWriter, r *http.Request) {
	logger := lgctx.WithSession(r.Context(), "list-leaks")

	p, err := page(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	unresolved, err := boolParam(r, "unresolved")
	if err != nil {
		writeError(w, r, err)
		return
	}

	filter := db.LeakFilter{
		ProjectID:  r.URL.Query().Get("project_id"),
		Unresolved: unresolved,
		Limit:      p.Limit,
		Offset:     p.Offset,
	}

	if raw := r.URL.Query().Get("severity"); raw != "" {
		severity, err := models.ParseSeverity(raw)
		if err != nil {
			writeError(w, r, badRequest("%s", err))
			return
		}
		filter.Severity = severity
	}

	found, err := h.leaks.List(logger, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if found == nil {
		found = []db.Leak{}
	}

	render.JSON(w, r, found)
}

func (h *leakHandler) get(w http.ResponseWriter, r *http.Request) {
	logger := lgctx.WithSession(r.Context(), "get-leak")

	leak, err := h.leaks.Find(logger, rata.Param(r, "leak_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, leak)
}

func (h *leakHandler) resolve(w http.ResponseWriter, r *http.Request) {
	logger := lgctx.WithSession(r.Context(), "resolve-leak")

	var req resolveLeakRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	leak, err := h.registry.Resolve(logger, rata.Param(r, "leak_id"), actorFrom(r), req.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, leak)
}
