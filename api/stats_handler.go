package api

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/lgctx"
)

type statsHandler struct {
	stats db.StatsRepository
}

func (h *statsHandler) get(w http.ResponseWriter, r *http.Request) {
	logger := lgctx.WithSession(r.Context(), "get-stats")

	stats, err := h.stats.SecurityStats(logger, r.URL.Query().Get("project_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	render.JSON(w, r, stats)
}
