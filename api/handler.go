package api

import (
	"net/http"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/rata"

	"github.com/pivotal-cf/cred-audit/audit"
	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/engine"
	"github.com/pivotal-cf/cred-audit/leaks"
	"github.com/pivotal-cf/cred-audit/lifecycle"
)

func NewHandler(
	logger lager.Logger,
	clock clock.Clock,
	scanEngine engine.Engine,
	dispatcher engine.Dispatcher,
	repos db.Repositories,
	findingManager lifecycle.Manager,
	leakRegistry leaks.Registry,
	auditLog audit.Log,
	statsRepository db.StatsRepository,
) (http.Handler, error) {
	scans := &scanHandler{
		engine:     scanEngine,
		dispatcher: dispatcher,
		scans:      repos.Scans,
	}
	findings := &findingHandler{
		manager:  findingManager,
		findings: repos.Findings,
	}
	leakHandler := &leakHandler{
		registry: leakRegistry,
		leaks:    repos.Leaks,
	}
	auditHandler := &auditHandler{
		clock: clock,
		log:   auditLog,
	}
	statsHandler := &statsHandler{
		stats: statsRepository,
	}

	handlers := rata.Handlers{
		StartScan: requireActor(http.HandlerFunc(scans.start)),
		ListScans: http.HandlerFunc(scans.list),
		GetScan:   http.HandlerFunc(scans.get),

		ListFindings:      http.HandlerFunc(findings.list),
		GetFinding:        http.HandlerFunc(findings.get),
		TransitionFinding: requireActor(http.HandlerFunc(findings.transition)),

		ListLeaks:   http.HandlerFunc(leakHandler.list),
		GetLeak:     http.HandlerFunc(leakHandler.get),
		ResolveLeak: requireActor(http.HandlerFunc(leakHandler.resolve)),

		QueryAudit:  http.HandlerFunc(auditHandler.query),
		RecordAudit: requireActor(http.HandlerFunc(auditHandler.record)),
		ExportAudit: http.HandlerFunc(auditHandler.export),

		GetStats: http.HandlerFunc(statsHandler.get),
	}

	for name, handler := range handlers {
		handlers[name] = withLogger(logger, name, handler)
	}

	return rata.NewRouter(Routes, handlers)
}
