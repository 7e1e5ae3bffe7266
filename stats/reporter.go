package stats

import (
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/ifrit"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/metrics"
)

type reporter struct {
	logger lager.Logger
	clock  clock.Clock
	db     db.StatsRepository

	interval time.Duration

	leaksGauge            metrics.Gauge
	unresolvedLeaksGauge  metrics.Gauge
	criticalLeaksGauge    metrics.Gauge
	highLeaksGauge        metrics.Gauge
	findingsGauge         metrics.Gauge
	openFindingsGauge     metrics.Gauge
	resolvedFindingsGauge metrics.Gauge
}

func NewReporter(
	logger lager.Logger,
	clock clock.Clock,
	interval time.Duration,
	db db.StatsRepository,
	emitter metrics.Emitter,
) ifrit.Runner {
	return &reporter{
		logger: logger,
		clock:  clock,
		db:     db,

		interval: interval,

		leaksGauge:            emitter.Gauge("reporter.leak_count"),
		unresolvedLeaksGauge:  emitter.Gauge("reporter.unresolved_leak_count"),
		criticalLeaksGauge:    emitter.Gauge("reporter.critical_leak_count"),
		highLeaksGauge:        emitter.Gauge("reporter.high_leak_count"),
		findingsGauge:         emitter.Gauge("reporter.finding_count"),
		openFindingsGauge:     emitter.Gauge("reporter.open_finding_count"),
		resolvedFindingsGauge: emitter.Gauge("reporter.resolved_finding_count"),
	}
}

func (r *reporter) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := r.logger.Session("reporter", lager.Data{
		"interval": r.interval.String(),
	})
	logger.Info("starting")
	defer logger.Info("done")

	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	close(ready)

	for {
		select {
		case <-ticker.C():
			r.reportStats(logger)
		case <-signals:
			return nil
		}
	}
}

func (r *reporter) reportStats(logger lager.Logger) {
	stats, err := r.db.SecurityStats(logger, "")
	if err != nil {
		logger.Error("failed-to-get-security-stats", err)
		return
	}

	r.leaksGauge.Update(logger, float32(stats.TotalLeaks))
	r.unresolvedLeaksGauge.Update(logger, float32(stats.UnresolvedLeaks))
	r.criticalLeaksGauge.Update(logger, float32(stats.CriticalLeaks))
	r.highLeaksGauge.Update(logger, float32(stats.HighLeaks))
	r.findingsGauge.Update(logger, float32(stats.TotalFindings))
	r.openFindingsGauge.Update(logger, float32(stats.OpenFindings))
	r.resolvedFindingsGauge.Update(logger, float32(stats.ResolvedFindings))
}
