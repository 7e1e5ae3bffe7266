package engine

import (
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/tedsuo/ifrit"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/metrics"
	"github.com/pivotal-cf/cred-audit/models"
)

const scansTimedOutMetric = "engine.scans_timed_out"

type watchdog struct {
	logger   lager.Logger
	clock    clock.Clock
	store    db.Transactor
	interval time.Duration
	timeout  time.Duration

	timedOutCounter metrics.Counter
}

// NewWatchdog returns a runner that fails scans left running for longer than
// timeout and releases their project locks.
func NewWatchdog(
	logger lager.Logger,
	clock clock.Clock,
	store db.Transactor,
	interval time.Duration,
	timeout time.Duration,
	emitter metrics.Emitter,
) ifrit.Runner {
	return &watchdog{
		logger:   logger,
		clock:    clock,
		store:    store,
		interval: interval,
		timeout:  timeout,

		timedOutCounter: emitter.Counter(scansTimedOutMetric),
	}
}

func (w *watchdog) Run(signals <-chan os.Signal, ready chan<- struct{}) error {
	logger := w.logger.Session("watchdog", lager.Data{
		"interval": w.interval.String(),
		"timeout":  w.timeout.String(),
	})
	logger.Info("starting")
	defer logger.Info("done")

	ticker := w.clock.NewTicker(w.interval)
	defer ticker.Stop()

	close(ready)

	for {
		select {
		case <-ticker.C():
			w.expire(logger)
		case <-signals:
			return nil
		}
	}
}

func (w *watchdog) expire(logger lager.Logger) {
	cutoff := w.clock.Now().Add(-w.timeout)
	reason := fmt.Sprintf("scan timed out after %s", w.timeout)

	var stale []db.Scan
	err := w.store.Transact(logger, func(repos db.Repositories) error {
		var err error
		stale, err = repos.Scans.RunningSince(logger, cutoff)
		return err
	})
	if err != nil {
		logger.Error("failed-to-find-stale-scans", err)
		return
	}

	for _, scan := range stale {
		err := w.store.Transact(logger, func(repos db.Repositories) error {
			finished, err := repos.Scans.Finish(logger, scan.ID, models.ScanStatusFailed, db.PropertyMap{"timed_out": true}, reason)
			if err != nil {
				return err
			}

			return appendScanFinished(logger, repos, finished)
		})
		if err != nil {
			logger.Error("failed-to-expire-scan", err, lager.Data{"scan": scan.ID})
			continue
		}

		w.timedOutCounter.Inc(logger)
		logger.Info("expired-scan", lager.Data{"scan": scan.ID, "project": scan.ProjectID})
	}
}
