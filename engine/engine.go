package engine

import (
	"errors"
	"fmt"
	"strings"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"

	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/leaks"
	"github.com/pivotal-cf/cred-audit/lifecycle"
	"github.com/pivotal-cf/cred-audit/metrics"
	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/notifications"
	"github.com/pivotal-cf/cred-audit/redact"
	"github.com/pivotal-cf/cred-audit/rules"
	"github.com/pivotal-cf/cred-audit/snapshot"
)

const (
	scansStartedMetric    = "engine.scans_started"
	scansCompletedMetric  = "engine.scans_completed"
	scansFailedMetric     = "engine.scans_failed"
	scansRejectedMetric   = "engine.scans_rejected"
	findingsCreatedMetric = "engine.findings_created"
	leaksRegisteredMetric = "engine.leaks_registered"
	scanDurationMetric    = "engine.scan_duration"
)

const (
	stageSnapshot  = "snapshot"
	stageRules     = "rules"
	stageReconcile = "reconcile"
	stageLeaks     = "leaks"
)

//go:generate counterfeiter . Engine

type Engine interface {
	Start(lager.Logger, string, models.ScanType, *string) (db.Scan, error)
	Execute(lager.Logger, db.Scan) (db.Scan, error)
	RunScan(lager.Logger, string, models.ScanType, *string) (db.Scan, error)
}

type engine struct {
	clock    clock.Clock
	projects db.ProjectRepository
	store    db.Transactor
	source   snapshot.Source
	table    rules.Table
	findings lifecycle.Manager
	leaks    leaks.Registry
	notifier notifications.Notifier

	startedCounter   metrics.Counter
	completedCounter metrics.Counter
	failedCounter    metrics.Counter
	rejectedCounter  metrics.Counter
	findingsCounter  metrics.Counter
	leaksCounter     metrics.Counter
	durationTimer    metrics.Timer
}

func New(
	clock clock.Clock,
	projects db.ProjectRepository,
	store db.Transactor,
	source snapshot.Source,
	table rules.Table,
	findings lifecycle.Manager,
	leaks leaks.Registry,
	notifier notifications.Notifier,
	emitter metrics.Emitter,
) Engine {
	return &engine{
		clock:    clock,
		projects: projects,
		store:    store,
		source:   source,
		table:    table,
		findings: findings,
		leaks:    leaks,
		notifier: notifier,

		startedCounter:   emitter.Counter(scansStartedMetric),
		completedCounter: emitter.Counter(scansCompletedMetric),
		failedCounter:    emitter.Counter(scansFailedMetric),
		rejectedCounter:  emitter.Counter(scansRejectedMetric),
		findingsCounter:  emitter.Counter(findingsCreatedMetric),
		leaksCounter:     emitter.Counter(leaksRegisteredMetric),
		durationTimer:    emitter.Timer(scanDurationMetric),
	}
}

// Start records a running scan for the project and takes its scan lock. It
// does no detection work.
func (e *engine) Start(logger lager.Logger, projectID string, scanType models.ScanType, triggeredBy *string) (db.Scan, error) {
	logger = logger.Session("start", lager.Data{
		"project": projectID,
		"type":    scanType,
	})

	if _, err := models.ParseScanType(string(scanType)); err != nil {
		return db.Scan{}, err
	}

	if _, err := e.projects.Find(logger, projectID); err != nil {
		return db.Scan{}, err
	}

	scan := db.Scan{
		ProjectID:    projectID,
		ScanType:     scanType,
		TriggeredBy:  triggeredBy,
		RulesVersion: rules.RulesVersion,
	}

	err := e.store.Transact(logger, func(repos db.Repositories) error {
		if err := repos.Scans.Start(logger, &scan); err != nil {
			return err
		}

		return repos.Audit.Append(logger, &db.AuditEvent{
			ProjectID:    projectID,
			UserID:       triggeredBy,
			Action:       models.ActionCreated,
			ResourceType: models.ResourceScan,
			ResourceID:   scan.ID,
			Metadata: db.PropertyMap{
				"scan_type":     string(scanType),
				"rules_version": scan.RulesVersion,
			},
		})
	})
	if errors.Is(err, models.ErrScanInProgress) {
		e.rejectedCounter.Inc(logger)
		return db.Scan{}, err
	}
	if err != nil {
		logger.Error("failed-to-start-scan", err)
		return db.Scan{}, err
	}

	e.startedCounter.Inc(logger)
	logger.Info("started", lager.Data{"scan": scan.ID})

	return scan, nil
}

type progress struct {
	variables  int
	evaluated  []string
	failed     []string
	summary    lifecycle.Summary
	leaks      leaks.SyncResult
	detections int
}

func (p progress) results() db.PropertyMap {
	failed := p.failed
	if failed == nil {
		failed = []string{}
	}

	return db.PropertyMap{
		"rules_version":       rules.RulesVersion,
		"variables_scanned":   p.variables,
		"rules_evaluated":     len(p.evaluated),
		"rules_failed":        failed,
		"detections":          p.detections,
		"created":             p.summary.Created,
		"escalated":           p.summary.Escalated,
		"duplicates":          p.summary.Duplicates,
		"leaks_registered":    p.leaks.Registered,
		"leaks_existing":      p.leaks.Existing,
		"leaks_auto_resolved": p.leaks.AutoResolved,
	}
}

// Execute runs detection for a started scan and moves it to completed or
// failed. Findings persisted before a failure are kept.
func (e *engine) Execute(logger lager.Logger, scan db.Scan) (db.Scan, error) {
	logger = logger.Session("execute", lager.Data{
		"scan":    scan.ID,
		"project": scan.ProjectID,
	})
	logger.Info("starting")
	defer logger.Info("done")

	var (
		finished db.Scan
		err      error
	)

	e.durationTimer.Time(logger, func() {
		finished, err = e.execute(logger, scan)
	})

	return finished, err
}

func (e *engine) execute(logger lager.Logger, scan db.Scan) (db.Scan, error) {
	var p progress

	snap, err := e.source.Snapshot(logger, scan.ProjectID)
	if err != nil {
		return e.fail(logger, scan, p, stageSnapshot, err, snapshot.Snapshot{})
	}
	p.variables = snap.VariableCount()

	result, ruleErr := e.table.Evaluate(logger, snap)
	p.evaluated = result.Evaluated
	p.failed = result.Failed
	p.detections = len(result.Detections)

	findings, summary, err := e.findings.Reconcile(logger, scan, result.Detections)
	if errors.Is(err, models.ErrScanNotRunning) {
		return e.abandon(logger, scan)
	}
	if err != nil {
		return e.fail(logger, scan, p, stageReconcile, err, snap)
	}
	p.summary = summary

	var signals []models.LeakSignal
	for _, d := range result.Detections {
		if d.Leak != nil {
			signals = append(signals, *d.Leak)
		}
	}

	synced, err := e.leaks.Sync(logger, scan, signals, ruleErr == nil)
	if errors.Is(err, models.ErrScanNotRunning) {
		return e.abandon(logger, scan)
	}
	if err != nil {
		return e.fail(logger, scan, p, stageLeaks, err, snap)
	}
	p.leaks = synced

	e.notify(logger, scan, findings, synced.Leaks)

	if ruleErr != nil {
		return e.fail(logger, scan, p, stageRules, ruleErr, snap)
	}

	finished, err := e.finish(logger, scan, models.ScanStatusCompleted, p.results(), "")
	if err != nil {
		return db.Scan{}, err
	}

	e.completedCounter.Inc(logger)
	e.findingsCounter.IncN(logger, summary.Created)
	e.leaksCounter.IncN(logger, synced.Registered)

	return finished, nil
}

func (e *engine) RunScan(logger lager.Logger, projectID string, scanType models.ScanType, triggeredBy *string) (db.Scan, error) {
	scan, err := e.Start(logger, projectID, scanType, triggeredBy)
	if err != nil {
		return db.Scan{}, err
	}

	return e.Execute(logger, scan)
}

// abandon gives up on a scan that was finished elsewhere, usually by the
// watchdog, and reports the scan as it now stands.
func (e *engine) abandon(logger lager.Logger, scan db.Scan) (db.Scan, error) {
	logger.Info("abandoned-scan")

	var current db.Scan
	err := e.store.Transact(logger, func(repos db.Repositories) error {
		var err error
		current, err = repos.Scans.Find(logger, scan.ID)
		return err
	})
	if err != nil {
		return db.Scan{}, err
	}

	return current, models.ErrScanNotRunning
}

func (e *engine) fail(logger lager.Logger, scan db.Scan, p progress, stage string, cause error, snap snapshot.Snapshot) (db.Scan, error) {
	reason := secretFreeReason(stage, cause, snap)
	logger.Info("scan-failed", lager.Data{"stage": stage, "reason": reason})

	finished, err := e.finish(logger, scan, models.ScanStatusFailed, p.results(), reason)
	if err != nil {
		return db.Scan{}, err
	}

	e.failedCounter.Inc(logger)

	return finished, models.ScanExecutionError{
		ScanID: scan.ID,
		Stage:  stage,
		Err:    errors.New(reason),
	}
}

func (e *engine) finish(logger lager.Logger, scan db.Scan, status models.ScanStatus, results db.PropertyMap, reason string) (db.Scan, error) {
	var (
		finished db.Scan
		stale    error
	)

	err := e.store.Transact(logger, func(repos db.Repositories) error {
		var err error
		finished, err = repos.Scans.Finish(logger, scan.ID, status, results, reason)
		if errors.Is(err, models.ErrInvalidTransition) {
			// keep the recount Finish made
			stale = err
			return nil
		}
		if err != nil {
			return err
		}

		return appendScanFinished(logger, repos, finished)
	})
	if err != nil {
		logger.Error("failed-to-finish-scan", err)
		return db.Scan{}, err
	}
	if stale != nil {
		logger.Info("scan-already-finished", lager.Data{"status": finished.Status})
		return finished, stale
	}

	return finished, nil
}

func appendScanFinished(logger lager.Logger, repos db.Repositories, scan db.Scan) error {
	counts := scan.Counts()

	metadata := db.PropertyMap{
		"status":                  string(scan.Status),
		"critical_findings_count": counts.Critical,
		"high_findings_count":     counts.High,
		"medium_findings_count":   counts.Medium,
		"low_findings_count":      counts.Low,
	}
	if scan.Error != "" {
		metadata["error"] = scan.Error
	}

	return repos.Audit.Append(logger, &db.AuditEvent{
		ProjectID:    scan.ProjectID,
		Action:       models.ActionUpdated,
		ResourceType: models.ResourceScan,
		ResourceID:   scan.ID,
		Metadata:     metadata,
	})
}

func (e *engine) notify(logger lager.Logger, scan db.Scan, findings []db.Finding, registered []db.Leak) {
	var batch []notifications.Notification

	for _, f := range findings {
		if f.ScanID != scan.ID {
			continue
		}

		batch = append(batch, notifications.Notification{
			ProjectID: scan.ProjectID,
			ScanID:    scan.ID,
			Kind:      notifications.KindFinding,
			ID:        f.ID,
			Severity:  f.Severity,
			Category:  string(f.FindingType),
			Location:  f.Location,
		})
	}

	for _, l := range registered {
		if l.ScanID != scan.ID {
			continue
		}

		batch = append(batch, notifications.Notification{
			ProjectID: scan.ProjectID,
			ScanID:    scan.ID,
			Kind:      notifications.KindLeak,
			ID:        l.ID,
			Severity:  l.Severity,
			Category:  string(l.DetectionType),
			Location:  l.Source,
		})
	}

	var urgent []notifications.Notification
	for _, n := range batch {
		if notifications.Urgent(n) {
			urgent = append(urgent, n)
		}
	}

	if len(urgent) == 0 {
		return
	}

	if err := e.notifier.Send(logger, urgent); err != nil {
		logger.Error("failed-to-notify", err)
	}
}

// secretFreeReason describes a failure without repeating any variable value
// from the snapshot.
func secretFreeReason(stage string, cause error, snap snapshot.Snapshot) string {
	reason := fmt.Sprintf("%s: %s", stage, cause)

	if redact.Contains(reason, snap.Values()...) {
		return stage + ": failed with an error that referenced a variable value"
	}

	return strings.TrimSpace(reason)
}
