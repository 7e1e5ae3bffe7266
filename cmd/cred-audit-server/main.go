package main

import (
	"fmt"
	"log"
	"net/http"
	"net/http/pprof"
	"os"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/sqs"
	flags "github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/ifrit/sigmon"

	"github.com/pivotal-cf/cred-audit/api"
	"github.com/pivotal-cf/cred-audit/audit"
	"github.com/pivotal-cf/cred-audit/config"
	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/db/migrations"
	"github.com/pivotal-cf/cred-audit/engine"
	"github.com/pivotal-cf/cred-audit/leaks"
	"github.com/pivotal-cf/cred-audit/lifecycle"
	"github.com/pivotal-cf/cred-audit/logging"
	"github.com/pivotal-cf/cred-audit/metrics"
	"github.com/pivotal-cf/cred-audit/notifications"
	"github.com/pivotal-cf/cred-audit/rules"
	"github.com/pivotal-cf/cred-audit/stats"
)

func main() {
	var opts config.ServerOpts

	_, err := flags.Parse(&opts)
	if err != nil {
		os.Exit(1)
	}

	cfg, err := opts.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := cfg.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %s\n", err)
		os.Exit(1)
	}

	logger := lager.NewLogger("cred-audit-server")
	logger.RegisterSink(lager.NewWriterSink(os.Stdout, logLevel(cfg.LogLevel)))

	if cfg.Metrics.SentryDSN != "" {
		sink, err := logging.NewSentrySink(cfg.Metrics.SentryDSN, cfg.Metrics.Environment)
		if err != nil {
			log.Fatalf("sentry error: %s", err)
		}
		logger.RegisterSink(sink)
	}

	logger.Info("starting")

	driver, dsn := cfg.Database.DSN()
	database, err := migrations.LockDBAndMigrate(logger, driver, dsn)
	if err != nil {
		log.Fatalf("db error: %s", err)
	}
	database.LogMode(false)

	clock := clock.NewClock()
	registry := prometheus.NewRegistry()
	emitter := metrics.BuildEmitter(cfg.Metrics.Enabled, cfg.Metrics.Environment, registry)

	var notifier notifications.Notifier
	if cfg.Slack.WebhookURL != "" {
		notifier = notifications.NewSlackNotifier(cfg.Slack.WebhookURL, cfg.Slack.Channel, clock, notifications.NewSlackNotificationFormatter())
	} else {
		notifier = notifications.NewNullNotifier()
	}

	store := db.NewStore(database, clock)
	findingManager := lifecycle.NewManager(store)
	leakRegistry := leaks.NewRegistry(store)
	auditLog := audit.NewLog(store.Repositories().Audit, store.Profiles())

	scanEngine := engine.New(
		clock,
		store.Projects(),
		store,
		db.NewSnapshotSource(database, clock),
		rules.DefaultTable(),
		findingManager,
		leakRegistry,
		notifier,
		emitter,
	)
	dispatcher := engine.NewAsyncDispatcher(scanEngine)

	handler, err := api.NewHandler(
		logger,
		clock,
		scanEngine,
		dispatcher,
		store.Repositories(),
		findingManager,
		leakRegistry,
		auditLog,
		store.Stats(),
	)
	if err != nil {
		log.Fatalf("failed-to-build-router: %s", err)
	}

	members := []grouper.Member{
		{Name: "dispatcher", Runner: dispatcher},
		{Name: "watchdog", Runner: engine.NewWatchdog(logger, clock, store, cfg.WatchdogInterval, cfg.ScanTimeout, emitter)},
		{Name: "stats-reporter", Runner: stats.NewReporter(logger, clock, cfg.StatsInterval, store.Stats(), emitter)},
	}

	if cfg.ScheduledScans {
		scheduleRunner := engine.NewScheduleRunner()
		members = append(members,
			grouper.Member{Name: "schedule-runner", Runner: scheduleRunner},
			grouper.Member{Name: "project-scheduler", Runner: engine.NewProjectScheduler(logger, store.Projects(), scheduleRunner, scanEngine)},
		)
	}

	if cfg.IsSQSConfigured() {
		sess, err := session.NewSession(aws.NewConfig().WithRegion(cfg.SQS.Region))
		if err != nil {
			log.Fatalf("aws error: %s", err)
		}

		members = append(members, grouper.Member{
			Name:   "trigger-listener",
			Runner: engine.NewTriggerListener(logger, sqs.New(sess), cfg.SQS.QueueName, scanEngine, dispatcher, emitter),
		})
	}

	members = append(members,
		grouper.Member{Name: "api", Runner: http_server.New(fmt.Sprintf(":%d", cfg.Port), handler)},
		grouper.Member{Name: "debug", Runner: http_server.New(fmt.Sprintf("127.0.0.1:%d", cfg.DebugPort), debugHandler(registry))},
	)

	runner := sigmon.New(grouper.NewOrdered(os.Interrupt, members))

	err = <-ifrit.Invoke(runner).Wait()
	if err != nil {
		log.Fatalf("failed-to-start: %s", err)
	}
}

func logLevel(level string) lager.LogLevel {
	switch level {
	case "debug":
		return lager.DEBUG
	case "error":
		return lager.ERROR
	default:
		return lager.INFO
	}
}

func debugHandler(gatherer prometheus.Gatherer) http.Handler {
	debugRouter := http.NewServeMux()
	debugRouter.Handle("/debug/pprof/", http.HandlerFunc(pprof.Index))
	debugRouter.Handle("/debug/pprof/cmdline", http.HandlerFunc(pprof.Cmdline))
	debugRouter.Handle("/debug/pprof/profile", http.HandlerFunc(pprof.Profile))
	debugRouter.Handle("/debug/pprof/symbol", http.HandlerFunc(pprof.Symbol))
	debugRouter.Handle("/debug/pprof/trace", http.HandlerFunc(pprof.Trace))
	debugRouter.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	return debugRouter
}
