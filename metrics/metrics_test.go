package metrics_test

import (
	"strings"

	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/pivotal-cf/cred-audit/metrics"
)

var _ = Describe("Emitter", func() {
	var (
		logger   *lagertest.TestLogger
		registry *prometheus.Registry
		emitter  metrics.Emitter
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("metrics")
		registry = prometheus.NewRegistry()
		emitter = metrics.BuildEmitter(true, "test", registry)
	})

	It("counts increments across lookups of the same name", func() {
		emitter.Counter("engine.scans-completed").Inc(logger)
		emitter.Counter("engine.scans-completed").IncN(logger, 2)
		emitter.Counter("engine.scans-completed").IncN(logger, -1)

		expected := `
# HELP cred_audit_engine_scans_completed_total engine.scans-completed
# TYPE cred_audit_engine_scans_completed_total counter
cred_audit_engine_scans_completed_total{environment="test"} 3
`
		Expect(testutil.GatherAndCompare(registry, strings.NewReader(expected), "cred_audit_engine_scans_completed_total")).To(Succeed())
	})

	It("sets gauges to the latest value", func() {
		gauge := emitter.Gauge("reporter.open_findings")
		gauge.Update(logger, 4)
		gauge.Update(logger, 7)

		expected := `
# HELP cred_audit_reporter_open_findings reporter.open_findings
# TYPE cred_audit_reporter_open_findings gauge
cred_audit_reporter_open_findings{environment="test"} 7
`
		Expect(testutil.GatherAndCompare(registry, strings.NewReader(expected), "cred_audit_reporter_open_findings")).To(Succeed())
	})

	It("times the given function", func() {
		called := false
		emitter.Timer("engine.scan_duration").Time(logger, func() { called = true })

		Expect(called).To(BeTrue())

		families, err := registry.Gather()
		Expect(err).NotTo(HaveOccurred())
		Expect(families).To(HaveLen(1))
		Expect(families[0].GetName()).To(Equal("cred_audit_engine_scan_duration_seconds"))
		Expect(families[0].GetMetric()[0].GetHistogram().GetSampleCount()).To(BeEquivalentTo(1))
	})

	Context("when metrics are disabled", func() {
		BeforeEach(func() {
			emitter = metrics.BuildEmitter(false, "test", registry)
		})

		It("registers nothing but still runs timed functions", func() {
			emitter.Counter("engine.scans-completed").Inc(logger)
			emitter.Gauge("reporter.open_findings").Update(logger, 1)

			called := false
			emitter.Timer("engine.scan_duration").Time(logger, func() { called = true })
			Expect(called).To(BeTrue())

			families, err := registry.Gather()
			Expect(err).NotTo(HaveOccurred())
			Expect(families).To(BeEmpty())
		})
	})
})
