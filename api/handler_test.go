package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/cred-audit/api"
	"github.com/pivotal-cf/cred-audit/audit"
	"github.com/pivotal-cf/cred-audit/db"
	"github.com/pivotal-cf/cred-audit/engine/enginefakes"
	"github.com/pivotal-cf/cred-audit/leaks"
	"github.com/pivotal-cf/cred-audit/lifecycle"
	"github.com/pivotal-cf/cred-audit/models"
)

var _ = Describe("Handler", func() {
	var (
		logger     *lagertest.TestLogger
		clock      *fakeclock.FakeClock
		store      *db.Store
		fakeEngine *enginefakes.FakeEngine
		dispatcher *enginefakes.FakeDispatcher
		registry   leaks.Registry
		project    db.Project

		handler http.Handler
	)

	BeforeEach(func() {
		logger = lagertest.NewTestLogger("api")
		clock = fakeclock.NewFakeClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
		store = db.NewStore(dbRunner.GormDB(), clock)
		fakeEngine = &enginefakes.FakeEngine{}
		dispatcher = &enginefakes.FakeDispatcher{}
		registry = leaks.NewRegistry(store)

		project = db.Project{Name: "project"}
		Expect(store.Projects().Create(logger, &project)).To(Succeed())

		repos := store.Repositories()

		var err error
		handler, err = api.NewHandler(
			logger,
			clock,
			fakeEngine,
			dispatcher,
			repos,
			lifecycle.NewManager(store),
			registry,
			audit.NewLog(repos.Audit, store.Profiles()),
			store.Stats(),
		)
		Expect(err).NotTo(HaveOccurred())
	})

	request := func(method, path, body, actor string) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}

		req := httptest.NewRequest(method, path, reader)
		req.Header.Set("Content-Type", "application/json")
		if actor != "" {
			req.Header.Set(api.ActorHeader, actor)
		}

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)
		return recorder
	}

	decode := func(recorder *httptest.ResponseRecorder, v interface{}) {
		ExpectWithOffset(1, json.Unmarshal(recorder.Body.Bytes(), v)).To(Succeed())
	}

	startScan := func() db.Scan {
		scan := db.Scan{ProjectID: project.ID, ScanType: models.ScanTypeManual}
		Expect(store.Repositories().Scans.Start(logger, &scan)).To(Succeed())
		return scan
	}

	createFinding := func(scan db.Scan, variable string, severity models.Severity) db.Finding {
		finding := db.Finding{
			ScanID:         scan.ID,
			ProjectID:      project.ID,
			FindingType:    models.FindingTypeExposedInCode,
			Severity:       severity,
			VariableName:   variable,
			Description:    "exposed",
			Recommendation: "rotate it",
		}
		Expect(store.Repositories().Findings.Create(logger, &finding)).To(Succeed())
		return finding
	}

	Describe("POST /projects/:project_id/scans", func() {
		BeforeEach(func() {
			fakeEngine.StartReturns(db.Scan{
				Model:     db.Model{ID: "scan-1"},
				ProjectID: project.ID,
				Status:    models.ScanStatusRunning,
			}, nil)
		})

		It("starts and dispatches the scan on behalf of the actor", func() {
			recorder := request("POST", "/projects/"+project.ID+"/scans", `{"scan_type":"manual"}`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusAccepted))

			var body map[string]string
			decode(recorder, &body)
			Expect(body).To(Equal(map[string]string{"id": "scan-1", "status": "running"}))

			Expect(fakeEngine.StartCallCount()).To(Equal(1))
			_, projectID, scanType, triggeredBy := fakeEngine.StartArgsForCall(0)
			Expect(projectID).To(Equal(project.ID))
			Expect(scanType).To(Equal(models.ScanTypeManual))
			Expect(*triggeredBy).To(Equal("user-1"))

			Expect(dispatcher.DispatchCallCount()).To(Equal(1))
			_, dispatched := dispatcher.DispatchArgsForCall(0)
			Expect(dispatched.ID).To(Equal("scan-1"))
		})

		It("defaults to a manual scan when no body is given", func() {
			recorder := request("POST", "/projects/"+project.ID+"/scans", "", "user-1")
			Expect(recorder.Code).To(Equal(http.StatusAccepted))

			_, _, scanType, _ := fakeEngine.StartArgsForCall(0)
			Expect(scanType).To(Equal(models.ScanTypeManual))
		})

		It("requires an actor", func() {
			recorder := request("POST", "/projects/"+project.ID+"/scans", `{"scan_type":"manual"}`, "")
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
			Expect(fakeEngine.StartCallCount()).To(BeZero())
		})

		It("rejects an unknown scan type", func() {
			recorder := request("POST", "/projects/"+project.ID+"/scans", `{"scan_type":"weekly"}`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
			Expect(fakeEngine.StartCallCount()).To(BeZero())
		})

		It("rejects a malformed body", func() {
			recorder := request("POST", "/projects/"+project.ID+"/scans", `{"scan_type":`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("conflicts while another scan of the project is running", func() {
			fakeEngine.StartReturns(db.Scan{}, models.ErrScanInProgress)

			recorder := request("POST", "/projects/"+project.ID+"/scans", `{"scan_type":"manual"}`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusConflict))
			Expect(dispatcher.DispatchCallCount()).To(BeZero())
		})

		It("is not found for an unknown project", func() {
			fakeEngine.StartReturns(db.Scan{}, models.NotFoundError{Resource: "project", ID: "nope"})

			recorder := request("POST", "/projects/nope/scans", `{"scan_type":"manual"}`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GET /scans/:scan_id", func() {
		It("returns the scan", func() {
			scan := startScan()

			recorder := request("GET", "/scans/"+scan.ID, "", "")
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var body db.Scan
			decode(recorder, &body)
			Expect(body.ID).To(Equal(scan.ID))
			Expect(body.Status).To(Equal(models.ScanStatusRunning))
		})

		It("is not found for an unknown scan", func() {
			Expect(request("GET", "/scans/nope", "", "").Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GET /projects/:project_id/scans", func() {
		It("lists the project's scans", func() {
			scan := startScan()

			recorder := request("GET", "/projects/"+project.ID+"/scans", "", "")
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var body []db.Scan
			decode(recorder, &body)
			Expect(body).To(HaveLen(1))
			Expect(body[0].ID).To(Equal(scan.ID))
		})

		It("returns an empty list rather than null", func() {
			recorder := request("GET", "/projects/other/scans", "", "")
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(recorder.Body.String())).To(Equal("[]"))
		})

		It("rejects a malformed limit", func() {
			Expect(request("GET", "/projects/"+project.ID+"/scans?limit=many", "", "").Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("findings", func() {
		var finding db.Finding

		BeforeEach(func() {
			scan := startScan()
			finding = createFinding(scan, "API_KEY", models.SeverityHigh)
			createFinding(scan, "DEBUG_TOKEN", models.SeverityLow)
		})

		It("lists findings by severity", func() {
			recorder := request("GET", "/projects/"+project.ID+"/findings?severity=high", "", "")
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var body []db.Finding
			decode(recorder, &body)
			Expect(body).To(HaveLen(1))
			Expect(body[0].ID).To(Equal(finding.ID))
		})

		It("rejects an unknown status filter", func() {
			recorder := request("GET", "/projects/"+project.ID+"/findings?status=closed", "", "")
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns a single finding", func() {
			recorder := request("GET", "/findings/"+finding.ID, "", "")
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var body db.Finding
			decode(recorder, &body)
			Expect(body.VariableName).To(Equal("API_KEY"))
		})

		It("acknowledges and then resolves a finding", func() {
			recorder := request("POST", "/findings/"+finding.ID+"/transitions", `{"status":"acknowledged"}`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusOK))

			recorder = request("POST", "/findings/"+finding.ID+"/transitions", `{"status":"resolved","expected_status":"acknowledged"}`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var body db.Finding
			decode(recorder, &body)
			Expect(body.Status).To(Equal(models.FindingStatusResolved))
			Expect(body.ResolvedAt).NotTo(BeNil())
			Expect(*body.ResolvedBy).To(Equal("user-1"))

			recorder = request("GET", "/projects/"+project.ID+"/findings?status=open", "", "")
			var open []db.Finding
			decode(recorder, &open)
			Expect(open).To(HaveLen(1))
			Expect(open[0].VariableName).To(Equal("DEBUG_TOKEN"))
		})

		It("reports the current status when the caller's view is stale", func() {
			recorder := request("POST", "/findings/"+finding.ID+"/transitions", `{"status":"resolved","expected_status":"acknowledged"}`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusConflict))

			var body map[string]string
			decode(recorder, &body)
			Expect(body["current_status"]).To(Equal("open"))
		})

		It("rejects transitions out of a terminal status", func() {
			Expect(request("POST", "/findings/"+finding.ID+"/transitions", `{"status":"false_positive"}`, "user-1").Code).To(Equal(http.StatusOK))

			recorder := request("POST", "/findings/"+finding.ID+"/transitions", `{"status":"open"}`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusConflict))
		})

		It("requires an actor to transition", func() {
			recorder := request("POST", "/findings/"+finding.ID+"/transitions", `{"status":"resolved"}`, "")
			Expect(recorder.Code).To(Equal(http.StatusUnauthorized))
		})

		It("is not found for an unknown finding", func() {
			recorder := request("POST", "/findings/nope/transitions", `{"status":"resolved"}`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("leaks", func() {
		var leak db.Leak

		BeforeEach(func() {
			var err error
			leak, err = registry.Register(logger, models.LeakSignal{
				ProjectID:     project.ID,
				DetectionType: models.DetectionTypeAPIKeyLeak,
				Severity:      models.SeverityCritical,
				Source:        "environment",
				Key:           "production/GITHUB_TOKEN",
				Description:   "token in production",
				Sample:        "gh********a1",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("lists unresolved leaks", func() {
			recorder := request("GET", "/leaks?unresolved=true&project_id="+project.ID, "", "")
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var body []db.Leak
			decode(recorder, &body)
			Expect(body).To(HaveLen(1))
			Expect(body[0].ID).To(Equal(leak.ID))
		})

		It("rejects a malformed unresolved flag", func() {
			Expect(request("GET", "/leaks?unresolved=sometimes", "", "").Code).To(Equal(http.StatusBadRequest))
		})

		It("resolves a leak once", func() {
			recorder := request("POST", "/leaks/"+leak.ID+"/resolve", `{"notes":"rotated"}`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var body db.Leak
			decode(recorder, &body)
			Expect(body.Resolved()).To(BeTrue())
			Expect(*body.ResolvedBy).To(Equal("user-1"))
			Expect(body.ResolutionNotes).To(Equal("rotated"))

			recorder = request("POST", "/leaks/"+leak.ID+"/resolve", `{"notes":"again"}`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusConflict))

			recorder = request("GET", "/leaks?unresolved=true", "", "")
			Expect(strings.TrimSpace(recorder.Body.String())).To(Equal("[]"))
		})

		It("is not found for an unknown leak", func() {
			Expect(request("GET", "/leaks/nope", "", "").Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("audit", func() {
		It("records events on behalf of the actor", func() {
			recorder := request("POST", "/projects/"+project.ID+"/audit", `{"action":"viewed","resource_type":"secret","resource_id":"secret-1","metadata":{"via":"dashboard"}}`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusCreated))

			var event db.AuditEvent
			decode(recorder, &event)
			Expect(event.ID).NotTo(BeEmpty())
			Expect(*event.UserID).To(Equal("user-1"))

			recorder = request("GET", "/projects/"+project.ID+"/audit?action=viewed", "", "")
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var entries []audit.Entry
			decode(recorder, &entries)
			Expect(entries).To(HaveLen(1))
			Expect(entries[0].ResourceID).To(Equal("secret-1"))
			Expect(entries[0].User).To(Equal(audit.SystemActor))
		})

		It("rejects incomplete events", func() {
			recorder := request("POST", "/projects/"+project.ID+"/audit", `{"resource_type":"secret"}`, "user-1")
			Expect(recorder.Code).To(Equal(http.StatusBadRequest))
		})

		It("exports the log as a CSV attachment", func() {
			request("POST", "/projects/"+project.ID+"/audit", `{"action":"viewed","resource_type":"secret"}`, "user-1")

			recorder := request("GET", "/projects/"+project.ID+"/audit/export", "", "")
			Expect(recorder.Code).To(Equal(http.StatusOK))
			Expect(recorder.Header().Get("Content-Type")).To(HavePrefix("text/csv"))
			Expect(recorder.Header().Get("Content-Disposition")).To(Equal(
				`attachment; filename="audit-logs-` + project.ID + `-20240301T120000Z.csv"`,
			))

			lines := strings.Split(strings.TrimSpace(recorder.Body.String()), "\n")
			Expect(lines).To(HaveLen(2))
			Expect(lines[0]).To(Equal("Date,User,Action,Resource Type,Details"))
			Expect(lines[1]).To(HavePrefix("2024-03-01 12:00:00,System,viewed,secret,"))
		})
	})

	Describe("GET /stats", func() {
		It("counts findings and leaks", func() {
			scan := startScan()
			createFinding(scan, "API_KEY", models.SeverityHigh)

			_, err := registry.Register(logger, models.LeakSignal{
				ProjectID:     project.ID,
				DetectionType: models.DetectionTypeEnvLeak,
				Severity:      models.SeverityHigh,
				Source:        "environment",
				Key:           "public-staging",
				Description:   "environment named as public",
			})
			Expect(err).NotTo(HaveOccurred())

			recorder := request("GET", "/stats?project_id="+project.ID, "", "")
			Expect(recorder.Code).To(Equal(http.StatusOK))

			var stats db.SecurityStats
			decode(recorder, &stats)
			Expect(stats).To(Equal(db.SecurityStats{
				TotalLeaks:      1,
				UnresolvedLeaks: 1,
				HighLeaks:       1,
				TotalFindings:   1,
				OpenFindings:    1,
			}))
		})
	})
})
