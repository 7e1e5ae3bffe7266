package notifications_test

import (
	"net/http"
	"time"

	"code.cloudfoundry.org/clock/fakeclock"
	"code.cloudfoundry.org/lager/lagertest"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/ghttp"

	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/notifications"
)

const expectedJSON = `
{
  "channel": "#security",
  "attachments": [
    {
      "fallback": "1 critical exposure in project project-1",
      "color": "danger",
      "title": "1 critical exposure in project project-1",
      "text": "• api_key_leak leak"
    }
  ]
}
`

var _ = Describe("SlackNotifier", func() {
	var (
		notifier notifications.Notifier

		clock  *fakeclock.FakeClock
		server *ghttp.Server
		logger *lagertest.TestLogger

		batch []notifications.Notification
	)

	BeforeEach(func() {
		server = ghttp.NewServer()
		clock = fakeclock.NewFakeClock(time.Now())
		logger = lagertest.NewTestLogger("slack-notifier")

		notifier = notifications.NewSlackNotifier(server.URL(), "security", clock, notifications.NewSlackNotificationFormatter())

		batch = []notifications.Notification{
			{
				ProjectID: "project-1",
				ScanID:    "scan-1",
				Kind:      notifications.KindLeak,
				ID:        "leak-1",
				Severity:  models.SeverityCritical,
				Category:  "api_key_leak",
			},
		}
	})

	AfterEach(func() {
		server.Close()
	})

	Context("when no notifications are given", func() {
		It("doesn't send anything to the server", func() {
			Expect(notifier.Send(logger, nil)).To(Succeed())
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})
	})

	Context("when the server responds successfully on the first try", func() {
		BeforeEach(func() {
			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/"),
					ghttp.VerifyJSON(expectedJSON),
				),
			)
		})

		It("only makes one request", func() {
			Expect(notifier.Send(logger, batch)).To(Succeed())
			Expect(server.ReceivedRequests()).To(HaveLen(1))
		})
	})

	Context("when the server responds with an 429 Too Many Requests", func() {
		BeforeEach(func() {
			header := http.Header{}
			header.Add("Retry-After", "5")

			server.AppendHandlers(
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/"),
					ghttp.VerifyJSON(expectedJSON),
					ghttp.RespondWith(http.StatusTooManyRequests, nil, header),
				),
				ghttp.CombineHandlers(
					ghttp.VerifyRequest("POST", "/"),
					ghttp.VerifyJSON(expectedJSON),
					ghttp.RespondWith(http.StatusOK, nil),
				),
			)
		})

		It("tries again after the time it was told", func() {
			done := make(chan struct{})

			go func() {
				defer GinkgoRecover()

				Expect(notifier.Send(logger, batch)).To(Succeed())
				close(done)
			}()

			Eventually(server.ReceivedRequests).Should(HaveLen(1))
			Consistently(done).ShouldNot(BeClosed())

			clock.WaitForWatcherAndIncrement(4 * time.Second)

			Consistently(server.ReceivedRequests).Should(HaveLen(1))
			Consistently(done).ShouldNot(BeClosed())

			clock.Increment(2 * time.Second)

			Eventually(server.ReceivedRequests).Should(HaveLen(2))
			Eventually(done).Should(BeClosed())
		})
	})

	Context("when the server keeps responding with 429", func() {
		BeforeEach(func() {
			header := http.Header{}
			header.Add("Retry-After", "0")

			for i := 0; i < 3; i++ {
				server.AppendHandlers(ghttp.RespondWith(http.StatusTooManyRequests, nil, header))
			}
		})

		It("gives up", func() {
			errs := make(chan error, 1)
			go func() {
				errs <- notifier.Send(logger, batch)
			}()

			clock.WaitForWatcherAndIncrement(time.Second)
			clock.WaitForWatcherAndIncrement(time.Second)

			var err error
			Eventually(errs).Should(Receive(&err))
			Expect(err).To(MatchError("retried too many times"))
			Expect(server.ReceivedRequests()).To(HaveLen(3))
		})
	})

	Context("when the server fails", func() {
		BeforeEach(func() {
			server.AppendHandlers(ghttp.RespondWith(http.StatusInternalServerError, "nope"))
		})

		It("returns an error", func() {
			err := notifier.Send(logger, batch)
			Expect(err).To(MatchError("bad response (!200): 500"))
		})
	})

	Context("when no webhook is configured", func() {
		It("sends nothing", func() {
			notifier = notifications.NewSlackNotifier("", "", clock, notifications.NewSlackNotificationFormatter())
			Expect(notifier.Send(logger, batch)).To(Succeed())
			Expect(server.ReceivedRequests()).To(BeEmpty())
		})
	})
})
