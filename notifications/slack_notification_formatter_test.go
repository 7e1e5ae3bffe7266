package notifications_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/cred-audit/models"
	"github.com/pivotal-cf/cred-audit/notifications"
)

var _ = Describe("SlackNotificationFormatter", func() {
	var formatter notifications.SlackNotificationFormatter

	BeforeEach(func() {
		formatter = notifications.NewSlackNotificationFormatter()
	})

	It("returns no messages for an empty batch", func() {
		Expect(formatter.FormatNotifications(nil)).To(BeEmpty())
	})

	It("groups by scan and severity, most severe first", func() {
		messages := formatter.FormatNotifications([]notifications.Notification{
			{ProjectID: "p", ScanID: "s1", Kind: notifications.KindFinding, Severity: models.SeverityHigh, Category: "exposed_in_code", Location: "development/API_KEY"},
			{ProjectID: "p", ScanID: "s1", Kind: notifications.KindFinding, Severity: models.SeverityCritical, Category: "exposed_in_code", Location: "production/TOKEN"},
			{ProjectID: "p", ScanID: "s1", Kind: notifications.KindFinding, Severity: models.SeverityHigh, Category: "insecure_transmission", Location: "development/DATABASE_URL"},
			{ProjectID: "p", ScanID: "s2", Kind: notifications.KindLeak, Severity: models.SeverityHigh, Category: "env_leak"},
		})

		Expect(messages).To(HaveLen(2))

		first := messages[0].Attachments
		Expect(first).To(HaveLen(2))
		Expect(first[0].Color).To(Equal("danger"))
		Expect(first[0].Title).To(Equal("1 critical exposure in project p"))
		Expect(first[0].Text).To(Equal("• exposed_in_code finding at production/TOKEN"))
		Expect(first[1].Color).To(Equal("warning"))
		Expect(first[1].Title).To(Equal("2 high exposures in project p"))
		Expect(first[1].Text).To(Equal("• exposed_in_code finding at development/API_KEY\n• insecure_transmission finding at development/DATABASE_URL"))

		Expect(messages[1].Attachments).To(HaveLen(1))
		Expect(messages[1].Attachments[0].Text).To(Equal("• env_leak leak"))
	})

	It("marks only critical and high as urgent", func() {
		Expect(notifications.Urgent(notifications.Notification{Severity: models.SeverityCritical})).To(BeTrue())
		Expect(notifications.Urgent(notifications.Notification{Severity: models.SeverityHigh})).To(BeTrue())
		Expect(notifications.Urgent(notifications.Notification{Severity: models.SeverityMedium})).To(BeFalse())
		Expect(notifications.Urgent(notifications.Notification{Severity: models.SeverityLow})).To(BeFalse())
	})
})
