package notifications

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pivotal-cf/cred-audit/models"
)

type SlackMessage struct {
	Channel     string            `json:"channel,omitempty"`
	Attachments []SlackAttachment `json:"attachments"`
}

type SlackAttachment struct {
	Fallback string `json:"fallback"`
	Color    string `json:"color"`
	Title    string `json:"title"`
	Text     string `json:"text"`
}

//go:generate counterfeiter . SlackNotificationFormatter

type SlackNotificationFormatter interface {
	FormatNotifications(batch []Notification) []SlackMessage
}

type slackNotificationFormatter struct{}

func NewSlackNotificationFormatter() SlackNotificationFormatter {
	return &slackNotificationFormatter{}
}

type scanGroup struct {
	ProjectID string
	ScanID    string
}

// FormatNotifications produces one message per scan with one attachment per
// severity, most severe first.
func (s *slackNotificationFormatter) FormatNotifications(batch []Notification) []SlackMessage {
	messages := []SlackMessage{}

	groups := map[scanGroup][]Notification{}
	var order []scanGroup
	for _, n := range batch {
		g := scanGroup{ProjectID: n.ProjectID, ScanID: n.ScanID}
		if _, found := groups[g]; !found {
			order = append(order, g)
		}
		groups[g] = append(groups[g], n)
	}

	for _, g := range order {
		notifications := groups[g]
		sort.SliceStable(notifications, func(i, j int) bool {
			return notifications[i].Severity.HigherThan(notifications[j].Severity)
		})

		var attachments []SlackAttachment
		for _, severity := range models.Severities {
			var lines []string
			for _, n := range notifications {
				if n.Severity == severity {
					lines = append(lines, "• "+n.Summary())
				}
			}

			if len(lines) == 0 {
				continue
			}

			title := fmt.Sprintf("%d %s exposure%s in project %s", len(lines), severity, plural(len(lines)), g.ProjectID)
			attachments = append(attachments, SlackAttachment{
				Title:    title,
				Text:     strings.Join(lines, "\n"),
				Color:    color(severity),
				Fallback: title,
			})
		}

		messages = append(messages, SlackMessage{Attachments: attachments})
	}

	return messages
}

func color(severity models.Severity) string {
	switch severity {
	case models.SeverityCritical:
		return "danger"
	case models.SeverityHigh:
		return "warning"
	default:
		return "#439FE0"
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
