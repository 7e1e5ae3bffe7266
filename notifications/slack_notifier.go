package notifications

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"strconv"
	"time"

	"code.cloudfoundry.org/clock"
	"code.cloudfoundry.org/lager"
)

type slackNotifier struct {
	webhookURL string
	channel    string
	client     *http.Client
	clock      clock.Clock
	formatter  SlackNotificationFormatter
}

func NewSlackNotifier(webhookURL, channel string, clock clock.Clock, formatter SlackNotificationFormatter) Notifier {
	if webhookURL == "" {
		return NewNullNotifier()
	}

	return &slackNotifier{
		webhookURL: webhookURL,
		channel:    channel,
		clock:      clock,
		formatter:  formatter,
		client: &http.Client{
			Timeout: 3 * time.Second,
			Transport: &http.Transport{
				DisableKeepAlives: true,
			},
		},
	}
}

const maxRetries = 3

func (n *slackNotifier) Send(logger lager.Logger, batch []Notification) error {
	logger = logger.Session("send-notification", lager.Data{
		"channel": n.channel,
		"size":    len(batch),
	})

	if len(batch) == 0 {
		return nil
	}

	logger.Debug("starting")
	messages := n.formatter.FormatNotifications(batch)

	for _, message := range messages {
		if n.channel != "" {
			message.Channel = fmt.Sprintf("#%s", n.channel)
		}

		body, err := json.Marshal(message)
		if err != nil {
			logger.Error("marshal-failed", err)
			return err
		}

		if err := n.send(logger, body); err != nil {
			return err
		}
	}

	logger.Debug("done")

	return nil
}

func (n *slackNotifier) send(logger lager.Logger, body []byte) error {
	for numReq := 0; numReq < maxRetries; numReq++ {
		req, err := http.NewRequest("POST", n.webhookURL, bytes.NewBuffer(body))
		if err != nil {
			logger.Error("request-failed", err)
			return err
		}

		req.Header.Set("Content-type", "application/json")

		resp, err := n.client.Do(req)
		if err != nil {
			logger.Error("response-error", err)
			return err
		}

		message, _ := ioutil.ReadAll(resp.Body)
		resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			return nil
		case http.StatusTooManyRequests:
			if numReq == maxRetries-1 {
				break
			}

			afterStr := resp.Header.Get("Retry-After")
			logger.Info("told-to-wait", lager.Data{"after": afterStr})
			after, err := strconv.Atoi(afterStr)
			if err != nil {
				logger.Error("failed", err)
				return err
			}

			n.clock.Sleep(time.Duration(after+1) * time.Second)
			continue
		default:
			err = fmt.Errorf("bad response (!200): %d", resp.StatusCode)
			logger.Error("bad-response", err, lager.Data{
				"body": string(message),
			})
			return err
		}
	}

	err := errors.New("retried too many times")
	logger.Error("failed", err)

	return err
}
