package logging

import (
	"encoding/json"
	"errors"

	"code.cloudfoundry.org/lager"
	raven "github.com/getsentry/raven-go"
)

//go:generate counterfeiter . Capturer

type Capturer interface {
	Capture(*raven.Packet, map[string]string) (string, chan error)
}

// SentrySink forwards error log lines to Sentry.
type SentrySink struct {
	client Capturer
}

func NewSentrySink(dsn, environment string) (*SentrySink, error) {
	client, err := raven.New(dsn)
	if err != nil {
		return nil, err
	}
	client.SetEnvironment(environment)

	return NewSentrySinkWithClient(client), nil
}

func NewSentrySinkWithClient(client Capturer) *SentrySink {
	return &SentrySink{client: client}
}

func (s *SentrySink) Log(line lager.LogFormat) {
	if line.LogLevel < lager.ERROR {
		return
	}

	errStr, ok := line.Data["error"].(string)
	if !ok {
		return
	}

	tags := map[string]string{}
	for k, v := range line.Data {
		if k == "error" || k == "message" {
			continue
		}

		bs, err := json.Marshal(v)
		if err != nil {
			continue
		}
		tags[k] = string(bs)
	}

	e := raven.NewException(errors.New(errStr), raven.NewStacktrace(1, 3, []string{}))
	e.Type = line.Message
	s.client.Capture(raven.NewPacket(errStr, e), tags)
}
