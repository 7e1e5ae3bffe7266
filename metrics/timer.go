package metrics

import (
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"
)

//go:generate counterfeiter . Timer

type Timer interface {
	Time(lager.Logger, func())
}

type timer struct {
	name      string
	histogram prometheus.Histogram
}

func (t *timer) Time(logger lager.Logger, fn func()) {
	startTime := time.Now()

	fn()
	duration := time.Since(startTime)

	logger.Debug("stopping-timer", lager.Data{
		"name":     t.name,
		"duration": duration.String(),
	})
	t.histogram.Observe(duration.Seconds())
}

type nullTimer struct{}

func (t *nullTimer) Time(logger lager.Logger, fn func()) {
	fn()
}
