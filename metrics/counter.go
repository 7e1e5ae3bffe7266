package metrics

import (
	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"
)

//go:generate counterfeiter . Counter

type Counter interface {
	Inc(lager.Logger)
	IncN(lager.Logger, int)
}

type counter struct {
	name        string
	environment string
	counter     prometheus.Counter
}

func (c *counter) Inc(logger lager.Logger) {
	c.IncN(logger, 1)
}

func (c *counter) IncN(logger lager.Logger, count int) {
	if count <= 0 {
		return
	}

	c.counter.Add(float64(count))

	logger.Session("emit-count", lager.Data{
		"name":        c.name,
		"environment": c.environment,
		"increment":   count,
	}).Debug("emitted")
}

type nullCounter struct {
	name        string
	environment string
}

func (c *nullCounter) Inc(logger lager.Logger) {
	c.IncN(logger, 1)
}

func (c *nullCounter) IncN(logger lager.Logger, count int) {
	logger.Session("emit-count", lager.Data{
		"name":        c.name,
		"environment": c.environment,
		"increment":   count,
	}).Debug("emitted")
}
