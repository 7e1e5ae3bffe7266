package metrics

import (
	"code.cloudfoundry.org/lager"
	"github.com/prometheus/client_golang/prometheus"
)

//go:generate counterfeiter . Gauge

type Gauge interface {
	Update(lager.Logger, float32)
}

type gauge struct {
	name        string
	environment string
	gauge       prometheus.Gauge
}

func (g *gauge) Update(logger lager.Logger, value float32) {
	g.gauge.Set(float64(value))

	logger.Session("emit-gauge", lager.Data{
		"name":        g.name,
		"environment": g.environment,
		"value":       value,
	}).Debug("emitted")
}

type nullGauge struct {
	name        string
	environment string
}

func (g *nullGauge) Update(logger lager.Logger, value float32) {}
