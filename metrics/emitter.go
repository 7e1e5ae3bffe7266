package metrics

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cred_audit"

//go:generate counterfeiter . Emitter

type Emitter interface {
	Counter(name string) Counter
	Gauge(name string) Gauge
	Timer(name string) Timer
}

// BuildEmitter returns a null emitter unless metrics are enabled, in which
// case metrics are registered with registerer.
func BuildEmitter(enabled bool, environment string, registerer prometheus.Registerer) Emitter {
	if !enabled {
		return &nullEmitter{environment: environment}
	}

	return NewEmitter(registerer, environment)
}

func NewEmitter(registerer prometheus.Registerer, environment string) *emitter {
	return &emitter{
		registerer:  registerer,
		environment: environment,
		counters:    map[string]prometheus.Counter{},
		gauges:      map[string]prometheus.Gauge{},
		histograms:  map[string]prometheus.Histogram{},
	}
}

type emitter struct {
	registerer  prometheus.Registerer
	environment string

	mu         sync.Mutex
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

func (e *emitter) Counter(name string) Counter {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, found := e.counters[name]
	if !found {
		c = prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        metricName(name) + "_total",
			Help:        name,
			ConstLabels: e.labels(),
		})
		c = e.register(c).(prometheus.Counter)
		e.counters[name] = c
	}

	return &counter{name: name, environment: e.environment, counter: c}
}

func (e *emitter) Gauge(name string) Gauge {
	e.mu.Lock()
	defer e.mu.Unlock()

	g, found := e.gauges[name]
	if !found {
		g = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        metricName(name),
			Help:        name,
			ConstLabels: e.labels(),
		})
		g = e.register(g).(prometheus.Gauge)
		e.gauges[name] = g
	}

	return &gauge{name: name, environment: e.environment, gauge: g}
}

func (e *emitter) Timer(name string) Timer {
	e.mu.Lock()
	defer e.mu.Unlock()

	h, found := e.histograms[name]
	if !found {
		h = prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        metricName(name) + "_seconds",
			Help:        name,
			Buckets:     prometheus.DefBuckets,
			ConstLabels: e.labels(),
		})
		h = e.register(h).(prometheus.Histogram)
		e.histograms[name] = h
	}

	return &timer{name: name, histogram: h}
}

func (e *emitter) labels() prometheus.Labels {
	if e.environment == "" {
		return nil
	}
	return prometheus.Labels{"environment": e.environment}
}

// register returns the collector already registered under the same
// description when there is one.
func (e *emitter) register(c prometheus.Collector) prometheus.Collector {
	if err := e.registerer.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector
		}
		panic(err)
	}

	return c
}

var nameReplacer = strings.NewReplacer(".", "_", "-", "_", " ", "_")

func metricName(name string) string {
	return nameReplacer.Replace(strings.ToLower(name))
}

type nullEmitter struct {
	environment string
}

func (e *nullEmitter) Counter(name string) Counter {
	return &nullCounter{name: name, environment: e.environment}
}

func (e *nullEmitter) Gauge(name string) Gauge {
	return &nullGauge{name: name, environment: e.environment}
}

func (e *nullEmitter) Timer(name string) Timer {
	return &nullTimer{}
}
