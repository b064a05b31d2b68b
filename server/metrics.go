package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spektr-org/sentencer/engine"
)

// Metrics owns a private registry so tests can create as many servers as
// they like.
type Metrics struct {
	registry       *prometheus.Registry
	sentencesBuilt *prometheus.CounterVec
	requestErrors  *prometheus.CounterVec
	reloads        *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		sentencesBuilt: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sentencer_sentences_built_total",
			Help: "Sentences built, by tense and aspect.",
		}, []string{"tense", "aspect"}),
		requestErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sentencer_request_errors_total",
			Help: "Rejected or failed API requests, by route.",
		}, []string{"route"}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sentencer_vocabulary_reloads_total",
			Help: "Vocabulary reload attempts, by result.",
		}, []string{"result"}),
	}
	m.registry.MustRegister(m.sentencesBuilt, m.requestErrors, m.reloads)
	return m
}

func (m *Metrics) SentenceBuilt(tense engine.Tense, aspect engine.Aspect) {
	m.sentencesBuilt.WithLabelValues(tense.String(), aspect.String()).Inc()
}

func (m *Metrics) RequestFailed(route string) {
	m.requestErrors.WithLabelValues(route).Inc()
}

func (m *Metrics) Reloaded(err error) {
	if err != nil {
		m.reloads.WithLabelValues("error").Inc()
		return
	}
	m.reloads.WithLabelValues("ok").Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
