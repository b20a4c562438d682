package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the service.
type Metrics struct {
	RegistrationsTotal *prometheus.CounterVec
	LoginsTotal        *prometheus.CounterVec
	PrincipalsDeleted  prometheus.Counter
	ActiveSessions     prometheus.Gauge
}

// New creates and registers all Prometheus metrics on the default registry.
// Call it once per process; components that can run without metrics accept a
// nil *Metrics.
func New() *Metrics {
	return &Metrics{
		RegistrationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "custos_registrations_total",
			Help: "Registration attempts partitioned by outcome.",
		}, []string{"outcome"}),
		LoginsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "custos_logins_total",
			Help: "Login attempts partitioned by outcome.",
		}, []string{"outcome"}),
		PrincipalsDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "custos_principals_deleted_total",
			Help: "Principals removed by administrative delete.",
		}),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "custos_active_sessions",
			Help: "Sessions currently held in the session store.",
		}),
	}
}

// ObserveRegistration records one registration attempt.
func (m *Metrics) ObserveRegistration(outcome string) {
	if m == nil {
		return
	}
	m.RegistrationsTotal.WithLabelValues(outcome).Inc()
}

// ObserveLogin records one login attempt.
func (m *Metrics) ObserveLogin(outcome string) {
	if m == nil {
		return
	}
	m.LoginsTotal.WithLabelValues(outcome).Inc()
}

// IncrementPrincipalsDeleted records one administrative deletion.
func (m *Metrics) IncrementPrincipalsDeleted() {
	if m == nil {
		return
	}
	m.PrincipalsDeleted.Inc()
}

// AddActiveSessions moves the active-session gauge by delta.
func (m *Metrics) AddActiveSessions(delta float64) {
	if m == nil {
		return
	}
	m.ActiveSessions.Add(delta)
}
