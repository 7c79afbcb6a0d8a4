package telemetry

import "github.com/prometheus/client_golang/prometheus"

// Metrics groups the collectors of the BFF. They are registered on the
// registerer given to NewMetrics, never on the global registry.
type Metrics struct {
	ChargeAttempts        *prometheus.CounterVec
	ChargeAttemptDuration *prometheus.HistogramVec
	Purchases             *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ChargeAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bff",
			Name:      "charge_attempts_total",
			Help:      "Upstream charge attempts by gateway and result.",
		}, []string{"gateway", "result"}),
		ChargeAttemptDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "bff",
			Name:      "charge_attempt_duration_seconds",
			Help:      "Latency of a single upstream charge attempt.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"gateway"}),
		Purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "bff",
			Name:      "purchases_total",
			Help:      "Purchase requests answered, by HTTP status code.",
		}, []string{"status_code"}),
	}
	reg.MustRegister(m.ChargeAttempts, m.ChargeAttemptDuration, m.Purchases)
	return m
}
