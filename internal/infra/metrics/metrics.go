package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cart_discount_preview"

type Metrics struct {
	cacheLookups     *prometheus.CounterVec
	platformRequests *prometheus.CounterVec
	analysisDuration *prometheus.HistogramVec
}

// New registers the service collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		cacheLookups: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "discount_cache_lookups_total",
			Help:      "Automatic discount cache lookups by result.",
		}, []string{"result"}),
		platformRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "platform_requests_total",
			Help:      "Commerce platform API requests by operation and outcome.",
		}, []string{"operation", "outcome"}),
		analysisDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cart_analysis_duration_seconds",
			Help:      "Time spent analyzing a cart against automatic discounts.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
}

func (m *Metrics) DiscountCacheHit() {
	m.cacheLookups.WithLabelValues("hit").Inc()
}

func (m *Metrics) DiscountCacheMiss() {
	m.cacheLookups.WithLabelValues("miss").Inc()
}

func (m *Metrics) PlatformRequest(operation, outcome string) {
	m.platformRequests.WithLabelValues(operation, outcome).Inc()
}

func (m *Metrics) ObserveCartAnalysis(seconds float64, err error) {
	m.analysisDuration.WithLabelValues(outcome(err)).Observe(seconds)
}

func outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
