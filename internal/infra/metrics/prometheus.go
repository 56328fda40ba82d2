package metrics

import (
	"net/http"
	"strconv"
	"time"

	"floorplan-service/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "floorplan"

type Recorder struct {
	registry     *prometheus.Registry
	mutations    *prometheus.CounterVec
	latency      *prometheus.HistogramVec
	syncChanges  *prometheus.CounterVec
	storeRetries prometheus.Counter
	httpRequests *prometheus.CounterVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "mutations_total",
			Help:      "Plan mutations by operation and outcome.",
		}, []string{"op", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "mutation_duration_seconds",
			Help:      "Time spent inside the plan critical section.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
		syncChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_changes_total",
			Help:      "Offline changes received through sync, by result.",
		}, []string{"result"}),
		storeRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_retries_total",
			Help:      "Conditional replaces retried after a concurrent write.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"method", "route", "status"}),
	}

	r.registry.MustRegister(
		r.mutations,
		r.latency,
		r.syncChanges,
		r.storeRetries,
		r.httpRequests,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

var _ shared.MetricsRecorder = (*Recorder)(nil)

func (r *Recorder) ObserveMutation(op string, outcome shared.MutationOutcome, elapsed time.Duration) {
	r.mutations.WithLabelValues(op, string(outcome)).Inc()
	r.latency.WithLabelValues(op).Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveSyncBatch(applied, skipped int) {
	r.syncChanges.WithLabelValues("applied").Add(float64(applied))
	r.syncChanges.WithLabelValues("skipped").Add(float64(skipped))
}

func (r *Recorder) ObserveStoreRetry() {
	r.storeRetries.Inc()
}

func (r *Recorder) ObserveHTTPRequest(method, route string, status int) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
