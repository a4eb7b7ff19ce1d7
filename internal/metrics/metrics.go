package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "flowquest"

// Metrics owns its registry so tests and multiple app instances do not
// collide on the global one. All recording methods are safe on a nil receiver.
type Metrics struct {
	registry *prometheus.Registry

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	moves          *prometheus.CounterVec
	answers        *prometheus.CounterVec
	turns          *prometheus.CounterVec
	gamesCompleted prometheus.Counter
	ledgerRetries  prometheus.Counter
	notifyFailures prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2},
			},
			[]string{"method", "endpoint"},
		),
		moves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "moves_total",
				Help:      "Tile scans by resulting tile kind or rejection",
			},
			[]string{"result"},
		),
		answers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "answers_total",
				Help:      "Recorded answers by outcome",
			},
			[]string{"outcome"},
		),
		turns: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "turn_transitions_total",
				Help:      "Turn transitions by result",
			},
			[]string{"result"},
		),
		gamesCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_completed_total",
			Help:      "Games that reached the round ceiling",
		}),
		ledgerRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_retries_total",
			Help:      "Transient store failures retried by the answer ledger",
		}),
		notifyFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notify_failures_total",
			Help:      "Events that could not be delivered",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.requestDuration,
		m.moves,
		m.answers,
		m.turns,
		m.gamesCompleted,
		m.ledgerRetries,
		m.notifyFailures,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if m == nil {
			return
		}
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.requests.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

func (m *Metrics) Move(result string) {
	if m != nil {
		m.moves.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) Answer(outcome string) {
	if m != nil {
		m.answers.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) Turn(advanced bool) {
	if m == nil {
		return
	}
	result := "advanced"
	if !advanced {
		result = "noop"
	}
	m.turns.WithLabelValues(result).Inc()
}

func (m *Metrics) GameCompleted() {
	if m != nil {
		m.gamesCompleted.Inc()
	}
}

func (m *Metrics) LedgerRetry() {
	if m != nil {
		m.ledgerRetries.Inc()
	}
}

func (m *Metrics) NotifyFailure() {
	if m != nil {
		m.notifyFailures.Inc()
	}
}
