package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueriesTotal  *prometheus.CounterVec
	dbQueryDuration *prometheus.HistogramVec

	dbPoolOpen  prometheus.Gauge
	dbPoolInUse prometheus.Gauge
	dbPoolIdle  prometheus.Gauge
}

// New регистрирует метрики в дефолтном registry
func New(service string) *Metrics {
	constLabels := prometheus.Labels{"service": service}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "studio_booking",
			Subsystem:   "http",
			Name:        "requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "studio_booking",
			Subsystem:   "http",
			Name:        "request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "route"}),

		dbQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace:   "studio_booking",
			Subsystem:   "db",
			Name:        "queries_total",
			Help:        "Total number of database queries",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   "studio_booking",
			Subsystem:   "db",
			Name:        "query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),

		dbPoolOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace:   "studio_booking",
			Subsystem:   "db",
			Name:        "pool_open_connections",
			Help:        "Number of open connections in the pool",
			ConstLabels: constLabels,
		}),
		dbPoolInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace:   "studio_booking",
			Subsystem:   "db",
			Name:        "pool_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}),
		dbPoolIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace:   "studio_booking",
			Subsystem:   "db",
			Name:        "pool_idle_connections",
			Help:        "Number of idle connections in the pool",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest учитывает завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery учитывает выполненный запрос к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.dbQueriesTotal.WithLabelValues(operation, status).Inc()
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetDBPoolStats(open, inUse, idle int) {
	m.dbPoolOpen.Set(float64(open))
	m.dbPoolInUse.Set(float64(inUse))
	m.dbPoolIdle.Set(float64(idle))
}
