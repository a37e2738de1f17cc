package metrics

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "diveops"

// Metrics набор Prometheus коллекторов сервиса
type Metrics struct {
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	dbQueries  *prometheus.CounterVec
	dbDuration *prometheus.HistogramVec
	dbOpen     prometheus.Gauge
	dbInUse    prometheus.Gauge
	dbIdle     prometheus.Gauge
	dbWait     prometheus.Gauge

	operations        *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	lockWait          *prometheus.HistogramVec
}

// New создает метрики и регистрирует их в глобальном реестре Prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает метрики в указанном реестре
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dbQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "db_queries_total",
			Help:        "Total number of database queries.",
			ConstLabels: labels,
		}, []string{"operation", "status"}),
		dbDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: labels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		dbOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_pool_open_connections",
			Help:        "Open connections in the pool.",
			ConstLabels: labels,
		}),
		dbInUse: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_pool_in_use_connections",
			Help:        "Connections currently in use.",
			ConstLabels: labels,
		}),
		dbIdle: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_pool_idle_connections",
			Help:        "Idle connections in the pool.",
			ConstLabels: labels,
		}),
		dbWait: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   namespace,
			Name:        "db_pool_wait_count",
			Help:        "Total number of connections waited for.",
			ConstLabels: labels,
		}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace:   namespace,
			Name:        "reservation_operations_total",
			Help:        "Reservation engine operations by outcome.",
			ConstLabels: labels,
		}, []string{"operation", "outcome"}),
		operationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "reservation_operation_duration_seconds",
			Help:        "Reservation engine operation latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		lockWait: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   namespace,
			Name:        "resource_lock_wait_seconds",
			Help:        "Time spent waiting for a per-resource lock.",
			ConstLabels: labels,
			Buckets:     []float64{.0005, .001, .005, .01, .05, .1, .25, .5, 1, 2.5},
		}, []string{"resource", "acquired"}),
	}

	reg.MustRegister(
		m.httpRequests, m.httpDuration,
		m.dbQueries, m.dbDuration, m.dbOpen, m.dbInUse, m.dbIdle, m.dbWait,
		m.operations, m.operationDuration, m.lockWait,
	)

	return m
}

// ObserveHTTPRequest учитывает HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveDBQuery учитывает SQL запрос
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration, err error) {
	status := "ok"
	if err != nil && err != sql.ErrNoRows {
		status = "error"
	}
	m.dbQueries.WithLabelValues(operation, status).Inc()
	m.dbDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats обновляет метрики connection pool
func (m *Metrics) SetDBPoolStats(stats sql.DBStats) {
	m.dbOpen.Set(float64(stats.OpenConnections))
	m.dbInUse.Set(float64(stats.InUse))
	m.dbIdle.Set(float64(stats.Idle))
	m.dbWait.Set(float64(stats.WaitCount))
}

// ObserveOperation учитывает операцию движка резервирования и её исход
func (m *Metrics) ObserveOperation(operation, outcome string, duration time.Duration) {
	m.operations.WithLabelValues(operation, outcome).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveLockWait учитывает ожидание блокировки ресурса
func (m *Metrics) ObserveLockWait(resource string, wait time.Duration, acquired bool) {
	m.lockWait.WithLabelValues(resource, strconv.FormatBool(acquired)).Observe(wait.Seconds())
}
