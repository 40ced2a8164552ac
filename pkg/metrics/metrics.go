package metrics

import (
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus collectors for the service
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	AppointmentsCreated prometheus.Counter
	SlotConflicts       prometheus.Counter
	NotificationsSent   *prometheus.CounterVec
	NotificationsFailed *prometheus.CounterVec

	dbOpenConns  prometheus.Gauge
	dbIdleConns  prometheus.Gauge
	dbInUseConns prometheus.Gauge
}

// New registers and returns the service collectors. serviceName becomes a
// constant label so several services can share one Prometheus job.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of processed HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request processing time in seconds",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "path"},
		),
		AppointmentsCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name:        "appointments_created_total",
				Help:        "Total number of successfully booked appointments",
				ConstLabels: constLabels,
			},
		),
		SlotConflicts: promauto.NewCounter(
			prometheus.CounterOpts{
				Name:        "appointment_slot_conflicts_total",
				Help:        "Booking attempts rejected because the slot was taken",
				ConstLabels: constLabels,
			},
		),
		NotificationsSent: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "whatsapp_notifications_sent_total",
				Help:        "WhatsApp notifications delivered, by kind",
				ConstLabels: constLabels,
			},
			[]string{"kind"},
		),
		NotificationsFailed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "whatsapp_notifications_failed_total",
				Help:        "WhatsApp notifications that could not be delivered, by kind",
				ConstLabels: constLabels,
			},
			[]string{"kind"},
		),
		dbOpenConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Open connections in the database pool",
			ConstLabels: constLabels,
		}),
		dbIdleConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Idle connections in the database pool",
			ConstLabels: constLabels,
		}),
		dbInUseConns: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Connections currently in use in the database pool",
			ConstLabels: constLabels,
		}),
	}
}

// IncAppointmentsCreated counts a successfully booked appointment.
func (m *Metrics) IncAppointmentsCreated() {
	m.AppointmentsCreated.Inc()
}

// IncSlotConflicts counts a booking rejected because the slot was taken.
func (m *Metrics) IncSlotConflicts() {
	m.SlotConflicts.Inc()
}

// IncNotificationSent counts a delivered notification of the given kind.
func (m *Metrics) IncNotificationSent(kind string) {
	m.NotificationsSent.WithLabelValues(kind).Inc()
}

// IncNotificationFailed counts a failed notification of the given kind.
func (m *Metrics) IncNotificationFailed(kind string) {
	m.NotificationsFailed.WithLabelValues(kind).Inc()
}

// CollectDBPool samples connection pool statistics every interval until
// stop is closed. Run it in its own goroutine.
func (m *Metrics) CollectDBPool(db *sql.DB, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := db.Stats()
			m.dbOpenConns.Set(float64(stats.OpenConnections))
			m.dbIdleConns.Set(float64(stats.Idle))
			m.dbInUseConns.Set(float64(stats.InUse))
		case <-stop:
			return
		}
	}
}
