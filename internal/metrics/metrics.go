package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fitclub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	SessionsScheduledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_sessions_scheduled_total",
			Help: "Total number of personal training sessions scheduled",
		},
	)

	SessionsRescheduledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_sessions_rescheduled_total",
			Help: "Total number of personal training sessions rescheduled",
		},
	)

	RoomBookingsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_room_bookings_total",
			Help: "Total number of room bookings",
		},
		[]string{"booking_type"},
	)

	ConflictsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_conflicts_rejected_total",
			Help: "Total number of requests rejected by conflict detection",
		},
		[]string{"resource"},
	)

	AvailabilityWindowsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fitclub_availability_windows_total",
			Help: "Total number of trainer availability windows created",
		},
	)

	EmailsSentTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fitclub_emails_sent_total",
			Help: "Total number of emails sent",
		},
		[]string{"type", "status"},
	)

	EmailQueueLength = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fitclub_email_queue_length",
			Help: "Current length of email queue",
		},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordSessionScheduled() {
	SessionsScheduledTotal.Inc()
}

func RecordSessionRescheduled() {
	SessionsRescheduledTotal.Inc()
}

func RecordRoomBooking(bookingType string) {
	RoomBookingsTotal.WithLabelValues(bookingType).Inc()
}

func RecordConflictRejected(resource string) {
	ConflictsRejectedTotal.WithLabelValues(resource).Inc()
}

func RecordAvailabilityWindow() {
	AvailabilityWindowsTotal.Inc()
}

func RecordEmail(emailType, status string) {
	EmailsSentTotal.WithLabelValues(emailType, status).Inc()
}
