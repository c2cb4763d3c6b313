// Package metrics holds the Prometheus collectors for wallet operations and HTTP traffic.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tasker",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "tasker",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method", "route"},
	)

	logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tasker",
			Subsystem: "users",
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		},
		[]string{"outcome"},
	)

	tasksCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tasker",
			Subsystem: "tasks",
			Name:      "completed_total",
			Help:      "Task completions credited, by task type.",
		},
		[]string{"type"},
	)

	rewardsCredited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "tasker",
			Subsystem: "wallet",
			Name:      "rewards_credited_total",
			Help:      "Sum of task rewards credited to wallets.",
		},
	)

	vipPurchases = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tasker",
			Subsystem: "wallet",
			Name:      "vip_purchases_total",
			Help:      "VIP plan purchases by plan.",
		},
		[]string{"plan"},
	)

	withdrawals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tasker",
			Subsystem: "wallet",
			Name:      "withdrawals_total",
			Help:      "Withdrawal requests by status transition.",
		},
		[]string{"status"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		logins,
		tasksCompleted,
		rewardsCredited,
		vipPurchases,
		withdrawals,
	)
}

// Handler exposes the registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records one handled request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if route == "" {
		route = "unknown"
	}
	httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordLogin records a login outcome: "created", "existing", "blocked" or "invalid".
func RecordLogin(outcome string) {
	logins.WithLabelValues(outcome).Inc()
}

// RecordTaskCompleted records a credited task and its reward.
func RecordTaskCompleted(taskType string, reward float64) {
	tasksCompleted.WithLabelValues(taskType).Inc()
	if reward > 0 {
		rewardsCredited.Add(reward)
	}
}

func RecordVIPPurchase(planID string) {
	vipPurchases.WithLabelValues(planID).Inc()
}

// RecordWithdrawal records a withdrawal entering status.
func RecordWithdrawal(status string) {
	withdrawals.WithLabelValues(status).Inc()
}
