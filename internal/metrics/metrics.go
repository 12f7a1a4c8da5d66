package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Coupon outcomes recorded by CouponPayments.
const (
	OutcomeAccruing = "accruing"
	OutcomeMatured  = "matured"
	OutcomeError    = "error"
)

// Operation metrics - contract surface calls
var (
	IssuesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "debenture_issues_total",
			Help: "Total number of issue calls by result",
		},
		[]string{"result"},
	)

	CouponPayments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "debenture_coupon_payments_total",
			Help: "Total number of coupon payment computations by outcome",
		},
		[]string{"outcome"},
	)

	ContractsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "debenture_contracts_created_total",
		Help: "Total number of contract instances registered",
	})
)

// Store metrics - state store latency and failures
var (
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "debenture_store_operation_duration_seconds",
			Help:    "Time taken by state store operations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"backend", "op"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "debenture_store_errors_total",
			Help: "Total number of failed state store operations",
		},
		[]string{"backend", "op"},
	)
)

// HTTP metrics
var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "debenture_http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)
)
