package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ClaimsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warranty_claims_created_total",
		Help: "Total number of warranty claims successfully created.",
	})

	ReturnsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warranty_returns_created_total",
		Help: "Total number of return cases successfully created.",
	})

	CasesResolvedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warranty_cases_resolved_total",
		Help: "Total number of unified case lookups that found a record.",
	},
		[]string{"type"},
	)

	NotificationsEnqueuedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warranty_notifications_enqueued_total",
		Help: "Total number of notification tasks written to the outbox.",
	})

	NotificationsPublishedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warranty_notifications_published_total",
		Help: "Total number of notification tasks delivered to the broker.",
	})

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warranty_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	CaseCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "warranty_case_cache_items",
		Help: "Current number of items in the case cache.",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warranty_http_requests_total",
		Help: "Total number of handled HTTP requests.",
	},
		[]string{"method", "path", "code"},
	)
)
