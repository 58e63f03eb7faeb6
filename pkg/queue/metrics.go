package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collectors are shared across tenant pools; the tenant schema is a label.
var (
	claimsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orchestrator",
		Subsystem: "queue",
		Name:      "claims_total",
		Help:      "Jobs claimed by this process.",
	}, []string{"tenant"})

	jobsRunTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orchestrator",
		Subsystem: "queue",
		Name:      "jobs_run_total",
		Help:      "Job runs finished, by outcome of the run call.",
	}, []string{"tenant", "outcome"})

	jobDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "orchestrator",
		Subsystem: "queue",
		Name:      "job_duration_seconds",
		Help:      "Wall time of job runs.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"tenant"})

	queueDepth = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "orchestrator",
		Subsystem: "queue",
		Name:      "depth",
		Help:      "Queued jobs per tenant at the last poll.",
	}, []string{"tenant"})

	leaseRenewalFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "orchestrator",
		Subsystem: "queue",
		Name:      "lease_renewal_failures_total",
		Help:      "Lease renewals that failed or found ownership lost.",
	}, []string{"tenant"})
)
