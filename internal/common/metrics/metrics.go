// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EntitiesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datagen_entities_generated_total",
			Help: "Total number of entities generated, by entity type",
		},
		[]string{"entity"},
	)

	RunsCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "datagen_runs_completed_total",
			Help: "Total number of generation runs completed successfully",
		},
	)

	RunsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datagen_runs_failed_total",
			Help: "Total number of generation runs aborted, by error code",
		},
		[]string{"error_code"},
	)

	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "datagen_run_duration_seconds",
			Help: "Duration of a full generation run in seconds",
		},
	)

	RecordsLoaded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "datagen_records_loaded_total",
			Help: "Total number of records delivered to a downstream store",
		},
		[]string{"target", "entity"},
	)
)
