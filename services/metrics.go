package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	predictionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "kesiapan_predictions_total",
		Help: "Total number of predictions served, by inference path.",
	}, []string{"path"})
	predictionsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kesiapan_predictions_rejected_total",
		Help: "Total number of submissions rejected for invalid input.",
	})
	predictionScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "kesiapan_prediction_score",
		Help:    "Distribution of predicted readiness scores.",
		Buckets: []float64{50, 65, 75, 85, 95, 100},
	})
	historyEvictions = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kesiapan_history_evictions_total",
		Help: "Total number of records evicted from daily history buckets.",
	})
	exportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kesiapan_exports_generated_total",
		Help: "Total number of CSV exports produced.",
	})
	exportsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kesiapan_exports_failed_total",
		Help: "Total number of CSV export failures.",
	})
)
