package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ExtractionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scaffold_extractions_total",
			Help: "Total number of extraction attempts by strategy and outcome",
		},
		[]string{"strategy", "outcome"},
	)

	GenerationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scaffold_generations_total",
			Help: "Total number of generation attempts by language and outcome",
		},
		[]string{"language", "outcome"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "scaffold_generation_duration_seconds",
			Help: "Duration of one full generation attempt in seconds",
		},
		[]string{"language"},
	)

	FilesWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scaffold_files_written_total",
			Help: "Total number of files materialized to disk",
		},
		[]string{"language"},
	)
)
