package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	noteOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "notes_keeper",
		Name:      "note_operations_total",
		Help:      "Note operations by kind and outcome.",
	}, []string{"op", "outcome"})

	backupsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "notes_keeper",
		Name:      "backups_created_total",
		Help:      "Backups created by type.",
	}, []string{"type"})

	backupNoteCount = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "notes_keeper",
		Name:      "backup_note_count",
		Help:      "Number of notes per backup.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
	})
)

func observeNoteOp(op string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	noteOperations.WithLabelValues(op, outcome).Inc()
}
