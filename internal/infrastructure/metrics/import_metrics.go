package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	app "github.com/nucareers/career-portal/internal/application/graduate"
	domain "github.com/nucareers/career-portal/internal/domain/graduate"
)

const (
	OutcomeSucceeded = "succeeded"
	OutcomeNoneValid = "no_valid_rows"
	OutcomeFailed    = "failed"
	RowsInserted     = "inserted"
	RowsWriteFailed  = "failed"
	RowsRejected     = "rejected"
)

// ImportMetrics records graduate import activity. It satisfies app.ImportObserver.
type ImportMetrics struct {
	rows          *prometheus.CounterVec
	duplicates    *prometheus.CounterVec
	runs          *prometheus.CounterVec
	chunkDuration prometheus.Histogram
}

var _ app.ImportObserver = (*ImportMetrics)(nil)

func NewImportMetrics(reg prometheus.Registerer) *ImportMetrics {
	factory := promauto.With(reg)

	return &ImportMetrics{
		rows: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "graduate",
			Subsystem: "import",
			Name:      "rows_total",
			Help:      "Spreadsheet rows processed by graduate imports, by result.",
		}, []string{"result"}),
		duplicates: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "graduate",
			Subsystem: "import",
			Name:      "duplicates_total",
			Help:      "Rows refused by a unique key during graduate imports.",
		}, []string{"key"}),
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "graduate",
			Subsystem: "import",
			Name:      "runs_total",
			Help:      "Graduate import runs by outcome.",
		}, []string{"outcome"}),
		chunkDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "graduate",
			Subsystem: "import",
			Name:      "chunk_duration_seconds",
			Help:      "Time spent writing one chunk of graduates.",
			Buckets: []float64{
				0.005, 0.01, 0.025,
				0.05, 0.1, 0.25,
				0.5, 1, 2.5, 5, 10,
			},
		}),
	}
}

func (m *ImportMetrics) ObserveChunk(duration time.Duration, result domain.ChunkResult) {
	m.chunkDuration.Observe(duration.Seconds())
}

func (m *ImportMetrics) ObserveImport(outcome domain.ImportOutcome, err error) {
	switch {
	case err == nil:
		m.runs.WithLabelValues(OutcomeSucceeded).Inc()
	case errors.Is(err, app.ErrNoValidRecords):
		m.runs.WithLabelValues(OutcomeNoneValid).Inc()
	default:
		m.runs.WithLabelValues(OutcomeFailed).Inc()
	}

	m.rows.WithLabelValues(RowsInserted).Add(float64(outcome.TotalInserted))
	m.rows.WithLabelValues(RowsWriteFailed).Add(float64(outcome.TotalFailed))
	m.rows.WithLabelValues(RowsRejected).Add(float64(len(outcome.RowErrors)))
	m.duplicates.WithLabelValues(domain.KeyNuID).Add(float64(len(outcome.DuplicateNuIDs)))
	m.duplicates.WithLabelValues(domain.KeyNuEmail).Add(float64(len(outcome.DuplicateNuEmails)))
}
