package graduate

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/nucareers/career-portal/internal/domain/graduate"
	"github.com/sirupsen/logrus"
)

const DefaultBatchSize = 100

// chunkObserver receives per-chunk timings; metrics implement it.
type chunkObserver interface {
	ObserveChunk(duration time.Duration, result domain.ChunkResult)
}

type batchInserter struct {
	inserter  domain.BulkInserter
	batchSize int
	observer  chunkObserver
	log       logrus.FieldLogger
}

// insertAll submits candidates in consecutive chunks and returns one result per chunk.
// A chunk error only aborts the run when the store is unreachable.
func (b *batchInserter) insertAll(ctx context.Context, candidates []domain.Graduate) ([]domain.ChunkResult, error) {
	results := make([]domain.ChunkResult, 0, (len(candidates)+b.batchSize-1)/b.batchSize)

	for start, chunkNo := 0, 1; start < len(candidates); start, chunkNo = start+b.batchSize, chunkNo+1 {
		end := min(start+b.batchSize, len(candidates))
		chunk := candidates[start:end]

		began := time.Now()
		result, err := b.inserter.InsertChunk(ctx, chunk)
		if err != nil {
			if errors.Is(err, domain.ErrStoreUnavailable) {
				return results, fmt.Errorf("insert chunk %d: %w", chunkNo, err)
			}
			b.log.WithError(err).WithFields(logrus.Fields{
				"chunk":     chunkNo,
				"attempted": len(chunk),
			}).Error("graduate chunk insert failed")
			result = domain.ChunkResult{Attempted: len(chunk)}
		}
		result.Attempted = len(chunk)

		if b.observer != nil {
			b.observer.ObserveChunk(time.Since(began), result)
		}
		if result.Failed() > 0 {
			b.log.WithFields(logrus.Fields{
				"chunk":     chunkNo,
				"attempted": result.Attempted,
				"inserted":  result.Inserted,
				"failed":    result.Failed(),
			}).Warn("graduate chunk partially failed")
		}

		results = append(results, result)
	}

	return results, nil
}
