package graduate

import (
	"context"
	"fmt"
	"time"

	domain "github.com/nucareers/career-portal/internal/domain/graduate"
)

type ImportRunOutput struct {
	ID             string    `json:"id"`
	FileName       string    `json:"fileName"`
	CallerID       string    `json:"callerId"`
	TotalRows      int       `json:"totalRows"`
	InsertedCount  int       `json:"totalInserted"`
	FailedCount    int       `json:"totalFailed"`
	RejectedCount  int       `json:"rejected"`
	DuplicateCount int       `json:"duplicates"`
	StartedAt      time.Time `json:"startedAt"`
	FinishedAt     time.Time `json:"finishedAt"`
}

type ListImportRunsInput struct {
	Caller Caller
	Limit  int
}

type ListImportRuns interface {
	Execute(ctx context.Context, in ListImportRunsInput) ([]ImportRunOutput, error)
}

type listImportRuns struct {
	repo domain.ImportRunRepository
}

func NewListImportRuns(repo domain.ImportRunRepository) ListImportRuns {
	return &listImportRuns{repo: repo}
}

func (uc *listImportRuns) Execute(ctx context.Context, in ListImportRunsInput) ([]ImportRunOutput, error) {
	if !in.Caller.IsAdmin() {
		return nil, ErrForbidden
	}
	limit := in.Limit
	if limit < 1 || limit > maxPageLimit {
		limit = 20
	}

	runs, err := uc.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListImportRuns, err)
	}

	out := make([]ImportRunOutput, 0, len(runs))
	for _, run := range runs {
		out = append(out, ImportRunOutput{
			ID:             run.ID,
			FileName:       run.FileName,
			CallerID:       run.CallerID,
			TotalRows:      run.TotalRows,
			InsertedCount:  run.InsertedCount,
			FailedCount:    run.FailedCount,
			RejectedCount:  run.RejectedCount,
			DuplicateCount: run.DuplicateCount,
			StartedAt:      run.StartedAt,
			FinishedAt:     run.FinishedAt,
		})
	}
	return out, nil
}
