package repository

import (
	"context"
	"fmt"

	domain "github.com/nucareers/career-portal/internal/domain/graduate"
	"github.com/nucareers/career-portal/internal/infrastructure/db/models"
	"gorm.io/gorm"
)

type ImportRunRepository struct {
	db *gorm.DB
}

func NewImportRunRepository(db *gorm.DB) *ImportRunRepository {
	return &ImportRunRepository{db: db}
}

func (r *ImportRunRepository) Record(ctx context.Context, run domain.ImportRun) error {
	row := models.ImportRun{
		ID:             run.ID,
		FileName:       run.FileName,
		CallerID:       run.CallerID,
		TotalRows:      int64(run.TotalRows),
		InsertedCount:  int64(run.InsertedCount),
		FailedCount:    int64(run.FailedCount),
		RejectedCount:  int64(run.RejectedCount),
		DuplicateCount: int64(run.DuplicateCount),
		StartedAt:      run.StartedAt,
		FinishedAt:     run.FinishedAt,
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create import run: %w", err)
	}
	return nil
}

func (r *ImportRunRepository) ListRecent(ctx context.Context, limit int) ([]domain.ImportRun, error) {
	var rows []models.ImportRun
	err := r.db.WithContext(ctx).
		Order("started_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list import runs: %w", err)
	}

	runs := make([]domain.ImportRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, domain.ImportRun{
			ID:             row.ID,
			FileName:       row.FileName,
			CallerID:       row.CallerID,
			TotalRows:      int(row.TotalRows),
			InsertedCount:  int(row.InsertedCount),
			FailedCount:    int(row.FailedCount),
			RejectedCount:  int(row.RejectedCount),
			DuplicateCount: int(row.DuplicateCount),
			StartedAt:      row.StartedAt,
			FinishedAt:     row.FinishedAt,
		})
	}
	return runs, nil
}
