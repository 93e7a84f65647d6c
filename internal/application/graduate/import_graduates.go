package graduate

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/google/uuid"
	domain "github.com/nucareers/career-portal/internal/domain/graduate"
	"github.com/sirupsen/logrus"
)

type ImportGraduatesInput struct {
	FilePath string
	FileName string
	Caller   Caller
}

type ImportGraduatesOutput struct {
	RunID   string
	Outcome domain.ImportOutcome
	Message string
}

type ImportGraduates interface {
	Execute(ctx context.Context, in ImportGraduatesInput) (ImportGraduatesOutput, error)
}

type SpreadsheetParser interface {
	Parse(ctx context.Context, path string) ([]domain.RawRow, error)
}

type UploadRemover interface {
	Remove(path string) error
}

type ImportObserver interface {
	ObserveChunk(duration time.Duration, result domain.ChunkResult)
	ObserveImport(outcome domain.ImportOutcome, err error)
}

type ImportGraduatesConfig struct {
	BatchSize int
	Observer  ImportObserver
	// Runs is optional; when nil no import ledger is kept.
	Runs domain.ImportRunRepository
}

type importGraduates struct {
	parser    SpreadsheetParser
	validator *RowValidator
	batches   *batchInserter
	uploads   UploadRemover
	runs      domain.ImportRunRepository
	observer  ImportObserver
	log       logrus.FieldLogger
	now       func() time.Time
}

func NewImportGraduates(
	parser SpreadsheetParser,
	inserter domain.BulkInserter,
	uploads UploadRemover,
	log logrus.FieldLogger,
	cfg ImportGraduatesConfig,
) ImportGraduates {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}

	uc := &importGraduates{
		parser:    parser,
		validator: NewRowValidator(),
		uploads:   uploads,
		runs:      cfg.Runs,
		observer:  cfg.Observer,
		log:       log,
		now:       time.Now,
	}
	uc.batches = &batchInserter{
		inserter:  inserter,
		batchSize: cfg.BatchSize,
		log:       log,
	}
	if cfg.Observer != nil {
		uc.batches.observer = cfg.Observer
	}
	return uc
}

func (uc *importGraduates) Execute(ctx context.Context, in ImportGraduatesInput) (ImportGraduatesOutput, error) {
	if in.FilePath != "" {
		defer uc.removeUpload(in.FilePath)
	}

	if !in.Caller.IsAdmin() {
		return ImportGraduatesOutput{}, ErrForbidden
	}
	if strings.TrimSpace(in.FilePath) == "" {
		return ImportGraduatesOutput{}, ErrNoFileUploaded
	}

	// Once started, an import runs every chunk even if the caller goes away.
	ctx = context.WithoutCancel(ctx)
	startedAt := uc.now()

	rows, err := uc.parser.Parse(ctx, in.FilePath)
	if err != nil {
		uc.observe(domain.ImportOutcome{}, err)
		return ImportGraduatesOutput{}, fmt.Errorf("%w: %v", ErrImportGraduates, err)
	}

	candidates, rejections := uc.validator.ValidateAll(rows)
	if len(candidates) == 0 {
		uc.observe(domain.ImportOutcome{TotalRows: len(rows), RowErrors: rejections}, ErrNoValidRecords)
		return ImportGraduatesOutput{}, ErrNoValidRecords
	}

	results, err := uc.batches.insertAll(ctx, candidates)
	outcome := foldOutcome(len(rows), rejections, results)
	uc.observe(outcome, err)

	runID := uuid.NewString()
	uc.recordRun(ctx, domain.ImportRun{
		ID:             runID,
		FileName:       in.FileName,
		CallerID:       in.Caller.ID,
		TotalRows:      outcome.TotalRows,
		InsertedCount:  outcome.TotalInserted,
		FailedCount:    outcome.TotalFailed,
		RejectedCount:  len(outcome.RowErrors),
		DuplicateCount: len(outcome.DuplicateNuIDs) + len(outcome.DuplicateNuEmails),
		StartedAt:      startedAt,
		FinishedAt:     uc.now(),
	})

	if err != nil {
		uc.log.WithError(err).WithFields(logrus.Fields{
			"run_id":   runID,
			"file":     in.FileName,
			"inserted": outcome.TotalInserted,
		}).Error("graduate import aborted")
		return ImportGraduatesOutput{}, fmt.Errorf("%w: %v", ErrImportGraduates, err)
	}

	uc.log.WithFields(logrus.Fields{
		"run_id":   runID,
		"file":     in.FileName,
		"rows":     outcome.TotalRows,
		"inserted": outcome.TotalInserted,
		"failed":   outcome.TotalFailed,
		"rejected": len(outcome.RowErrors),
	}).Info("graduate import finished")

	return ImportGraduatesOutput{
		RunID:   runID,
		Outcome: outcome,
		Message: outcome.Summary(),
	}, nil
}

func (uc *importGraduates) removeUpload(path string) {
	if err := uc.uploads.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		uc.log.WithError(err).WithField("path", path).Warn("remove uploaded spreadsheet failed")
	}
}

func (uc *importGraduates) recordRun(ctx context.Context, run domain.ImportRun) {
	if uc.runs == nil {
		return
	}
	if err := uc.runs.Record(ctx, run); err != nil {
		uc.log.WithError(err).WithField("run_id", run.ID).Warn("record import run failed")
	}
}

func (uc *importGraduates) observe(outcome domain.ImportOutcome, err error) {
	if uc.observer != nil {
		uc.observer.ObserveImport(outcome, err)
	}
}
