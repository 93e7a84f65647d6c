package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	domain "github.com/nucareers/career-portal/internal/domain/graduate"
	"github.com/nucareers/career-portal/internal/infrastructure/db/models"
)

const uniqueViolationCode = "23505"

const insertGraduateSQL = `
INSERT INTO graduates (nu_id, full_name, nu_email, discipline, year_of_graduation, cgpa, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
`

// GraduateBulkInsertRepository inserts a chunk in one transaction, guarding each
// row with a savepoint so a failing row never discards the rest of the chunk.
type GraduateBulkInsertRepository struct {
	pool *pgxpool.Pool
}

func NewGraduateBulkInsertRepository(pool *pgxpool.Pool) *GraduateBulkInsertRepository {
	return &GraduateBulkInsertRepository{pool: pool}
}

func (r *GraduateBulkInsertRepository) InsertChunk(ctx context.Context, graduates []domain.Graduate) (domain.ChunkResult, error) {
	result := domain.ChunkResult{Attempted: len(graduates)}
	if len(graduates) == 0 {
		return result, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.ChunkResult{}, unavailable("begin tx", err)
	}
	defer tx.Rollback(ctx)

	for i, g := range graduates {
		if _, err := tx.Exec(ctx, "SAVEPOINT graduate_row"); err != nil {
			return domain.ChunkResult{}, unavailable("savepoint", err)
		}

		failure, err := insertRow(ctx, tx, i, g)
		if err != nil {
			return domain.ChunkResult{}, err
		}
		if failure != nil {
			if _, err := tx.Exec(ctx, "ROLLBACK TO SAVEPOINT graduate_row"); err != nil {
				return domain.ChunkResult{}, unavailable("rollback to savepoint", err)
			}
			result.Failures = append(result.Failures, *failure)
			continue
		}

		if _, err := tx.Exec(ctx, "RELEASE SAVEPOINT graduate_row"); err != nil {
			return domain.ChunkResult{}, unavailable("release savepoint", err)
		}
		result.Inserted++
	}

	if err := tx.Commit(ctx); err != nil {
		return domain.ChunkResult{}, unavailable("commit graduate chunk", err)
	}

	return result, nil
}

// insertRow returns a failure for row-level database rejections and an error
// only when the connection itself is unusable.
func insertRow(ctx context.Context, tx pgx.Tx, index int, g domain.Graduate) (*domain.WriteFailure, error) {
	_, err := tx.Exec(ctx, insertGraduateSQL, g.NuID, g.FullName, g.NuEmail, g.Discipline, g.YearOfGraduation, g.CGPA)
	if err == nil {
		return nil, nil
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil, unavailable("insert graduate", err)
	}

	failure := classifyPgError(index, g, pgErr)
	return &failure, nil
}

func classifyPgError(index int, g domain.Graduate, pgErr *pgconn.PgError) domain.WriteFailure {
	failure := domain.WriteFailure{Index: index, Reason: pgErr.Message}
	if pgErr.Code != uniqueViolationCode {
		return failure
	}

	switch {
	case pgErr.ConstraintName == models.GraduateNuIDIndex || strings.Contains(pgErr.Detail, "(nu_id)"):
		failure.Key, failure.Value = domain.KeyNuID, g.NuID
	case pgErr.ConstraintName == models.GraduateNuEmailIndex || strings.Contains(pgErr.Detail, "(nu_email)"):
		failure.Key, failure.Value = domain.KeyNuEmail, g.NuEmail
	}
	return failure
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrStoreUnavailable, op, err)
}
