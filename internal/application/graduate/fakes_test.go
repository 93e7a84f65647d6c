package graduate_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"time"

	domain "github.com/nucareers/career-portal/internal/domain/graduate"
)

type fakeParser struct {
	rows []domain.RawRow
	err  error
}

func (f *fakeParser) Parse(ctx context.Context, path string) ([]domain.RawRow, error) {
	return f.rows, f.err
}

// fakeInserter enforces nuId/nuEmail uniqueness in memory like the real stores.
type fakeInserter struct {
	mu         sync.Mutex
	chunkSizes []int
	errs       map[int]error
	byNuID     map[string]domain.Graduate
	nuEmails   map[string]bool
	afterChunk func(chunkNo int)
}

func newFakeInserter() *fakeInserter {
	return &fakeInserter{
		errs:     map[int]error{},
		byNuID:   map[string]domain.Graduate{},
		nuEmails: map[string]bool{},
	}
}

func (f *fakeInserter) InsertChunk(ctx context.Context, graduates []domain.Graduate) (domain.ChunkResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.chunkSizes = append(f.chunkSizes, len(graduates))
	if f.afterChunk != nil {
		defer f.afterChunk(len(f.chunkSizes))
	}
	if err := f.errs[len(f.chunkSizes)]; err != nil {
		return domain.ChunkResult{}, err
	}

	result := domain.ChunkResult{Attempted: len(graduates)}
	for i, g := range graduates {
		switch {
		case hasKey(f.byNuID, g.NuID):
			result.Failures = append(result.Failures, domain.WriteFailure{Index: i, Key: domain.KeyNuID, Value: g.NuID, Reason: "duplicate nuId"})
		case f.nuEmails[g.NuEmail]:
			result.Failures = append(result.Failures, domain.WriteFailure{Index: i, Key: domain.KeyNuEmail, Value: g.NuEmail, Reason: "duplicate nuEmail"})
		default:
			f.byNuID[g.NuID] = g
			f.nuEmails[g.NuEmail] = true
			result.Inserted++
		}
	}
	return result, nil
}

func hasKey(m map[string]domain.Graduate, key string) bool {
	_, ok := m[key]
	return ok
}

type fakeUploads struct {
	removed []string
}

func (f *fakeUploads) Remove(path string) error {
	f.removed = append(f.removed, path)
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

type fakeRuns struct {
	recorded []domain.ImportRun
	err      error
	listed   []domain.ImportRun
	limit    int
}

func (f *fakeRuns) Record(ctx context.Context, run domain.ImportRun) error {
	f.recorded = append(f.recorded, run)
	return f.err
}

func (f *fakeRuns) ListRecent(ctx context.Context, limit int) ([]domain.ImportRun, error) {
	f.limit = limit
	return f.listed, f.err
}

type fakeObserver struct {
	chunks   []domain.ChunkResult
	outcomes []domain.ImportOutcome
	errs     []error
}

func (f *fakeObserver) ObserveChunk(duration time.Duration, result domain.ChunkResult) {
	f.chunks = append(f.chunks, result)
}

func (f *fakeObserver) ObserveImport(outcome domain.ImportOutcome, err error) {
	f.outcomes = append(f.outcomes, outcome)
	f.errs = append(f.errs, err)
}

type fakeStore struct {
	graduates map[string]domain.Graduate
	listErr   error
	gotFilter domain.ListFilter
	updated   []domain.ProfilePatch
	deleted   []string
}

func newFakeStore(graduates ...domain.Graduate) *fakeStore {
	s := &fakeStore{graduates: map[string]domain.Graduate{}}
	for _, g := range graduates {
		s.graduates[g.ID] = g
	}
	return s
}

func (s *fakeStore) GetByID(ctx context.Context, id string) (*domain.Graduate, error) {
	if id == "bad" {
		return nil, domain.ErrInvalidGraduateID
	}
	g, ok := s.graduates[id]
	if !ok {
		return nil, domain.ErrGraduateNotFound
	}
	return &g, nil
}

func (s *fakeStore) List(ctx context.Context, filter domain.ListFilter) (domain.Page, error) {
	s.gotFilter = filter
	if s.listErr != nil {
		return domain.Page{}, s.listErr
	}
	items := make([]domain.Graduate, 0, len(s.graduates))
	for _, g := range s.graduates {
		items = append(items, g)
	}
	return domain.Page{Items: items, Total: int64(len(items))}, nil
}

func (s *fakeStore) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.Graduate, error) {
	g, ok := s.graduates[id]
	if !ok {
		return nil, domain.ErrGraduateNotFound
	}
	patch.Apply(&g)
	s.graduates[id] = g
	s.updated = append(s.updated, patch)
	return &g, nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.graduates[id]; !ok {
		return domain.ErrGraduateNotFound
	}
	delete(s.graduates, id)
	s.deleted = append(s.deleted, id)
	return nil
}
