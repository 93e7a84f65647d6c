package graduate

import "context"

type BulkInserter interface {
	InsertChunk(ctx context.Context, graduates []Graduate) (ChunkResult, error)
}

type QueryRepository interface {
	GetByID(ctx context.Context, id string) (*Graduate, error)
	List(ctx context.Context, filter ListFilter) (Page, error)
}

type CommandRepository interface {
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*Graduate, error)
	Delete(ctx context.Context, id string) error
}

// Store is implemented by each graduate persistence backend.
type Store interface {
	BulkInserter
	QueryRepository
	CommandRepository
}

type ImportRunRepository interface {
	Record(ctx context.Context, run ImportRun) error
	ListRecent(ctx context.Context, limit int) ([]ImportRun, error)
}
