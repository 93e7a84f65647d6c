package graduate

import (
	"fmt"
	"strings"
	"time"
)

const (
	KeyNuID    = "nuId"
	KeyNuEmail = "nuEmail"
)

// RawRow is one data row of the first worksheet, keyed by normalized column header.
type RawRow struct {
	Index  int
	Values map[string]string
}

// RowOutcome is either a ValidRow or a RejectedRow.
type RowOutcome interface {
	rowOutcome()
}

type ValidRow struct {
	Row      int
	Graduate Graduate
}

type RejectedRow struct {
	Row    int
	Reason string
}

func (ValidRow) rowOutcome()    {}
func (RejectedRow) rowOutcome() {}

// WriteFailure describes one row a chunk insert did not persist. Key is set
// only for unique-key collisions.
type WriteFailure struct {
	Index  int
	Key    string
	Value  string
	Reason string
}

func (f WriteFailure) IsDuplicate() bool {
	return f.Key != ""
}

type ChunkResult struct {
	Attempted int
	Inserted  int
	Failures  []WriteFailure
}

func (r ChunkResult) Failed() int {
	return r.Attempted - r.Inserted
}

type ImportOutcome struct {
	TotalRows         int
	TotalInserted     int
	TotalFailed       int
	DuplicateNuIDs    []string
	DuplicateNuEmails []string
	RowErrors         []RejectedRow
}

func (o ImportOutcome) Summary() string {
	return fmt.Sprintf(
		"Successfully imported %d graduates. %d records failed. Duplicates: nuId(s): %s. nuEmail(s): %s.",
		o.TotalInserted,
		o.TotalFailed,
		joinOrNone(o.DuplicateNuIDs),
		joinOrNone(o.DuplicateNuEmails),
	)
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

type ImportRun struct {
	ID             string
	FileName       string
	CallerID       string
	TotalRows      int
	InsertedCount  int
	FailedCount    int
	RejectedCount  int
	DuplicateCount int
	StartedAt      time.Time
	FinishedAt     time.Time
}
