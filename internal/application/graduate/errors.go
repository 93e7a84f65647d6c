package graduate

import "errors"

var (
	ErrForbidden         = errors.New("forbidden")
	ErrNoFileUploaded    = errors.New("no file uploaded")
	ErrNoValidRecords    = errors.New("no valid records to import")
	ErrImportGraduates   = errors.New("failed to import graduates")
	ErrInvalidGraduateID = errors.New("invalid graduate id")
	ErrGraduateNotFound  = errors.New("graduate not found")
	ErrEmptyPatch        = errors.New("no editable fields supplied")
	ErrGetGraduate       = errors.New("failed to get graduate")
	ErrListGraduates     = errors.New("failed to list graduates")
	ErrUpdateGraduate    = errors.New("failed to update graduate")
	ErrDeleteGraduate    = errors.New("failed to delete graduate")
	ErrListImportRuns    = errors.New("failed to list import runs")
)
