package graduate

import (
	"errors"
	"fmt"
)

var (
	ErrGraduateNotFound  = errors.New("graduate not found")
	ErrInvalidGraduateID = errors.New("invalid graduate id")
	ErrStoreUnavailable  = errors.New("graduate store unavailable")
)

// ParseError is returned when an uploaded workbook cannot be read.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse spreadsheet %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
