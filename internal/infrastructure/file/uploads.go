package file

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrUnsupportedFileType = errors.New("unsupported upload file type")
	// ErrLegacyWorkbook marks binary .xls workbooks, which the parser cannot read.
	ErrLegacyWorkbook = fmt.Errorf("%w: legacy .xls workbook", ErrUnsupportedFileType)
)

const (
	xlsxExtension = ".xlsx"
	xlsExtension  = ".xls"
	xlsxMIME      = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	zipMIME       = "application/zip"
)

type StoredUpload struct {
	Path         string
	OriginalName string
}

// Uploads stages spreadsheets in a scratch directory until an import consumes them.
type Uploads struct {
	Dir string
}

func NewUploads(dir string) *Uploads {
	if dir == "" {
		dir = "uploads"
	}
	return &Uploads{Dir: dir}
}

func (u *Uploads) Save(header *multipart.FileHeader) (StoredUpload, error) {
	if err := checkExtension(header.Filename); err != nil {
		return StoredUpload{}, err
	}

	src, err := header.Open()
	if err != nil {
		return StoredUpload{}, fmt.Errorf("open upload %s: %w", header.Filename, err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return StoredUpload{}, fmt.Errorf("detect upload type: %w", err)
	}
	if !isSpreadsheet(mtype) {
		return StoredUpload{}, ErrUnsupportedFileType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return StoredUpload{}, fmt.Errorf("rewind upload: %w", err)
	}

	return u.write(src, header.Filename)
}

// Stage copies a local workbook into the scratch directory so the import can
// delete its copy without touching the original.
func (u *Uploads) Stage(sourcePath string) (StoredUpload, error) {
	if err := checkExtension(sourcePath); err != nil {
		return StoredUpload{}, err
	}

	src, err := os.Open(sourcePath)
	if err != nil {
		return StoredUpload{}, fmt.Errorf("open file %s: %w", sourcePath, err)
	}
	defer src.Close()

	return u.write(src, filepath.Base(sourcePath))
}

func (u *Uploads) Remove(path string) error {
	return os.Remove(path)
}

func (u *Uploads) write(src io.Reader, originalName string) (StoredUpload, error) {
	if err := os.MkdirAll(u.Dir, 0o750); err != nil {
		return StoredUpload{}, fmt.Errorf("create upload dir %s: %w", u.Dir, err)
	}

	path := filepath.Join(u.Dir, uuid.NewString()+xlsxExtension)
	dst, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return StoredUpload{}, fmt.Errorf("create upload %s: %w", path, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return StoredUpload{}, fmt.Errorf("write upload %s: %w", path, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return StoredUpload{}, fmt.Errorf("close upload %s: %w", path, err)
	}

	return StoredUpload{Path: path, OriginalName: originalName}, nil
}

func isSpreadsheet(mtype *mimetype.MIME) bool {
	for m := mtype; m != nil; m = m.Parent() {
		if m.Is(xlsxMIME) || m.Is(zipMIME) {
			return true
		}
	}
	return false
}

func checkExtension(name string) error {
	switch ext := filepath.Ext(name); {
	case strings.EqualFold(ext, xlsxExtension):
		return nil
	case strings.EqualFold(ext, xlsExtension):
		return ErrLegacyWorkbook
	default:
		return ErrUnsupportedFileType
	}
}
