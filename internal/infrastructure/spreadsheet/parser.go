package spreadsheet

import (
	"context"
	"errors"
	"strings"

	domain "github.com/nucareers/career-portal/internal/domain/graduate"
	"github.com/xuri/excelize/v2"
)

var errNoSheets = errors.New("workbook contains no sheets")

// Parser reads the first worksheet of an .xlsx workbook into header-keyed rows.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(ctx context.Context, path string) ([]domain.RawRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, &domain.ParseError{Path: path, Err: errNoSheets}
	}

	rows, err := file.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &domain.ParseError{Path: path, Err: err}
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := make([]string, len(rows[0]))
	for i, header := range rows[0] {
		headers[i] = NormalizeHeader(header)
	}

	records := make([]domain.RawRow, 0, len(rows)-1)
	index := 0
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		index++

		values := make(map[string]string, len(headers))
		for col, header := range headers {
			if header == "" || col >= len(row) {
				continue
			}
			values[header] = row[col]
		}
		records = append(records, domain.RawRow{Index: index, Values: values})
	}

	return records, nil
}

// NormalizeHeader maps "Full Name", "full_name" and "fullName" to "fullname".
func NormalizeHeader(header string) string {
	header = strings.ToLower(strings.TrimSpace(header))
	return strings.NewReplacer(" ", "", "_", "", "-", "").Replace(header)
}

func isBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
