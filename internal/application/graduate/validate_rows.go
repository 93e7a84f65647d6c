package graduate

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	domain "github.com/nucareers/career-portal/internal/domain/graduate"
)

// Column names as produced by the spreadsheet parser's header normalization.
const (
	ColumnNuID             = "nuid"
	ColumnFullName         = "fullname"
	ColumnNuEmail          = "nuemail"
	ColumnDiscipline       = "discipline"
	ColumnYearOfGraduation = "yearofgraduation"
	ColumnCGPA             = "cgpa"
)

type rowCandidate struct {
	NuID             string `validate:"required"`
	FullName         string `validate:"required"`
	NuEmail          string `validate:"required"`
	Discipline       string `validate:"required"`
	YearOfGraduation string `validate:"required"`
	CGPA             string `validate:"required"`
}

// RowValidator normalizes identifier columns and checks required fields.
type RowValidator struct {
	validate *validator.Validate
}

func NewRowValidator() *RowValidator {
	return &RowValidator{validate: validator.New()}
}

func (v *RowValidator) Validate(row domain.RawRow) domain.RowOutcome {
	candidate := rowCandidate{
		NuID:             domain.NormalizeKey(row.Values[ColumnNuID]),
		FullName:         strings.TrimSpace(row.Values[ColumnFullName]),
		NuEmail:          domain.NormalizeKey(row.Values[ColumnNuEmail]),
		Discipline:       strings.TrimSpace(row.Values[ColumnDiscipline]),
		YearOfGraduation: strings.TrimSpace(row.Values[ColumnYearOfGraduation]),
		CGPA:             strings.TrimSpace(row.Values[ColumnCGPA]),
	}

	if err := v.validate.Struct(candidate); err != nil {
		return domain.RejectedRow{
			Row:    row.Index,
			Reason: fmt.Sprintf("Row %d: Missing required field(s).", row.Index),
		}
	}

	var invalid []string
	year, err := strconv.Atoi(candidate.YearOfGraduation)
	if err != nil {
		// Spreadsheet cells may carry numeric years as "2021.0".
		if f, ferr := strconv.ParseFloat(candidate.YearOfGraduation, 64); ferr == nil && f == float64(int(f)) {
			year = int(f)
		} else {
			invalid = append(invalid, "yearOfGraduation")
		}
	}
	cgpa, err := strconv.ParseFloat(candidate.CGPA, 64)
	if err != nil {
		invalid = append(invalid, "cgpa")
	}
	if len(invalid) > 0 {
		return domain.RejectedRow{
			Row:    row.Index,
			Reason: fmt.Sprintf("Row %d: Invalid value for field(s): %s.", row.Index, strings.Join(invalid, ", ")),
		}
	}

	return domain.ValidRow{
		Row: row.Index,
		Graduate: domain.Graduate{
			NuID:             candidate.NuID,
			FullName:         candidate.FullName,
			NuEmail:          candidate.NuEmail,
			Discipline:       candidate.Discipline,
			YearOfGraduation: year,
			CGPA:             cgpa,
		},
	}
}

// ValidateAll splits rows into valid candidates and rejections, both in source order.
func (v *RowValidator) ValidateAll(rows []domain.RawRow) ([]domain.Graduate, []domain.RejectedRow) {
	candidates := make([]domain.Graduate, 0, len(rows))
	var rejections []domain.RejectedRow

	for _, row := range rows {
		switch outcome := v.Validate(row).(type) {
		case domain.ValidRow:
			candidates = append(candidates, outcome.Graduate)
		case domain.RejectedRow:
			rejections = append(rejections, outcome)
		}
	}

	return candidates, rejections
}
