package graduate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	app "github.com/nucareers/career-portal/internal/application/graduate"
	domain "github.com/nucareers/career-portal/internal/domain/graduate"
)

func rawRow(index int, nuID, fullName, nuEmail, discipline, year, cgpa string) domain.RawRow {
	values := map[string]string{}
	put := func(column, value string) {
		if value != "" {
			values[column] = value
		}
	}
	put(app.ColumnNuID, nuID)
	put(app.ColumnFullName, fullName)
	put(app.ColumnNuEmail, nuEmail)
	put(app.ColumnDiscipline, discipline)
	put(app.ColumnYearOfGraduation, year)
	put(app.ColumnCGPA, cgpa)
	return domain.RawRow{Index: index, Values: values}
}

func TestRowValidatorNormalizesKeys(t *testing.T) {
	t.Parallel()

	outcome := app.NewRowValidator().Validate(rawRow(1, "  K20-0001 ", " Alice Khan ", " Alice@NU.edu.PK", "CS", "2021.0", "3.45"))

	valid, ok := outcome.(domain.ValidRow)
	require.True(t, ok, "expected a valid row, got %#v", outcome)
	require.Equal(t, domain.Graduate{
		NuID:             "k20-0001",
		FullName:         "Alice Khan",
		NuEmail:          "alice@nu.edu.pk",
		Discipline:       "CS",
		YearOfGraduation: 2021,
		CGPA:             3.45,
	}, valid.Graduate)
}

func TestRowValidatorRejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		row  domain.RawRow
		want string
	}{
		{
			name: "missing cgpa",
			row:  rawRow(211, "k20-0211", "Zed", "zed@nu.edu.pk", "CS", "2022", ""),
			want: "Row 211: Missing required field(s).",
		},
		{
			name: "whitespace only nuId",
			row:  rawRow(3, "   ", "Zed", "zed@nu.edu.pk", "CS", "2022", "3.0"),
			want: "Row 3: Missing required field(s).",
		},
		{
			name: "several missing fields yield one message",
			row:  rawRow(4, "", "", "", "CS", "2022", "3.0"),
			want: "Row 4: Missing required field(s).",
		},
		{
			name: "non numeric values",
			row:  rawRow(5, "k20-0005", "Zed", "zed@nu.edu.pk", "CS", "twenty", "high"),
			want: "Row 5: Invalid value for field(s): yearOfGraduation, cgpa.",
		},
		{
			name: "fractional year",
			row:  rawRow(6, "k20-0006", "Zed", "zed@nu.edu.pk", "CS", "2021.5", "3.0"),
			want: "Row 6: Invalid value for field(s): yearOfGraduation.",
		},
	}

	validator := app.NewRowValidator()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outcome := validator.Validate(tt.row)
			rejected, ok := outcome.(domain.RejectedRow)
			require.True(t, ok, "expected a rejection, got %#v", outcome)
			require.Equal(t, tt.row.Index, rejected.Row)
			require.Equal(t, tt.want, rejected.Reason)
		})
	}
}

func TestRowValidatorValidateAllKeepsOrder(t *testing.T) {
	t.Parallel()

	rows := []domain.RawRow{
		rawRow(1, "k1", "A", "a@nu.edu.pk", "CS", "2020", "3.0"),
		rawRow(2, "k2", "B", "", "CS", "2020", "3.0"),
		rawRow(3, "k3", "C", "c@nu.edu.pk", "CS", "2020", "3.0"),
		rawRow(4, "", "D", "d@nu.edu.pk", "CS", "2020", "3.0"),
	}

	candidates, rejections := app.NewRowValidator().ValidateAll(rows)

	require.Len(t, candidates, 2)
	require.Equal(t, "k1", candidates[0].NuID)
	require.Equal(t, "k3", candidates[1].NuID)
	require.Equal(t, []domain.RejectedRow{
		{Row: 2, Reason: "Row 2: Missing required field(s)."},
		{Row: 4, Reason: "Row 4: Missing required field(s)."},
	}, rejections)
}
