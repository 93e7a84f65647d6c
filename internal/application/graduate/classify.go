package graduate

import domain "github.com/nucareers/career-portal/internal/domain/graduate"

// classifyDuplicates collects the colliding key values of unique-key failures.
func classifyDuplicates(failures []domain.WriteFailure) (nuIDs []string, nuEmails []string) {
	for _, failure := range failures {
		switch failure.Key {
		case domain.KeyNuID:
			nuIDs = append(nuIDs, failure.Value)
		case domain.KeyNuEmail:
			nuEmails = append(nuEmails, failure.Value)
		}
	}
	return nuIDs, nuEmails
}

// foldOutcome reduces chunk results into the final outcome.
func foldOutcome(totalRows int, rejections []domain.RejectedRow, results []domain.ChunkResult) domain.ImportOutcome {
	outcome := domain.ImportOutcome{
		TotalRows: totalRows,
		RowErrors: rejections,
	}

	for _, result := range results {
		ids, emails := classifyDuplicates(result.Failures)
		outcome.TotalInserted += result.Inserted
		outcome.TotalFailed += result.Failed()
		outcome.DuplicateNuIDs = append(outcome.DuplicateNuIDs, ids...)
		outcome.DuplicateNuEmails = append(outcome.DuplicateNuEmails, emails...)
	}

	return outcome
}
