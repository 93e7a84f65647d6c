package main

import (
	"fmt"

	"github.com/spf13/cobra"

	app "github.com/nucareers/career-portal/internal/application/graduate"
	"github.com/nucareers/career-portal/internal/bootstrap"
	"github.com/nucareers/career-portal/internal/config"
	infrafile "github.com/nucareers/career-portal/internal/infrastructure/file"
	"github.com/nucareers/career-portal/internal/logging"
)

type importOutput struct {
	Command           string   `json:"command"`
	RunID             string   `json:"runId"`
	TotalRows         int      `json:"totalRows"`
	TotalInserted     int      `json:"totalInserted"`
	TotalFailed       int      `json:"totalFailed"`
	DuplicateNuIDs    []string `json:"duplicateNuIds"`
	DuplicateNuEmails []string `json:"duplicateNuEmails"`
	RowErrors         []string `json:"rowErrors"`
	Message           string   `json:"message"`
}

func newImportCmd() *cobra.Command {
	var (
		filePath string
		callerID string
	)

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import graduates from an .xlsx workbook; the source file is left in place",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := logging.New(cfg.Log.Level, cfg.Log.Format)

			stores, err := bootstrap.OpenStores(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer stores.Close(cmd.Context())

			if cfg.AutoMigrate {
				if err := stores.Migrate(cmd.Context()); err != nil {
					return err
				}
			}

			uploads := infrafile.NewUploads(cfg.UploadDir)
			staged, err := uploads.Stage(filePath)
			if err != nil {
				return fmt.Errorf("stage %s: %w", filePath, err)
			}

			importer := bootstrap.NewImportGraduates(cfg, log, stores, uploads, nil)
			out, err := importer.Execute(cmd.Context(), app.ImportGraduatesInput{
				FilePath: staged.Path,
				FileName: staged.OriginalName,
				Caller:   app.Caller{ID: callerID, Role: app.RoleAdmin},
			})
			if err != nil {
				return err
			}

			result := importOutput{
				Command:           "import",
				RunID:             out.RunID,
				TotalRows:         out.Outcome.TotalRows,
				TotalInserted:     out.Outcome.TotalInserted,
				TotalFailed:       out.Outcome.TotalFailed,
				DuplicateNuIDs:    out.Outcome.DuplicateNuIDs,
				DuplicateNuEmails: out.Outcome.DuplicateNuEmails,
				Message:           out.Message,
			}
			for _, rejected := range out.Outcome.RowErrors {
				result.RowErrors = append(result.RowErrors, rejected.Reason)
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&filePath, "file", "", "Path to the .xlsx workbook (required)")
	cmd.Flags().StringVar(&callerID, "as", "portalctl", "Caller id recorded in the import ledger")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
