package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "portalctl",
		Short:        "Operator tools for the career portal graduate directory",
		SilenceUsage: true,
	}
	cmd.AddCommand(newImportCmd(), newTokenCmd(), newMigrateCmd())
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
