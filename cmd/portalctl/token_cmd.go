package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	app "github.com/nucareers/career-portal/internal/application/graduate"
	"github.com/nucareers/career-portal/internal/config"
	httpecho "github.com/nucareers/career-portal/internal/interfaces/http/echo"
)

func newTokenCmd() *cobra.Command {
	var (
		sub  string
		role string
		ttl  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if role != app.RoleAdmin && role != app.RoleGraduate {
				return fmt.Errorf("invalid --role %q: want %s or %s", role, app.RoleAdmin, app.RoleGraduate)
			}

			auth, err := config.LoadAuth()
			if err != nil {
				return err
			}

			token, err := httpecho.SignAccessToken(auth.AccessSecret, sub, role, ttl, time.Now())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&sub, "sub", "", "Subject: user or graduate id (required)")
	cmd.Flags().StringVar(&role, "role", app.RoleGraduate, "Role claim: admin or graduate")
	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "Token lifetime")
	_ = cmd.MarkFlagRequired("sub")
	return cmd
}
