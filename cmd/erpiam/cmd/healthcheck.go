package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrmeaow/erp-iam-secureid/internal/utils"
)

const defaultHealthcheckURL = "http://localhost:3333"

func newHealthcheckCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	healthcheckCmd := &cobra.Command{
		Use:   "healthcheck",
		Short: "Check if the server is healthy",
		Long: `Performs a health check by calling the /health endpoint.

It exits with code 0 if the server answers 200 with status "ok" and
non-zero otherwise, which makes it usable as a container HEALTHCHECK.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			health, err := utils.NewHTTPClient(baseURL, timeout).Health(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "status: %s\n", health.Status)
			if health.Database != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "database: %s\n", health.Database)
			}
			if health.Version != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", health.Version)
			}
			return nil
		},
	}

	healthcheckCmd.Flags().StringVar(&baseURL, "url", defaultHealthcheckURL, "base URL of the server")
	healthcheckCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "request timeout")

	return healthcheckCmd
}
