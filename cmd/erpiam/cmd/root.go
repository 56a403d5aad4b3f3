// Package cmd implements the erpiam operator CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrmeaow/erp-iam-secureid/models"
)

// NewRootCmd builds the erpiam command tree.
func NewRootCmd(info models.AppBuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "erpiam",
		Short: "Operator tooling for the ERP IAM API",
		Long: `erpiam bundles the operational tasks around the ERP IAM API server:
generating the RS256 key pair used to sign access tokens and probing a
running server's health endpoint.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newKeysCmd())
	rootCmd.AddCommand(newHealthcheckCmd())
	rootCmd.AddCommand(newVersionCmd(info))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute(info models.AppBuildInfo) {
	if err := NewRootCmd(info).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
