package cli

import (
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "mentor",
		Short:         "Learning progress service for the AWS MLOps mentor dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		// Bare `mentor` serves, matching the container entrypoint.
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newTreeCmd(),
		newProgressCmd(),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}
