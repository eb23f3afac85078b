package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/app"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/envutil"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and realtime stream",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func runServe(cmd *cobra.Command) error {
	a, err := app.New(app.Options{AutoMigrate: envutil.Bool("DB_AUTO_MIGRATE", true, nil)})
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.Start(); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmdContext(cmd), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return a.Run(ctx)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
