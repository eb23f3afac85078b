package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/app"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update tables and learning indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := app.New(app.Options{})
			if err != nil {
				return err
			}
			defer a.Close()
			if err := a.Migrate(); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			a.Log.Info("Migration complete", "driver", a.Cfg.DB.Driver)
			return nil
		},
	}
}
