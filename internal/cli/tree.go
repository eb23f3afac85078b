package cli

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/app"
	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/dbctx"
)

func newTreeCmd() *cobra.Command {
	var user string
	cmd := &cobra.Command{
		Use:   "tree --user <uuid>",
		Short: "Print a user's learning tree as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}
			a, err := app.New(app.Options{})
			if err != nil {
				return err
			}
			defer a.Close()

			domains, err := a.Services.LearningData.GetUserLearningData(dbctx.Context{Ctx: cmdContext(cmd)}, userID)
			if err != nil {
				return fmt.Errorf("build learning tree: %w", err)
			}
			if domains == nil {
				domains = []types.DomainView{}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"domains": domains})
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
