package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/app"
	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
	"github.com/surya-madhav/AWS-MLOps-Mentor/internal/platform/dbctx"
)

func newProgressCmd() *cobra.Command {
	var (
		user       string
		item       string
		completed  bool
		notes      string
		clearNotes bool
	)
	cmd := &cobra.Command{
		Use:   "progress --user <uuid> --item <uuid> --completed[=false]",
		Short: "Record one progress update for a user and content item",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(user)
			if err != nil {
				return fmt.Errorf("invalid --user: %w", err)
			}
			itemID, err := uuid.Parse(item)
			if err != nil {
				return fmt.Errorf("invalid --item: %w", err)
			}
			var noteArg types.OptionalString
			switch {
			case clearNotes && cmd.Flags().Changed("notes"):
				return errors.New("--notes and --clear-notes are mutually exclusive")
			case clearNotes:
				noteArg = types.OptionalString{Set: true}
			case cmd.Flags().Changed("notes"):
				noteArg = types.OptionalString{Set: true, Value: &notes}
			}

			a, err := app.New(app.Options{})
			if err != nil {
				return err
			}
			defer a.Close()

			res := a.Services.Progress.UpdateProgress(dbctx.Context{Ctx: cmdContext(cmd)}, userID, itemID, completed, noteArg, types.OptionalVideos{})
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
			if !res.Success {
				return errors.New(res.Error)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&user, "user", "", "user id")
	cmd.Flags().StringVar(&item, "item", "", "content item id")
	cmd.Flags().BoolVar(&completed, "completed", false, "mark the item completed")
	cmd.Flags().StringVar(&notes, "notes", "", "replace the stored notes")
	cmd.Flags().BoolVar(&clearNotes, "clear-notes", false, "remove the stored notes")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("item")
	_ = cmd.MarkFlagRequired("completed")
	return cmd
}
