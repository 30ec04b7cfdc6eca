package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ListVolunteersCmd creates the listVolunteers command
func ListVolunteersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listVolunteers",
		Short: "List the ministry's volunteers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			volunteers, err := app.Database.ListVolunteers(app.Ctx, app.Cfg.MinistryID)
			if err != nil {
				return fmt.Errorf("failed to list volunteers: %w", err)
			}

			app.Logger.Info("Volunteers fetched successfully", zap.Int("count", len(volunteers)))

			fmt.Printf("\nFound %d volunteers:\n\n", len(volunteers))
			for _, v := range volunteers {
				groupInfo := ""
				if v.GroupID != 0 {
					groupInfo = fmt.Sprintf(" [Group: %d]", v.GroupID)
				}
				fmt.Printf("- %s (#%d) - %s - serves up to %d/month%s\n",
					v.Name,
					v.ID,
					v.Experience,
					v.MonthlyLimit,
					groupInfo,
				)
			}
			fmt.Println()

			return nil
		},
	}
}
