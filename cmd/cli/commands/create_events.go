package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hernanbarrientos/escala-connect/pkg/core/services"
)

// CreateEventsCmd creates the createEvents command
func CreateEventsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "createEvents <month>",
		Short: "Materialize the month's events from the weekly service templates",
		Long: `Expand every weekly service template into dated events for the given month
(YYYY-MM). Existing events for that month are replaced, which also clears any
schedule generated against them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := services.ParseMonth(args[0])
			if err != nil {
				return err
			}

			result, err := services.CreateEvents(app.Ctx, app.Database, app.Logger, app.Cfg.MinistryID, year, month)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Month materialized!\n\n")
			fmt.Printf("Templates expanded: %d\n", result.TemplateCount)
			fmt.Printf("Events created:     %d\n\n", result.EventCount)

			return nil
		},
	}
}
