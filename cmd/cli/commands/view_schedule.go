package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hernanbarrientos/escala-connect/pkg/core/services"
)

// ViewScheduleCmd creates the viewSchedule command
func ViewScheduleCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewSchedule <month>",
		Short: "Display the month's schedule, vacancies included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := services.ParseMonth(args[0])
			if err != nil {
				return err
			}

			result, err := services.ViewSchedule(app.Ctx, app.Database, app.Logger, app.Cfg.MinistryID, year, month)
			if err != nil {
				return err
			}

			if len(result.Days) == 0 {
				fmt.Printf("\nNo events found for %s.\n\n", args[0])
				return nil
			}

			for _, day := range result.Days {
				fmt.Printf("\n%s — %s\n", day.Date.Format("Monday, 02 Jan 2006"), day.ServiceName)
				for _, slot := range day.Slots {
					fmt.Printf("  %-20s %s\n", slotLabel(slot)+":", slot.Display())
				}
			}

			fmt.Printf("\n%d filled, %d vacant\n\n", result.FilledCount, result.VacantCount)

			return nil
		},
	}
}

// slotLabel names an opening, numbering repeated openings of the same role
func slotLabel(slot services.ScheduleSlot) string {
	if slot.Instance > 1 {
		return fmt.Sprintf("%s %d", slot.RoleName, slot.Instance)
	}
	return slot.RoleName
}
