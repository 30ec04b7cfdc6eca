package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hernanbarrientos/escala-connect/pkg/core/services"
)

// GenerateScheduleCmd creates the generateSchedule command
func GenerateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateSchedule <month>",
		Short: "Generate the month's schedule from the roster",
		Long: `Wipe the month's stored schedule and regenerate it: groups are placed first
as all-or-nothing units, then individual volunteers fill the remaining
openings tier by tier.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := services.ParseMonth(args[0])
			if err != nil {
				return err
			}

			dryRun, _ := cmd.Flags().GetBool("dry-run")

			params := services.GenerateScheduleParams{
				MinistryID: app.Cfg.MinistryID,
				Year:       year,
				Month:      month,
				DryRun:     dryRun,
				MaxRounds:  app.Cfg.MaxGenerationRounds,
			}
			if cmd.Flags().Changed("seed") {
				seed, _ := cmd.Flags().GetInt64("seed")
				params.Seed = &seed
			}

			result, err := services.GenerateSchedule(app.Ctx, app.Database, app.Logger, params)
			if err != nil {
				return err
			}

			switch result.Status {
			case services.StatusSuccess:
				if dryRun {
					fmt.Printf("\n✓ Dry run, nothing was saved.\n\n")
				} else {
					fmt.Printf("\n✓ Schedule generated!\n\n")
				}
				fmt.Printf("Openings filled: %d of %d\n", result.AssignmentCount, result.TotalSlots)
				if result.OpenSlotCount > 0 {
					fmt.Printf("Left open:       %d\n", result.OpenSlotCount)
				}
			default:
				fmt.Printf("\nℹ %s\n", result.Message)
			}

			if len(result.Diagnostics) > 0 {
				fmt.Println("\nNotes:")
				for _, d := range result.Diagnostics {
					fmt.Printf("  - %s\n", d)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Fixed seed for reproducible random decisions")
	cmd.Flags().Bool("dry-run", false, "Compute the schedule without saving it")

	return cmd
}
