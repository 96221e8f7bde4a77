package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/services"
)

// ViewSimulationRunsCmd creates the viewSimulationRuns command
func ViewSimulationRunsCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewSimulationRuns <count>",
		Short: "View recent saved simulation runs, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[0])
			if err != nil || count < 1 {
				return fmt.Errorf("count must be a positive integer, got: %s", args[0])
			}

			app.Logger.Debug("viewSimulationRuns command", zap.Int("count", count))

			runs, err := services.ListSimulationRuns(app.Ctx, app.Store, app.Logger, count)
			if err != nil {
				return err
			}

			// ANSI color codes
			const (
				colorReset = "\033[0m"
				colorGreen = "\033[32m"
				colorRed   = "\033[31m"
			)

			fmt.Printf("\nSimulation Runs (last %d)\n\n", len(runs))
			fmt.Printf("%-18s %-25s %-6s %-7s %-10s\n", "When", "Staff", "Days", "Nights", "Unassigned")
			for _, run := range runs {
				cell := strconv.Itoa(run.UnassignedCount)
				// Green when every slot landed, red otherwise
				color := colorGreen
				if run.UnassignedCount > 0 {
					color = colorRed
				}
				fmt.Printf("%-18s %-25s %-6d %-7d %s%-10s%s\n",
					run.CreatedAt.Format("2006-01-02 15:04"),
					run.StaffName,
					run.DayCount,
					run.NightCount,
					color, cell, colorReset)
			}
			fmt.Println()

			return nil
		},
	}
}
