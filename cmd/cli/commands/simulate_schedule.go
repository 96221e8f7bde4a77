package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/schedule"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/services"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/simulator"
)

// SimulateScheduleCmd creates the simulateSchedule command
func SimulateScheduleCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulateSchedule [staff_name]",
		Short: "Simulate seniority-based shift allocation across the cycle",
		Long:  "Run the allocation simulation for one staff member (or everyone with --all) against the committed schedule",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			all, _ := cmd.Flags().GetBool("all")
			workers, _ := cmd.Flags().GetInt("workers")

			if all {
				app.Logger.Debug("simulateSchedule command (all staff)",
					zap.Bool("dry_run", dryRun),
					zap.Int("workers", workers))

				results, err := services.SimulateAll(app.Ctx, app.Store, app.Cfg, app.Logger, workers, dryRun)
				if err != nil {
					return fmt.Errorf("simulation failed: %w", err)
				}

				fmt.Printf("\nSimulation Results (%d staff)\n\n", len(results))
				fmt.Printf("%-25s %-6s %-6s %-10s\n", "Staff", "Days", "Nights", "Unassigned")
				for _, result := range results {
					s := result.Schedule
					unassigned := len(s.Rationale) - len(s.DayAssignments) - len(s.NightAssignments)
					fmt.Printf("%-25s %-6d %-6d %-10d\n",
						s.Candidate, len(s.DayAssignments), len(s.NightAssignments), unassigned)
				}
				fmt.Println()
				return nil
			}

			if len(args) != 1 {
				return fmt.Errorf("staff_name is required unless --all is set")
			}
			staffName := args[0]

			app.Logger.Debug("simulateSchedule command",
				zap.String("staff", staffName),
				zap.Bool("dry_run", dryRun))

			result, err := services.SimulateSchedule(app.Ctx, app.Store, app.Cfg, app.Logger, staffName, dryRun)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			printScheduleResult(result, dryRun)
			return nil
		},
	}

	cmd.Flags().Bool("dry-run", false, "Run without saving a simulation record")
	cmd.Flags().Bool("all", false, "Simulate every roster member")
	cmd.Flags().Int("workers", 4, "Concurrent simulations when --all is set")

	return cmd
}

func printScheduleResult(result *services.SimulateScheduleResult, dryRun bool) {
	// ANSI color codes
	const (
		colorReset  = "\033[0m"
		colorYellow = "\033[33m"
		colorDim    = "\033[2m"
	)

	s := result.Schedule

	fmt.Printf("\nSchedule Simulation: %s\n\n", s.Candidate)
	fmt.Printf("Seniority:   #%d of %d overall, #%d of %d in role pool\n",
		s.Ranking.OverallRank, s.Ranking.RosterSize, s.Ranking.RoleRank, s.Ranking.RolePoolSize)
	fmt.Printf("Assigned:    %d day shifts, %d night shifts\n",
		len(s.DayAssignments), len(s.NightAssignments))
	if dryRun {
		fmt.Printf("Mode:        %sDRY RUN (not saved)%s\n", colorDim, colorReset)
	} else {
		fmt.Printf("Run ID:      %s\n", result.RunID)
	}
	fmt.Println()

	printAssignments("Day Assignments", s.DayAssignments)
	printAssignments("Night Assignments", s.NightAssignments)

	squeezed := 0
	for _, rationale := range s.Rationale {
		if rationale.Outcome.Reason == simulator.ReasonNoCapacity {
			squeezed++
		}
	}
	if squeezed > 0 {
		fmt.Printf("%sSqueezed out by capacity on %d slot(s)%s\n\n", colorYellow, squeezed, colorReset)
	}
}

func printAssignments(header string, assignments map[string]string) {
	if len(assignments) == 0 {
		return
	}

	fmt.Printf("%s (%d):\n", header, len(assignments))
	for _, slot := range schedule.New().Slots() {
		if code, ok := assignments[slot.Label]; ok {
			fmt.Printf("  %-10s %s\n", slot.Label, code)
		}
	}
	fmt.Println()
}
