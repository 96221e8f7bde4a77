package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/schedule"
)

// ShowCalendarCmd creates the showCalendar command
func ShowCalendarCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "showCalendar",
		Short: "Show the 42-day cycle calendar, dated from the configured cycle start",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cal := schedule.New()

			if app.Cfg.CycleStart == "" {
				fmt.Printf("\nCycle Calendar (no cycleStart configured)\n\n")
				for _, slot := range cal.Slots() {
					fmt.Printf("  %2d. %-10s (week %d, block %s, pay period %d)\n",
						slot.Index+1, slot.Label, slot.Week, slot.Block, slot.Index/schedule.PayPeriodLength+1)
				}
				fmt.Println()
				return nil
			}

			start, err := time.Parse("2006-01-02", app.Cfg.CycleStart)
			if err != nil {
				return fmt.Errorf("invalid cycleStart in config: %w", err)
			}

			dated, err := cal.DatedSlots(start)
			if err != nil {
				return fmt.Errorf("failed to date the cycle: %w", err)
			}

			fmt.Printf("\nCycle Calendar from %s\n\n", app.Cfg.CycleStart)
			for _, slot := range dated {
				fmt.Printf("  %2d. %-10s %s\n", slot.Index+1, slot.Label, slot.Date.Format("2006-01-02 (Mon)"))
			}
			fmt.Println()

			if app.Cfg.CycleRule != "" {
				starts, err := schedule.CycleStarts(app.Cfg.CycleRule, start, 4)
				if err != nil {
					return fmt.Errorf("failed to compute cycle starts: %w", err)
				}
				fmt.Printf("Upcoming cycle starts:\n")
				for _, s := range starts {
					fmt.Printf("  %s\n", s.Format("2006-01-02"))
				}
				fmt.Println()
			}

			return nil
		},
	}
}
