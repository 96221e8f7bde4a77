package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/services"
)

// StaffingCmd creates the staffing command
func StaffingCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staffing",
		Short: "Show committed occupancy and remaining capacity per day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			onlyOpen, _ := cmd.Flags().GetBool("open")

			app.Logger.Debug("staffing command")

			report, err := services.StaffingReport(app.Ctx, app.Store, app.Cfg, app.Logger)
			if err != nil {
				return fmt.Errorf("staffing report failed: %w", err)
			}

			fmt.Printf("\nStaffing Report\n\n")
			fmt.Printf("%-10s %-6s %-9s %-18s %-18s\n", "Day", "Cat", "Occupied", "Nurse (occ/cap)", "Medic (occ/cap)")

			for _, slot := range report {
				nurse := slot.Headroom[model.RoleNurse]
				medic := slot.Headroom[model.RoleMedic]
				if onlyOpen && nurse.Remaining <= 0 && medic.Remaining <= 0 {
					continue
				}
				fmt.Printf("%-10s %-6s %-9d %d/%-16d %d/%-16d\n",
					slot.Day, slot.Category, len(slot.Occupants),
					nurse.Occupied, nurse.Capacity,
					medic.Occupied, medic.Capacity)
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().Bool("open", false, "Only show slots with remaining capacity")

	return cmd
}
