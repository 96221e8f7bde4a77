package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/services"
)

// ListStaffCmd creates the listStaff command
func ListStaffCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listStaff",
		Short: "List all roster members in seniority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("listStaff command")

			roster, err := services.ListStaff(app.Ctx, app.Store, app.Logger)
			if err != nil {
				return fmt.Errorf("failed to list staff: %w", err)
			}

			fmt.Printf("\nFound %d staff members:\n\n", len(roster))
			for _, staff := range roster {
				groupInfo := ""
				if staff.Requirements.WeekendGroup != "" {
					groupInfo = fmt.Sprintf(" [Weekend group: %s]", staff.Requirements.WeekendGroup)
				}
				fmt.Printf("%3d. %s - %s (staffs as %s)%s\n",
					staff.SeniorityRank,
					staff.Name,
					staff.Role,
					staff.Role.Effective(),
					groupInfo,
				)
			}
			fmt.Println()

			return nil
		},
	}
}
