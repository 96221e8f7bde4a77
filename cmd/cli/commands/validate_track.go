package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/services"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/validator"
)

// ValidateTrackCmd creates the validateTrack command
func ValidateTrackCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validateTrack <staff_name>",
		Short: "Validate a staff member's active track against all scheduling rules",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			staffName := args[0]

			app.Logger.Debug("validateTrack command", zap.String("staff", staffName))

			result, err := services.ValidateTrack(app.Ctx, app.Store, app.Cfg, app.Logger, staffName)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			// ANSI color codes
			const (
				colorReset = "\033[0m"
				colorGreen = "\033[32m"
				colorRed   = "\033[31m"
			)

			fmt.Printf("\nTrack Validation: %s\n\n", result.StaffName)
			fmt.Printf("Role:           %s (staffs as %s)\n", result.Role, result.Role.Effective())
			if result.Requirements.WeekendGroup != "" {
				fmt.Printf("Weekend Group:  %s\n", result.Requirements.WeekendGroup)
			}
			if result.Result.Valid() {
				fmt.Printf("Status:         %sVALID%s\n\n", colorGreen, colorReset)
			} else {
				fmt.Printf("Status:         %sINVALID%s\n\n", colorRed, colorReset)
			}

			categories := []struct {
				name string
				rule validator.RuleResult
			}{
				{"Pay periods", result.Result.PayPeriod},
				{"Night minimum", result.Result.NightMinimum},
				{"Weekend minimum", result.Result.WeekendMinimum},
				{"Weekly cap", result.Result.WeeklyCap},
				{"Consecutive shifts", result.Result.Consecutive},
				{"Rest intervals", result.Result.Rest},
				{"Preassignments", result.Result.Preassignment},
				{"Weekend group", result.Result.WeekendGroup},
			}

			for _, c := range categories {
				marker := colorGreen + "✓" + colorReset
				if !c.rule.Passed {
					marker = colorRed + "✗" + colorReset
				}
				fmt.Printf("%s %-20s %s\n", marker, c.name, c.rule.Detail)
				for _, issue := range c.rule.Issues {
					fmt.Printf("    %s\n", issue)
				}
			}
			fmt.Println()

			return nil
		},
	}
}
