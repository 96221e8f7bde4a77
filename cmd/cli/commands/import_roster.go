package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/services"
)

// ImportRosterCmd creates the importRoster command
func ImportRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "importRoster <file>",
		Short: "Import staff members and their tracks from a roster YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			app.Logger.Debug("importRoster command", zap.String("path", path))

			result, err := services.ImportRoster(app.Ctx, app.Store, app.Logger, path)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			fmt.Printf("\nImported %d staff members and %d track days from %s\n\n",
				result.StaffCount, result.TrackRowCount, path)

			return nil
		},
	}
}
