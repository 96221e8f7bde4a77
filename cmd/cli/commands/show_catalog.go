package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/catalog"
	"github.com/AlphaBravo227/CrewOps360-sub001/pkg/core/model"
)

// ShowCatalogCmd creates the showCatalog command
func ShowCatalogCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "showCatalog",
		Short: "Show the shift catalog with nominal start and end times",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, cat := range []model.Category{model.CategoryDay, model.CategoryNight} {
				fmt.Printf("\n%s shifts:\n\n", cat)
				fmt.Printf("%-6s %-6s %-7s %-7s\n", "Rank", "Code", "Start", "End")
				for _, shift := range catalog.All(cat) {
					end, _ := catalog.ShiftEnd(shift.Code, cat)
					fmt.Printf("%-6d %-6s %-7s %-7s\n", shift.Rank, shift.Code, shift.Start, end)
				}
			}
			fmt.Println()

			return nil
		},
	}
}
