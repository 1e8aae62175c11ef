package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pietbarber/soar-duty-roster/pkg/core/services"
)

// StaffingReportCmd creates the staffingReport command
func StaffingReportCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "staffingReport <year> <month>",
		Short: "Show per-role staffing pressure for a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonth(args)
			if err != nil {
				return err
			}

			app.Logger.Debug("staffingReport command",
				zap.Int("year", year), zap.Int("month", int(month)))

			report, err := services.StaffingReport(
				app.Ctx, app.Database, app.Logger, year, month, nil,
			)
			if err != nil {
				return err
			}

			fmt.Printf("\nStaffing report %d-%02d\n\n", year, int(month))
			fmt.Printf("%-24s %-10s %-10s %s\n", "Role", "Scarcity", "Members", "Duty days")
			for _, rs := range report {
				warn := ""
				if rs.AvailableMembers == 0 {
					warn = "  <- no members hold this role"
				}
				fmt.Printf("%-24s %-10.2f %-10d %d%s\n",
					rs.Role, rs.Scarcity, rs.AvailableMembers, rs.OperationalDays, warn)
			}
			fmt.Println()
			return nil
		},
	}
}
