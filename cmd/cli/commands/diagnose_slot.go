package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
	"github.com/pietbarber/soar-duty-roster/pkg/core/roster"
	"github.com/pietbarber/soar-duty-roster/pkg/core/services"
)

// DiagnoseSlotCmd creates the diagnoseSlot command
func DiagnoseSlotCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "diagnoseSlot <role> <date>",
		Short: "Explain why a duty slot is hard to fill",
		Long:  "Re-examine every member holding the role for a published duty day and report which constraint rules each one out. Date format is YYYY-MM-DD.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			role, err := model.ParseRole(args[0])
			if err != nil {
				return err
			}
			date, err := time.Parse("2006-01-02", args[1])
			if err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
			}

			app.Logger.Debug("diagnoseSlot command",
				zap.String("role", string(role)), zap.String("date", args[1]))

			diag, err := services.DiagnoseSlot(
				app.Ctx, app.Database, app.Logger,
				role, date, app.Cfg.PreferredDayPolicy(),
			)
			if err != nil {
				return err
			}

			fmt.Printf("\n%s on %s\n", role, date.Format("Monday 2006-01-02"))
			fmt.Printf("%s\n\n", diag.Summary)
			printDiagnosis(diag)
			return nil
		},
	}
}

func printDiagnosis(diag *roster.SlotDiagnosis) {
	for _, cat := range roster.ReasonOrder() {
		ids := diag.Reasons[cat]
		if len(ids) == 0 {
			continue
		}
		fmt.Printf("  %s:\n", cat)
		for _, id := range ids {
			fmt.Printf("    - %s\n", id)
		}
	}
	fmt.Println()
}
