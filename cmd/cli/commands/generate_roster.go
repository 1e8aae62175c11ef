package commands

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
	"github.com/pietbarber/soar-duty-roster/pkg/core/services"
)

// GenerateRosterCmd creates the generateRoster command
func GenerateRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generateRoster <year> <month>",
		Short: "Generate a draft duty roster for a month",
		Long:  "Run the assignment engine over the month's weekend duty days and print the draft roster. Use --publish to save the filled slots as assignments.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := parseYearMonth(args)
			if err != nil {
				return err
			}

			roleNames, _ := cmd.Flags().GetStringSlice("roles")
			seed, _ := cmd.Flags().GetInt64("seed")
			publish, _ := cmd.Flags().GetBool("publish")
			force, _ := cmd.Flags().GetBool("force")

			roles, err := parseRoles(roleNames)
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			app.Logger.Debug("generateRoster command",
				zap.Int("year", year),
				zap.Int("month", int(month)),
				zap.Int64("seed", seed),
				zap.Bool("publish", publish))

			result, err := services.GenerateRoster(
				app.Ctx, app.Database, app.Cfg, app.Logger,
				year, month, roles, seed,
			)
			if err != nil {
				return fmt.Errorf("roster generation failed: %w", err)
			}

			printRoster(result)

			if !publish {
				fmt.Println("This was a draft run. Use --publish to save the roster.")
				fmt.Printf("Re-run with --seed %d to reproduce it exactly.\n", seed)
				return nil
			}

			saved, err := services.PublishRoster(app.Ctx, app.Database, app.Logger, result, force)
			if err != nil {
				return fmt.Errorf("publish failed: %w", err)
			}
			fmt.Printf("Published %d assignments for %d-%02d.\n", len(saved), year, int(month))
			return nil
		},
	}

	cmd.Flags().StringSlice("roles", nil, "Roles to schedule (default: all configured roles)")
	cmd.Flags().Int64("seed", 0, "Seed for tie-break decisions (0 picks one from the clock)")
	cmd.Flags().Bool("publish", false, "Save the generated roster as assignments")
	cmd.Flags().Bool("force", false, "Publish even if the month already has assignments")

	return cmd
}

func parseYearMonth(args []string) (int, time.Month, error) {
	year, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("year must be a number: %w", err)
	}
	monthNum, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("month must be a number: %w", err)
	}
	if monthNum < 1 || monthNum > 12 {
		return 0, 0, fmt.Errorf("month must be between 1 and 12, got %d", monthNum)
	}
	return year, time.Month(monthNum), nil
}

func parseRoles(names []string) ([]model.Role, error) {
	if len(names) == 0 {
		return nil, nil
	}
	roles := make([]model.Role, 0, len(names))
	for _, name := range names {
		role, err := model.ParseRole(name)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

func printRoster(result *services.GenerateRosterResult) {
	roles := append([]model.Role(nil), result.Roles...)
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })

	fmt.Printf("\nDuty Roster %d-%02d\n\n", result.Year, int(result.Month))

	colWidth := 24
	fmt.Printf("%-16s", "Date")
	for _, role := range roles {
		fmt.Printf("%-*s", colWidth, role)
	}
	fmt.Println()

	for _, entry := range result.Entries {
		fmt.Printf("%-16s", entry.Date.Format("Mon 2006-01-02"))
		for _, role := range roles {
			cell := entry.Slots[role]
			if cell == "" {
				cell = "** OPEN **"
			}
			fmt.Printf("%-*s", colWidth, cell)
		}
		fmt.Println()
	}
	fmt.Println()

	fmt.Printf("Filled slots: %d   Open slots: %d\n", result.FilledSlots, result.OpenSlots)

	for _, entry := range result.Entries {
		for _, role := range roles {
			if diag := entry.Diagnostics[role]; diag != nil {
				fmt.Printf("  %s %s: %s\n",
					entry.Date.Format("2006-01-02"), role, diag.Summary)
			}
		}
	}
	fmt.Println()
}
