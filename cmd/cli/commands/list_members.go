package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pietbarber/soar-duty-roster/pkg/core/model"
)

// ListMembersCmd creates the listMembers command
func ListMembersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listMembers",
		Short: "List club members and their duty roles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			includeInactive, _ := cmd.Flags().GetBool("all")

			members, err := app.Database.GetMembers(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list members: %w", err)
			}
			preferences, err := app.Database.GetPreferences(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list preferences: %w", err)
			}

			prefByMember := make(map[string]*model.DutyPreference, len(preferences))
			for i := range preferences {
				prefByMember[preferences[i].MemberID] = &preferences[i]
			}

			shown := 0
			fmt.Println()
			for _, m := range members {
				if !m.Active && !includeInactive {
					continue
				}
				shown++

				status := "active"
				if !m.Active {
					status = "inactive"
				}

				roleNames := make([]string, 0, 4)
				for _, r := range m.Roles() {
					roleNames = append(roleNames, string(r))
				}
				rolesStr := strings.Join(roleNames, ", ")
				if rolesStr == "" {
					rolesStr = "no duty roles"
				}

				notes := memberNotes(prefByMember[m.ID])
				fmt.Printf("- %s %s (%s) - %s - %s%s\n",
					m.FirstName, m.LastName, m.ID, status, rolesStr, notes)
			}
			fmt.Printf("\n%d members shown\n\n", shown)
			return nil
		},
	}

	cmd.Flags().Bool("all", false, "Include inactive members")

	return cmd
}

func memberNotes(pref *model.DutyPreference) string {
	if pref == nil {
		return ""
	}
	var notes []string
	if pref.DontSchedule {
		notes = append(notes, fmt.Sprintf("do not schedule: %s", pref.DontScheduleReason))
	}
	if pref.SchedulingSuspended {
		notes = append(notes, fmt.Sprintf("suspended: %s", pref.SuspendedReason))
	}
	if pref.PreferredDay != nil {
		notes = append(notes, fmt.Sprintf("prefers %s", pref.PreferredDay))
	}
	if len(notes) == 0 {
		return ""
	}
	return " [" + strings.Join(notes, "; ") + "]"
}
