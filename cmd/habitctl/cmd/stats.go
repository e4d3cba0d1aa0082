package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/habitloop/habitloop/internal/app"
	"github.com/spf13/cobra"
)

func StatsCmd() *cobra.Command {
	var email string

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print a user's completion, weekly and focus metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withApp(ctx, func(a *app.App) error {
				user, _, err := resolveUser(ctx, a, email)
				if err != nil {
					return err
				}

				progress, err := a.AnalyticsService.ProgressByHabit(ctx, user.ID)
				if err != nil {
					return err
				}
				weekly, err := a.AnalyticsService.WeeklyProgress(ctx, user.ID)
				if err != nil {
					return err
				}
				focus, err := a.FocusService.Stats(ctx, user.ID)
				if err != nil {
					return err
				}

				out := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(out, "HABIT\tCOMPLETIONS")
				for _, p := range progress {
					fmt.Fprintf(out, "%s\t%d\n", p.Title, p.CompletionCount)
				}
				fmt.Fprintln(out)
				fmt.Fprintln(out, "DAY\tDATE\tCOMPLETIONS")
				for _, d := range weekly.Days {
					fmt.Fprintf(out, "%s\t%s\t%d\n", d.Weekday, d.Date, d.Completions)
				}
				fmt.Fprintln(out)
				fmt.Fprintf(out, "consistency\t%.1f (%s)\n", weekly.ConsistencyScore, weekly.ConsistencyLabel)
				fmt.Fprintf(out, "focus today/week/total\t%d/%d/%d min\n", focus.TodayMinutes, focus.WeekMinutes, focus.TotalMinutes)
				fmt.Fprintf(out, "focus sessions\t%d\n", focus.TotalSessions)
				fmt.Fprintf(out, "focus streak\t%d days\n", focus.Streak)
				return out.Flush()
			})
		},
	}

	requireUserFlag(statsCmd, &email)
	return statsCmd
}
