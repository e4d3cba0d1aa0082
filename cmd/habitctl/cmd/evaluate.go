package cmd

import (
	"fmt"

	"github.com/habitloop/habitloop/internal/app"
	"github.com/spf13/cobra"
)

func EvaluateCmd() *cobra.Command {
	var email string

	evaluateCmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate achievements for a user and print newly awarded badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withApp(ctx, func(a *app.App) error {
				user, sub, err := resolveUser(ctx, a, email)
				if err != nil {
					return err
				}

				awarded, err := a.AchievementService.Evaluate(ctx, user.ID, sub.IsPro())
				for _, b := range awarded {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", b.Badge.Icon, b.Badge.Name, b.Badge.Type)
				}
				if err != nil {
					return err
				}
				if len(awarded) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no new achievements")
				}
				return nil
			})
		},
	}

	requireUserFlag(evaluateCmd, &email)
	return evaluateCmd
}
