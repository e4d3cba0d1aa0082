package cmd

import (
	"fmt"

	"github.com/habitloop/habitloop/internal/app"
	"github.com/habitloop/habitloop/internal/model"
	"github.com/spf13/cobra"
)

func PlanCmd() *cobra.Command {
	var email, plan string

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Set a user's subscription plan (free or pro)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withApp(ctx, func(a *app.App) error {
				user, _, err := resolveUser(ctx, a, email)
				if err != nil {
					return err
				}

				sub, err := a.SubscriptionService.ChangePlan(ctx, user.ID, plan)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s is now on the %s plan\n", user.Email, sub.PlanID)
				return nil
			})
		},
	}

	requireUserFlag(planCmd, &email)
	planCmd.Flags().StringVar(&plan, "plan", model.SubscriptionPlanPro, "plan id (free or pro)")
	return planCmd
}
