package cmd

import (
	"fmt"

	"github.com/habitloop/habitloop/internal/app"
	"github.com/spf13/cobra"
)

func TokenCmd() *cobra.Command {
	var email string

	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token for a user (development only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withApp(ctx, func(a *app.App) error {
				if !a.Cfg.IsDevelopment() {
					return fmt.Errorf("token issuance is only available with APP_ENV=development")
				}

				user, _, err := resolveUser(ctx, a, email)
				if err != nil {
					return err
				}

				token, err := a.AuthService.GenerateJWT(user)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), token)
				return nil
			})
		},
	}

	requireUserFlag(tokenCmd, &email)
	return tokenCmd
}
