package cmd

import (
	"context"
	"fmt"

	"github.com/habitloop/habitloop/internal/app"
	"github.com/habitloop/habitloop/internal/config"
	"github.com/habitloop/habitloop/internal/logger"
	"github.com/habitloop/habitloop/internal/model"
	"github.com/spf13/cobra"
)

func loadConfig() *config.Config {
	cfg := config.Load()
	logger.Init(cfg.IsDevelopment(), cfg.SentryDSN)
	return cfg
}

// withApp opens the database (migrating it) and hands the wired app to fn.
func withApp(ctx context.Context, fn func(*app.App) error) error {
	cfg := loadConfig()
	defer logger.Flush()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a)
}

// resolveUser finds the user by email, creating it on the free plan when missing.
func resolveUser(ctx context.Context, a *app.App, email string) (*model.User, *model.Subscription, error) {
	user, err := a.UserService.EnsureUser(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve user %q: %w", email, err)
	}

	sub, err := a.SubscriptionService.Subscription(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, sub, nil
}

func requireUserFlag(cmd *cobra.Command, email *string) {
	cmd.Flags().StringVarP(email, "user", "u", "", "user email")
	_ = cmd.MarkFlagRequired("user")
}
