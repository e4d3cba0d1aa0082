package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/habitloop/habitloop/internal/model"
	"github.com/resend/resend-go/v2"
)

// EmailService sends transactional email through Resend. In development it
// only logs what would have been sent.
type EmailService struct {
	client    *resend.Client
	fromEmail string
	isDev     bool
	appURL    string
	appName   string
}

func NewEmailService(apiKey, fromEmail, appURL, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		isDev:     isDev,
		appURL:    appURL,
		appName:   appName,
	}
}

// NotifyAchievements emails the user the badges they just earned.
func (s *EmailService) NotifyAchievements(ctx context.Context, user *model.User, badges []EarnedBadge) error {
	if len(badges) == 0 {
		return nil
	}

	achievementsURL := fmt.Sprintf("%s/api/achievements", s.appURL)
	subject, body := achievementEmailTemplate(badges, achievementsURL, s.appName)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "achievement", "to", user.Email, "subject", subject, "badges", len(badges))
		return nil
	}

	return s.send(ctx, "achievement", user.Email, subject, body)
}

func (s *EmailService) send(ctx context.Context, kind, to, subject, body string) error {
	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", kind, "to", to)
	}
	return err
}
