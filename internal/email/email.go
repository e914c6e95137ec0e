package email

import (
	"context"
	"fmt"
	"time"

	"styleai/internal/config"
	"styleai/internal/logger"
	"styleai/internal/models"

	"github.com/mailgun/mailgun-go/v5"
)

type Service struct {
	client      mailgun.Mailgun
	domain      string
	senderEmail string
	senderName  string
	enabled     bool
}

func NewService(cfg *config.Config) *Service {
	enabled := cfg.MailgunDomain != "" && cfg.MailgunAPIKey != ""

	var client mailgun.Mailgun
	if enabled {
		client = mailgun.NewMailgun(cfg.MailgunAPIKey)
	}

	return &Service{
		client:      client,
		domain:      cfg.MailgunDomain,
		senderEmail: cfg.MailgunSenderEmail,
		senderName:  cfg.MailgunSenderName,
		enabled:     enabled,
	}
}

func (s *Service) IsEnabled() bool {
	return s.enabled
}

func (s *Service) send(to, subject, textBody, htmlBody string) error {
	message := mailgun.NewMessage(
		s.domain,
		fmt.Sprintf("%s <%s>", s.senderName, s.senderEmail),
		subject,
		textBody,
		to,
	)
	message.SetHTML(htmlBody)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}

	logger.Info("Email sent", "email", to, "message_id", resp)
	return nil
}

func (s *Service) SendWelcomeEmail(user *models.User) error {
	if !s.enabled {
		return fmt.Errorf("email service is not configured")
	}

	subject := fmt.Sprintf("Welcome to StyleAI, %s!", user.Name)
	return s.send(user.Email, subject, generateWelcomeText(user), generateWelcomeHTML(user))
}

// SendEventReminder tells the user which outfit they picked for an upcoming
// event.
func (s *Service) SendEventReminder(user *models.User, event *models.PlannedEvent, outfit *models.Outfit) error {
	if !s.enabled {
		return fmt.Errorf("email service is not configured")
	}

	subject := fmt.Sprintf("Your outfit is planned for %s", event.Date)
	return s.send(user.Email, subject,
		generateEventReminderText(user, event, outfit),
		generateEventReminderHTML(user, event, outfit))
}
