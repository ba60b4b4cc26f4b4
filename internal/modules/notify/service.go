package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/wahidu1/portfolio-core/internal/modules/settings"
	"github.com/wahidu1/portfolio-core/internal/pkg/mail"
)

// TaskContactAck is the queue task type for contact acknowledgment emails.
const TaskContactAck = "contact.ack_email"

// ContactAckPayload is the task payload enqueued when a contact message
// arrives.
type ContactAckPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Service sends notification emails from background tasks.
type Service struct {
	settings *settings.Service
	mailer   *mail.Sender
	from     string
	logger   *zap.Logger
}

func NewService(settings *settings.Service, mailer *mail.Sender, from string, logger *zap.Logger) *Service {
	return &Service{settings: settings, mailer: mailer, from: from, logger: logger}
}

// HandleContactAck is the task handler for TaskContactAck. It resolves the
// site identity fresh on every run, so setting changes made after enqueue are
// reflected in the email.
func (s *Service) HandleContactAck(ctx context.Context, payload []byte) error {
	var p ContactAckPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("decode contact ack payload: %w", err)
	}

	site := s.settings.Site()
	data := mail.ContactAckData{
		SiteName: site.Name,
		SiteURL:  site.URL,
		SiteLogo: site.Logo,
		Name:     p.Name,
		Email:    p.Email,
		From:     s.from,
		Message:  p.Message,
		Year:     time.Now().Year(),
	}

	if err := s.mailer.SendContactAck(p.Email, data); err != nil {
		return fmt.Errorf("send contact ack to %s: %w", p.Email, err)
	}
	s.logger.Info("contact acknowledgment sent", zap.String("to", p.Email))
	return nil
}
