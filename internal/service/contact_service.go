package service

import (
	"fmt"
	netmail "net/mail"
	"strings"

	"github.com/atendemei/painel/internal/config"
	"github.com/atendemei/painel/internal/mail"
	appErr "github.com/atendemei/painel/internal/pkg/errors"
)

type ContactInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// ContactService forwards contact-form submissions to the site mailbox.
// Unlike the reset flow, a delivery failure surfaces to the caller: the
// visitor needs to know the message did not go out.
type ContactService struct {
	sender mail.Sender
	to     string
}

func NewContactService(sender mail.Sender, cfg config.MailConfig) *ContactService {
	return &ContactService{sender: sender, to: cfg.ContactTo}
}

func (s *ContactService) Submit(input ContactInput) error {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Email = strings.TrimSpace(input.Email)
	input.Subject = strings.TrimSpace(input.Subject)
	input.Message = strings.TrimSpace(input.Message)
	if input.Name == "" || input.Phone == "" || input.Subject == "" || input.Message == "" {
		return appErr.ErrInvalid
	}
	if _, err := netmail.ParseAddress(input.Email); err != nil {
		return appErr.ErrInvalid
	}
	if s.to == "" {
		return fmt.Errorf("contact mailbox not configured")
	}
	body := fmt.Sprintf(
		"New message from the website contact form.\n\n"+
			"Name: %s\nWhatsApp: %s\nEmail: %s\nSubject: %s\n\nMessage:\n%s\n",
		input.Name, input.Phone, input.Email, input.Subject, input.Message)
	return s.sender.Send(&mail.Message{
		To:      s.to,
		ReplyTo: input.Email,
		Subject: fmt.Sprintf("New website contact: %s - %s", input.Name, input.Subject),
		Text:    body,
	})
}
