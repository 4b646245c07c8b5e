package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"

	"github.com/atendemei/painel/internal/config"
)

// Sender is the transport seam; tests swap in a recording fake.
type Sender interface {
	Send(msg *Message) error
}

type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

type smtpSender struct {
	cfg config.MailConfig
}

func NewSender(cfg config.MailConfig) Sender {
	return &smtpSender{cfg: cfg}
}

func (s *smtpSender) Send(msg *Message) error {
	from := strings.TrimSpace(s.cfg.From)
	if s.cfg.Host == "" || s.cfg.Port == 0 || from == "" {
		return fmt.Errorf("mail transport not configured")
	}
	e := email.NewEmail()
	e.From = from
	e.To = []string{msg.To}
	e.Subject = msg.Subject
	if msg.ReplyTo != "" {
		e.ReplyTo = []string{msg.ReplyTo}
	}
	if msg.Text != "" {
		e.Text = []byte(msg.Text)
	}
	if msg.HTML != "" {
		e.HTML = []byte(msg.HTML)
	}
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	if err := e.Send(addr, auth); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.To, err)
	}
	return nil
}
