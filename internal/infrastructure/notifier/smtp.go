package notifier

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/config"
	"github.com/free-bad-Man/rahima-consulting-v2-0-sub001/internal/domain"
	"github.com/wneessen/go-mail"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// SMTPSender delivers rendered emails through the configured SMTP relay.
type SMTPSender struct {
	cfg config.SMTP
}

func NewSMTPSender(cfg config.SMTP) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Enabled() bool {
	return s.cfg.Host != "" && s.cfg.User != ""
}

func (s *SMTPSender) Send(ctx context.Context, email domain.Email) error {
	if !s.Enabled() {
		return domain.ErrCollaboratorDisabled
	}

	msg, err := s.buildMessage(email)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Host, s.clientOptions()...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", email.To, err)
	}
	return nil
}

func (s *SMTPSender) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.User),
		mail.WithPassword(s.cfg.Password),
		mail.WithTimeout(30 * time.Second),
	}
	if s.cfg.Secure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	return opts
}

func (s *SMTPSender) buildMessage(email domain.Email) (*mail.Msg, error) {
	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}
	fromName := s.cfg.FromName
	if fromName == "" {
		fromName = "Rahima Consulting"
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(fromName, from); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.AddToFormat(email.ToName, email.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", email.To, err)
	}
	msg.Subject(email.Subject)

	text := email.Text
	if text == "" {
		text = PlainText(email.HTML)
	}
	msg.SetBodyString(mail.TypeTextPlain, text)
	if email.HTML != "" {
		msg.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	}
	return msg, nil
}

// PlainText is the text fallback of an HTML body: tags stripped, blank lines collapsed.
func PlainText(html string) string {
	stripped := tagPattern.ReplaceAllString(html, "")
	lines := strings.Split(stripped, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
