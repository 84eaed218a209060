package mail

import (
	"errors"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"github.com/lighty7/Finances-backend/config"
)

var ErrDisabled = errors.New("email service is disabled")

// Message is one outbound email. Text is optional; when empty the HTML body
// is sent alone.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// WithRecipient returns a copy of the message addressed to the given
// recipient. Templates build unaddressed messages; callers attach the
// recipient at dispatch time.
func (m Message) WithRecipient(to string) Message {
	m.To = to
	return m
}

// Mailer sends email over SMTP. Every caller in the auth and verification
// flows treats sends as best-effort: a failed or slow send never surfaces
// as the primary operation's error.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

func (m *Mailer) dialer() *gomail.Dialer {
	return gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUser, m.cfg.SMTPPassword)
}

// Send delivers one message synchronously.
func (m *Mailer) Send(msg Message) error {
	if !m.cfg.EmailEnabled {
		return ErrDisabled
	}

	gm := gomail.NewMessage()
	gm.SetAddressHeader("From", m.cfg.EmailFromAddress, m.cfg.EmailFromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	if msg.Text != "" {
		gm.SetBody("text/plain", msg.Text)
		gm.AddAlternative("text/html", msg.HTML)
	} else {
		gm.SetBody("text/html", msg.HTML)
	}

	return m.dialer().DialAndSend(gm)
}

// SendAsync dispatches the message on its own goroutine. Failures are
// logged and swallowed; the originating request never waits on SMTP.
func (m *Mailer) SendAsync(msg Message) {
	go func() {
		if err := m.Send(msg); err != nil && !errors.Is(err, ErrDisabled) {
			zap.L().Warn("email send failed",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err))
		}
	}()
}

// VerifyConnection probes the SMTP server. Used at startup for a log line
// only; a failed probe does not stop the process.
func (m *Mailer) VerifyConnection() error {
	if !m.cfg.EmailEnabled {
		return ErrDisabled
	}

	closer, err := m.dialer().Dial()
	if err != nil {
		return err
	}
	return closer.Close()
}
