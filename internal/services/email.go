package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/rs/xid"

	"github.com/Brendon2203/techsolutions/internal/config"
	"github.com/Brendon2203/techsolutions/internal/domain"
	"github.com/Brendon2203/techsolutions/internal/logging"
	"github.com/Brendon2203/techsolutions/internal/metrics"
	apperrors "github.com/Brendon2203/techsolutions/pkg/errors"
)

// NotifyStatus is the outcome of one notification attempt
type NotifyStatus string

const (
	NotifySent    NotifyStatus = "sent"
	NotifySkipped NotifyStatus = "skipped"
	NotifyFailed  NotifyStatus = "failed"
)

// NotifyResult reports what Notify did. Err is set only for NotifyFailed.
type NotifyResult struct {
	Status NotifyStatus
	Err    error
}

const smtpDialTimeout = 30 * time.Second

// SMTPClient is the part of *smtp.Client used to deliver a message
type SMTPClient interface {
	StartTLS(config *tls.Config) error
	Auth(a smtp.Auth) error
	Mail(from string) error
	Rcpt(to string) error
	Data() (io.WriteCloser, error)
	Quit() error
	Close() error
}

// SMTPDialer opens an SMTP session with the relay at addr
type SMTPDialer func(ctx context.Context, addr string) (SMTPClient, error)

// EmailService delivers quote notifications to the operator mailbox
type EmailService struct {
	cfg  *config.EmailConfig
	dial SMTPDialer
	now  func() time.Time
}

// NewEmailService creates a new email service
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg, dial: dialSMTP, now: time.Now}
}

// WithDialer replaces the SMTP dialer
func (s *EmailService) WithDialer(d SMTPDialer) *EmailService {
	s.dial = d
	return s
}

// IsEnabled returns whether sender, password and recipient are configured
func (s *EmailService) IsEnabled() bool {
	return s.cfg.IsComplete()
}

// Notify sends one plain-text summary of sub to the operator. It never
// returns an error: failures are logged, counted and reported in the result.
func (s *EmailService) Notify(ctx context.Context, sub *domain.QuoteSubmission) NotifyResult {
	if !s.IsEnabled() {
		logging.Warn("email settings not found, notification skipped", "component", "email")
		metrics.RecordNotification(string(NotifySkipped))
		return NotifyResult{Status: NotifySkipped}
	}

	msg := s.buildMessage(sub)
	if err := s.send(ctx, msg); err != nil {
		err = apperrors.Notification("failed to send quote notification", err)
		logging.Error("email not sent", "component", "email", "error", err)
		metrics.RecordNotification(string(NotifyFailed))
		return NotifyResult{Status: NotifyFailed, Err: err}
	}

	logging.Info("email sent", "component", "email", "recipient", s.cfg.Recipient)
	metrics.RecordNotification(string(NotifySent))
	return NotifyResult{Status: NotifySent}
}

// send runs one SMTP session: STARTTLS, AUTH PLAIN, one recipient, QUIT
func (s *EmailService) send(ctx context.Context, msg []byte) error {
	addr := s.cfg.Addr()
	c, err := s.dial(ctx, addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	defer c.Close()

	if err := c.StartTLS(&tls.Config{ServerName: s.cfg.SMTPHost}); err != nil {
		return fmt.Errorf("starttls: %w", err)
	}
	if err := c.Auth(smtp.PlainAuth("", s.cfg.Sender, s.cfg.Password, s.cfg.SMTPHost)); err != nil {
		return fmt.Errorf("auth: %w", err)
	}
	if err := c.Mail(s.cfg.Sender); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := c.Rcpt(s.cfg.Recipient); err != nil {
		return fmt.Errorf("rcpt to: %w", err)
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return fmt.Errorf("write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close message: %w", err)
	}

	// The relay accepted the message once DATA is closed.
	if err := c.Quit(); err != nil {
		logging.Warn("smtp quit failed after delivery", "component", "email", "error", err)
	}
	return nil
}

// buildMessage renders the RFC 5322 message for sub
func (s *EmailService) buildMessage(sub *domain.QuoteSubmission) []byte {
	now := s.now()
	subject := fmt.Sprintf("New Quote Request - %s", sub.Name)

	company := sub.CompanyOrEmpty()
	if strings.TrimSpace(company) == "" {
		company = "Not provided"
	}

	body := fmt.Sprintf(`New quote request received:

Name: %s
Email: %s
Phone: %s
Company: %s
Services: %s
Message: %s
`, sub.Name, sub.Email, sub.Phone, company, domain.JoinServices(sub.Services), sub.Message)

	var b strings.Builder
	b.WriteString("From: " + s.cfg.Sender + "\r\n")
	b.WriteString("To: " + s.cfg.Recipient + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", subject) + "\r\n")
	b.WriteString("Date: " + now.Format(time.RFC1123Z) + "\r\n")
	b.WriteString(fmt.Sprintf("Message-ID: <%s@%s>\r\n", xid.NewWithTime(now).String(), senderDomain(s.cfg.Sender)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("\r\n")
	b.WriteString(toCRLF(body))

	return []byte(b.String())
}

func senderDomain(addr string) string {
	if at := strings.LastIndex(addr, "@"); at >= 0 && at < len(addr)-1 {
		return addr[at+1:]
	}
	return "localhost"
}

func toCRLF(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "\r\n")
}

// dialSMTP connects to addr honouring ctx for the TCP dial
func dialSMTP(ctx context.Context, addr string) (SMTPClient, error) {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, err
	}

	d := net.Dialer{Timeout: smtpDialTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, err
	}

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return c, nil
}
