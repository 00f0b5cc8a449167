package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"artdesk.app/api/core/config"
)

// Invitation is the payload of an invitation email.
type Invitation struct {
	To          string
	ClientName  string
	InviterName string
	Role        string
	Token       string
}

// Mailer delivers outbound email. The single implementation speaks
// SMTP; tests substitute their own.
type Mailer interface {
	SendInvitation(ctx context.Context, inv Invitation) error
}

type smtpMailer struct {
	cfg          config.MailerConfig
	dashboardURL string
}

func NewSMTPMailer(cfg config.MailerConfig, dashboardURL string) Mailer {
	return &smtpMailer{cfg: cfg, dashboardURL: dashboardURL}
}

func (m *smtpMailer) SendInvitation(ctx context.Context, inv Invitation) error {
	inviteURL := fmt.Sprintf("%s/invitations/accept?token=%s", m.dashboardURL, inv.Token)

	inviter := inv.InviterName
	if inviter == "" {
		inviter = "A collaborator"
	}
	clientName := inv.ClientName
	if clientName == "" {
		clientName = "a client workspace"
	}

	subject := fmt.Sprintf("You've been invited to collaborate on %s", clientName)
	body := fmt.Sprintf(
		"%s has invited you to join %s as %s.\r\n\r\n"+
			"Accept the invitation here:\r\n%s\r\n\r\n"+
			"This invitation expires in 7 days.\r\n",
		inviter, clientName, inv.Role, inviteURL,
	)

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s <%s>", m.cfg.FromName, m.cfg.FromAddress),
		fmt.Sprintf("To: %s", inv.To),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	addr := m.cfg.Host + ":" + m.cfg.Port

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.FromAddress, []string{inv.To}, []byte(msg)); err != nil {
		return fmt.Errorf("sending invitation mail: %w", err)
	}

	slog.InfoContext(ctx, "invitation mail sent", "to", inv.To)
	return nil
}
