// Package mail sends the transactional emails of the auth flows over SMTP.
package mail

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// Config holds the SMTP connection settings and the public URLs the email
// links point at.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration

	// BaseURL is the public address of this API, used for the
	// verification link.
	BaseURL string
	// FrontURL is the address of the frontend, used for the password
	// reset link.
	FrontURL string
}

// Sender delivers emails through an SMTP server using go-mail.
type Sender struct {
	cfg Config
}

// NewSender creates a new Sender with the given configuration.
func NewSender(cfg Config) *Sender {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Sender{cfg: cfg}
}

// VerificationURL builds the link a new user clicks to confirm their email.
func (s *Sender) VerificationURL(token string) string {
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/api/auth/verify/" + token
}

// ResetURL builds the frontend link a user clicks to choose a new password.
func (s *Sender) ResetURL(token string) string {
	return strings.TrimRight(s.cfg.FrontURL, "/") + "/reset-password/" + token
}

// SendVerificationEmail sends the email-confirmation message to a newly
// registered user.
func (s *Sender) SendVerificationEmail(ctx context.Context, to, token string) error {
	body := renderEmail(
		"Verificación de correo electrónico",
		"Por favor, confirma tu correo electrónico haciendo clic en el botón de abajo.",
		"Verificar correo",
		s.VerificationURL(token),
		"Si no solicitaste esta verificación, puedes ignorar este mensaje.",
	)
	return s.send(ctx, to, "Valida tu correo electrónico", body)
}

// SendPasswordResetEmail sends the reset link to a user that forgot their
// password.
func (s *Sender) SendPasswordResetEmail(ctx context.Context, to, token string) error {
	body := renderEmail(
		"Solicitud para restablecer contraseña",
		"Has solicitado restablecer tu contraseña. Haz clic en el enlace de abajo para continuar con el proceso:",
		"Restablecer contraseña",
		s.ResetURL(token),
		"Si no solicitaste este cambio, ignora este mensaje.",
	)
	return s.send(ctx, to, "Restablecer contraseña", body)
}

func (s *Sender) send(ctx context.Context, to, subject, htmlBody string) error {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	m := gomail.NewMsg()
	if err := m.From(s.cfg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(gomail.TypeTextHTML, htmlBody)

	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if s.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}

	client, err := gomail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client init failed: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}

	slog.Info("email sent", "to", to, "subject", subject)
	return nil
}

// renderEmail produces the inline-styled HTML body shared by the auth
// emails.
func renderEmail(title, intro, buttonText, link, footer string) string {
	escLink := html.EscapeString(link)

	return `<div style="
    font-family: Arial, sans-serif;
    color: #333;
    max-width: 500px;
    margin: 0 auto;
    padding: 20px;
    border: 1px solid #ddd;
    border-radius: 8px;
    background-color: #f9f9f9;
">
    <h1 style="
        color: #4CAF50;
        font-size: 24px;
        text-align: center;
    ">` + html.EscapeString(title) + `</h1>
    <p style="
        font-size: 16px;
        line-height: 1.5;
        text-align: center;
        margin: 20px 0;
    ">
        ` + html.EscapeString(intro) + `
    </p>
    <div style="text-align: center; margin-top: 20px;">
        <a href='` + escLink + `' style="
            display: inline-block;
            background-color: #333;
            color: #fff;
            padding: 10px 20px;
            font-size: 16px;
            border-radius: 5px;
            text-decoration: none;
        ">
            ` + html.EscapeString(buttonText) + `
        </a>
    </div>
    <p style="
        font-size: 14px;
        color: #777;
        text-align: center;
        margin-top: 30px;
    ">
        ` + html.EscapeString(footer) + `
    </p>
</div>`
}
