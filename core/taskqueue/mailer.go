package taskqueue

import (
	"fmt"
	"net/smtp"

	"dayboard/core/config"
	"dayboard/core/logger"
)

// Mailer sends account emails over SMTP.
type Mailer struct {
	cfg     config.SMTPConfig
	baseURL string
}

func NewMailer(cfg config.SMTPConfig, baseURL string) *Mailer {
	return &Mailer{cfg: cfg, baseURL: baseURL}
}

func (m *Mailer) SendActivation(p EmailPayload) error {
	link := fmt.Sprintf("%s/auth/activate?token=%s", m.baseURL, p.Token)
	body := fmt.Sprintf(
		"Hola %s,\r\n\r\nActiva tu cuenta con el siguiente enlace:\r\n%s\r\n\r\nEl enlace caduca en 24 horas.\r\n",
		p.Name, link,
	)
	return m.send(p.To, "Activa tu cuenta", body)
}

func (m *Mailer) SendReset(p EmailPayload) error {
	link := fmt.Sprintf("%s/auth/new-password?token=%s", m.baseURL, p.Token)
	body := fmt.Sprintf(
		"Hola %s,\r\n\r\nRestablece tu contraseña con el siguiente enlace:\r\n%s\r\n",
		p.Name, link,
	)
	return m.send(p.To, "Restablece tu contraseña", body)
}

func (m *Mailer) send(to, subject, body string) error {
	if m.cfg.Host == "" {
		// Local development without an SMTP server: log and succeed so
		// the task is not retried forever.
		logger.Warn("Mailer:SMTP not configured, skipping send", "to", to, "subject", subject)
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", m.cfg.From, to, subject, body)
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg)); err != nil {
		logger.Error("Mailer:Send:Error:", err)
		return err
	}
	logger.Info("Mailer:Sent", "to", to, "subject", subject)
	return nil
}
