// Package email delivers one-time authentication codes. The SMTP sender
// speaks implicit TLS (port 465); the log sender stands in for a mailbox in
// development.
package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"
)

type SMTPSender struct {
	host     string
	port     string
	username string
	password string
	from     string
}

func NewSMTPSender(host, port, username, password, from string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *SMTPSender) SendCode(ctx context.Context, to, code string) error {
	msg := buildCodeMessage(s.from, to, code)

	tlsConfig := &tls.Config{ServerName: s.host}

	conn, err := tls.Dial("tcp", s.host+":"+s.port, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		return err
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	if err := client.Auth(auth); err != nil {
		return err
	}

	if err := client.Mail(s.from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}

	return w.Close()
}

func buildCodeMessage(from, to, code string) []byte {
	return []byte(
		fmt.Sprintf("From: %s\r\n", from) +
			fmt.Sprintf("To: %s\r\n", to) +
			"Subject: Your authentication code\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			fmt.Sprintf("Your authentication code is %s. It expires shortly.\r\n", code),
	)
}

// LogSender writes the code to the application log instead of sending mail.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendCode(ctx context.Context, to, code string) error {
	s.logger.Info("email code (log sender)",
		zap.String("to", to), zap.String("code", code))
	return nil
}
