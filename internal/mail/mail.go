// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Implements: prd013-digest (R4.1-R4.3); assembles the rendered digest into a
// multipart/alternative MIME message and delivers it over SMTP with STARTTLS.
package mail

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"mime"
	"mime/multipart"
	"mime/quotedprintable"
	"net/smtp"
	"net/textproto"

	"github.com/pdiddy/astro-digest/internal/render"
	"github.com/pdiddy/astro-digest/pkg/types"
)

// Message is one outbound digest email.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// NewMessage pairs a rendered digest with delivery addresses.
func NewMessage(email render.Email, cfg types.SMTPConfig) Message {
	return Message{
		From:    cfg.From,
		To:      cfg.To,
		Subject: email.Subject,
		Text:    email.Text,
		HTML:    email.HTML,
	}
}

// Bytes assembles the RFC 2045 multipart/alternative wire form. The plain
// part comes first so clients that cannot render HTML fall back to it.
func (m Message) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fmt.Fprintf(&buf, "From: %s\r\n", m.From)
	fmt.Fprintf(&buf, "To: %s\r\n", m.To)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", m.Subject))
	fmt.Fprintf(&buf, "MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%q\r\n", mw.Boundary())
	fmt.Fprintf(&buf, "\r\n")

	for _, part := range []struct {
		contentType string
		body        string
	}{
		{"text/plain; charset=utf-8", m.Text},
		{"text/html; charset=utf-8", m.HTML},
	} {
		header := textproto.MIMEHeader{}
		header.Set("Content-Type", part.contentType)
		header.Set("Content-Transfer-Encoding", "quoted-printable")
		w, err := mw.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("creating MIME part: %w", err)
		}
		qp := quotedprintable.NewWriter(w)
		if _, err := qp.Write([]byte(part.body)); err != nil {
			return nil, fmt.Errorf("encoding MIME part: %w", err)
		}
		if err := qp.Close(); err != nil {
			return nil, fmt.Errorf("closing MIME part: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing MIME message: %w", err)
	}
	return buf.Bytes(), nil
}

// Sender delivers messages over SMTP submission with STARTTLS.
type Sender struct {
	Host     string
	Port     int
	Password string
}

// NewSender builds a Sender from config plus the password loaded from the
// secrets directory.
func NewSender(cfg types.SMTPConfig, password string) *Sender {
	host := cfg.Host
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := cfg.Port
	if port == 0 {
		port = 587
	}
	return &Sender{Host: host, Port: port, Password: password}
}

// Send connects, upgrades the session with STARTTLS, authenticates as the
// message's From address, and submits the message.
func (s *Sender) Send(m Message) error {
	body, err := m.Bytes()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.Host, s.Port)
	c, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", addr, err)
	}
	defer c.Close()

	if err := c.StartTLS(&tls.Config{ServerName: s.Host}); err != nil {
		return fmt.Errorf("starting TLS with %s: %w", s.Host, err)
	}
	auth := smtp.PlainAuth("", m.From, s.Password, s.Host)
	if err := c.Auth(auth); err != nil {
		return fmt.Errorf("authenticating with %s: %w", s.Host, err)
	}
	if err := c.Mail(m.From); err != nil {
		return fmt.Errorf("setting sender: %w", err)
	}
	if err := c.Rcpt(m.To); err != nil {
		return fmt.Errorf("setting recipient: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("opening data stream: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing data stream: %w", err)
	}
	return c.Quit()
}
