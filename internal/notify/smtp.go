package notify

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"eventflow/config"
	"eventflow/pkg/logger"

	"go.uber.org/zap"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPNotifier struct {
	addr     string
	auth     smtp.Auth
	sendMail sendMailFunc
	log      *zap.Logger
}

func NewSMTPNotifier(cfg config.MailConfig) Notifier {
	var auth smtp.Auth
	if cfg.User != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, cfg.Host)
	}
	return &SMTPNotifier{
		addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		auth:     auth,
		sendMail: smtp.SendMail,
		log:      logger.WithComponent("notify"),
	}
}

// NewNotifier 依設定選擇 SMTP 或只寫 log
func NewNotifier(cfg config.MailConfig) Notifier {
	if cfg.Host == "" {
		return NewLogNotifier()
	}
	return NewSMTPNotifier(cfg)
}

func (n *SMTPNotifier) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return errors.New("no recipients")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := n.sendMail(n.addr, n.auth, msg.From, msg.To, buildMIME(msg, time.Now())); err != nil {
		n.log.Warn("send email failed", zap.Strings("to", msg.To), zap.Error(err))
		return fmt.Errorf("send email: %w", err)
	}

	n.log.Info("email sent", zap.Strings("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func buildMIME(msg Message, now time.Time) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", headerValue(msg.From))
	fmt.Fprintf(&b, "To: %s\r\n", headerValue(strings.Join(msg.To, ", ")))
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", headerValue(msg.Subject)))
	fmt.Fprintf(&b, "Date: %s\r\n", now.Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}

var headerReplacer = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// headerValue 去掉 CR/LF，活動標題等使用者輸入不能多出 header 行
func headerValue(s string) string {
	return headerReplacer.Replace(s)
}
