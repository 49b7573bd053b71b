package notify

import (
	"context"
	"fmt"
	"strings"

	"eventflow/internal/model"
	"eventflow/pkg/logger"

	"go.uber.org/zap"
)

type Message struct {
	Subject string
	Body    string
	From    string
	To      []string
}

type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

// RegistrationConfirmation 報名成功通知信
func RegistrationConfirmation(event *model.Event, user *model.User, from string) Message {
	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\n", user.Username)
	fmt.Fprintf(&body, "You have successfully registered for the event: %s.\n\n", event.Title)
	fmt.Fprintf(&body, "Date: %s\n", event.DateString())
	fmt.Fprintf(&body, "Time: %s\n", event.TimeString())
	fmt.Fprintf(&body, "Address: %s\n\n", event.Address)
	body.WriteString("Thank you for registering!\n")
	body.WriteString("- EventFlow Team")

	msg := Message{
		Subject: "Registration Confirmation: " + event.Title,
		Body:    body.String(),
		From:    from,
	}
	if user.HasEmail() {
		msg.To = []string{*user.Email}
	}
	return msg
}

// LogNotifier 不寄信，只記 log；未設定 SMTP 時使用
type LogNotifier struct {
	log *zap.Logger
}

func NewLogNotifier() Notifier {
	return &LogNotifier{log: logger.WithComponent("notify")}
}

func (n *LogNotifier) Send(ctx context.Context, msg Message) error {
	n.log.Info("email not sent (smtp disabled)",
		zap.String("subject", msg.Subject),
		zap.Strings("to", msg.To),
	)
	return nil
}
