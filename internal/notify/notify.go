// AngelaMos | 2026
// notify.go

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/carterperez-dev/taskhabit/internal/domain"
)

type Kind string

const (
	KindPaymentInstructions Kind = "payment_instructions"
	KindAdminAlert          Kind = "admin_alert"
	KindReminder            Kind = "reminder"
)

type Message struct {
	Kind    Kind                    `json:"kind"`
	To      string                  `json:"to"`
	Channel domain.NotificationType `json:"channel"`
	Subject string                  `json:"subject"`
	Body    string                  `json:"body"`
	SentAt  time.Time               `json:"sentAt"`
}

type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}

// LogNotifier only records messages; nothing is delivered.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(ctx context.Context, msg Message) error {
	n.logger.InfoContext(ctx, "notification",
		"kind", msg.Kind,
		"to", msg.To,
		"channel", msg.Channel,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}

// RedisNotifier appends messages to a list for an external delivery worker.
type RedisNotifier struct {
	client redis.Cmdable
	queue  string
}

func NewRedisNotifier(client redis.Cmdable, queue string) *RedisNotifier {
	return &RedisNotifier{client: client, queue: queue}
}

func (n *RedisNotifier) Notify(ctx context.Context, msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	if err := n.client.RPush(ctx, n.queue, data).Err(); err != nil {
		return fmt.Errorf("enqueue notification: %w", err)
	}
	return nil
}

func PaymentInstructions(u domain.User, tier domain.Tier, now time.Time) Message {
	return Message{
		Kind:    KindPaymentInstructions,
		To:      u.Email,
		Channel: domain.NotifyEmail,
		Subject: "Payment instructions for " + string(tier),
		Body: fmt.Sprintf(
			"Hi %s, thanks for choosing %s. Reply to this email to receive payment details; "+
				"your plan is activated once payment is confirmed.",
			u.Name, tier,
		),
		SentAt: now,
	}
}

func AdminAlert(adminEmail string, u domain.User, tier domain.Tier, now time.Time) Message {
	return Message{
		Kind:    KindAdminAlert,
		To:      adminEmail,
		Channel: domain.NotifyEmail,
		Subject: "New subscription request",
		Body:    fmt.Sprintf("%s requested the %s plan.", u.Email, tier),
		SentAt:  now,
	}
}

func Reminder(u domain.User, t domain.Task, now time.Time) Message {
	channel := t.NotificationType
	if channel == "" {
		channel = domain.NotifyEmail
	}
	return Message{
		Kind:    KindReminder,
		To:      u.Email,
		Channel: channel,
		Subject: "Upcoming: " + t.Title,
		Body:    fmt.Sprintf("%s starts at %s.", t.Title, t.StartTime),
		SentAt:  now,
	}
}
