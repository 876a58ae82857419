package mail

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"homesec/internal/domain/service"
	"homesec/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sethvargo/go-retry"
)

const (
	reconnectBaseDelay = time.Second
	reconnectMaxDelay  = 30 * time.Second
	defaultPrefetch    = 10
)

// Handler processes one queued message. A returned error rejects the message.
type Handler func(ctx context.Context, msg *service.MailMessage) error

// Consumer drains the mail queue and hands every message to a Handler.
type Consumer struct {
	url      string
	queue    string
	prefetch int
	logger   *slog.Logger
}

// NewConsumer creates a queue consumer. Prefetch bounds unacknowledged deliveries.
func NewConsumer(url, queue string, prefetch int, logger *slog.Logger) *Consumer {
	if prefetch <= 0 {
		prefetch = defaultPrefetch
	}

	return &Consumer{url: url, queue: queue, prefetch: prefetch, logger: logger}
}

// Run consumes until ctx is cancelled, reconnecting with capped exponential
// backoff whenever the broker connection drops.
func (c *Consumer) Run(ctx context.Context, handle Handler) error {
	backoff := retry.WithCappedDuration(reconnectMaxDelay, retry.NewExponential(reconnectBaseDelay))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.consume(ctx, handle)
		if err == nil || ctx.Err() != nil {
			return nil
		}
		c.logger.Warn("[MailConsumer] Consume loop ended, reconnecting", slog.Any("error", err))

		return retry.RetryableError(err)
	})
	if ctx.Err() != nil {
		return nil
	}

	return err
}

func (c *Consumer) consume(ctx context.Context, handle Handler) error {
	conn, err := amqp.Dial(c.url)
	if err != nil {
		return errors.Wrap(err, "dial rabbitmq")
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "open channel")
	}
	defer ch.Close()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return errors.Wrap(err, "set qos")
	}
	if err := declareQueue(ch, c.queue); err != nil {
		return err
	}

	deliveries, err := ch.ConsumeWithContext(ctx, c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "consume")
	}

	c.logger.Info("[MailConsumer] Consuming", slog.String("queue", c.queue))

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.dispatch(ctx, d, handle)
		}
	}
}

func (c *Consumer) dispatch(ctx context.Context, d amqp.Delivery, handle Handler) {
	var msg service.MailMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		c.logger.Error("[MailConsumer] Dropping malformed message", slog.Any("error", err))
		_ = d.Nack(false, false)

		return
	}

	if err := handle(ctx, &msg); err != nil {
		// Rejected without requeue; the handler already retried.
		c.logger.Error("[MailConsumer] Handler failed",
			slog.String("category", msg.Category),
			slog.String("request_id", msg.RequestID),
			slog.Any("error", err),
		)
		_ = d.Nack(false, false)

		return
	}

	_ = d.Ack(false)
}
