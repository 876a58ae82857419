package mail

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"homesec/config"
	"homesec/internal/domain/service"
	"homesec/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sethvargo/go-retry"
)

// DefaultQueue is used when mail.amqp.queue is empty.
const DefaultQueue = "mail.outbound"

// publishSession is one broker connection with a channel bound to the mail queue.
type publishSession interface {
	publish(ctx context.Context, queue string, pub amqp.Publishing) error
	lost() bool
	close() error
}

type dialFunc func(ctx context.Context) (publishSession, error)

// amqpMailer enqueues messages on a durable queue drained by the mail worker.
// Send succeeds once the broker accepted the message. A dropped connection is
// redialed on the next Send.
type amqpMailer struct {
	mu        sync.Mutex
	session   publishSession
	dial      dialFunc
	queue     string
	retries   uint64
	baseDelay time.Duration
	logger    *slog.Logger
}

// NewAMQPMailer dials the broker and declares the mail queue.
func NewAMQPMailer(cfg *config.MailConfig, logger *slog.Logger) (service.Mailer, error) {
	if cfg.AMQP.URL == "" {
		return nil, errors.New("mail.amqp.url is required for amqp provider")
	}

	queue := QueueName(cfg)
	dial := func(context.Context) (publishSession, error) {
		session, err := dialBroker(cfg.AMQP.URL, queue, logger)
		if err != nil {
			return nil, err
		}

		return session, nil
	}

	session, err := dial(context.Background())
	if err != nil {
		return nil, err
	}

	return newAMQPMailer(session, dial, queue, cfg, logger), nil
}

func newAMQPMailer(session publishSession, dial dialFunc, queue string, cfg *config.MailConfig, logger *slog.Logger) *amqpMailer {
	baseDelay := cfg.BaseDelay
	if baseDelay <= 0 {
		baseDelay = reconnectBaseDelay
	}

	return &amqpMailer{
		session:   session,
		dial:      dial,
		queue:     queue,
		retries:   cfg.Retries,
		baseDelay: baseDelay,
		logger:    logger,
	}
}

// QueueName returns the configured queue or the default one.
func QueueName(cfg *config.MailConfig) string {
	if cfg.AMQP.Queue == "" {
		return DefaultQueue
	}

	return cfg.AMQP.Queue
}

func declareQueue(ch *amqp.Channel, queue string) error {
	// Durable so queued mail survives broker restarts.
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return errors.Wrapf(err, "declare queue %s", queue)
	}

	return nil
}

// Send publishes msg as a persistent JSON message on the default exchange.
func (m *amqpMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	pub := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Timestamp:     time.Now().UTC(),
		CorrelationId: msg.RequestID,
		Type:          msg.Category,
		Body:          body,
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	backoff := retry.WithMaxRetries(m.retries, retry.WithCappedDuration(reconnectMaxDelay, retry.NewExponential(m.baseDelay)))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if m.session == nil || m.session.lost() {
			if err := m.redial(ctx); err != nil {
				return retry.RetryableError(err)
			}
		}

		if err := m.session.publish(ctx, m.queue, pub); err != nil {
			if errors.Is(err, amqp.ErrClosed) || m.session.lost() {
				m.drop()

				return retry.RetryableError(errors.Wrap(err, "publish mail"))
			}

			return errors.Wrap(err, "publish mail")
		}

		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Debug("[AMQPMailer] Mail queued",
		slog.String("queue", m.queue),
		slog.String("category", msg.Category),
	)

	return nil
}

func (m *amqpMailer) redial(ctx context.Context) error {
	m.drop()

	session, err := m.dial(ctx)
	if err != nil {
		m.logger.Warn("[AMQPMailer] Redial failed", slog.Any("error", err))

		return err
	}
	m.session = session
	m.logger.Info("[AMQPMailer] Reconnected to broker", slog.String("queue", m.queue))

	return nil
}

func (m *amqpMailer) drop() {
	if m.session == nil {
		return
	}
	_ = m.session.close()
	m.session = nil
}

// Close closes the channel and the connection.
func (m *amqpMailer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return nil
	}
	err := m.session.close()
	m.session = nil

	return err
}

// brokerSession tracks its connection through NotifyClose.
type brokerSession struct {
	conn   *amqp.Connection
	ch     *amqp.Channel
	closed atomic.Bool
}

func dialBroker(url, queue string, logger *slog.Logger) (*brokerSession, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "dial rabbitmq")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "open rabbitmq channel")
	}

	if err := declareQueue(ch, queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, err
	}

	s := &brokerSession{conn: conn, ch: ch}
	connClosed := conn.NotifyClose(make(chan *amqp.Error, 1))
	chClosed := ch.NotifyClose(make(chan *amqp.Error, 1))
	go func() {
		var reason *amqp.Error
		select {
		case reason = <-connClosed:
		case reason = <-chClosed:
		}
		s.closed.Store(true)
		if reason != nil {
			logger.Warn("[AMQPMailer] Broker connection lost", slog.String("reason", reason.Error()))
		}
	}()

	return s, nil
}

func (s *brokerSession) publish(ctx context.Context, queue string, pub amqp.Publishing) error {
	return s.ch.PublishWithContext(ctx, "", queue, false, false, pub)
}

func (s *brokerSession) lost() bool {
	return s.closed.Load()
}

func (s *brokerSession) close() error {
	if s.conn.IsClosed() {
		return nil
	}

	return errors.Join(s.ch.Close(), s.conn.Close())
}
