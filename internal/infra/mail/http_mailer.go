package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"homesec/config"
	"homesec/internal/domain/service"
	"homesec/internal/errors"

	"github.com/sethvargo/go-retry"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	defaultBaseDelay   = 200 * time.Millisecond
	maxErrorBody       = 512
)

// httpMailer posts messages to a JSON mail-sending API authenticated with a bearer token.
type httpMailer struct {
	endpoint   string
	token      string
	from       address
	retries    uint64
	baseDelay  time.Duration
	httpClient *http.Client
	logger     *slog.Logger
}

type address struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// sendRequest is the body accepted by the mail API.
type sendRequest struct {
	From     address   `json:"from"`
	To       []address `json:"to"`
	Subject  string    `json:"subject"`
	Text     string    `json:"text"`
	Category string    `json:"category,omitempty"`
}

// NewHTTPMailer creates a mailer that calls the configured HTTP endpoint.
func NewHTTPMailer(cfg *config.MailConfig, logger *slog.Logger) (service.Mailer, error) {
	if cfg.HTTP.Endpoint == "" {
		return nil, errors.New("mail.http.endpoint is required for http provider")
	}
	if cfg.FromEmail == "" {
		return nil, errors.New("mail.fromEmail is required for http provider")
	}

	timeout := cfg.HTTP.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	baseDelay := cfg.BaseDelay
	if baseDelay <= 0 {
		baseDelay = defaultBaseDelay
	}

	return &httpMailer{
		endpoint:   cfg.HTTP.Endpoint,
		token:      cfg.HTTP.Token,
		from:       address{Email: cfg.FromEmail, Name: cfg.FromName},
		retries:    cfg.Retries,
		baseDelay:  baseDelay,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

// Send posts the message. Transport failures, 429 and 5xx responses are
// retried with exponential backoff; other non-2xx responses fail at once.
func (m *httpMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	body, err := json.Marshal(sendRequest{
		From:     m.from,
		To:       []address{{Email: msg.To}},
		Subject:  msg.Subject,
		Text:     msg.Text,
		Category: msg.Category,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	backoff := retry.WithMaxRetries(m.retries, retry.NewExponential(m.baseDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		return m.post(ctx, body, msg.RequestID)
	})
	if err != nil {
		m.logger.Warn("[HTTPMailer] Delivery failed",
			slog.String("category", msg.Category),
			slog.Any("error", err),
		)

		return err
	}

	m.logger.Info("[HTTPMailer] Mail sent", slog.String("category", msg.Category))

	return nil
}

func (m *httpMailer) post(ctx context.Context, body []byte, requestID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if m.token != "" {
		req.Header.Set("Authorization", "Bearer "+m.token)
	}
	if requestID != "" {
		req.Header.Set("X-Request-Id", requestID)
	}

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return retry.RetryableError(errors.WithStack(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		_, _ = io.Copy(io.Discard, resp.Body)

		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	err = errors.Errorf("mail API returned status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return retry.RetryableError(err)
	}

	return err
}

// Close releases idle connections.
func (m *httpMailer) Close() error {
	m.httpClient.CloseIdleConnections()

	return nil
}
