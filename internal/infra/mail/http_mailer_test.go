package mail

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"homesec/config"
	"homesec/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMailConfig(endpoint string) *config.MailConfig {
	return &config.MailConfig{
		Provider:  ProviderHTTP,
		FromEmail: "sistema@seguridadhogar.com",
		FromName:  "Sistema de Seguridad Hogar",
		HTTP:      config.MailHTTP{Endpoint: endpoint, Token: "secret-token", Timeout: time.Second},
		Retries:   2,
		BaseDelay: time.Millisecond,
	}
}

func testMessage() *service.MailMessage {
	return &service.MailMessage{
		RequestID: "req-1",
		To:        "ana@example.com",
		Subject:   "Bienvenido a tu Sistema de Seguridad Hogar",
		Text:      "hola",
		Category:  "Bienvenida Cliente",
	}
}

func TestHTTPMailer_Send(t *testing.T) {
	var got sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "req-1", r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	mailer, err := NewHTTPMailer(newTestMailConfig(server.URL), newDiscardLogger())
	require.NoError(t, err)

	require.NoError(t, mailer.Send(context.Background(), testMessage()))

	assert.Equal(t, "sistema@seguridadhogar.com", got.From.Email)
	assert.Equal(t, "Sistema de Seguridad Hogar", got.From.Name)
	assert.Equal(t, []address{{Email: "ana@example.com"}}, got.To)
	assert.Equal(t, "Bienvenida Cliente", got.Category)
	assert.Equal(t, "hola", got.Text)
}

func TestHTTPMailer_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	mailer, err := NewHTTPMailer(newTestMailConfig(server.URL), newDiscardLogger())
	require.NoError(t, err)

	require.NoError(t, mailer.Send(context.Background(), testMessage()))
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPMailer_GivesUpAfterRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	mailer, err := NewHTTPMailer(newTestMailConfig(server.URL), newDiscardLogger())
	require.NoError(t, err)

	err = mailer.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPMailer_ClientErrorIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":["Unauthorized"]}`))
	}))
	defer server.Close()

	mailer, err := NewHTTPMailer(newTestMailConfig(server.URL), newDiscardLogger())
	require.NoError(t, err)

	err = mailer.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unauthorized")
	assert.Equal(t, int32(1), calls.Load())
}

func TestNewHTTPMailer_RequiresEndpoint(t *testing.T) {
	_, err := NewHTTPMailer(&config.MailConfig{FromEmail: "a@b.c"}, newDiscardLogger())
	assert.Error(t, err)
}

func TestNewMailer_NoopWhenDisabled(t *testing.T) {
	mailer, err := NewMailer(MailerParams{
		Config: &config.Config{Mail: &config.MailConfig{Provider: ProviderNoop}},
		Logger: newDiscardLogger(),
	})
	require.NoError(t, err)

	assert.IsType(t, &noopMailer{}, mailer)
	assert.NoError(t, mailer.Send(context.Background(), testMessage()))
	assert.NoError(t, mailer.Close())
}

func TestNewMailer_UnknownProvider(t *testing.T) {
	_, err := NewMailer(MailerParams{
		Config: &config.Config{Mail: &config.MailConfig{Provider: "carrier-pigeon"}},
		Logger: newDiscardLogger(),
	})
	assert.Error(t, err)
}

func TestQueueName(t *testing.T) {
	assert.Equal(t, DefaultQueue, QueueName(&config.MailConfig{}))
	assert.Equal(t, "custom", QueueName(&config.MailConfig{AMQP: config.MailAMQP{Queue: "custom"}}))
}
