// Package handler contains the message handlers of the mail worker.
package handler

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "homesec/internal/delivery/context"
	"homesec/internal/domain/service"
	"homesec/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// ErrMissingRecipient is returned for queued messages without a destination address.
var ErrMissingRecipient = errors.New("mail message has no recipient")

// MailHandlerParams holds dependencies for the MailHandler
type MailHandlerParams struct {
	fx.In

	Logger *slog.Logger
	Mailer service.Mailer
}

// MailHandler delivers messages taken from the mail queue.
type MailHandler struct {
	logger *slog.Logger
	mailer service.Mailer
}

// NewMailHandler creates a new queue message handler
func NewMailHandler(params MailHandlerParams) *MailHandler {
	return &MailHandler{
		logger: params.Logger,
		mailer: params.Mailer,
	}
}

// Handle sends one queued message. A returned error makes the consumer drop the message.
func (h *MailHandler) Handle(ctx context.Context, msg *service.MailMessage) error {
	requestID := h.extractRequestID(ctx, msg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if strings.TrimSpace(msg.To) == "" {
		return errors.WithStack(ErrMissingRecipient)
	}

	reqLogger.Info("[Worker] Delivering mail", slog.String("category", msg.Category))

	if err := h.mailer.Send(ctx, msg); err != nil {
		return errors.Wrapf(err, "deliver %s mail", msg.Category)
	}

	reqLogger.Info("[Worker] Mail delivered", slog.String("category", msg.Category))

	return nil
}

// extractRequestID prefers the id carried by the message, then the context, then a fresh one.
func (h *MailHandler) extractRequestID(ctx context.Context, msg *service.MailMessage) string {
	if msg.RequestID != "" {
		return msg.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}
