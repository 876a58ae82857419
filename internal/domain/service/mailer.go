package service

import (
	"context"
)

// MailMessage is a plain-text transactional email.
type MailMessage struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	To        string `json:"to"`
	Subject   string `json:"subject"`
	Text      string `json:"text"`
	Category  string `json:"category"`
}

// Mailer delivers transactional email such as welcome and recovery messages.
type Mailer interface {
	// Send delivers or enqueues the message. A nil error means the provider accepted it.
	Send(ctx context.Context, msg *MailMessage) error

	// Close releases any resources held by the mailer
	Close() error
}
