package v1

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MessageStatus represents the delivery state of a message
type MessageStatus string

const (
	MessageStatusDraft  MessageStatus = "draft"
	MessageStatusQueued MessageStatus = "queued"
	MessageStatusSent   MessageStatus = "sent"
	MessageStatusFailed MessageStatus = "failed"
)

// IsValid checks if the status is a valid MessageStatus
func (s MessageStatus) IsValid() bool {
	switch s {
	case MessageStatusDraft, MessageStatusQueued, MessageStatusSent, MessageStatusFailed:
		return true
	}
	return false
}

// String returns the string representation of MessageStatus
func (s MessageStatus) String() string {
	return string(s)
}

// Messages is the messaging namespace of the host API.
type Messages interface {
	// Create drafts a message from the validated input.
	Create(ctx context.Context, input CreateMessage) (Message, error)

	// Send queues the draft with the given id for delivery. Only drafts can
	// be sent; later states fail with ErrInvalidState.
	Send(ctx context.Context, id uuid.UUID) error
}

// Message is a drafted message held by the host.
type Message interface {
	ID() uuid.UUID
	Status() MessageStatus

	// AddAttachment attaches a file to the draft. Only drafts can be
	// modified; later states fail with ErrInvalidState.
	AddAttachment(ctx context.Context, attachment Attachment) error
}

// Attachment is one file carried by a message.
type Attachment struct {
	Name     string `validate:"required,max=260"`
	MimeType string `validate:"required"`
	Data     []byte `validate:"required"`
}

// CreateMessage is the input for Messages.Create. Token values are
// substituted into the subject and body templates by the host.
type CreateMessage struct {
	To      []string `validate:"required,min=1,dive,email"`
	Cc      []string `validate:"dive,email"`
	Bcc     []string `validate:"dive,email"`
	Subject string   `validate:"required,max=400"`
	Body    string   `validate:"required"`
	Tokens  []MessageToken
}

// MessageToken is one template substitution pair.
type MessageToken struct {
	Name  string
	Value string
}

// TokenBuilder accumulates message tokens. Adding a token with a name that
// is already present replaces the earlier value.
type TokenBuilder struct {
	order  []string
	values map[string]string
}

// NewTokenBuilder creates an empty token builder.
func NewTokenBuilder() *TokenBuilder {
	return &TokenBuilder{values: make(map[string]string)}
}

// Add sets a token.
func (b *TokenBuilder) Add(name, value string) *TokenBuilder {
	if _, ok := b.values[name]; !ok {
		b.order = append(b.order, name)
	}
	b.values[name] = value
	return b
}

// AddCustomer sets the standard customer tokens.
func (b *TokenBuilder) AddCustomer(customer Customer) *TokenBuilder {
	b.Add("Customer.Email", customer.Email())
	b.Add("Customer.Username", customer.Username())
	b.Add("Customer.FullName", customer.FullName())
	return b
}

// AddOrder sets the standard order tokens.
func (b *TokenBuilder) AddOrder(order Order) *TokenBuilder {
	b.Add("Order.ID", fmt.Sprintf("%d", order.ID()))
	b.Add("Order.Status", order.Status().String())
	b.Add("Order.Total", formatMoney(order.Total(), order.CurrencyCode()))
	return b
}

// Build returns the tokens in first-added order.
func (b *TokenBuilder) Build() []MessageToken {
	tokens := make([]MessageToken, 0, len(b.order))
	for _, name := range b.order {
		tokens = append(tokens, MessageToken{Name: name, Value: b.values[name]})
	}
	return tokens
}

func formatMoney(amount decimal.Decimal, currencyCode string) string {
	return fmt.Sprintf("%s %s", amount.StringFixed(2), currencyCode)
}
