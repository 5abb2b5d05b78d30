package v1

import (
	"context"
	"time"

	"github.com/Infigo-Official/types-for-megascript/loadflags"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle status of an order
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusComplete   OrderStatus = "complete"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsValid checks if the status is a valid OrderStatus
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusComplete, OrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusProcessing || target == OrderStatusCancelled
	case OrderStatusProcessing:
		return target == OrderStatusComplete || target == OrderStatusCancelled
	case OrderStatusComplete, OrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// AllOrderStatuses returns all valid order statuses
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusProcessing,
		OrderStatusComplete,
		OrderStatusCancelled,
	}
}

// PaymentStatus represents the payment state of an order
type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusAuthorized        PaymentStatus = "authorized"
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusVoided            PaymentStatus = "voided"
)

// IsValid checks if the status is a valid PaymentStatus
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusAuthorized, PaymentStatusPaid,
		PaymentStatusPartiallyRefunded, PaymentStatusRefunded, PaymentStatusVoided:
		return true
	}
	return false
}

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// ShippingStatus represents the shipping state of an order
type ShippingStatus string

const (
	ShippingStatusNotRequired      ShippingStatus = "not_required"
	ShippingStatusNotYetShipped    ShippingStatus = "not_yet_shipped"
	ShippingStatusPartiallyShipped ShippingStatus = "partially_shipped"
	ShippingStatusShipped          ShippingStatus = "shipped"
	ShippingStatusDelivered        ShippingStatus = "delivered"
)

// IsValid checks if the status is a valid ShippingStatus
func (s ShippingStatus) IsValid() bool {
	switch s {
	case ShippingStatusNotRequired, ShippingStatusNotYetShipped,
		ShippingStatusPartiallyShipped, ShippingStatusShipped, ShippingStatusDelivered:
		return true
	}
	return false
}

// String returns the string representation of ShippingStatus
func (s ShippingStatus) String() string {
	return string(s)
}

// Orders is the order namespace of the host API. Queries take an OrderLoad
// flag set selecting which nested sections to populate.
type Orders interface {
	// FindByID finds an order by id.
	FindByID(ctx context.Context, id int, load loadflags.Flags) (Order, error)

	// FindByGuid finds an order by its public guid.
	FindByGuid(ctx context.Context, guid uuid.UUID, load loadflags.Flags) (Order, error)

	// FindByCustomer returns the orders placed by a customer, newest first.
	FindByCustomer(ctx context.Context, customerID int, load loadflags.Flags) ([]Order, error)
}

// Order is a live order object backed by the host. Accessors marked as
// flag-gated report ErrNotLoaded when the originating query did not request
// the matching OrderLoad flag.
type Order interface {
	ID() int
	Guid() uuid.UUID
	CustomerID() int
	Status() OrderStatus
	PaymentStatus() PaymentStatus
	ShippingStatus() ShippingStatus
	CurrencyCode() string
	Subtotal() decimal.Decimal
	Tax() decimal.Decimal
	Discount() decimal.Decimal
	Total() decimal.Decimal
	CreatedAt() time.Time

	// Customer is flag-gated on OrderLoadCustomer.
	Customer() (Customer, error)

	// BillingAddress is flag-gated on OrderLoadBillingAddress.
	BillingAddress() (*Address, error)

	// ShippingAddress is flag-gated on OrderLoadShippingAddress.
	ShippingAddress() (*Address, error)

	// Items is flag-gated on OrderLoadOrderProductVariants.
	Items() ([]OrderProductVariant, error)

	// Notes is flag-gated on OrderLoadOrderNotes.
	Notes() ([]OrderNote, error)

	// Shipments is flag-gated on OrderLoadShipments.
	Shipments() ([]Shipment, error)

	// Cancel cancels the order. Fails with ErrInvalidState when the current
	// status cannot transition to cancelled.
	Cancel(ctx context.Context) error

	// MarkAsPaid records a completed payment on the order.
	MarkAsPaid(ctx context.Context) error

	// AddNote attaches a note to the order.
	AddNote(ctx context.Context, text string, visibleToCustomer bool) error

	// Save persists pending changes to the host.
	Save(ctx context.Context) error
}

// OrderProductVariant is one order line.
type OrderProductVariant struct {
	ID               int
	OrderID          int
	ProductVariantID int
	Sku              string
	Quantity         int
	UnitPriceInclTax decimal.Decimal
	UnitPriceExclTax decimal.Decimal
	PriceInclTax     decimal.Decimal
	PriceExclTax     decimal.Decimal
	DiscountInclTax  decimal.Decimal
}

// OrderNote is a note attached to an order.
type OrderNote struct {
	ID                int
	Text              string
	VisibleToCustomer bool
	CreatedAt         time.Time
}

// Shipment is one (possibly partial) shipment of an order.
type Shipment struct {
	ID             int
	TrackingNumber string
	ShippedAt      time.Time
	DeliveredAt    *time.Time
}
