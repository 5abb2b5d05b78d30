package v1

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Customers is the customer namespace of the host API.
type Customers interface {
	// FindByID finds a customer by its id. Returns ErrNotFound when no
	// customer exists.
	FindByID(ctx context.Context, id int) (Customer, error)

	// FindByEmail finds a customer by email address.
	FindByEmail(ctx context.Context, email string) (Customer, error)

	// FindByUsername finds a customer by username.
	FindByUsername(ctx context.Context, username string) (Customer, error)

	// Create creates a new customer from the validated input.
	Create(ctx context.Context, input CreateCustomer) (Customer, error)

	// Search runs a customer search. Scripts normally build the criteria
	// through NewCustomerSearch rather than filling the struct by hand.
	Search(ctx context.Context, criteria CustomerCriteria) ([]Customer, error)
}

// Customer is a live customer object backed by the host. Mutators change the
// host-side record; Save persists pending field changes.
type Customer interface {
	ID() int
	Guid() uuid.UUID
	Email() string
	Username() string
	FirstName() string
	LastName() string
	FullName() string
	Active() bool
	IsGuest() bool
	CreatedAt() time.Time

	// BillingAddress returns the customer's billing address, or ErrNotFound
	// when none is set.
	BillingAddress(ctx context.Context) (*Address, error)

	// ShippingAddress returns the customer's shipping address, or
	// ErrNotFound when none is set.
	ShippingAddress(ctx context.Context) (*Address, error)

	// Addresses returns the customer's address book.
	Addresses(ctx context.Context) ([]Address, error)

	// Departments returns the departments the customer belongs to.
	Departments(ctx context.Context) ([]Department, error)

	// Attribute returns the named custom attribute.
	Attribute(ctx context.Context, name string) (string, bool, error)

	// SetAttribute sets a custom attribute on the customer.
	SetAttribute(ctx context.Context, name, value string) error

	// SetEmail changes the customer's email address.
	SetEmail(ctx context.Context, email string) error

	// SetName changes the customer's first and last name.
	SetName(ctx context.Context, firstName, lastName string) error

	// Deactivate deactivates the customer account.
	Deactivate(ctx context.Context) error

	// Save persists pending changes to the host.
	Save(ctx context.Context) error
}

// CreateCustomer is the input for Customers.Create.
type CreateCustomer struct {
	Email     string `validate:"required,email,max=200"`
	Username  string `validate:"required,max=100"`
	FirstName string `validate:"max=100"`
	LastName  string `validate:"max=100"`
	Password  string `validate:"required,min=6"`
	Active    bool
}

// Department is a customer grouping used for budgets and approvals.
type Department interface {
	ID() int
	Name() string
	Description() string

	// Members returns the customers belonging to the department.
	Members(ctx context.Context) ([]Customer, error)
}
