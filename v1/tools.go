package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Tools is the grab-bag utility namespace of the host API.
type Tools interface {
	// NewGuid returns a fresh guid.
	NewGuid() uuid.UUID

	// RandomString returns a random alphanumeric string of the given
	// length.
	RandomString(length int) string

	// HashSHA256 returns the lowercase hex SHA-256 digest of data.
	HashSHA256(data []byte) string

	// FormatAmount renders a money amount using the store's display rules
	// for the given currency.
	FormatAmount(amount decimal.Decimal, currencyCode string) string

	// Now returns the current time in the store's timezone.
	Now() time.Time
}
