package v1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAddress() Address {
	return Address{
		FirstName:     "Jo",
		LastName:      "Bloggs",
		Address1:      "1 High Street",
		City:          "Norwich",
		ZipPostalCode: "NR1 1AA",
		CountryCode:   "GB",
		Email:         "jo@example.com",
	}
}

func TestAddressValidation(t *testing.T) {
	t.Run("accepts a valid address", func(t *testing.T) {
		assert.NoError(t, Validate(validAddress()))
	})

	t.Run("rejects missing street", func(t *testing.T) {
		addr := validAddress()
		addr.Address1 = ""
		assert.ErrorIs(t, Validate(addr), ErrInvalidInput)
	})

	t.Run("rejects bad country code", func(t *testing.T) {
		addr := validAddress()
		addr.CountryCode = "GBR"
		assert.ErrorIs(t, Validate(addr), ErrInvalidInput)
	})

	t.Run("email is optional but must be well formed", func(t *testing.T) {
		addr := validAddress()
		addr.Email = ""
		assert.NoError(t, Validate(addr))

		addr.Email = "nope"
		assert.ErrorIs(t, Validate(addr), ErrInvalidInput)
	})
}

func TestCreateCustomerValidation(t *testing.T) {
	valid := CreateCustomer{
		Email:    "jo@example.com",
		Username: "jo.bloggs",
		Password: "hunter22",
	}

	t.Run("accepts valid input", func(t *testing.T) {
		assert.NoError(t, Validate(valid))
	})

	t.Run("rejects short password", func(t *testing.T) {
		input := valid
		input.Password = "abc"
		assert.ErrorIs(t, Validate(input), ErrInvalidInput)
	})

	t.Run("rejects missing username", func(t *testing.T) {
		input := valid
		input.Username = ""
		assert.ErrorIs(t, Validate(input), ErrInvalidInput)
	})
}

func TestPdfImagePlacementValidation(t *testing.T) {
	t.Run("accepts positive box", func(t *testing.T) {
		assert.NoError(t, Validate(PdfImagePlacement{X: 0, Y: 0, Width: 100, Height: 50}))
	})

	t.Run("rejects zero-sized box", func(t *testing.T) {
		assert.ErrorIs(t, Validate(PdfImagePlacement{Width: 0, Height: 50}), ErrInvalidInput)
	})

	t.Run("rejects negative origin", func(t *testing.T) {
		assert.ErrorIs(t, Validate(PdfImagePlacement{X: -1, Width: 10, Height: 10}), ErrInvalidInput)
	})
}
