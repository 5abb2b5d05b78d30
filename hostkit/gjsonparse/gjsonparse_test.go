package gjsonparse

import (
	"testing"

	v1 "github.com/Infigo-Official/types-for-megascript/v1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderDoc = `{
	"order": {
		"id": 1042,
		"total": 95.5,
		"paid": true,
		"customer": {"email": "jo@example.com"},
		"items": [
			{"sku": "BC-500", "quantity": 2},
			{"sku": "FL-A5", "quantity": 1}
		]
	}
}`

func TestJSONRejectsMalformedInput(t *testing.T) {
	_, err := New().JSON([]byte(`{"order":`))
	assert.ErrorIs(t, err, v1.ErrInvalidInput)
}

func TestJSONNavigation(t *testing.T) {
	doc, err := New().JSON([]byte(orderDoc))
	require.NoError(t, err)

	t.Run("scalar access", func(t *testing.T) {
		assert.EqualValues(t, 1042, doc.Get("order.id").Int())
		assert.Equal(t, 95.5, doc.Get("order.total").Float())
		assert.True(t, doc.Get("order.paid").Bool())
		assert.Equal(t, "jo@example.com", doc.Get("order.customer.email").String())
	})

	t.Run("missing paths exist as absent values", func(t *testing.T) {
		missing := doc.Get("order.voucher.code")
		assert.False(t, missing.Exists())
		assert.Equal(t, "", missing.String())
		assert.EqualValues(t, 0, missing.Int())
	})

	t.Run("arrays", func(t *testing.T) {
		items := doc.Get("order.items").Array()
		require.Len(t, items, 2)
		assert.Equal(t, "BC-500", items[0].Get("sku").String())
		assert.EqualValues(t, 1, items[1].Get("quantity").Int())
	})

	t.Run("array access on a scalar yields nothing", func(t *testing.T) {
		assert.Nil(t, doc.Get("order.id").Array())
	})

	t.Run("maps", func(t *testing.T) {
		customer := doc.Get("order.customer").Map()
		require.Contains(t, customer, "email")
		assert.Equal(t, "jo@example.com", customer["email"].String())
	})

	t.Run("raw fragment", func(t *testing.T) {
		assert.Equal(t, `{"email": "jo@example.com"}`, doc.Get("order.customer").Raw())
	})
}
