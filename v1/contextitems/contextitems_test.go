package contextitems_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/Infigo-Official/types-for-megascript/v1"
	"github.com/Infigo-Official/types-for-megascript/v1/contextitems"
)

func TestFlagAliasesShareValues(t *testing.T) {
	assert.Equal(t, v1.MetaDataTags, contextitems.MetaDataTags)
	assert.Equal(t, v1.MetaDataAll, contextitems.MetaDataAll)
	assert.Equal(t, v1.OrderLoadAddresses, contextitems.OrderLoadAddresses)
	assert.Same(t, v1.MetaDataToLoad, contextitems.MetaDataToLoad)
}

func TestErrorAliasesAreIdentical(t *testing.T) {
	assert.Same(t, v1.ErrNotFound, contextitems.ErrNotFound)
	assert.Same(t, v1.ErrNotLoaded, contextitems.ErrNotLoaded)
}

func TestTypeAliasesAreInterchangeable(t *testing.T) {
	// A type alias is the same type, so v1 values assign directly.
	var status contextitems.OrderStatus = v1.OrderStatusPending
	assert.True(t, status.IsValid())
	assert.Equal(t, v1.OrderStatusPending, status)

	var addr contextitems.Address = v1.Address{
		Address1:    "1 High Street",
		City:        "Leeds",
		CountryCode: "GB",
	}
	assert.NoError(t, contextitems.Validate(addr))
}
