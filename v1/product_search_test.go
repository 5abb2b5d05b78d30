package v1

import (
	"context"
	"testing"

	"github.com/Infigo-Official/types-for-megascript/loadflags"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProducts struct {
	criteria ProductCriteria
}

func (s *stubProducts) FindByID(context.Context, int, loadflags.Flags) (Product, error) {
	return nil, ErrNotFound
}

func (s *stubProducts) FindBySku(context.Context, string, loadflags.Flags) (Product, error) {
	return nil, ErrNotFound
}

func (s *stubProducts) Get(context.Context, int, loadflags.Flags) (Product, error) {
	return nil, ErrNotFound
}

func (s *stubProducts) Search(_ context.Context, criteria ProductCriteria) ([]Product, error) {
	s.criteria = criteria
	return nil, nil
}

func TestProductSearchDefaults(t *testing.T) {
	criteria := NewProductSearch(&stubProducts{}).Criteria()

	assert.Equal(t, DefaultPage, criteria.Page)
	assert.Equal(t, DefaultPageSize, criteria.PageSize)
	assert.Equal(t, ProductLoadProduct, criteria.Load)
}

func TestProductSearchBuildsCriteria(t *testing.T) {
	stub := &stubProducts{}
	min := decimal.NewFromInt(10)
	max := decimal.NewFromInt(200)

	_, err := NewProductSearch(stub).
		ByKeyword("business cards").
		ByCategory(12).
		ByManufacturer(4).
		PublishedOnly().
		PriceBetween(&min, &max).
		WithLoad(loadflags.Combine(ProductLoadCategories, ProductLoadTierPrices)).
		Page(2).
		PageSize(10).
		Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "business cards", stub.criteria.Keyword)
	assert.Equal(t, 12, stub.criteria.CategoryID)
	assert.Equal(t, 4, stub.criteria.ManufacturerID)
	assert.True(t, stub.criteria.PublishedOnly)
	require.NotNil(t, stub.criteria.PriceMin)
	assert.True(t, stub.criteria.PriceMin.Equal(min))
	assert.Equal(t, 2, stub.criteria.Page)
	assert.Equal(t, 10, stub.criteria.PageSize)
}

func TestProductSearchLoadAlwaysKeepsBase(t *testing.T) {
	criteria := NewProductSearch(&stubProducts{}).
		WithLoad(ProductLoadTierPrices).
		Criteria()

	assert.True(t, criteria.Load.Contains(ProductLoadProduct))
	assert.True(t, criteria.Load.Contains(ProductLoadTierPrices))
	assert.False(t, criteria.Load.Contains(ProductLoadCategories))
}
