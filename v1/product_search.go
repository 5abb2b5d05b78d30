package v1

import (
	"context"

	"github.com/Infigo-Official/types-for-megascript/loadflags"
	"github.com/shopspring/decimal"
)

// ProductCriteria is the raw product search input the host executes.
// Zero-valued filters are ignored.
type ProductCriteria struct {
	Keyword        string
	CategoryID     int
	ManufacturerID int
	PublishedOnly  bool
	PriceMin       *decimal.Decimal
	PriceMax       *decimal.Decimal
	Page           int
	PageSize       int

	// Load selects which nested sections to populate on the results.
	Load loadflags.Flags
}

// ProductSearch is a fluent builder over ProductCriteria.
type ProductSearch struct {
	products Products
	criteria ProductCriteria
}

// NewProductSearch starts a search against the given namespace. Results are
// loaded with ProductLoadProduct unless WithLoad widens the flag set.
func NewProductSearch(products Products) *ProductSearch {
	return &ProductSearch{
		products: products,
		criteria: ProductCriteria{
			Page:     DefaultPage,
			PageSize: DefaultPageSize,
			Load:     ProductLoadProduct,
		},
	}
}

// ByKeyword filters on a name/description keyword.
func (s *ProductSearch) ByKeyword(keyword string) *ProductSearch {
	s.criteria.Keyword = keyword
	return s
}

// ByCategory filters on catalog category.
func (s *ProductSearch) ByCategory(categoryID int) *ProductSearch {
	s.criteria.CategoryID = categoryID
	return s
}

// ByManufacturer filters on manufacturer.
func (s *ProductSearch) ByManufacturer(manufacturerID int) *ProductSearch {
	s.criteria.ManufacturerID = manufacturerID
	return s
}

// PublishedOnly excludes unpublished products.
func (s *ProductSearch) PublishedOnly() *ProductSearch {
	s.criteria.PublishedOnly = true
	return s
}

// PriceBetween filters on the variant price range. A nil bound leaves that
// side open.
func (s *ProductSearch) PriceBetween(min, max *decimal.Decimal) *ProductSearch {
	s.criteria.PriceMin = min
	s.criteria.PriceMax = max
	return s
}

// WithLoad widens the ProductLoad flags applied to the results. The base
// Product flag is always retained.
func (s *ProductSearch) WithLoad(load loadflags.Flags) *ProductSearch {
	s.criteria.Load = loadflags.Combine(ProductLoadProduct, load)
	return s
}

// Page sets the 1-based result page. Values below 1 reset to the default.
func (s *ProductSearch) Page(page int) *ProductSearch {
	if page < 1 {
		page = DefaultPage
	}
	s.criteria.Page = page
	return s
}

// PageSize sets the page size, clamped to MaxPageSize.
func (s *ProductSearch) PageSize(size int) *ProductSearch {
	switch {
	case size < 1:
		size = DefaultPageSize
	case size > MaxPageSize:
		size = MaxPageSize
	}
	s.criteria.PageSize = size
	return s
}

// Criteria returns a copy of the accumulated criteria.
func (s *ProductSearch) Criteria() ProductCriteria {
	return s.criteria
}

// Execute runs the search on the host.
func (s *ProductSearch) Execute(ctx context.Context) ([]Product, error) {
	return s.products.Search(ctx, s.criteria)
}
