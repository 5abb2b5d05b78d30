package v1

import (
	"context"
	"time"

	"github.com/Infigo-Official/types-for-megascript/loadflags"
	"github.com/shopspring/decimal"
)

// Products is the product namespace of the host API. Queries take a
// ProductLoad flag set selecting which nested sections to populate;
// Get additionally takes ProductGet visibility flags.
type Products interface {
	// FindByID finds a published product by id.
	FindByID(ctx context.Context, id int, load loadflags.Flags) (Product, error)

	// FindBySku finds a product by the SKU of any of its variants.
	FindBySku(ctx context.Context, sku string, load loadflags.Flags) (Product, error)

	// Get fetches a product honouring the ProductGet visibility flags, so
	// scripts with the right permissions can reach unpublished or deleted
	// records.
	Get(ctx context.Context, id int, flags loadflags.Flags) (Product, error)

	// Search runs a product search. Scripts normally build the criteria
	// through NewProductSearch.
	Search(ctx context.Context, criteria ProductCriteria) ([]Product, error)
}

// Product is a live product object backed by the host. Accessors marked as
// flag-gated report ErrNotLoaded when the originating query did not request
// the matching ProductLoad flag.
type Product interface {
	ID() int
	Name() string
	ShortDescription() string
	FullDescription() string
	Published() bool
	Deleted() bool
	CreatedAt() time.Time

	// Categories is flag-gated on ProductLoadCategories.
	Categories() ([]Category, error)

	// Manufacturers is flag-gated on ProductLoadManufacturers.
	Manufacturers() ([]Manufacturer, error)

	// Pictures is flag-gated on ProductLoadPictures.
	Pictures() ([]Picture, error)

	// Specifications is flag-gated on ProductLoadSpecifications.
	Specifications() ([]SpecificationAttribute, error)

	// Attributes is flag-gated on ProductLoadAttributes.
	Attributes() ([]ProductAttribute, error)

	// CrossSells is flag-gated on ProductLoadCrossSells and returns the ids
	// of the cross-sold products.
	CrossSells() ([]int, error)

	// Variants loads the product's variants with the given VariantLoad
	// flags.
	Variants(ctx context.Context, load loadflags.Flags) ([]ProductVariant, error)
}

// ProductVariant is a purchasable variant of a product. Flag-gated accessors
// follow the VariantLoad family.
type ProductVariant interface {
	ID() int
	ProductID() int
	Sku() string
	Name() string
	Price() decimal.Decimal
	OldPrice() decimal.Decimal
	StockQuantity() int
	Published() bool

	// Pictures is flag-gated on VariantLoadPictures.
	Pictures() ([]Picture, error)

	// TierPrices is flag-gated on VariantLoadTierPrices.
	TierPrices() ([]TierPrice, error)

	// AttributeCombinations is flag-gated on
	// VariantLoadAttributeCombinations.
	AttributeCombinations() ([]AttributeCombination, error)

	// Downloads is flag-gated on VariantLoadDownloads.
	Downloads(ctx context.Context) ([]File, error)
}

// Category is a catalog category a product is listed under.
type Category struct {
	ID           int
	Name         string
	DisplayOrder int
}

// Manufacturer is a brand a product is attributed to.
type Manufacturer struct {
	ID   int
	Name string
}

// Picture is a stored product or variant image.
type Picture struct {
	ID       int
	MimeType string
	SeoName  string
	URL      string
}

// TierPrice is a quantity-break price on a variant.
type TierPrice struct {
	Quantity int
	Price    decimal.Decimal
}

// SpecificationAttribute is a display-only product property.
type SpecificationAttribute struct {
	Name  string
	Value string
}

// ProductAttribute is a configurable option exposed on the product detail
// page.
type ProductAttribute struct {
	ID         int
	Name       string
	IsRequired bool
	Values     []string
}

// AttributeCombination is one concrete combination of attribute values with
// its own SKU and stock.
type AttributeCombination struct {
	Sku           string
	StockQuantity int
	Attributes    map[string]string
}
