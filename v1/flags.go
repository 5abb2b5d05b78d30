package v1

import (
	"github.com/Infigo-Official/types-for-megascript/loadflags"
)

// MetaDataToLoad governs which nested data a job metadata query populates.
// Job is the universal base: every other member includes it, so metadata can
// never be requested without the job record itself.
var MetaDataToLoad = loadflags.MustNewFamily("MetaDataToLoad",
	loadflags.Base("Job", 1),
	loadflags.Flag("Customer", 2),
	loadflags.Flag("Order", 3),
	loadflags.Flag("Product", 4),
	loadflags.Flag("OrderProductVariant", 5),
	loadflags.Flag("TemplateTexts", 6),
	loadflags.Composite("Tags", 7, "OrderProductVariant"),
	loadflags.Flag("CustomerAttributes", 8),
	loadflags.Composite("CheckoutAttributes", 9, "CustomerAttributes", "TemplateTexts"),
)

// Job metadata flags. Tags and CheckoutAttributes are composites: requesting
// them implicitly requests their declared dependencies.
var (
	MetaDataNone                = loadflags.None
	MetaDataJob                 = MetaDataToLoad.Get("Job")
	MetaDataCustomer            = MetaDataToLoad.Get("Customer")
	MetaDataOrder               = MetaDataToLoad.Get("Order")
	MetaDataProduct             = MetaDataToLoad.Get("Product")
	MetaDataOrderProductVariant = MetaDataToLoad.Get("OrderProductVariant")
	MetaDataTemplateTexts       = MetaDataToLoad.Get("TemplateTexts")
	MetaDataTags                = MetaDataToLoad.Get("Tags")
	MetaDataCustomerAttributes  = MetaDataToLoad.Get("CustomerAttributes")
	MetaDataCheckoutAttributes  = MetaDataToLoad.Get("CheckoutAttributes")
	MetaDataAll                 = MetaDataToLoad.All()
)

// OrderLoad governs which nested order data Orders queries populate.
var OrderLoad = loadflags.MustNewFamily("OrderLoadType",
	loadflags.Base("Order", 1),
	loadflags.Flag("Customer", 2),
	loadflags.Flag("BillingAddress", 3),
	loadflags.Flag("ShippingAddress", 4),
	loadflags.Flag("OrderProductVariants", 5),
	loadflags.Flag("OrderNotes", 6),
	loadflags.Flag("Shipments", 7),
	loadflags.Composite("Addresses", 8, "BillingAddress", "ShippingAddress"),
)

// Order load flags.
var (
	OrderLoadNone                 = loadflags.None
	OrderLoadOrder                = OrderLoad.Get("Order")
	OrderLoadCustomer             = OrderLoad.Get("Customer")
	OrderLoadBillingAddress       = OrderLoad.Get("BillingAddress")
	OrderLoadShippingAddress      = OrderLoad.Get("ShippingAddress")
	OrderLoadOrderProductVariants = OrderLoad.Get("OrderProductVariants")
	OrderLoadOrderNotes           = OrderLoad.Get("OrderNotes")
	OrderLoadShipments            = OrderLoad.Get("Shipments")
	OrderLoadAddresses            = OrderLoad.Get("Addresses")
	OrderLoadAll                  = OrderLoad.All()
)

// ProductLoad governs which nested product data Products queries populate.
var ProductLoad = loadflags.MustNewFamily("ProductLoadType",
	loadflags.Base("Product", 1),
	loadflags.Flag("Categories", 2),
	loadflags.Flag("Manufacturers", 3),
	loadflags.Flag("Pictures", 4),
	loadflags.Flag("TierPrices", 5),
	loadflags.Flag("Specifications", 6),
	loadflags.Flag("Attributes", 7),
	loadflags.Flag("CrossSells", 8),
)

// Product load flags.
var (
	ProductLoadNone           = loadflags.None
	ProductLoadProduct        = ProductLoad.Get("Product")
	ProductLoadCategories     = ProductLoad.Get("Categories")
	ProductLoadManufacturers  = ProductLoad.Get("Manufacturers")
	ProductLoadPictures       = ProductLoad.Get("Pictures")
	ProductLoadTierPrices     = ProductLoad.Get("TierPrices")
	ProductLoadSpecifications = ProductLoad.Get("Specifications")
	ProductLoadAttributes     = ProductLoad.Get("Attributes")
	ProductLoadCrossSells     = ProductLoad.Get("CrossSells")
	ProductLoadAll            = ProductLoad.All()
)

// VariantLoad governs which nested variant data ProductVariant queries
// populate.
var VariantLoad = loadflags.MustNewFamily("ProductVariantLoadType",
	loadflags.Base("Variant", 1),
	loadflags.Flag("Pictures", 2),
	loadflags.Flag("TierPrices", 3),
	loadflags.Flag("AttributeCombinations", 4),
	loadflags.Flag("Downloads", 5),
)

// Product variant load flags.
var (
	VariantLoadNone                  = loadflags.None
	VariantLoadVariant               = VariantLoad.Get("Variant")
	VariantLoadPictures              = VariantLoad.Get("Pictures")
	VariantLoadTierPrices            = VariantLoad.Get("TierPrices")
	VariantLoadAttributeCombinations = VariantLoad.Get("AttributeCombinations")
	VariantLoadDownloads             = VariantLoad.Get("Downloads")
	VariantLoadAll                   = VariantLoad.All()
)

// ProductGet governs the visibility rules of a Products.Get call, as opposed
// to which nested data is loaded.
var ProductGet = loadflags.MustNewFamily("ProductGetFlags",
	loadflags.Base("Product", 1),
	loadflags.Flag("Variants", 2),
	loadflags.Flag("IncludeUnpublished", 3),
	loadflags.Flag("IncludeDeleted", 4),
)

// Product get flags.
var (
	ProductGetNone               = loadflags.None
	ProductGetProduct            = ProductGet.Get("Product")
	ProductGetVariants           = ProductGet.Get("Variants")
	ProductGetIncludeUnpublished = ProductGet.Get("IncludeUnpublished")
	ProductGetIncludeDeleted     = ProductGet.Get("IncludeDeleted")
	ProductGetAll                = ProductGet.All()
)
