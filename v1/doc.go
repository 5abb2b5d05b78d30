// Package v1 declares the object model the MegaScript host exposes to
// scripts: customers, orders, products, file and PDF handling, messaging,
// budgets, and the utility namespaces.
//
// Host-implemented objects are interfaces; value shapes are plain structs.
// Every call that crosses into the host takes a context.Context. Queries
// that can populate nested data accept a flag set from the matching
// loadflags family (MetaDataToLoad, OrderLoad, ProductLoad, VariantLoad,
// ProductGet); sections not requested by the originating flags report
// ErrNotLoaded instead of returning empty data.
package v1
