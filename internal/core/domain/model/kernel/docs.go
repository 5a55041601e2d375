// Package kernel provides the core domain primitives shared by every aggregate
// in the marketplace: validated UUID identifiers and geographic coordinates.
//
// All kernel types are immutable value objects. Their zero values are invalid
// and fail Validate(); instances must be created through the provided
// constructor functions, which enforce all range invariants up front so that
// downstream code never re-checks them.
package kernel
