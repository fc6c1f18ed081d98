// Package entity defines the domain entities for the product feature.
package entity

import "time"

// Product represents an item of the catalog. Products are never hard
// deleted: Active false hides them from every listing.
type Product struct {
	ID          uint
	Title       string
	Price       float64
	Stock       int
	Description string
	Category    string
	ImageBase64 string

	// SellerID is the hex id of the user that created the product. Users
	// live in the document store, so the reference is an opaque string.
	SellerID string

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
