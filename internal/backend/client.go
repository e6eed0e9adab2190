// Package backend provides a client for the remote listings API abstracted
// behind interfaces for testability.
package backend

import (
	"context"
	"errors"

	domain "github.com/okarpenko/listing-gateway/pkg/types"
)

// DefaultPerPage is the fixed page size sent to the backend. Not
// user-controlled.
const DefaultPerPage = 10

// ErrUnavailable is returned when the backend cannot be reached or responds
// with a non-success status. Callers degrade to empty results rather than
// failing the whole request.
var ErrUnavailable = errors.New("listings backend unavailable")

// ErrNotFound is returned when the backend reports 404 for a resource.
var ErrNotFound = errors.New("not found")

// Query carries the user-facing filter, sort, and pagination vocabulary for a
// listings page request. Zero-value filter fields are omitted from the
// backend call.
type Query struct {
	Search       string
	Brand        string
	Model        string
	MinPrice     *float64
	MaxPrice     *float64
	Region       string
	FuelType     string
	Transmission string

	// Sort is the user-facing token; unrecognized or absent tokens fall back
	// to newest-first.
	Sort domain.SortOption

	// Page is 1-based. Values below 1 are treated as 1.
	Page int
}

// Client defines the interface for interacting with the listings backend.
type Client interface {
	// Listings fetches one page of raw listings matching the query.
	Listings(ctx context.Context, q Query) ([]RawListing, error)
	// Listing fetches a single raw listing by id.
	Listing(ctx context.Context, id int) (*RawListing, error)
	// Brands fetches the brand reference catalog.
	Brands(ctx context.Context) ([]BrandRef, error)
	// Models fetches the model reference catalog for one brand.
	Models(ctx context.Context, brandID int) ([]ModelRef, error)
}
