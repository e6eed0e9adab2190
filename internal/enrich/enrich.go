// Package enrich joins raw backend listings with reference catalog data and
// normalizes their photo lists for presentation.
package enrich

import (
	"context"
	"log/slog"

	"github.com/okarpenko/listing-gateway/internal/backend"
	"github.com/okarpenko/listing-gateway/pkg/logger"
	domain "github.com/okarpenko/listing-gateway/pkg/types"
)

// Enricher produces enriched listings from the backend. All state is
// request-scoped; the catalog is fetched fresh on every call.
type Enricher struct {
	backend backend.Client
	log     *slog.Logger
}

// Option configures the Enricher.
type Option func(*Enricher)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Enricher) {
		e.log = l
	}
}

// New creates an Enricher over the given backend client.
func New(client backend.Client, opts ...Option) *Enricher {
	e := &Enricher{
		backend: client,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Page fetches one page of listings and enriches each of them. Per-listing
// enrichment failures degrade that listing only; a failed brands fetch
// degrades the whole page to unresolved names. Only the listings call itself
// can fail the page.
func (e *Enricher) Page(ctx context.Context, q backend.Query) (*domain.Page, error) {
	raw, err := e.backend.Listings(ctx, q)
	if err != nil {
		return nil, err
	}

	brands, err := e.backend.Brands(ctx)
	if err != nil {
		e.log.Warn("fetching brand catalog, serving listings unresolved", "error", err)
		brands = nil
	}

	listings := make([]domain.Listing, 0, len(raw))
	for i := range raw {
		listings = append(listings, e.enrichOne(ctx, &raw[i], brands))
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	return &domain.Page{
		Listings: listings,
		Number:   page,
		PerPage:  backend.DefaultPerPage,
		// The backend reports no total; a full page means there may be more.
		HasNext: len(listings) == backend.DefaultPerPage,
	}, nil
}

// One fetches and enriches a single listing by id.
func (e *Enricher) One(ctx context.Context, id int) (*domain.Listing, error) {
	raw, err := e.backend.Listing(ctx, id)
	if err != nil {
		return nil, err
	}

	brands, err := e.backend.Brands(ctx)
	if err != nil {
		e.log.Warn("fetching brand catalog, serving listing unresolved", "error", err)
		brands = nil
	}

	listing := e.enrichOne(ctx, raw, brands)
	return &listing, nil
}

// Brands returns the brand reference catalog.
func (e *Enricher) Brands(ctx context.Context) ([]domain.Brand, error) {
	refs, err := e.backend.Brands(ctx)
	if err != nil {
		return nil, err
	}
	return ToBrands(refs), nil
}

// Models returns the model reference catalog for one brand.
func (e *Enricher) Models(ctx context.Context, brandID int) ([]domain.Model, error) {
	refs, err := e.backend.Models(ctx, brandID)
	if err != nil {
		return nil, err
	}
	return ToModels(refs), nil
}

// enrichOne converts one raw listing and attaches reference names. An
// unmatched brand or model id is not an error: the listing may reference a
// catalog entry that has since been removed, and the name fields simply stay
// absent. Models are fetched per listing; the catalog per brand is small and
// the page size is bounded, so the extra round-trips are tolerated.
func (e *Enricher) enrichOne(
	ctx context.Context,
	raw *backend.RawListing,
	brands []backend.BrandRef,
) domain.Listing {
	l := ToListing(raw)

	if raw.Photos.Malformed {
		e.log.Warn("malformed photos field, treating as empty", "listing_id", raw.ID)
	}

	for _, b := range brands {
		if b.ID != raw.BrandID {
			continue
		}

		name := b.Name
		l.BrandName = &name

		models, err := e.backend.Models(ctx, b.ID)
		if err != nil {
			e.log.Warn("fetching models", "brand_id", b.ID, "listing_id", raw.ID, "error", err)
			break
		}
		for _, m := range models {
			if m.ID == raw.ModelID {
				modelName := m.Name
				l.ModelName = &modelName
				break
			}
		}
		break
	}

	return l
}
