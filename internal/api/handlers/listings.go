package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/okarpenko/listing-gateway/internal/backend"
	domain "github.com/okarpenko/listing-gateway/pkg/types"
)

// ListingService provides enriched listing pages and single listings.
type ListingService interface {
	Page(ctx context.Context, q backend.Query) (*domain.Page, error)
	One(ctx context.Context, id int) (*domain.Listing, error)
}

// ListingsHandler handles listing query endpoints.
type ListingsHandler struct {
	service ListingService
}

// NewListingsHandler creates a new ListingsHandler.
func NewListingsHandler(s ListingService) *ListingsHandler {
	return &ListingsHandler{service: s}
}

// --- Input/Output types ---

// ListListingsInput is the input for listing listings with optional filters.
type ListListingsInput struct {
	Search       string  `query:"search"       doc:"Free-text search term"`
	Brand        string  `query:"brand"        doc:"Brand filter"`
	Model        string  `query:"model"        doc:"Model filter"`
	MinPrice     float64 `query:"min_price"    doc:"Minimum price"                            minimum:"0"`
	MaxPrice     float64 `query:"max_price"    doc:"Maximum price"                            minimum:"0"`
	Region       string  `query:"region"       doc:"Region filter"`
	FuelType     string  `query:"fuel_type"    doc:"Fuel type filter"`
	Transmission string  `query:"transmission" doc:"Transmission filter"`
	Sort         string  `query:"sort"         doc:"Sort token; unrecognized tokens sort newest first"`
	Page         string  `query:"page"         doc:"1-based page; invalid values fall back to 1"`
}

// ListListingsOutput is the response for listing listings.
type ListListingsOutput struct {
	Body domain.Page
}

// GetListingInput is the input for getting a single listing.
type GetListingInput struct {
	ID int `path:"id" doc:"Listing ID"`
}

// GetListingOutput is the response for getting a single listing.
type GetListingOutput struct {
	Body domain.Listing
}

// --- Handlers ---

// ListListings returns one enriched page of listings matching the filters.
func (h *ListingsHandler) ListListings(
	ctx context.Context,
	input *ListListingsInput,
) (*ListListingsOutput, error) {
	q := backend.Query{
		Search:       input.Search,
		Brand:        input.Brand,
		Model:        input.Model,
		Region:       input.Region,
		FuelType:     input.FuelType,
		Transmission: input.Transmission,
		Sort:         domain.SortOption(input.Sort),
		Page:         backend.ParsePage(input.Page),
	}

	if input.MinPrice != 0 {
		q.MinPrice = &input.MinPrice
	}

	if input.MaxPrice != 0 {
		q.MaxPrice = &input.MaxPrice
	}

	page, err := h.service.Page(ctx, q)
	if err != nil {
		if errors.Is(err, backend.ErrUnavailable) {
			return nil, huma.Error502BadGateway("listings backend unavailable")
		}
		return nil, huma.Error500InternalServerError("listing query failed: " + err.Error())
	}

	return &ListListingsOutput{Body: *page}, nil
}

// GetListing returns a single enriched listing by ID.
func (h *ListingsHandler) GetListing(
	ctx context.Context,
	input *GetListingInput,
) (*GetListingOutput, error) {
	listing, err := h.service.One(ctx, input.ID)
	if err != nil {
		switch {
		case errors.Is(err, backend.ErrNotFound):
			return nil, huma.Error404NotFound("listing not found")
		case errors.Is(err, backend.ErrUnavailable):
			return nil, huma.Error502BadGateway("listings backend unavailable")
		default:
			return nil, huma.Error500InternalServerError("listing fetch failed: " + err.Error())
		}
	}

	return &GetListingOutput{Body: *listing}, nil
}

// RegisterListingRoutes registers listing endpoints with the Huma API.
func RegisterListingRoutes(api huma.API, h *ListingsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-listings",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings",
		Summary:     "List listings",
		Description: "Returns one page of enriched listings with optional filters and sorting.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusBadGateway},
	}, h.ListListings)

	huma.Register(api, huma.Operation{
		OperationID: "get-listing",
		Method:      http.MethodGet,
		Path:        "/api/v1/listings/{id}",
		Summary:     "Get a listing by ID",
		Description: "Returns a single enriched listing.",
		Tags:        []string{"listings"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway},
	}, h.GetListing)
}
