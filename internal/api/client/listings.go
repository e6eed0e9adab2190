package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	domain "github.com/okarpenko/listing-gateway/pkg/types"
)

// ListListingsParams defines query parameters for listing queries.
type ListListingsParams struct {
	Search       string
	Brand        string
	Model        string
	MinPrice     float64
	MaxPrice     float64
	Region       string
	FuelType     string
	Transmission string
	Sort         string
	Page         int
}

// ListListings returns one page of listings matching the given parameters.
func (c *Client) ListListings(
	ctx context.Context,
	params *ListListingsParams,
) (*domain.Page, error) {
	q := url.Values{}
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	if params.Brand != "" {
		q.Set("brand", params.Brand)
	}
	if params.Model != "" {
		q.Set("model", params.Model)
	}
	if params.MinPrice > 0 {
		q.Set("min_price", strconv.FormatFloat(params.MinPrice, 'f', -1, 64))
	}
	if params.MaxPrice > 0 {
		q.Set("max_price", strconv.FormatFloat(params.MaxPrice, 'f', -1, 64))
	}
	if params.Region != "" {
		q.Set("region", params.Region)
	}
	if params.FuelType != "" {
		q.Set("fuel_type", params.FuelType)
	}
	if params.Transmission != "" {
		q.Set("transmission", params.Transmission)
	}
	if params.Sort != "" {
		q.Set("sort", params.Sort)
	}
	if params.Page > 0 {
		q.Set("page", strconv.Itoa(params.Page))
	}

	path := "/api/v1/listings"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var page domain.Page
	if err := c.get(ctx, path, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetListing returns a single listing by ID.
func (c *Client) GetListing(ctx context.Context, id int) (*domain.Listing, error) {
	var l domain.Listing
	if err := c.get(ctx, fmt.Sprintf("/api/v1/listings/%d", id), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// ListBrands returns the brand reference catalog.
func (c *Client) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	var resp struct {
		Brands []domain.Brand `json:"brands"`
	}
	if err := c.get(ctx, "/api/v1/brands", &resp); err != nil {
		return nil, err
	}
	return resp.Brands, nil
}

// ListModels returns the model reference catalog for one brand.
func (c *Client) ListModels(ctx context.Context, brandID int) ([]domain.Model, error) {
	var resp struct {
		Models []domain.Model `json:"models"`
	}
	if err := c.get(ctx, fmt.Sprintf("/api/v1/brands/%d/models", brandID), &resp); err != nil {
		return nil, err
	}
	return resp.Models, nil
}
