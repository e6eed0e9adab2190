package backend

import (
	"net/url"
	"strconv"

	domain "github.com/okarpenko/listing-gateway/pkg/types"
)

// Backend sort directions.
const (
	orderAsc  = "ASC"
	orderDesc = "DESC"
)

// SortParams maps a user-facing sort token to the backend (field, direction)
// pair. Anything outside the known vocabulary, including the empty token,
// maps to newest-first.
func SortParams(sort domain.SortOption) (field, order string) {
	switch sort {
	case domain.SortPriceAsc:
		return "price", orderAsc
	case domain.SortPriceDesc:
		return "price", orderDesc
	case domain.SortDateAsc:
		return "created_at", orderAsc
	case domain.SortDateDesc:
		return "created_at", orderDesc
	case domain.SortMileageAsc:
		return "mileage", orderAsc
	case domain.SortMileageDesc:
		return "mileage", orderDesc
	case domain.SortViewsDesc:
		return "view_count", orderDesc
	default:
		return "created_at", orderDesc
	}
}

// ParsePage coerces a raw page parameter to a 1-based page number. Parse
// failures and values below 1 fall back to page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Values encodes the query as backend URL parameters. Empty optional filters
// are omitted entirely; sort, order, page, and per_page are always present.
func (q Query) Values() url.Values {
	params := url.Values{}

	if q.Search != "" {
		params.Set("search", q.Search)
	}
	if q.Brand != "" {
		params.Set("brand", q.Brand)
	}
	if q.Model != "" {
		params.Set("model", q.Model)
	}
	if q.MinPrice != nil {
		params.Set("min_price", strconv.FormatFloat(*q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice != nil {
		params.Set("max_price", strconv.FormatFloat(*q.MaxPrice, 'f', -1, 64))
	}
	if q.Region != "" {
		params.Set("region", q.Region)
	}
	if q.FuelType != "" {
		params.Set("fuel_type", q.FuelType)
	}
	if q.Transmission != "" {
		params.Set("transmission", q.Transmission)
	}

	field, order := SortParams(q.Sort)
	params.Set("sort", field)
	params.Set("order", order)

	page := q.Page
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))
	params.Set("per_page", strconv.Itoa(DefaultPerPage))

	return params
}
