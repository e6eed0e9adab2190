package backend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okarpenko/listing-gateway/internal/backend"
	domain "github.com/okarpenko/listing-gateway/pkg/types"
)

func TestSortParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		sort      domain.SortOption
		wantField string
		wantOrder string
	}{
		{name: "price ascending", sort: domain.SortPriceAsc, wantField: "price", wantOrder: "ASC"},
		{name: "price descending", sort: domain.SortPriceDesc, wantField: "price", wantOrder: "DESC"},
		{name: "date ascending", sort: domain.SortDateAsc, wantField: "created_at", wantOrder: "ASC"},
		{name: "date descending", sort: domain.SortDateDesc, wantField: "created_at", wantOrder: "DESC"},
		{name: "mileage ascending", sort: domain.SortMileageAsc, wantField: "mileage", wantOrder: "ASC"},
		{name: "mileage descending", sort: domain.SortMileageDesc, wantField: "mileage", wantOrder: "DESC"},
		{name: "views descending", sort: domain.SortViewsDesc, wantField: "view_count", wantOrder: "DESC"},
		{name: "unrecognized token defaults", sort: "foo", wantField: "created_at", wantOrder: "DESC"},
		{name: "absent token defaults", sort: "", wantField: "created_at", wantOrder: "DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			field, order := backend.SortParams(tt.sort)
			assert.Equal(t, tt.wantField, field)
			assert.Equal(t, tt.wantOrder, order)
		})
	}
}

func TestParsePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "valid page", input: "3", want: 3},
		{name: "first page", input: "1", want: 1},
		{name: "zero falls back to 1", input: "0", want: 1},
		{name: "negative falls back to 1", input: "-2", want: 1},
		{name: "garbage falls back to 1", input: "abc", want: 1},
		{name: "empty falls back to 1", input: "", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, backend.ParsePage(tt.input))
		})
	}
}

func TestQuery_Values(t *testing.T) {
	t.Parallel()

	t.Run("empty filters are omitted", func(t *testing.T) {
		t.Parallel()

		params := backend.Query{}.Values()

		assert.False(t, params.Has("search"))
		assert.False(t, params.Has("brand"))
		assert.False(t, params.Has("model"))
		assert.False(t, params.Has("min_price"))
		assert.False(t, params.Has("max_price"))
		assert.False(t, params.Has("region"))
		assert.False(t, params.Has("fuel_type"))
		assert.False(t, params.Has("transmission"))

		// Sort and pagination are always present.
		assert.Equal(t, "created_at", params.Get("sort"))
		assert.Equal(t, "DESC", params.Get("order"))
		assert.Equal(t, "1", params.Get("page"))
		assert.Equal(t, "10", params.Get("per_page"))
	})

	t.Run("all filters set", func(t *testing.T) {
		t.Parallel()

		minPrice := 1000.0
		maxPrice := 25000.5
		params := backend.Query{
			Search:       "sedan",
			Brand:        "4",
			Model:        "12",
			MinPrice:     &minPrice,
			MaxPrice:     &maxPrice,
			Region:       "Kyiv",
			FuelType:     "diesel",
			Transmission: "automatic",
			Sort:         domain.SortPriceAsc,
			Page:         3,
		}.Values()

		assert.Equal(t, "sedan", params.Get("search"))
		assert.Equal(t, "4", params.Get("brand"))
		assert.Equal(t, "12", params.Get("model"))
		assert.Equal(t, "1000", params.Get("min_price"))
		assert.Equal(t, "25000.5", params.Get("max_price"))
		assert.Equal(t, "Kyiv", params.Get("region"))
		assert.Equal(t, "diesel", params.Get("fuel_type"))
		assert.Equal(t, "automatic", params.Get("transmission"))
		assert.Equal(t, "price", params.Get("sort"))
		assert.Equal(t, "ASC", params.Get("order"))
		assert.Equal(t, "3", params.Get("page"))
	})

	t.Run("page below 1 is coerced", func(t *testing.T) {
		t.Parallel()

		params := backend.Query{Page: -5}.Values()
		assert.Equal(t, "1", params.Get("page"))
	})
}
