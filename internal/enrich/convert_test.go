package enrich_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okarpenko/listing-gateway/internal/backend"
	"github.com/okarpenko/listing-gateway/internal/enrich"
	domain "github.com/okarpenko/listing-gateway/pkg/types"
)

func TestToListing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  backend.RawListing
		want domain.Listing
	}{
		{
			name: "complete listing converts all fields",
			raw: backend.RawListing{
				ID:           7,
				SellerID:     3,
				BrandID:      1,
				ModelID:      11,
				Year:         2018,
				Price:        14500,
				Currency:     "USD",
				PriceUSD:     14500,
				PriceEUR:     13400,
				PriceUAH:     600000,
				Description:  "one owner",
				Region:       "Odesa",
				Mileage:      98000,
				Status:       "active",
				ViewCount:    152,
				Photos:       backend.PhotoField{URLs: []string{"a.jpg"}},
				FuelType:     "petrol",
				Transmission: "manual",
				Color:        "silver",
				EngineVolume: 1.8,
				BodyType:     "sedan",
				DoorsCount:   4,
				EnginePower:  140,
			},
			want: domain.Listing{
				ID:           7,
				SellerID:     3,
				BrandID:      1,
				ModelID:      11,
				Year:         2018,
				Price:        14500,
				Currency:     "USD",
				PriceUSD:     14500,
				PriceEUR:     13400,
				PriceUAH:     600000,
				Description:  "one owner",
				Region:       "Odesa",
				Mileage:      98000,
				Status:       "active",
				ViewCount:    152,
				FuelType:     "petrol",
				Transmission: "manual",
				Color:        "silver",
				EngineVolume: 1.8,
				BodyType:     "sedan",
				DoorsCount:   4,
				EnginePower:  140,
				Photos:       []string{"a.jpg"},
			},
		},
		{
			name: "minimal listing gets empty photo slice",
			raw:  backend.RawListing{ID: 1},
			want: domain.Listing{ID: 1, Photos: []string{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, enrich.ToListing(&tt.raw))
		})
	}
}

func TestToBrandsAndModels(t *testing.T) {
	t.Parallel()

	brands := enrich.ToBrands([]backend.BrandRef{{ID: 1, Name: "Toyota"}})
	assert.Equal(t, []domain.Brand{{ID: 1, Name: "Toyota"}}, brands)

	models := enrich.ToModels([]backend.ModelRef{{ID: 11, Name: "Corolla"}})
	assert.Equal(t, []domain.Model{{ID: 11, Name: "Corolla"}}, models)

	assert.Empty(t, enrich.ToBrands(nil))
	assert.Empty(t, enrich.ToModels(nil))
}
