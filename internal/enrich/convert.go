package enrich

import (
	"github.com/okarpenko/listing-gateway/internal/backend"
	domain "github.com/okarpenko/listing-gateway/pkg/types"
)

// ToListing converts a backend raw listing into a domain listing, carrying
// pass-through fields and sanitizing photos. Reference names are attached
// separately by the Enricher.
func ToListing(raw *backend.RawListing) domain.Listing {
	return domain.Listing{
		ID:           raw.ID,
		SellerID:     raw.SellerID,
		BrandID:      raw.BrandID,
		ModelID:      raw.ModelID,
		Year:         raw.Year,
		Price:        raw.Price,
		Currency:     raw.Currency,
		PriceUSD:     raw.PriceUSD,
		PriceEUR:     raw.PriceEUR,
		PriceUAH:     raw.PriceUAH,
		Description:  raw.Description,
		Region:       raw.Region,
		Mileage:      raw.Mileage,
		Status:       raw.Status,
		ViewCount:    raw.ViewCount,
		FuelType:     raw.FuelType,
		Transmission: raw.Transmission,
		Color:        raw.Color,
		EngineVolume: raw.EngineVolume,
		BodyType:     raw.BodyType,
		DoorsCount:   raw.DoorsCount,
		EnginePower:  raw.EnginePower,
		Photos:       SanitizePhotos(raw.Photos.URLs),
	}
}

// ToBrands converts backend brand references into domain brands.
func ToBrands(refs []backend.BrandRef) []domain.Brand {
	brands := make([]domain.Brand, 0, len(refs))
	for _, r := range refs {
		brands = append(brands, domain.Brand{ID: r.ID, Name: r.Name})
	}
	return brands
}

// ToModels converts backend model references into domain models.
func ToModels(refs []backend.ModelRef) []domain.Model {
	models := make([]domain.Model, 0, len(refs))
	for _, r := range refs {
		models = append(models, domain.Model{ID: r.ID, Name: r.Name})
	}
	return models
}
