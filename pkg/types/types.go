// Package domain defines the core business types for the listing gateway.
package domain

// SortOption is a user-facing sort token from the closed query vocabulary.
type SortOption string

// Sort option constants.
const (
	SortPriceAsc    SortOption = "price_asc"
	SortPriceDesc   SortOption = "price_desc"
	SortDateAsc     SortOption = "date_asc"
	SortDateDesc    SortOption = "date_desc"
	SortMileageAsc  SortOption = "mileage_asc"
	SortMileageDesc SortOption = "mileage_desc"
	SortViewsDesc   SortOption = "views_desc"
)

// Brand is a reference catalog entry for a car make.
type Brand struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Model is a reference catalog entry for a car model within a brand.
type Model struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Listing is an enriched listing as served to clients: the backend record
// joined with resolved reference names and a sanitized photo list.
type Listing struct {
	ID       int `json:"id"`
	SellerID int `json:"sellerId,omitempty"`

	// Reference data
	BrandID   int     `json:"brandId"`
	ModelID   int     `json:"modelId"`
	BrandName *string `json:"brandName,omitempty"`
	ModelName *string `json:"modelName,omitempty"`

	// Pass-through vehicle attributes
	Year         int     `json:"year,omitempty"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency,omitempty"`
	PriceUSD     float64 `json:"priceUSD,omitempty"`
	PriceEUR     float64 `json:"priceEUR,omitempty"`
	PriceUAH     float64 `json:"priceUAH,omitempty"`
	Description  string  `json:"description,omitempty"`
	Region       string  `json:"region,omitempty"`
	Mileage      int     `json:"mileage,omitempty"`
	Status       string  `json:"status,omitempty"`
	ViewCount    int     `json:"viewCount,omitempty"`
	FuelType     string  `json:"fuelType,omitempty"`
	Transmission string  `json:"transmission,omitempty"`
	Color        string  `json:"color,omitempty"`
	EngineVolume float64 `json:"engineVolume,omitempty"`
	BodyType     string  `json:"bodyType,omitempty"`
	DoorsCount   int     `json:"doorsCount,omitempty"`
	EnginePower  int     `json:"enginePower,omitempty"`

	// Photos normalized to public URLs, placeholder entries removed.
	Photos []string `json:"photos"`
}

// Page is one page of enriched listings. The backend never reports a total,
// so HasNext is inferred from whether a full page came back; the last page of
// an exactly-divisible result set still reports HasNext=true.
type Page struct {
	Listings []Listing `json:"listings"`
	Number   int       `json:"page"`
	PerPage  int       `json:"per_page"`
	HasNext  bool      `json:"has_next"`
}

// UploadResult reports the outcome of an upload batch: public paths of the
// stored primary assets, in input order, plus how many files were skipped.
type UploadResult struct {
	Paths   []string `json:"paths"`
	Skipped int      `json:"skipped"`
}
