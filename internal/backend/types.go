package backend

// RawListing represents a single listing from the backend listings API.
// Fields the gateway does not interpret are carried through untouched.
type RawListing struct {
	ID       int `json:"id"`
	SellerID int `json:"sellerId"`
	BrandID  int `json:"brandId"`
	ModelID  int `json:"modelId"`

	Year     int     `json:"year"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	PriceUSD float64 `json:"priceUSD"`
	PriceEUR float64 `json:"priceEUR"`
	PriceUAH float64 `json:"priceUAH"`

	Description string `json:"description"`
	Region      string `json:"region"`
	Mileage     int    `json:"mileage"`
	Status      string `json:"status"`
	EditCount   int    `json:"editCount"`
	ViewCount   int    `json:"viewCount"`

	// Photos arrives in several shapes; see PhotoField.
	Photos PhotoField `json:"photos"`

	FuelType     string  `json:"fuelType,omitempty"`
	Transmission string  `json:"transmission,omitempty"`
	Color        string  `json:"color,omitempty"`
	EngineVolume float64 `json:"engineVolume,omitempty"`
	BodyType     string  `json:"bodyType,omitempty"`
	DoorsCount   int     `json:"doorsCount,omitempty"`
	EnginePower  int     `json:"enginePower,omitempty"`
}

// BrandRef holds backend brand reference information.
type BrandRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ModelRef holds backend model reference information.
type ModelRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
