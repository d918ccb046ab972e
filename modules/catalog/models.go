package catalog

import "time"

// Category groups filter products ("filtros de motor", "accesorios", ...).
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Kind        string    `json:"kind"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Distributor is a product supplier.
type Distributor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Contact   string    `json:"contact,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// Product is a filter product. Sale price fields are derived from the
// purchase price and margin by ComputePricing and are never accepted from
// callers directly.
type Product struct {
	ID            int64  `json:"id"`
	Barcode       string `json:"barcode"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	Brand         string `json:"brand"`
	CategoryID    int64  `json:"category_id"`
	DistributorID *int64 `json:"distributor_id,omitempty"`

	Quantity      int     `json:"quantity"`
	NetPrice      float64 `json:"net_price"`
	MarginPercent float64 `json:"margin_percent"`
	VATPercent    float64 `json:"vat_percent"`
	SalePrice     float64 `json:"sale_price"`

	// Vehicle filter attributes; empty means unspecified.
	VehicleType string `json:"vehicle_type,omitempty"`
	OilType     string `json:"oil_type,omitempty"`
	FuelType    string `json:"fuel_type,omitempty"`
	FilterType  string `json:"filter_type,omitempty"`

	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductPage is a paginated product listing.
type ProductPage struct {
	Items    []Product `json:"items"`
	Total    int64     `json:"total"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
}
