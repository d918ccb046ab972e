package catalog

// CreateCategoryRequest carries the writable category fields.
type CreateCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

// CreateDistributorRequest carries the writable distributor fields.
type CreateDistributorRequest struct {
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// CreateProductRequest carries the writable product fields. Sale price is
// always derived server-side from purchase price, margin and VAT.
type CreateProductRequest struct {
	Barcode       string   `json:"barcode"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Brand         string   `json:"brand"`
	CategoryID    int64    `json:"category_id"`
	DistributorID *int64   `json:"distributor_id"`
	Quantity      int      `json:"quantity"`
	PurchasePrice float64  `json:"purchase_price"`
	MarginPercent *float64 `json:"margin_percent"`
	VATPercent    *float64 `json:"vat_percent"`

	VehicleType string `json:"vehicle_type"`
	OilType     string `json:"oil_type"`
	FuelType    string `json:"fuel_type"`
	FilterType  string `json:"filter_type"`
}

// UpdateProductRequest carries a partial product update; nil fields are left
// unchanged. Changing any pricing input recomputes the sale price.
type UpdateProductRequest struct {
	Barcode       *string  `json:"barcode"`
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	Brand         *string  `json:"brand"`
	CategoryID    *int64   `json:"category_id"`
	DistributorID *int64   `json:"distributor_id"`
	Quantity      *int     `json:"quantity"`
	PurchasePrice *float64 `json:"purchase_price"`
	MarginPercent *float64 `json:"margin_percent"`
	VATPercent    *float64 `json:"vat_percent"`

	VehicleType *string `json:"vehicle_type"`
	OilType     *string `json:"oil_type"`
	FuelType    *string `json:"fuel_type"`
	FilterType  *string `json:"filter_type"`
}
