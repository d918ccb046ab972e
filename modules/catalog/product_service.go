package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/autofiltro/catalog/pkg/clientip"
	"github.com/autofiltro/catalog/pkg/vehiclefilter"
)

// MaxPageSize caps listing sizes; larger requests are clamped, not rejected.
const MaxPageSize = 1000

var barcodePattern = regexp.MustCompile(`^[A-Za-z0-9\-_]{8,50}$`)

// ProductService owns product CRUD, pricing and vehicle-filter queries.
type ProductService struct {
	storage   Storage
	validator *vehiclefilter.Validator
	auditor   vehiclefilter.Auditor
	cache     *ListingCache
	log       *slog.Logger
}

// NewProductService wires a product service. The cache may be nil; auditor
// and validator must not be.
func NewProductService(storage Storage, validator *vehiclefilter.Validator, auditor vehiclefilter.Auditor, cache *ListingCache, log *slog.Logger) *ProductService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &ProductService{
		storage:   storage,
		validator: validator,
		auditor:   auditor,
		cache:     cache,
		log:       log,
	}
}

// normalizePage validates pagination parameters. Oversized limits are clamped
// to MaxPageSize with a warning rather than rejected.
func (s *ProductService) normalizePage(ctx context.Context, skip, limit int) (int, int, error) {
	if skip < 0 {
		return 0, 0, fmt.Errorf("%w: skip cannot be negative", ErrInvalidInput)
	}
	if limit < 1 {
		return 0, 0, fmt.Errorf("%w: limit must be greater than zero", ErrInvalidInput)
	}
	if limit > MaxPageSize {
		s.log.WarnContext(ctx, "page size clamped", "requested", limit, "max", MaxPageSize)
		limit = MaxPageSize
	}
	return skip, limit, nil
}

// List returns a page of active products, optionally narrowed by category or
// distributor.
func (s *ProductService) List(ctx context.Context, skip, limit int, categoryID, distributorID *int64) (*ProductPage, error) {
	skip, limit, err := s.normalizePage(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	q := ProductQuery{Offset: skip, Limit: limit, CategoryID: categoryID, DistributorID: distributorID}
	s.log.DebugContext(ctx, "catalog operation", "op", "list_products", "skip", skip, "limit", limit)

	return s.queryPage(ctx, q)
}

// FilterByVehicle validates the raw filter pairs, records an audit entry for
// the accepted selection and returns the matching products. Rejections
// surface the validator's typed errors unchanged.
func (s *ProductService) FilterByVehicle(ctx context.Context, filters map[string]string, skip, limit int) (*ProductPage, error) {
	skip, limit, err := s.normalizePage(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	sel, err := s.validator.ValidateCombination(filters)
	if err != nil {
		s.log.WarnContext(ctx, "vehicle filter rejected", "op", "filter_by_vehicle", "error", err)
		return nil, err
	}

	s.auditor.Record(ctx, sel, clientip.GetIPFromContext(ctx))

	q := ProductQuery{Offset: skip, Limit: limit, Selection: sel}
	s.log.DebugContext(ctx, "catalog operation", "op", "filter_by_vehicle", "dimensions", len(sel))

	return s.queryPage(ctx, q)
}

func (s *ProductService) queryPage(ctx context.Context, q ProductQuery) (*ProductPage, error) {
	if page, ok := s.cache.GetPage(ctx, q); ok {
		return page, nil
	}

	items, err := s.storage.ListProducts(ctx, q)
	if err != nil {
		return nil, err
	}
	total, err := s.storage.CountProducts(ctx, q)
	if err != nil {
		return nil, err
	}

	page := &ProductPage{
		Items:    items,
		Total:    total,
		Page:     q.Offset/q.Limit + 1,
		PageSize: q.Limit,
	}
	s.cache.SetPage(ctx, q, page)
	return page, nil
}

func (s *ProductService) Get(ctx context.Context, id int64) (*Product, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: invalid product id %d", ErrInvalidInput, id)
	}
	return s.storage.GetProduct(ctx, id)
}

func (s *ProductService) GetByBarcode(ctx context.Context, barcode string) (*Product, error) {
	barcode = cleanText(barcode, 50)
	if !barcodePattern.MatchString(barcode) {
		return nil, fmt.Errorf("%w: malformed barcode", ErrInvalidInput)
	}
	return s.storage.GetProductByBarcode(ctx, barcode)
}

// Create validates, prices and stores a new product.
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	p, err := s.buildProduct(req)
	if err != nil {
		return nil, err
	}

	if err := s.storage.CreateProduct(ctx, p); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.log.InfoContext(ctx, "product created", "op", "create_product", "id", p.ID, "barcode", p.Barcode)
	return p, nil
}

// Update applies a partial update. Pricing inputs trigger a sale price
// recomputation; vehicle attributes are re-validated.
func (s *ProductService) Update(ctx context.Context, id int64, req UpdateProductRequest) (*Product, error) {
	if id < 1 {
		return nil, fmt.Errorf("%w: invalid product id %d", ErrInvalidInput, id)
	}

	p, err := s.storage.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyUpdate(p, req); err != nil {
		return nil, err
	}

	if err := s.storage.UpdateProduct(ctx, p); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)
	s.log.InfoContext(ctx, "product updated", "op", "update_product", "id", p.ID)
	return s.storage.GetProduct(ctx, id)
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return fmt.Errorf("%w: invalid product id %d", ErrInvalidInput, id)
	}
	if err := s.storage.SoftDeleteProduct(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx)
	s.log.WarnContext(ctx, "product soft-deleted", "op", "delete_product", "id", id)
	return nil
}

// buildProduct validates a create request and assembles a priced product.
func (s *ProductService) buildProduct(req CreateProductRequest) (*Product, error) {
	barcode := cleanText(req.Barcode, 50)
	if !barcodePattern.MatchString(barcode) {
		return nil, fmt.Errorf("%w: malformed barcode", ErrInvalidInput)
	}

	name := cleanText(req.Name, 100)
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}

	brand := cleanText(req.Brand, 50)
	if brand == "" {
		return nil, fmt.Errorf("%w: product brand is required", ErrInvalidInput)
	}

	if req.CategoryID < 1 {
		return nil, fmt.Errorf("%w: invalid category id %d", ErrInvalidInput, req.CategoryID)
	}
	if req.DistributorID != nil && *req.DistributorID < 1 {
		return nil, fmt.Errorf("%w: invalid distributor id %d", ErrInvalidInput, *req.DistributorID)
	}
	if req.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity cannot be negative", ErrInvalidInput)
	}

	if req.PurchasePrice <= 0 {
		return nil, fmt.Errorf("%w: purchase price must be greater than zero", ErrInvalidInput)
	}

	margin := DefaultMarginPercent
	if req.MarginPercent != nil {
		margin = *req.MarginPercent
	}
	if margin < 0 || margin > MaxMarginPercent {
		return nil, fmt.Errorf("%w: margin must be between 0 and %v", ErrInvalidInput, MaxMarginPercent)
	}

	vat := DefaultVATPercent
	if req.VATPercent != nil {
		vat = *req.VATPercent
	}
	if vat < 0 {
		return nil, fmt.Errorf("%w: vat cannot be negative", ErrInvalidInput)
	}

	pricing := ComputePricing(req.PurchasePrice, margin, vat)

	p := &Product{
		Barcode:       barcode,
		Name:          name,
		Description:   cleanText(req.Description, 1000),
		Brand:         brand,
		CategoryID:    req.CategoryID,
		DistributorID: req.DistributorID,
		Quantity:      req.Quantity,
		NetPrice:      pricing.NetPrice,
		MarginPercent: margin,
		VATPercent:    vat,
		SalePrice:     pricing.SalePrice,
	}

	var err error
	if p.VehicleType, err = s.vehicleAttr(vehiclefilter.DimensionVehicleType, req.VehicleType); err != nil {
		return nil, err
	}
	if p.OilType, err = s.vehicleAttr(vehiclefilter.DimensionOilType, req.OilType); err != nil {
		return nil, err
	}
	if p.FuelType, err = s.vehicleAttr(vehiclefilter.DimensionFuelType, req.FuelType); err != nil {
		return nil, err
	}
	if p.FilterType, err = s.vehicleAttr(vehiclefilter.DimensionFilterType, req.FilterType); err != nil {
		return nil, err
	}

	return p, nil
}

// vehicleAttr validates an optional vehicle attribute and returns its
// sanitized token. Empty input means "unspecified" and stays empty.
func (s *ProductService) vehicleAttr(dim vehiclefilter.Dimension, raw string) (string, error) {
	if raw == "" {
		return "", nil
	}
	if err := s.validator.ValidateValue(string(dim), raw); err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	return vehiclefilter.Sanitize(raw), nil
}

func (s *ProductService) applyUpdate(p *Product, req UpdateProductRequest) error {
	if req.Barcode != nil {
		barcode := cleanText(*req.Barcode, 50)
		if !barcodePattern.MatchString(barcode) {
			return fmt.Errorf("%w: malformed barcode", ErrInvalidInput)
		}
		p.Barcode = barcode
	}
	if req.Name != nil {
		name := cleanText(*req.Name, 100)
		if name == "" {
			return fmt.Errorf("%w: product name is required", ErrInvalidInput)
		}
		p.Name = name
	}
	if req.Description != nil {
		p.Description = cleanText(*req.Description, 1000)
	}
	if req.Brand != nil {
		brand := cleanText(*req.Brand, 50)
		if brand == "" {
			return fmt.Errorf("%w: product brand is required", ErrInvalidInput)
		}
		p.Brand = brand
	}
	if req.CategoryID != nil {
		if *req.CategoryID < 1 {
			return fmt.Errorf("%w: invalid category id %d", ErrInvalidInput, *req.CategoryID)
		}
		p.CategoryID = *req.CategoryID
	}
	if req.DistributorID != nil {
		if *req.DistributorID < 1 {
			return fmt.Errorf("%w: invalid distributor id %d", ErrInvalidInput, *req.DistributorID)
		}
		p.DistributorID = req.DistributorID
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 {
			return fmt.Errorf("%w: quantity cannot be negative", ErrInvalidInput)
		}
		p.Quantity = *req.Quantity
	}

	repriced := false
	net := p.NetPrice
	if req.PurchasePrice != nil {
		if *req.PurchasePrice <= 0 {
			return fmt.Errorf("%w: purchase price must be greater than zero", ErrInvalidInput)
		}
		net = *req.PurchasePrice
		repriced = true
	}
	if req.MarginPercent != nil {
		if *req.MarginPercent < 0 || *req.MarginPercent > MaxMarginPercent {
			return fmt.Errorf("%w: margin must be between 0 and %v", ErrInvalidInput, MaxMarginPercent)
		}
		p.MarginPercent = *req.MarginPercent
		repriced = true
	}
	if req.VATPercent != nil {
		if *req.VATPercent < 0 {
			return fmt.Errorf("%w: vat cannot be negative", ErrInvalidInput)
		}
		p.VATPercent = *req.VATPercent
		repriced = true
	}
	if repriced {
		pricing := ComputePricing(net, p.MarginPercent, p.VATPercent)
		p.NetPrice = pricing.NetPrice
		p.SalePrice = pricing.SalePrice
	}

	var err error
	if req.VehicleType != nil {
		if p.VehicleType, err = s.vehicleAttr(vehiclefilter.DimensionVehicleType, *req.VehicleType); err != nil {
			return err
		}
	}
	if req.OilType != nil {
		if p.OilType, err = s.vehicleAttr(vehiclefilter.DimensionOilType, *req.OilType); err != nil {
			return err
		}
	}
	if req.FuelType != nil {
		if p.FuelType, err = s.vehicleAttr(vehiclefilter.DimensionFuelType, *req.FuelType); err != nil {
			return err
		}
	}
	if req.FilterType != nil {
		if p.FilterType, err = s.vehicleAttr(vehiclefilter.DimensionFilterType, *req.FilterType); err != nil {
			return err
		}
	}

	return nil
}
